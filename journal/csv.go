// journal/csv.go
package journal

import (
	"encoding/csv"
	"os"
	"strconv"
	"time"
)

type CSVJournal struct {
	disposals *csv.Writer
	summaries *csv.Writer
	df, sf    *os.File
}

func NewCSV(disposalsPath, summariesPath string) (*CSVJournal, error) {
	df, err := os.Create(disposalsPath)
	if err != nil {
		return nil, err
	}
	sf, err := os.Create(summariesPath)
	if err != nil {
		return nil, err
	}

	dw := csv.NewWriter(df)
	sw := csv.NewWriter(sf)

	if err := dw.Write([]string{"disposal_id", "source", "symbol", "units", "cost_per_unit", "sale_per_unit", "gain", "sequence", "recorded_at"}); err != nil {
		return nil, err
	}
	if err := sw.Write([]string{"summary_id", "source", "net_gains", "total_gains", "trades", "disposals", "recorded_at"}); err != nil {
		return nil, err
	}

	dw.Flush()
	if err := dw.Error(); err != nil {
		return nil, err
	}
	sw.Flush()
	if err := sw.Error(); err != nil {
		return nil, err
	}

	return &CSVJournal{dw, sw, df, sf}, nil
}

func (j *CSVJournal) RecordDisposal(d DisposalRecord) error {
	err := j.disposals.Write([]string{
		d.ID,
		d.Source,
		d.Symbol,
		d.Units.String(),
		d.CostPerUnit.StringFixed(2),
		d.SalePerUnit.StringFixed(2),
		d.Gain.StringFixed(2),
		strconv.Itoa(d.Sequence),
		d.RecordedAt.Format(time.RFC3339),
	})
	if err != nil {
		return err
	}

	j.disposals.Flush()
	return j.disposals.Error()
}

func (j *CSVJournal) RecordSummary(s SummaryRecord) error {
	err := j.summaries.Write([]string{
		s.ID,
		s.Source,
		s.Net.StringFixed(2),
		s.Total.StringFixed(2),
		strconv.Itoa(s.Trades),
		strconv.Itoa(s.Disposals),
		s.RecordedAt.Format(time.RFC3339),
	})
	if err != nil {
		return err
	}

	j.summaries.Flush()
	return j.summaries.Error()
}

func (j *CSVJournal) Close() error {
	j.disposals.Flush()
	if err := j.disposals.Error(); err != nil {
		return err
	}
	j.summaries.Flush()
	if err := j.summaries.Error(); err != nil {
		return err
	}

	if err := j.df.Close(); err != nil {
		return err
	}
	if err := j.sf.Close(); err != nil {
		return err
	}
	return nil
}
