package journal

import (
	"bytes"
	"text/template"

	"github.com/shopspring/decimal"
)

var formatFuncs = template.FuncMap{
	"fixed2": func(d decimal.Decimal) string { return d.StringFixed(2) },
}

const disposalsOrgTemplate = `| Symbol | Units | Cost/Unit | Sale/Unit | Gain | Seq |
|--------+-------+-----------+-----------+------+-----|
{{- range . }}
| {{.Symbol}} | {{.Units}} | {{fixed2 .CostPerUnit}} | {{fixed2 .SalePerUnit}} | {{fixed2 .Gain}} | {{.Sequence}} |
{{- end }}
`

const summariesOrgTemplate = `| Recorded | Source | Net | Total | Trades | Disposals |
|----------+--------+-----+-------+--------+-----------|
{{- range . }}
| {{.RecordedAt.Format "2006-01-02 15:04"}} | {{.Source}} | {{fixed2 .Net}} | {{fixed2 .Total}} | {{.Trades}} | {{.Disposals}} |
{{- end }}
`

// FormatDisposalsOrg renders disposal records as an org-mode table.
func FormatDisposalsOrg(recs []DisposalRecord) string {
	return render(disposalsOrgTemplate, recs)
}

// FormatSummariesOrg renders run summaries as an org-mode table.
func FormatSummariesOrg(recs []SummaryRecord) string {
	return render(summariesOrgTemplate, recs)
}

func render(tmpl string, data any) string {
	t := template.Must(template.New("journal").Funcs(formatFuncs).Parse(tmpl))
	buf := new(bytes.Buffer)
	if err := t.Execute(buf, data); err != nil {
		return err.Error()
	}
	return buf.String()
}
