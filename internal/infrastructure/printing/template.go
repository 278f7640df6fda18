package printing

import (
	"bytes"
	"html/template"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	appreport "github.com/dukadash/backend/internal/application/report"
)

// reportTemplate is the default layout for exported business reports.
// Styles are inlined because Chrome prints the document with no network
// access.
const reportTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<title>{{ .Doc.Title }}</title>
<style>
  body { font-family: Helvetica, Arial, sans-serif; color: #1f2430; margin: 0; }
  h1 { font-size: 22px; margin-bottom: 2px; }
  h2 { font-size: 15px; margin-top: 28px; border-bottom: 1px solid #d6dae3; padding-bottom: 4px; }
  .meta { color: #6b7280; font-size: 11px; margin-bottom: 24px; }
  table { width: 100%; border-collapse: collapse; font-size: 12px; }
  th { text-align: left; background: #f3f4f6; padding: 6px 8px; border-bottom: 2px solid #d6dae3; }
  td { padding: 6px 8px; border-bottom: 1px solid #e5e7eb; }
  td.num, th.num { text-align: right; }
  .cards { display: flex; gap: 12px; }
  .card { flex: 1; background: #f8f9fb; border: 1px solid #e5e7eb; border-radius: 6px; padding: 12px; }
  .card .label { font-size: 10px; text-transform: uppercase; color: #6b7280; }
  .card .value { font-size: 18px; font-weight: bold; margin-top: 4px; }
  .profit { color: #15803d; }
  .loss { color: #b91c1c; }
</style>
</head>
<body>
<h1>{{ .Doc.Title }}</h1>
<div class="meta">{{ .Doc.PeriodLabel }} &middot; generated {{ .Doc.GeneratedAt.Format "2 Jan 2006 15:04" }}</div>

{{ with .Doc.Summary }}
<div class="cards">
  <div class="card">
    <div class="label">Income</div>
    <div class="value">{{ money .TotalIncome }}</div>
  </div>
  <div class="card">
    <div class="label">Expenses</div>
    <div class="value">{{ money .TotalExpenses }}</div>
  </div>
  <div class="card">
    <div class="label">Net profit</div>
    <div class="value {{ if .NetProfit.IsNegative }}loss{{ else }}profit{{ end }}">{{ money .NetProfit }}</div>
  </div>
  <div class="card">
    <div class="label">Sales</div>
    <div class="value">{{ .SaleCount }}</div>
  </div>
</div>
{{ end }}

{{ if .Doc.TopProducts }}
<h2>Top products</h2>
<table>
  <tr><th>Product</th><th class="num">Units</th><th class="num">Revenue</th></tr>
  {{ range .Doc.TopProducts }}
  <tr><td>{{ .Name }}</td><td class="num">{{ .Quantity }}</td><td class="num">{{ money .Revenue }}</td></tr>
  {{ end }}
</table>
{{ end }}

{{ if .Doc.Expenses }}
<h2>Expenses by category</h2>
<table>
  <tr><th>Category</th><th class="num">Entries</th><th class="num">Total</th></tr>
  {{ range .Doc.Expenses }}
  <tr><td>{{ .Category }}</td><td class="num">{{ .Count }}</td><td class="num">{{ money .Total }}</td></tr>
  {{ end }}
</table>
{{ end }}

{{ if and .Doc.IncludeDetails .Doc.Daily }}
<h2>Daily breakdown</h2>
<table>
  <tr><th>Date</th><th class="num">Sales</th><th class="num">Income</th><th class="num">Expenses</th></tr>
  {{ range .Doc.Daily }}
  <tr><td>{{ .Date }}</td><td class="num">{{ .SaleCount }}</td><td class="num">{{ money .Income }}</td><td class="num">{{ money .Expenses }}</td></tr>
  {{ end }}
</table>
{{ end }}
</body>
</html>`

type templateData struct {
	Doc appreport.Document
}

func newReportTemplate(currency string) (*template.Template, error) {
	printer := message.NewPrinter(language.English)
	funcs := template.FuncMap{
		"money": func(d decimal.Decimal) string {
			value, _ := d.Round(2).Float64()
			return printer.Sprintf("%s %v", currency,
				number.Decimal(value, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
		},
	}
	return template.New("report").Funcs(funcs).Parse(reportTemplate)
}

// buildReportHTML renders the document into the HTML Chrome will print
func buildReportHTML(doc appreport.Document) (string, error) {
	tmpl, err := newReportTemplate(doc.Currency)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, templateData{Doc: doc}); err != nil {
		return "", err
	}
	return buf.String(), nil
}
