package service

import (
	"bytes"
	"fmt"
	"text/template"

	"cartoes-materiais/models"
)

// cardsTemplate serializes a Document tree to HTML. All card text fields are
// escaped by the document builder before they reach this template, so it runs
// as text/template and stays a dumb syntax boundary. Dimensions are in mm;
// chromedp prints with zero engine margins, page margins live in the CSS
const cardsTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<style>
  * { margin: 0; padding: 0; box-sizing: border-box; }
  html, body { font-family: Arial, Helvetica, sans-serif; }
  .page {
    width: 210mm;
    height: 297mm;
    padding: {{.Layout.MarginTop}}mm {{.Layout.MarginRight}}mm {{.Layout.MarginBottom}}mm {{.Layout.MarginLeft}}mm;
    background: #fff;
    overflow: hidden;
    page-break-after: always;
  }
  .logo {
    text-align: center;
    margin-bottom: {{.Layout.GapRow}}mm;
  }
  .logo img { max-height: 18mm; max-width: 60mm; }
  .grid {
    display: flex;
    flex-wrap: wrap;
    align-content: flex-start;
    column-gap: {{.Layout.GapCol}}mm;
    row-gap: {{.Layout.GapRow}}mm;
    width: {{.Geometry.GridWidth}}mm;
  }
  .cell {
    width: {{.Geometry.CellWidth}}mm;
    height: {{.Geometry.CellHeight}}mm;
    display: flex;
    align-items: center;
    justify-content: center;
    overflow: hidden;
  }
  .cell.placeholder { border: 0.3mm dashed #bbb; }
  .card {
    flex: none;
    width: {{.Layout.CardWidth}}mm;
    height: {{.Layout.CardHeight}}mm;
    padding: {{.Layout.CardPadding}}mm;
    padding-top: {{.Layout.CardMarginTop}}mm;
    padding-bottom: {{.Layout.CardMarginBottom}}mm;
    border: 0.3mm solid #333;
    display: flex;
    flex-direction: column;
    align-items: center;
    justify-content: space-between;
    text-align: center;
    transform: rotate({{.Layout.RotateCard}}deg);
  }
  .company { font-size: {{.Layout.CompanyFont}}mm; font-weight: bold; }
  .qr { width: {{.Layout.QRSize}}mm; height: {{.Layout.QRSize}}mm; }
  .qr-missing {
    border: 0.3mm dashed #999;
    color: #999;
    font-size: 2.5mm;
    display: flex;
    align-items: center;
    justify-content: center;
  }
  .name { font-size: {{.Layout.NameFont}}mm; }
  .code { font-size: {{.Layout.CodeFont}}mm; color: #444; }
{{if .Interactive}}
  body { background: #777; padding: 8mm 0; }
  .page { margin: 0 auto 8mm auto; box-shadow: 0 1mm 4mm rgba(0,0,0,0.4); }
{{else}}
  @page { size: A4; margin: 0; }
{{end}}
</style>
</head>
<body>
{{range .Pages}}<div class="page">
{{if .Logo}}  <div class="logo"><img src="{{.Logo}}" alt=""></div>
{{end}}  <div class="grid">
{{range .Cards}}{{if .Placeholder}}    <div class="cell placeholder"></div>
{{else}}    <div class="cell">
      <div class="card">
        <div class="company">{{.CompanyName}}</div>
{{if .QRData}}        <img class="qr" src="{{.QRData}}" alt="">
{{else}}        <div class="qr qr-missing"><span>QR indispon&iacute;vel</span></div>
{{end}}        <div class="name">{{.Name}}</div>
        <div class="code">{{.Code}}</div>
      </div>
    </div>
{{end}}{{end}}  </div>
</div>
{{end}}</body>
</html>
`

// HTMLRenderer serializes Document trees to markup at the render boundary
type HTMLRenderer struct {
	tmpl *template.Template
}

// NewHTMLRenderer creates a new HTMLRenderer
func NewHTMLRenderer() *HTMLRenderer {
	return &HTMLRenderer{
		tmpl: template.Must(template.New("cards").Parse(cardsTemplate)),
	}
}

// templateData adapts a Document for the template
type templateData struct {
	*models.Document
	Interactive bool
}

// Render serializes the document to HTML
func (r *HTMLRenderer) Render(doc *models.Document) (string, error) {
	var buf bytes.Buffer
	data := templateData{Document: doc, Interactive: doc.Mode == models.ModeInteractive}
	if err := r.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute cards template: %w", err)
	}
	return buf.String(), nil
}
