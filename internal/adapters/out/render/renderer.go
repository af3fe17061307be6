// Package render produces printable declaration documents. The document is a
// self-contained HTML page suitable for printing or for a downstream
// PDF converter.
package render

import (
	"bytes"
	"html/template"
	"time"

	"brokerage/internal/core/domain/model/declaration"
)

var documentTemplate = template.Must(template.New("declaration").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Customs Declaration {{.Number}}</title>
<style>
body { font-family: sans-serif; margin: 2em; }
h1 { font-size: 1.4em; }
table { border-collapse: collapse; width: 100%; margin-bottom: 1.5em; }
td, th { border: 1px solid #999; padding: 6px 10px; text-align: left; }
th { background: #eee; width: 30%; }
</style>
</head>
<body>
<h1>Customs Declaration {{.Number}}</h1>
<p>Type: {{.Type}} &middot; Status: {{.Status}} &middot; Created: {{.CreatedAt}}</p>

<table>
<tr><th>Declarant</th><td>{{.ContactName}}</td></tr>
<tr><th>Phone</th><td>{{.ContactPhone}}</td></tr>
{{if .ContactEmail}}<tr><th>Email</th><td>{{.ContactEmail}}</td></tr>{{end}}
<tr><th>Passport</th><td>{{.PassportFull}}, issued {{.PassportIssued}} by {{.PassportAuthority}}</td></tr>
</table>

<table>
<tr><th>Goods</th><td>{{.ProductName}}</td></tr>
{{if .ProductDescription}}<tr><th>Description</th><td>{{.ProductDescription}}</td></tr>{{end}}
<tr><th>Quantity</th><td>{{.Quantity}} {{.Unit}}</td></tr>
<tr><th>Declared value</th><td>{{.ProductValue}} {{.Currency}}</td></tr>
{{if .CustomsCode}}<tr><th>Customs code</th><td>{{.CustomsCode}}</td></tr>{{end}}
{{if .CustomsDuty}}<tr><th>Assessed duty</th><td>{{.CustomsDuty}} {{.Currency}}</td></tr>{{end}}
</table>

<table>
<tr><th>Destination</th><td>{{.DeliveryAddress}}, {{.DeliveryCity}}, {{.DeliveryCountry}}</td></tr>
</table>

{{if .ReviewedByName}}<p>Reviewed by {{.ReviewedByName}}{{if .ReviewedAt}} on {{.ReviewedAt}}{{end}}.</p>{{end}}
</body>
</html>`))

// HTMLRenderer implements ports.DocumentRenderer with an HTML template.
type HTMLRenderer struct{}

// NewHTMLRenderer creates a declaration document renderer.
func NewHTMLRenderer() *HTMLRenderer {
	return &HTMLRenderer{}
}

// Render produces the printable document for a declaration.
func (r *HTMLRenderer) Render(d *declaration.Declaration) ([]byte, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	formatDate := func(t *time.Time) string {
		if t == nil {
			return ""
		}
		return t.Format("2006-01-02")
	}

	passport := d.Passport()
	data := struct {
		Number             string
		Type               string
		Status             string
		CreatedAt          string
		ContactName        string
		ContactPhone       string
		ContactEmail       string
		PassportFull       string
		PassportIssued     string
		PassportAuthority  string
		ProductName        string
		ProductDescription string
		Quantity           int
		Unit               string
		ProductValue       string
		Currency           string
		CustomsCode        string
		CustomsDuty        string
		DeliveryAddress    string
		DeliveryCity       string
		DeliveryCountry    string
		ReviewedByName     string
		ReviewedAt         string
	}{
		Number:             d.Number().String(),
		Type:               d.DeclarationType().String(),
		Status:             d.Status().String(),
		CreatedAt:          d.CreatedAt().Format("2006-01-02"),
		ContactName:        d.ContactName(),
		ContactPhone:       d.ContactPhone(),
		ContactEmail:       d.ContactEmail(),
		PassportFull:       passport.FullNumber(),
		PassportIssued:     passport.IssueDate().Format("2006-01-02"),
		PassportAuthority:  passport.IssuingAuthority(),
		ProductName:        d.ProductName(),
		ProductDescription: d.ProductDescription(),
		Quantity:           d.ProductQuantity(),
		Unit:               d.ProductUnit(),
		ProductValue:       d.ProductValue().String(),
		Currency:           d.Currency(),
		CustomsCode:        d.CustomsCode(),
		DeliveryAddress:    d.DeliveryAddress(),
		DeliveryCity:       d.DeliveryCity(),
		DeliveryCountry:    d.DeliveryCountry(),
		ReviewedByName:     d.ReviewedByName(),
		ReviewedAt:         formatDate(d.ReviewedAt()),
	}
	if !d.CustomsDuty().IsZero() {
		data.CustomsDuty = d.CustomsDuty().String()
	}

	var buf bytes.Buffer
	if err := documentTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
