package render_test

import (
	"testing"
	"time"

	"brokerage/internal/adapters/out/render"
	"brokerage/internal/core/domain/model/declaration"
	"brokerage/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func testDeclaration(t *testing.T) *declaration.Declaration {
	t.Helper()

	passport, err := kernel.NewPassport(
		"AB", "1234567",
		time.Date(2020, 1, 15, 0, 0, 0, 0, time.UTC),
		time.Date(2030, 1, 15, 0, 0, 0, 0, time.UTC),
		"Migration Service",
	)
	require.NoError(t, err)

	d, err := declaration.NewDeclaration(declaration.NewDeclarationParams{
		ID:              kernel.NewUUID(),
		CustomerID:      kernel.NewUUID(),
		DeclarationType: declaration.TypeImport,
		Passport:        passport,
		ContactName:     "Jane Doe",
		ContactPhone:    "+15550100",
		ContactEmail:    "jane@example.com",
		DeliveryAddress: "1 Main St",
		DeliveryCountry: "US",
		DeliveryCity:    "Springfield",
		ProductName:     "Wireless headphones",
		ProductQuantity: 2,
		ProductUnit:     "pcs",
		ProductValue:    decimal.NewFromInt(100),
		Currency:        "USD",
	})
	require.NoError(t, err)
	return d
}

func TestHTMLRenderer_Render_ContainsDeclarationDetails(t *testing.T) {
	d := testDeclaration(t)

	doc, err := render.NewHTMLRenderer().Render(d)
	require.NoError(t, err)

	html := string(doc)
	require.Contains(t, html, d.Number().String())
	require.Contains(t, html, "Jane Doe")
	require.Contains(t, html, "AB1234567")
	require.Contains(t, html, "Migration Service")
	require.Contains(t, html, "Wireless headphones")
	require.Contains(t, html, "100 USD")
	require.Contains(t, html, "Springfield")
	require.NotContains(t, html, "Assessed duty", "no duty section before assessment")
}

func TestHTMLRenderer_Render_IncludesCustomsAssessment(t *testing.T) {
	d := testDeclaration(t)

	staff, err := kernel.NewActor(kernel.NewUUID(), "Broker Petrov", true)
	require.NoError(t, err)
	require.NoError(t, d.SetCustoms(staff, "8518300000", decimal.NewFromInt(100), decimal.RequireFromString("12.50")))

	doc, err := render.NewHTMLRenderer().Render(d)
	require.NoError(t, err)

	html := string(doc)
	require.Contains(t, html, "8518300000")
	require.Contains(t, html, "12.5")
}

func TestHTMLRenderer_Render_EscapesUserContent(t *testing.T) {
	d := testDeclaration(t)

	params := declaration.NewDeclarationParams{
		ID:              d.ID(),
		CustomerID:      d.CustomerID(),
		DeclarationType: d.DeclarationType(),
		Passport:        d.Passport(),
		ContactName:     `<script>alert("x")</script>`,
		ContactPhone:    d.ContactPhone(),
		DeliveryAddress: d.DeliveryAddress(),
		DeliveryCountry: d.DeliveryCountry(),
		DeliveryCity:    d.DeliveryCity(),
		ProductName:     d.ProductName(),
		ProductQuantity: d.ProductQuantity(),
		ProductUnit:     d.ProductUnit(),
		ProductValue:    d.ProductValue(),
		Currency:        d.Currency(),
	}
	require.NoError(t, d.UpdateDetails(params))

	doc, err := render.NewHTMLRenderer().Render(d)
	require.NoError(t, err)
	require.NotContains(t, string(doc), "<script>")
}
