package documents

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"docukit/internal/core/apperror"
)

var testStamp = time.Date(2026, 3, 15, 9, 30, 45, 0, time.UTC)

func TestApplyExtrasOverridesGeneratedIdentifiers(t *testing.T) {
	doc := DocContext{DocumentTitle: "Document", DocumentVersion: "1.0", CurrencySymbol: "€"}
	applyExtrasOverrides(&doc, Extras{}, testStamp)

	assert.Equal(t, "PRO-20260315-093045", doc.ProformaID)
	assert.Equal(t, "INV-20260315-093045", doc.InvoiceID)
	assert.Equal(t, "PL-20260315-093045", doc.PackingListID)
	assert.Equal(t, "WAR-20260315-093045", doc.WarrantyCertificateID)
	assert.Equal(t, "Document", doc.DocumentTitle)
	assert.Equal(t, "€", doc.CurrencySymbol)
}

func TestApplyExtrasOverridesSupplied(t *testing.T) {
	doc := DocContext{DocumentTitle: "Document", CurrencySymbol: "€"}
	applyExtrasOverrides(&doc, Extras{
		"document_title":           "Proforma Invoice",
		"currency_symbol":          "$",
		"vat_rate_percentage":      20.0,
		"discount_rate_percentage": 10,
		"proforma_id":              "PRO-CUSTOM-1",
		"payment_terms":            "50% advance",
	}, testStamp)

	assert.Equal(t, "Proforma Invoice", doc.DocumentTitle)
	assert.Equal(t, "$", doc.CurrencySymbol)
	assert.Equal(t, 20.0, doc.VATRatePercentage)
	assert.Equal(t, 10.0, doc.DiscountRatePercentage)
	assert.Equal(t, "PRO-CUSTOM-1", doc.ProformaID)
	assert.Equal(t, "INV-20260315-093045", doc.InvoiceID)
	assert.Equal(t, "50% advance", doc.PaymentTerms)
}

func TestApplyPackingList(t *testing.T) {
	t.Run("placeholder without details", func(t *testing.T) {
		var doc DocContext
		applyPackingList(&doc, Extras{})
		assert.Equal(t, `<tr><td colspan="6">No packing details provided</td></tr>`, doc.PackingListItems)
		assert.Zero(t, doc.TotalPackages)
	})

	t.Run("rows and aggregates", func(t *testing.T) {
		var doc DocContext
		applyPackingList(&doc, Extras{
			"packing_details": []any{
				map[string]any{
					"description":  "Crate <1>",
					"dimensions":   "120x80x100",
					"net_weight":   250.5,
					"gross_weight": 270.0,
					"volume_cbm":   0.96,
				},
				map[string]any{
					"description": "Box 2",
					"net_weight":  10,
					"volume_cbm":  0.04,
				},
			},
		})

		assert.Equal(t, 2, doc.TotalPackages)
		assert.InDelta(t, 260.5, doc.TotalNetWeight, 1e-9)
		assert.InDelta(t, 270.0, doc.TotalGrossWeight, 1e-9)
		assert.InDelta(t, 1.0, doc.TotalVolumeCBM, 1e-9)

		assert.Contains(t, doc.PackingListItems, "<tr><td>1</td><td>Crate &lt;1&gt;</td><td>120x80x100</td><td>250.50</td><td>270.00</td><td>0.960</td></tr>")
		assert.Contains(t, doc.PackingListItems, "<tr><td>2</td><td>Box 2</td><td>N/A</td><td>10.00</td><td>0.00</td><td>0.040</td></tr>")
	})
}

func TestApplyContactPage(t *testing.T) {
	t.Run("placeholder without details", func(t *testing.T) {
		dc := &DocumentContext{}
		applyContactPage(dc, Extras{})
		assert.Equal(t, `<tr><td colspan="5">No contacts provided</td></tr>`, dc.Doc.ContactListItemsHTML)
	})

	t.Run("rows and title overrides", func(t *testing.T) {
		dc := &DocumentContext{}
		dc.Doc.DocumentTitle = "Document"
		dc.Project.Name = "Old Project"

		applyContactPage(dc, Extras{
			"contact_page_details": []any{
				map[string]any{
					"organization": "Acme",
					"name":         "Jane Roe",
					"title":        "PM",
					"email":        "jane@acme.test",
				},
			},
			"contact_page_document_title": "Contact Sheet",
			"contact_page_project_name":   "Factory Line",
		})

		assert.Equal(t, "<tr><td>Acme</td><td>Jane Roe</td><td>PM</td><td>jane@acme.test</td><td>N/A</td></tr>", dc.Doc.ContactListItemsHTML)
		assert.Equal(t, "Contact Sheet", dc.Doc.DocumentTitle)
		assert.Equal(t, "Factory Line", dc.Project.Name)
	})
}

type fakeNoteRepo struct {
	notes map[string]string
}

func (f *fakeNoteRepo) GetActiveNote(_ context.Context, clientID int64, documentType, languageCode string) (*DocumentNote, error) {
	key := documentType + "/" + languageCode
	content, ok := f.notes[key]
	if !ok {
		return nil, apperror.NewNotFound("document note", clientID)
	}
	return &DocumentNote{
		ClientID:     clientID,
		DocumentType: documentType,
		LanguageCode: languageCode,
		NoteContent:  content,
		IsActive:     true,
	}, nil
}

func TestApplyFooterNotes(t *testing.T) {
	svc := &Service{notes: &fakeNoteRepo{notes: map[string]string{
		"proforma/en": "Line A\nLine B",
	}}}
	ctx := context.Background()

	t.Run("newlines become breaks", func(t *testing.T) {
		dc := &DocumentContext{}
		svc.applyFooterNotes(ctx, dc, 1, Extras{"current_document_type_for_notes": "proforma"}, "en")
		assert.Equal(t, "Line A<br>Line B", dc.Doc.ClientSpecificFooterNotes)
	})

	t.Run("missing note leaves field empty", func(t *testing.T) {
		dc := &DocumentContext{}
		svc.applyFooterNotes(ctx, dc, 1, Extras{"current_document_type_for_notes": "proforma"}, "tr")
		assert.Empty(t, dc.Doc.ClientSpecificFooterNotes)
	})

	t.Run("no document type skips lookup", func(t *testing.T) {
		dc := &DocumentContext{}
		svc.applyFooterNotes(ctx, dc, 1, Extras{}, "en")
		assert.Empty(t, dc.Doc.ClientSpecificFooterNotes)
	})
}
