package documents

import (
	"context"
	"fmt"
	"html"
	"strings"
	"time"

	"docukit/pkg/logger"
)

// applyExtrasOverrides copies caller-supplied overrides into the doc context
// and generates timestamp-based identifiers for those not supplied.
func applyExtrasOverrides(doc *DocContext, extras Extras, now time.Time) {
	doc.DocumentTitle = extras.String("document_title", doc.DocumentTitle)
	doc.DocumentSubtitle = extras.String("document_subtitle", doc.DocumentSubtitle)
	doc.DocumentVersion = extras.String("document_version", doc.DocumentVersion)
	doc.CurrencySymbol = extras.String("currency_symbol", doc.CurrencySymbol)
	doc.VATRatePercentage = extras.Float("vat_rate_percentage", doc.VATRatePercentage)
	doc.DiscountRatePercentage = extras.Float("discount_rate_percentage", doc.DiscountRatePercentage)

	doc.PaymentTerms = extras.String("payment_terms", doc.PaymentTerms)
	doc.DeliveryTerms = extras.String("delivery_terms", doc.DeliveryTerms)
	doc.Incoterms = extras.String("incoterms", doc.Incoterms)
	doc.NamedPlaceOfDelivery = extras.String("named_place_of_delivery", doc.NamedPlaceOfDelivery)

	stamp := now.Format("20060102-150405")
	doc.ProformaID = extras.String("proforma_id", "PRO-"+stamp)
	doc.InvoiceID = extras.String("invoice_id", "INV-"+stamp)
	doc.PackingListID = extras.String("packing_list_id", "PL-"+stamp)
	doc.WarrantyCertificateID = extras.String("warranty_certificate_id", "WAR-"+stamp)
}

// applyPackingList renders packing-list rows and aggregates from
// extras["packing_details"]. Without details a single placeholder row is
// emitted so templates always have a table body.
func applyPackingList(doc *DocContext, extras Extras) {
	details := extras.Maps("packing_details")
	if len(details) == 0 {
		doc.PackingListItems = `<tr><td colspan="6">No packing details provided</td></tr>`
		return
	}

	var rows strings.Builder
	var totalNet, totalGross, totalVolume float64
	for i, pkg := range details {
		description := mapString(pkg, "description", notAvailable)
		dimensions := mapString(pkg, "dimensions", notAvailable)
		netWeight := mapFloat(pkg, "net_weight", 0)
		grossWeight := mapFloat(pkg, "gross_weight", 0)
		volume := mapFloat(pkg, "volume_cbm", 0)

		totalNet += netWeight
		totalGross += grossWeight
		totalVolume += volume

		fmt.Fprintf(&rows, "<tr><td>%d</td><td>%s</td><td>%s</td><td>%.2f</td><td>%.2f</td><td>%.3f</td></tr>",
			i+1,
			html.EscapeString(description),
			html.EscapeString(dimensions),
			netWeight,
			grossWeight,
			volume,
		)
	}

	doc.PackingListItems = rows.String()
	doc.TotalPackages = len(details)
	doc.TotalNetWeight = totalNet
	doc.TotalGrossWeight = totalGross
	doc.TotalVolumeCBM = totalVolume
}

// applyContactPage renders the 5-column contact table from
// extras["contact_page_details"] and applies its title/project overrides.
func applyContactPage(dc *DocumentContext, extras Extras) {
	details := extras.Maps("contact_page_details")
	if len(details) == 0 {
		dc.Doc.ContactListItemsHTML = `<tr><td colspan="5">No contacts provided</td></tr>`
		return
	}

	var rows strings.Builder
	for _, contact := range details {
		fmt.Fprintf(&rows, "<tr><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td></tr>",
			html.EscapeString(mapString(contact, "organization", notAvailable)),
			html.EscapeString(mapString(contact, "name", notAvailable)),
			html.EscapeString(mapString(contact, "title", notAvailable)),
			html.EscapeString(mapString(contact, "email", notAvailable)),
			html.EscapeString(mapString(contact, "phone", notAvailable)),
		)
	}
	dc.Doc.ContactListItemsHTML = rows.String()

	dc.Doc.DocumentTitle = extras.String("contact_page_document_title", dc.Doc.DocumentTitle)
	dc.Project.Name = extras.String("contact_page_project_name", dc.Project.Name)
}

// applyFooterNotes injects the client-specific footer note for the document
// type under generation, with newlines converted for HTML templates.
func (s *Service) applyFooterNotes(ctx context.Context, dc *DocumentContext, clientID int64, extras Extras, targetLanguage string) {
	dc.Doc.ClientSpecificFooterNotes = ""

	docType := extras.String("current_document_type_for_notes", "")
	if docType == "" {
		return
	}

	note, err := s.notes.GetActiveNote(ctx, clientID, docType, targetLanguage)
	if err != nil {
		logger.Debug(ctx, "no active document note",
			"client_id", clientID, "document_type", docType, "language", targetLanguage)
		return
	}
	dc.Doc.ClientSpecificFooterNotes = strings.ReplaceAll(note.NoteContent, "\n", "<br>")
}
