// Package documents assembles the context dictionary consumed by template
// renderers when emitting proformas, invoices, packing lists, cover pages and
// correspondence.
package documents

import (
	"encoding/json"

	"docukit/internal/domain/catalogs/product"
)

const notAvailable = "N/A"

// DocumentContext is the full nested context for one document generation.
// Flat buyer_*/seller_* mirrors required by legacy templates are emitted at
// the serialization boundary, not kept in memory.
type DocumentContext struct {
	Doc        DocContext        `json:"doc"`
	Seller     SellerContext     `json:"seller"`
	Client     BuyerContext      `json:"client"`
	Project    ProjectContext    `json:"project"`
	Products   []LineItem        `json:"products"`
	Lang       map[string]string `json:"-"`
	Additional map[string]any    `json:"additional"`
}

// DocContext carries document-level fields: identifiers, terms, totals and
// pre-rendered HTML fragments.
type DocContext struct {
	CurrentDate string `json:"current_date"`
	CurrentYear int    `json:"current_year"`

	DocumentTitle    string `json:"document_title"`
	DocumentSubtitle string `json:"document_subtitle"`
	DocumentVersion  string `json:"document_version"`

	CurrencySymbol         string  `json:"currency_symbol"`
	VATRatePercentage      float64 `json:"vat_rate_percentage"`
	DiscountRatePercentage float64 `json:"discount_rate_percentage"`

	ProformaID            string `json:"proforma_id"`
	InvoiceID             string `json:"invoice_id"`
	PackingListID         string `json:"packing_list_id"`
	WarrantyCertificateID string `json:"warranty_certificate_id"`

	PaymentTerms         string `json:"payment_terms"`
	DeliveryTerms        string `json:"delivery_terms"`
	Incoterms            string `json:"incoterms"`
	NamedPlaceOfDelivery string `json:"named_place_of_delivery"`

	ProductsTableRows string `json:"products_table_rows"`

	SubtotalAmount   string `json:"subtotal_amount"`
	DiscountAmount   string `json:"discount_amount"`
	VATAmount        string `json:"vat_amount"`
	GrandTotalAmount string `json:"grand_total_amount"`

	RawSubtotalAmount   float64 `json:"raw_subtotal_amount"`
	RawDiscountAmount   float64 `json:"raw_discount_amount"`
	RawVATAmount        float64 `json:"raw_vat_amount"`
	RawGrandTotalAmount float64 `json:"raw_grand_total_amount"`

	GrandTotalAmountWords string `json:"grand_total_amount_words"`

	PackingListItems string  `json:"packing_list_items"`
	TotalPackages    int     `json:"total_packages"`
	TotalNetWeight   float64 `json:"total_net_weight"`
	TotalGrossWeight float64 `json:"total_gross_weight"`
	TotalVolumeCBM   float64 `json:"total_volume_cbm"`

	ContactListItemsHTML string `json:"contact_list_items_html"`

	ClientSpecificFooterNotes string `json:"client_specific_footer_notes"`
}

// SellerPersonnel carries named representatives for signature blocks.
type SellerPersonnel struct {
	RepresentativeName       string `json:"representative_name"`
	RepresentativeTitle      string `json:"representative_title"`
	SalesPersonName          string `json:"sales_person_name"`
	TechnicalManagerName     string `json:"technical_manager_name"`
	AuthorizedSignatureName  string `json:"authorized_signature_name"`
	AuthorizedSignatureTitle string `json:"authorized_signature_title"`
}

// SellerContext is the sub-context for the issuing company.
type SellerContext struct {
	Name        string `json:"name"`
	CompanyName string `json:"company_name"`
	Address     string `json:"address"`
	FullAddress string `json:"full_address"`

	LogoPathAbsolute *string `json:"logo_path_absolute"`
	CompanyLogoPath  *string `json:"company_logo_path"`

	Phone              string `json:"phone"`
	Email              string `json:"email"`
	Website            string `json:"website"`
	VATID              string `json:"vat_id"`
	RegistrationNumber string `json:"registration_number"`

	BankName          string `json:"bank_name"`
	BankAccountNumber string `json:"bank_account_number"`
	BankSwiftCode     string `json:"bank_swift_code"`
	BankDetailsRaw    string `json:"bank_details_raw"`

	FooterCompanyName    string `json:"footer_company_name"`
	FooterContactDetails string `json:"footer_contact_details"`

	Personnel SellerPersonnel `json:"personnel"`
}

// BuyerContext is the sub-context for the document recipient.
type BuyerContext struct {
	ID                int64  `json:"id"`
	ContactPersonName string `json:"contact_person_name"`
	CompanyName       string `json:"company_name"`
	Address           string `json:"address"`
	FullAddress       string `json:"full_address"`
	CityName          string `json:"city_name"`
	CountryName       string `json:"country_name"`
	CityZipCountry    string `json:"city_zip_country"`

	ContactEmail    string `json:"contact_email"`
	ContactPhone    string `json:"contact_phone"`
	ContactPosition string `json:"contact_position"`

	VATID              string `json:"vat_id"`
	RegistrationNumber string `json:"registration_number"`

	RepresentativeName  string `json:"representative_name"`
	RepresentativeTitle string `json:"representative_title"`

	PriceFormatted    string  `json:"price_formatted"`
	RawPrice          float64 `json:"raw_price"`
	ProjectIdentifier string  `json:"project_identifier"`
	PrimaryNeed       string  `json:"primary_need"`
	Notes             string  `json:"notes"`
}

// ProjectContext is the sub-context for the project a document refers to.
type ProjectContext struct {
	ID                 int64   `json:"id"`
	Name               string  `json:"name"`
	Description        string  `json:"description"`
	StartDate          string  `json:"start_date"`
	DeadlineDate       string  `json:"deadline_date"`
	BudgetFormatted    string  `json:"budget_formatted"`
	RawBudget          float64 `json:"raw_budget"`
	ProgressPercentage int     `json:"progress_percentage"`
	ManagerID          *int64  `json:"manager_id"`
	StatusName         string  `json:"status_name"`
}

// ImageRef is a resolved media attachment for a line item.
// URLs are file:// URIs and are nil when the file is absent on disk.
type ImageRef struct {
	URL          *string `json:"url"`
	ThumbnailURL *string `json:"thumbnail_url"`
	AltText      string  `json:"alt_text"`
	DisplayOrder int     `json:"display_order"`
	Title        string  `json:"title"`
}

// LineItem is one assembled product row.
type LineItem struct {
	ID                  int64             `json:"id"`
	Name                string            `json:"name"`
	Description         string            `json:"description"`
	Quantity            float64           `json:"quantity"`
	UnitPriceFormatted  string            `json:"unit_price_formatted"`
	TotalPriceFormatted string            `json:"total_price_formatted"`
	RawUnitPrice        float64           `json:"raw_unit_price"`
	RawTotalPrice       float64           `json:"raw_total_price"`
	UnitOfMeasure       string            `json:"unit_of_measure"`
	Weight              *float64          `json:"weight"`
	Dimensions          string            `json:"dimensions"`
	SerialNumber        string            `json:"serial_number"`
	IsLanguageMatch     bool              `json:"is_language_match"`
	Images              []ImageRef        `json:"images"`
	Equivalents         []product.Product `json:"equivalents"`
}

// MarshalJSON emits the nested context plus the flat buyer_*/seller_*
// mirror keys legacy templates substitute directly.
func (dc *DocumentContext) MarshalJSON() ([]byte, error) {
	type alias DocumentContext
	base, err := json.Marshal((*alias)(dc))
	if err != nil {
		return nil, err
	}

	var out map[string]any
	if err := json.Unmarshal(base, &out); err != nil {
		return nil, err
	}
	out["lang"] = dc.Lang

	out["buyer_company_name"] = dc.Client.CompanyName
	out["buyer_contact_name"] = dc.Client.ContactPersonName
	out["buyer_address"] = dc.Client.Address
	out["buyer_phone"] = dc.Client.ContactPhone
	out["buyer_email"] = dc.Client.ContactEmail

	out["seller_company_name"] = dc.Seller.CompanyName
	out["seller_contact_name"] = dc.Seller.Personnel.RepresentativeName
	out["seller_contact_email"] = dc.Seller.Email
	out["seller_contact_phone"] = dc.Seller.Phone
	out["seller_website"] = dc.Seller.Website
	out["seller_vat_id"] = dc.Seller.VATID

	return json.Marshal(out)
}
