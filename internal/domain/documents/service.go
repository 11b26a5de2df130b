package documents

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"docukit/internal/core/apperror"
	"docukit/internal/core/types"
	"docukit/internal/domain/catalogs/client"
	"docukit/internal/domain/catalogs/company"
	"docukit/internal/domain/catalogs/product"
	"docukit/internal/domain/orders"
	"docukit/internal/domain/projects"
	"docukit/pkg/logger"
)

var tracer = otel.Tracer("docukit/documents")

// AssembleParams are the inputs for one document context assembly.
type AssembleParams struct {
	ClientID       int64
	CompanyID      int64
	TargetLanguage string

	// ProjectID narrows the default line source and fills the project
	// sub-context. Optional.
	ProjectID *int64

	// LiteItems bypass stored order lines entirely. Highest precedence.
	LiteItems []LiteItem

	// LinkIDs select specific stored order lines. Second precedence.
	LinkIDs []int64

	// Extras carries overrides and document-type-specific payloads; passed
	// through to the context under "additional".
	Extras map[string]any
}

// Config wires the service dependencies.
type Config struct {
	Companies company.Repository
	Clients   client.Repository
	Projects  projects.Repository
	Orders    orders.Repository
	Products  product.Repository
	Notes     NoteRepository
	Paths     Paths

	// Clock overrides time.Now, used for generated identifiers. Tests only.
	Clock func() time.Time
}

// Service assembles document contexts. It is read-only against the store and
// holds no per-invocation state.
type Service struct {
	companies company.Repository
	clients   client.Repository
	projects  projects.Repository
	orders    orders.Repository
	products  product.Repository
	resolver  *product.Resolver
	notes     NoteRepository
	paths     Paths
	clock     func() time.Time
}

// NewService creates the document context service.
func NewService(cfg Config) *Service {
	clock := cfg.Clock
	if clock == nil {
		clock = time.Now
	}
	return &Service{
		companies: cfg.Companies,
		clients:   cfg.Clients,
		projects:  cfg.Projects,
		orders:    cfg.Orders,
		products:  cfg.Products,
		resolver:  product.NewResolver(cfg.Products),
		notes:     cfg.Notes,
		paths:     cfg.Paths,
		clock:     clock,
	}
}

// AssembleDocumentContext walks the relational model and produces the
// fully-populated context for template rendering.
//
// Failure policy: a missing client or company short-circuits to a minimal
// skeleton; sections assembled before the short-circuit are retained. Any
// peripheral failure is logged and leaves its section at initialized
// defaults. The renderer always receives a usable context.
func (s *Service) AssembleDocumentContext(ctx context.Context, params AssembleParams) *DocumentContext {
	ctx, span := tracer.Start(ctx, "documents.assemble",
		trace.WithAttributes(
			attribute.Int64("client_id", params.ClientID),
			attribute.Int64("company_id", params.CompanyID),
			attribute.String("target_language", params.TargetLanguage),
		))
	defer span.End()

	extras := Extras(params.Extras)
	now := s.clock()

	dc := newSkeleton(now)
	dc.Additional = params.Extras
	dc.Lang = CoverTranslations(params.TargetLanguage)

	// Overrides come first: currency and rates feed line assembly and totals.
	applyExtrasOverrides(&dc.Doc, extras, now)
	symbol := dc.Doc.CurrencySymbol

	if err := s.assembleSeller(ctx, dc, params.CompanyID, extras); err != nil {
		if apperror.IsNotFound(err) {
			logger.Warn(ctx, "company not found, returning skeleton context",
				"company_id", params.CompanyID)
			return dc
		}
		logger.Error(ctx, "seller assembly failed, section left at defaults",
			"company_id", params.CompanyID, "error", err)
	}

	if err := s.assembleBuyer(ctx, dc, params.ClientID, symbol); err != nil {
		if apperror.IsNotFound(err) {
			logger.Warn(ctx, "client not found, returning skeleton context",
				"client_id", params.ClientID)
			return dc
		}
		logger.Error(ctx, "buyer assembly failed, section left at defaults",
			"client_id", params.ClientID, "error", err)
	}

	s.assembleProject(ctx, dc, params, symbol)

	lineCtx, lineSpan := tracer.Start(ctx, "documents.lines")
	items, subtotal, rows, err := s.assembleLines(lineCtx, params, symbol)
	lineSpan.End()
	if err != nil {
		logger.Error(ctx, "line assembly failed, totals stay at zero", "error", err)
		items, subtotal, rows = []LineItem{}, types.Zero(), ""
	}
	dc.Products = items
	dc.Doc.ProductsTableRows = rows
	applyTotals(&dc.Doc, ComputeTotals(subtotal, dc.Doc.DiscountRatePercentage, dc.Doc.VATRatePercentage))

	applyPackingList(&dc.Doc, extras)
	applyContactPage(dc, extras)
	s.applyFooterNotes(ctx, dc, params.ClientID, extras, params.TargetLanguage)

	return dc
}

// assembleProject fills the project sub-context from the project record, or
// derives a bare one from the client's project identifier.
func (s *Service) assembleProject(ctx context.Context, dc *DocumentContext, params AssembleParams, symbol string) {
	if params.ProjectID == nil {
		dc.Project.Name = dc.Client.ProjectIdentifier
		return
	}

	project, err := s.projects.GetByID(ctx, *params.ProjectID)
	if err != nil {
		logger.Warn(ctx, "project lookup failed, deriving from client",
			"project_id", *params.ProjectID, "error", err)
		dc.Project.Name = dc.Client.ProjectIdentifier
		return
	}

	dc.Project.ID = project.ID
	dc.Project.Name = project.Name
	dc.Project.Description = stringOrEmpty(project.Description)
	dc.Project.StatusName = stringOr(project.StatusName, notAvailable)
	dc.Project.ManagerID = project.ManagerID
	if project.Progress != nil {
		dc.Project.ProgressPercentage = *project.Progress
	}
	dc.Project.StartDate = stringOrEmpty(project.StartDate)
	dc.Project.DeadlineDate = stringOrEmpty(project.DeadlineDate)
	if project.Budget.Valid {
		dc.Project.BudgetFormatted = types.FormatMoney(project.Budget.Decimal, symbol, 2)
		dc.Project.RawBudget = project.Budget.Decimal.InexactFloat64()
	}
}

// newSkeleton builds the initialized context every assembly starts from.
// All placeholder fields read "N/A" so a short-circuited assembly still
// renders.
func newSkeleton(now time.Time) *DocumentContext {
	dc := &DocumentContext{
		Products:   []LineItem{},
		Lang:       map[string]string{},
		Additional: map[string]any{},
	}

	dc.Doc = DocContext{
		CurrentDate:          now.Format("2006-01-02"),
		CurrentYear:          now.Year(),
		DocumentTitle:        "Document",
		DocumentVersion:      "1.0",
		CurrencySymbol:       "€",
		PaymentTerms:         notAvailable,
		DeliveryTerms:        notAvailable,
		Incoterms:            notAvailable,
		NamedPlaceOfDelivery: notAvailable,
	}

	dc.Seller = SellerContext{
		Name:                 notAvailable,
		CompanyName:          notAvailable,
		Address:              notAvailable,
		FullAddress:          notAvailable,
		Phone:                notAvailable,
		Email:                notAvailable,
		Website:              notAvailable,
		VATID:                notAvailable,
		RegistrationNumber:   notAvailable,
		BankName:             "N/A (Bank Name)",
		BankAccountNumber:    "N/A (Account Number)",
		BankSwiftCode:        "N/A (SWIFT)",
		FooterCompanyName:    notAvailable,
		FooterContactDetails: notAvailable,
		Personnel: SellerPersonnel{
			RepresentativeName:       notAvailable,
			RepresentativeTitle:      notAvailable,
			SalesPersonName:          notAvailable,
			TechnicalManagerName:     notAvailable,
			AuthorizedSignatureName:  notAvailable,
			AuthorizedSignatureTitle: notAvailable,
		},
	}

	dc.Client = BuyerContext{
		ContactPersonName:   notAvailable,
		CompanyName:         notAvailable,
		Address:             notAvailable,
		FullAddress:         notAvailable,
		CityName:            notAvailable,
		CountryName:         notAvailable,
		CityZipCountry:      notAvailable,
		ContactEmail:        notAvailable,
		ContactPhone:        notAvailable,
		ContactPosition:     notAvailable,
		VATID:               notAvailable,
		RegistrationNumber:  notAvailable,
		RepresentativeName:  notAvailable,
		RepresentativeTitle: notAvailable,
		ProjectIdentifier:   notAvailable,
		PrimaryNeed:         notAvailable,
	}

	dc.Project = ProjectContext{
		Name:         notAvailable,
		StatusName:   notAvailable,
		StartDate:    "",
		DeadlineDate: "",
	}

	return dc
}
