package documents

import (
	"context"
	"strings"

	"docukit/internal/domain/catalogs/company"
	"docukit/pkg/logger"
)

// assembleSeller fills the seller sub-context from the company record and
// its personnel. Missing pieces degrade to "N/A"; only the company lookup
// itself can fail.
func (s *Service) assembleSeller(ctx context.Context, dc *DocumentContext, companyID int64, extras Extras) error {
	comp, err := s.companies.GetByID(ctx, companyID)
	if err != nil {
		return err
	}

	seller := &dc.Seller
	seller.Name = comp.Name
	seller.CompanyName = comp.Name
	seller.Address = stringOr(comp.Address, notAvailable)
	seller.FullAddress = seller.Address
	seller.Phone = stringOr(comp.Phone, notAvailable)
	seller.Email = stringOr(comp.Email, notAvailable)
	seller.Website = stringOr(comp.Website, notAvailable)
	seller.VATID = stringOr(comp.VATID, notAvailable)
	seller.RegistrationNumber = stringOr(comp.RegistrationNumber, notAvailable)

	// Free-text payment block passes through for templates that render it raw.
	seller.BankDetailsRaw = stringOrEmpty(comp.PaymentInfo)
	seller.BankName = extras.String("bank_name", "N/A (Bank Name)")
	seller.BankAccountNumber = extras.String("bank_account_number", "N/A (Account Number)")
	seller.BankSwiftCode = extras.String("bank_swift_code", "N/A (SWIFT)")

	seller.FooterCompanyName = comp.Name
	seller.FooterContactDetails = joinNonEmpty(" | ", seller.Phone, seller.Email, seller.Website)

	if comp.LogoPath != nil {
		seller.LogoPathAbsolute, seller.CompanyLogoPath = probeFileURI(s.paths.LogoDir(), *comp.LogoPath)
		if seller.CompanyLogoPath == nil {
			logger.Warn(ctx, "company logo missing on disk",
				"company_id", comp.ID, "logo_path", *comp.LogoPath)
		}
	}

	personnel, err := s.companies.ListPersonnel(ctx, companyID)
	if err != nil {
		logger.Warn(ctx, "personnel lookup failed, seller keeps placeholders",
			"company_id", companyID, "error", err)
		personnel = nil
	}
	s.assignPersonnel(&seller.Personnel, personnel, extras)

	return nil
}

// assignPersonnel picks the representative and role-specific names.
// A personnel record with role "seller" wins; otherwise the first record.
func (s *Service) assignPersonnel(dst *SellerPersonnel, personnel []company.Personnel, extras Extras) {
	dst.RepresentativeName = notAvailable
	dst.RepresentativeTitle = notAvailable
	dst.SalesPersonName = notAvailable
	dst.TechnicalManagerName = notAvailable

	representative := company.FindByRole(personnel, company.RoleSeller)
	if representative == nil && len(personnel) > 0 {
		representative = &personnel[0]
	}
	if representative != nil {
		dst.RepresentativeName = representative.Name
		if representative.RoleRaw != "" {
			dst.RepresentativeTitle = representative.RoleRaw
		}
	}

	if sales := company.FindByRole(personnel, company.RoleSeller); sales != nil {
		dst.SalesPersonName = sales.Name
	}
	if tech := company.FindByRole(personnel, company.RoleTechnicalManager); tech != nil {
		dst.TechnicalManagerName = tech.Name
	}

	dst.AuthorizedSignatureName = extras.String("authorized_signature_name", dst.RepresentativeName)
	dst.AuthorizedSignatureTitle = extras.String("authorized_signature_title", dst.RepresentativeTitle)
}

func stringOr(s *string, fallback string) string {
	if s == nil || *s == "" {
		return fallback
	}
	return *s
}

// joinNonEmpty joins parts with sep, dropping empty and "N/A" parts.
func joinNonEmpty(sep string, parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" && p != notAvailable {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
