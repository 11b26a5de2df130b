package documents

import (
	"context"

	"docukit/internal/core/types"
	"docukit/pkg/logger"
)

// assembleBuyer fills the client sub-context: client fields, resolved
// geography names and the primary contact. Only the client lookup itself can
// fail; every peripheral miss degrades to "N/A".
func (s *Service) assembleBuyer(ctx context.Context, dc *DocumentContext, clientID int64, symbol string) error {
	cl, err := s.clients.GetByID(ctx, clientID)
	if err != nil {
		return err
	}

	buyer := &dc.Client
	buyer.ID = cl.ID
	buyer.CompanyName = stringOr(cl.CompanyName, cl.Name)
	buyer.ProjectIdentifier = cl.ProjectIdentifier
	buyer.PrimaryNeed = stringOr(cl.PrimaryNeedDescription, notAvailable)
	buyer.Notes = stringOrEmpty(cl.Notes)
	buyer.VATID = notAvailable
	buyer.RegistrationNumber = notAvailable

	if cl.Price.Valid {
		buyer.PriceFormatted = types.FormatMoney(cl.Price.Decimal, symbol, 2)
		buyer.RawPrice = cl.Price.Decimal.InexactFloat64()
	}

	buyer.CountryName = s.lookupGeoName(ctx, cl.CountryID, "country")
	buyer.CityName = s.lookupGeoName(ctx, cl.CityID, "city")
	buyer.CityZipCountry = composeAddress(buyer.CityName, buyer.CountryName)
	buyer.Address = buyer.CityZipCountry
	buyer.FullAddress = stringOr(cl.Address, buyer.Address)

	contact, err := s.clients.GetPrimaryContact(ctx, clientID)
	if err != nil {
		logger.Warn(ctx, "no primary contact for client", "client_id", clientID, "error", err)
	}
	if contact != nil {
		buyer.ContactPersonName = contact.Name
		buyer.ContactEmail = stringOr(contact.Email, notAvailable)
		buyer.ContactPhone = stringOr(contact.Phone, notAvailable)
		buyer.ContactPosition = stringOr(contact.Position, notAvailable)
	} else {
		buyer.ContactPersonName = notAvailable
		buyer.ContactEmail = notAvailable
		buyer.ContactPhone = notAvailable
		buyer.ContactPosition = notAvailable
	}
	buyer.RepresentativeName = buyer.ContactPersonName
	buyer.RepresentativeTitle = buyer.ContactPosition

	return nil
}

// lookupGeoName resolves a country or city name; absent IDs and failed
// lookups yield "N/A".
func (s *Service) lookupGeoName(ctx context.Context, id *int64, kind string) string {
	if id == nil {
		return notAvailable
	}
	switch kind {
	case "country":
		country, err := s.clients.GetCountry(ctx, *id)
		if err != nil {
			logger.Warn(ctx, "country lookup failed", "country_id", *id, "error", err)
			return notAvailable
		}
		return country.Name
	case "city":
		city, err := s.clients.GetCity(ctx, *id)
		if err != nil {
			logger.Warn(ctx, "city lookup failed", "city_id", *id, "error", err)
			return notAvailable
		}
		return city.Name
	}
	return notAvailable
}

// composeAddress joins "{city}, {country}" dropping "N/A" parts; when both
// are missing the placeholder says so.
func composeAddress(cityName, countryName string) string {
	joined := joinNonEmpty(", ", cityName, countryName)
	if joined == "" {
		return "N/A (address missing)"
	}
	return joined
}
