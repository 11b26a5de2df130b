package documents

import (
	"context"
	"fmt"
	"html"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"docukit/internal/core/types"
	"docukit/internal/domain/catalogs/product"
	"docukit/pkg/logger"
)

// LiteItem is a caller-supplied ad-hoc line that bypasses stored order lines.
type LiteItem struct {
	ProductID         int64
	Quantity          float64
	UnitPriceOverride *decimal.Decimal
}

// lineInput is the normalized shape all three line sources reduce to.
type lineInput struct {
	productID int64
	quantity  float64
	override  decimal.NullDecimal
	serial    string
}

// collectLineInputs resolves the line source by precedence: lite items, then
// explicit order-line IDs, then every order line for the client/project.
func (s *Service) collectLineInputs(ctx context.Context, params AssembleParams) ([]lineInput, error) {
	if len(params.LiteItems) > 0 {
		inputs := make([]lineInput, 0, len(params.LiteItems))
		for _, item := range params.LiteItems {
			in := lineInput{productID: item.ProductID, quantity: item.Quantity}
			if item.UnitPriceOverride != nil {
				in.override = decimal.NullDecimal{Decimal: *item.UnitPriceOverride, Valid: true}
			}
			inputs = append(inputs, in)
		}
		return inputs, nil
	}

	if len(params.LinkIDs) > 0 {
		inputs := make([]lineInput, 0, len(params.LinkIDs))
		for _, linkID := range params.LinkIDs {
			line, err := s.orders.GetByID(ctx, linkID)
			if err != nil {
				logger.Warn(ctx, "order line lookup failed, skipping",
					"link_id", linkID, "error", err)
				continue
			}
			inputs = append(inputs, orderLineInput(line.ProductID, line.Quantity, line.UnitPriceOverride, line.SerialNumber))
		}
		return inputs, nil
	}

	lines, err := s.orders.ListForClientOrProject(ctx, params.ClientID, params.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("list order lines: %w", err)
	}
	inputs := make([]lineInput, 0, len(lines))
	for _, line := range lines {
		inputs = append(inputs, orderLineInput(line.ProductID, line.Quantity, line.UnitPriceOverride, line.SerialNumber))
	}
	return inputs, nil
}

func orderLineInput(productID int64, quantity float64, override decimal.NullDecimal, serial *string) lineInput {
	in := lineInput{productID: productID, quantity: quantity, override: override}
	if serial != nil {
		in.serial = *serial
	}
	return in
}

// assembleLines turns the selected line source into fully-resolved line
// items: language-resolved names, effective prices, media URLs and the
// pre-rendered products table. Returns the items, the decimal subtotal and
// the concatenated HTML rows.
func (s *Service) assembleLines(ctx context.Context, params AssembleParams, symbol string) ([]LineItem, types.Money, string, error) {
	inputs, err := s.collectLineInputs(ctx, params)
	if err != nil {
		return nil, types.Zero(), "", err
	}
	if len(inputs) == 0 {
		return []LineItem{}, types.Zero(), "", nil
	}

	ids := make([]int64, 0, len(inputs))
	seen := make(map[int64]struct{}, len(inputs))
	for _, in := range inputs {
		if _, ok := seen[in.productID]; !ok {
			seen[in.productID] = struct{}{}
			ids = append(ids, in.productID)
		}
	}

	resolutions, err := s.resolver.Resolve(ctx, ids, params.TargetLanguage)
	if err != nil {
		return nil, types.Zero(), "", fmt.Errorf("resolve products: %w", err)
	}

	mediaByProduct := make(map[int64][]product.MediaLink)
	if mediaLinks, err := s.products.GetMediaLinks(ctx, ids); err != nil {
		logger.Warn(ctx, "media lookup failed, lines will carry no images", "error", err)
	} else {
		for _, link := range mediaLinks {
			mediaByProduct[link.ProductID] = append(mediaByProduct[link.ProductID], link)
		}
	}

	items := make([]LineItem, 0, len(inputs))
	subtotal := types.Zero()
	var rows strings.Builder

	for _, in := range inputs {
		res, ok := resolutions[in.productID]
		if !ok {
			logger.Warn(ctx, "product not found, skipping line", "product_id", in.productID)
			continue
		}

		display, matched := res.Display(params.TargetLanguage)
		original := res.Original

		quantity := in.quantity
		switch {
		case quantity < 0:
			quantity = 0
		case quantity == 0:
			quantity = 1
		}

		unitPrice := original.BaseUnitPrice
		if in.override.Valid {
			unitPrice = in.override.Decimal
		}
		lineTotal := unitPrice.Mul(decimal.NewFromFloat(quantity))
		subtotal = subtotal.Add(lineTotal)

		item := LineItem{
			ID:                  original.ID,
			Name:                display.Name,
			Description:         stringOrEmpty(display.Description),
			Quantity:            quantity,
			UnitPriceFormatted:  types.FormatMoney(unitPrice, symbol, 2),
			TotalPriceFormatted: types.FormatMoney(lineTotal, symbol, 2),
			RawUnitPrice:        unitPrice.InexactFloat64(),
			RawTotalPrice:       lineTotal.InexactFloat64(),
			UnitOfMeasure:       stringOrEmpty(original.UnitOfMeasure),
			Weight:              original.Weight,
			Dimensions:          stringOrEmpty(original.Dimensions),
			SerialNumber:        in.serial,
			IsLanguageMatch:     matched,
			Images:              s.resolveImages(mediaByProduct[original.ID]),
			Equivalents:         res.Equivalents,
		}
		items = append(items, item)

		fmt.Fprintf(&rows, "<tr><td>%d</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td></tr>",
			len(items),
			html.EscapeString(item.Name),
			formatQuantity(quantity),
			item.UnitPriceFormatted,
			item.TotalPriceFormatted,
		)
	}

	return items, subtotal, rows.String(), nil
}

// resolveImages builds file:// URLs for media links, probing the filesystem.
// A missing thumbnail falls back to the full image URL.
func (s *Service) resolveImages(links []product.MediaLink) []ImageRef {
	if len(links) == 0 {
		return nil
	}
	images := make([]ImageRef, 0, len(links))
	for _, link := range links {
		ref := ImageRef{
			AltText:      stringOrEmpty(link.AltText),
			Title:        stringOrEmpty(link.Title),
			DisplayOrder: link.DisplayOrder,
		}
		if link.MediaFilepath != nil {
			_, ref.URL = probeFileURI(s.paths.MediaBase, *link.MediaFilepath)
		}
		if link.ThumbnailPath != nil {
			_, ref.ThumbnailURL = probeFileURI(s.paths.MediaBase, *link.ThumbnailPath)
		}
		if ref.ThumbnailURL == nil {
			ref.ThumbnailURL = ref.URL
		}
		images = append(images, ref)
	}
	return images
}

func formatQuantity(q float64) string {
	return strconv.FormatFloat(q, 'f', -1, 64)
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
