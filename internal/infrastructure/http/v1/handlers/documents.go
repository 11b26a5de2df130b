package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"docukit/internal/domain/documents"
	"docukit/internal/infrastructure/http/v1/dto"
)

// DocumentHandler serves document context assembly requests.
type DocumentHandler struct {
	*BaseHandler
	service *documents.Service
}

// NewDocumentHandler creates a new document handler.
func NewDocumentHandler(base *BaseHandler, service *documents.Service) *DocumentHandler {
	return &DocumentHandler{BaseHandler: base, service: service}
}

// AssembleContext assembles the full context for one document generation.
// POST /api/v1/documents/context
func (h *DocumentHandler) AssembleContext(c *gin.Context) {
	var req dto.DocumentContextRequest
	if !h.BindJSON(c, &req) {
		return
	}

	params := documents.AssembleParams{
		ClientID:       req.ClientID,
		CompanyID:      req.CompanyID,
		TargetLanguage: req.TargetLanguage,
		ProjectID:      req.ProjectID,
		LinkIDs:        req.LinkIDs,
		Extras:         req.Extras,
	}
	for _, item := range req.LiteItems {
		lite := documents.LiteItem{ProductID: item.ProductID, Quantity: item.Quantity}
		if item.UnitPriceOverride != nil {
			override := decimal.NewFromFloat(*item.UnitPriceOverride)
			lite.UnitPriceOverride = &override
		}
		params.LiteItems = append(params.LiteItems, lite)
	}

	h.OK(c, h.service.AssembleDocumentContext(c.Request.Context(), params))
}
