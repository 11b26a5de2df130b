// Package dto defines request and response shapes for the HTTP API.
package dto

// LiteItemRequest is an ad-hoc line item supplied directly in the request.
type LiteItemRequest struct {
	ProductID         int64    `json:"product_id" binding:"required"`
	Quantity          float64  `json:"quantity"`
	UnitPriceOverride *float64 `json:"unit_price_override"`
}

// DocumentContextRequest asks for one assembled document context.
type DocumentContextRequest struct {
	ClientID       int64  `json:"client_id" binding:"required"`
	CompanyID      int64  `json:"company_id" binding:"required"`
	TargetLanguage string `json:"target_language"`

	ProjectID *int64            `json:"project_id"`
	LiteItems []LiteItemRequest `json:"lite_items"`
	LinkIDs   []int64           `json:"link_ids"`

	Extras map[string]any `json:"extras"`
}

// SuccessResponse is a generic success envelope.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
