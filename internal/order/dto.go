// AngelaMos | 2026
// dto.go

package order

import (
	"time"
)

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=PENDING PAID PREPARED SHIPPED COMPLETED FAILED CANCELLED REFUNDED"`
}

type OrderDetailResponse struct {
	ProductID      string `json:"product_id"`
	ProductName    string `json:"product_name,omitempty"`
	Amount         int    `json:"amount"`
	UnitPriceCents int64  `json:"unit_price_cents"`
	SubtotalCents  int64  `json:"subtotal_cents"`
}

type OrderResponse struct {
	ID         string                `json:"id"`
	UserID     string                `json:"user_id"`
	Status     string                `json:"status"`
	TotalCents int64                 `json:"total_cents"`
	Details    []OrderDetailResponse `json:"details,omitempty"`
	CreatedAt  time.Time             `json:"created_at"`
	UpdatedAt  time.Time             `json:"updated_at"`
}

type ListOrdersParams struct {
	Page     int
	PageSize int
	Status   string
}

func (p *ListOrdersParams) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = 20
	}
	if p.PageSize > 100 {
		p.PageSize = 100
	}
}

func (p *ListOrdersParams) Offset() int {
	return (p.Page - 1) * p.PageSize
}

func ToOrderResponse(o *Order, details []OrderDetail) OrderResponse {
	detailResponses := make([]OrderDetailResponse, 0, len(details))
	for _, d := range details {
		detailResponses = append(detailResponses, OrderDetailResponse{
			ProductID:      d.ProductID,
			ProductName:    d.ProductName,
			Amount:         d.Amount,
			UnitPriceCents: d.UnitPriceCents,
			SubtotalCents:  d.SubtotalCents(),
		})
	}

	return OrderResponse{
		ID:         o.ID,
		UserID:     o.UserID,
		Status:     o.Status.String(),
		TotalCents: o.TotalCents,
		Details:    detailResponses,
		CreatedAt:  o.CreatedAt,
		UpdatedAt:  o.UpdatedAt,
	}
}

func ToOrderResponseList(orders []Order) []OrderResponse {
	responses := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		responses = append(responses, ToOrderResponse(&o, nil))
	}
	return responses
}
