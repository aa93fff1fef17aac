// AngelaMos | 2026
// dto.go

package cart

type AddItemRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Quantity  int    `json:"quantity"   validate:"required,gte=1,lte=999"`
}

type UpdateItemRequest struct {
	Quantity int `json:"quantity" validate:"required,gte=1,lte=999"`
}

type CartItemResponse struct {
	ProductID      string `json:"product_id"`
	ProductName    string `json:"product_name"`
	Quantity       int    `json:"quantity"`
	UnitPriceCents int64  `json:"unit_price_cents"`
	SubtotalCents  int64  `json:"subtotal_cents"`
}

type CartResponse struct {
	ID         string             `json:"id"`
	Items      []CartItemResponse `json:"items"`
	TotalCents int64              `json:"total_cents"`
}

func ToCartResponse(c *Cart, items []CartItem) CartResponse {
	responses := make([]CartItemResponse, 0, len(items))
	var total int64

	for _, item := range items {
		subtotal := item.SubtotalCents()
		total += subtotal

		responses = append(responses, CartItemResponse{
			ProductID:      item.ProductID,
			ProductName:    item.ProductName,
			Quantity:       item.Quantity,
			UnitPriceCents: item.UnitPriceCents,
			SubtotalCents:  subtotal,
		})
	}

	return CartResponse{
		ID:         c.ID,
		Items:      responses,
		TotalCents: total,
	}
}
