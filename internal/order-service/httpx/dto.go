package httpx

type CreateOrderRequest struct {
	Customer      string        `json:"customer"`
	Items         []LineItemDTO `json:"items"`
	Status        string        `json:"status,omitempty"`
	DiscountType  string        `json:"discount_type,omitempty"`
	DiscountValue float64       `json:"discount_value,omitempty"`
}

type LineItemDTO struct {
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
}

type OrderResponse struct {
	ID       int           `json:"id"`
	Customer string        `json:"customer"`
	Status   string        `json:"status,omitempty"`
	Items    []LineItemDTO `json:"items,omitempty"`
	Total    float64       `json:"total"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
