package legacy

import "github.com/jcmexdev/order-registry/internal/order-service/domain"

// OrderAdapter gives a legacy order the domain.Registrable capability so
// it can be valued and registered anywhere a native order is expected.
// It performs no field translation beyond delegation: the legacy client
// string stands in for the customer name.
type OrderAdapter struct {
	order Order
}

var _ domain.Registrable = OrderAdapter{}

func NewOrderAdapter(order Order) OrderAdapter {
	return OrderAdapter{order: order}
}

func (a OrderAdapter) ID() int              { return a.order.ID }
func (a OrderAdapter) CustomerName() string { return a.order.Client }
func (a OrderAdapter) Total() float64       { return a.order.Total() }
