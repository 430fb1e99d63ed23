package metrics

import (
	"github.com/jcmexdev/order-registry/internal/order-service/domain"
	"github.com/jcmexdev/order-registry/internal/order-service/registry"
)

// Observer counts order registrations. It satisfies the registry's
// observer contract and never fails.
type Observer struct {
	reg *Registry
}

func NewObserver(reg *Registry) *Observer {
	return &Observer{reg: reg}
}

func (o *Observer) Notify(domain.Registrable) error {
	o.reg.OrdersRegistered.Inc()
	return nil
}

// InstrumentedObserver wraps another observer and counts notification
// outcomes. The wrapped error is passed through so the registry's
// failure isolation still applies.
type InstrumentedObserver struct {
	reg  *Registry
	next registry.Observer
}

func Instrument(reg *Registry, next registry.Observer) *InstrumentedObserver {
	return &InstrumentedObserver{reg: reg, next: next}
}

func (o *InstrumentedObserver) Notify(e domain.Registrable) error {
	if err := o.next.Notify(e); err != nil {
		o.reg.NotificationFailures.Inc()
		return err
	}
	o.reg.NotificationsSent.Inc()
	return nil
}
