package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcmexdev/order-registry/internal/order-service/domain"
)

type stubObserver struct{ err error }

func (s stubObserver) Notify(domain.Registrable) error { return s.err }

func sampleOrder(t *testing.T) *domain.Order {
	t.Helper()
	order, err := domain.CreateOrder(1, domain.Customer{Name: "Alice"}, nil, domain.StatusPending, domain.DiscountNone, 0)
	require.NoError(t, err)
	return order
}

func TestObserverCountsRegistrations(t *testing.T) {
	reg := NewRegistry()
	obs := NewObserver(reg)

	require.NoError(t, obs.Notify(sampleOrder(t)))
	require.NoError(t, obs.Notify(sampleOrder(t)))

	assert.Equal(t, 2.0, testutil.ToFloat64(reg.OrdersRegistered))
}

func TestInstrumentCountsOutcomes(t *testing.T) {
	reg := NewRegistry()
	order := sampleOrder(t)

	ok := Instrument(reg, stubObserver{})
	require.NoError(t, ok.Notify(order))

	boom := errors.New("smtp down")
	failing := Instrument(reg, stubObserver{err: boom})
	assert.ErrorIs(t, failing.Notify(order), boom)

	assert.Equal(t, 1.0, testutil.ToFloat64(reg.NotificationsSent))
	assert.Equal(t, 1.0, testutil.ToFloat64(reg.NotificationFailures))
}
