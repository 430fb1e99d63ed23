package registry

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/jcmexdev/order-registry/internal/order-service/domain"
)

// EmailNotifier emits a structured line for every registered order,
// identifying it by id and customer name. Delivery is best-effort and
// synchronous; there is no retry.
type EmailNotifier struct {
	log *slog.Logger
}

// NewEmailNotifier builds a notifier writing through the given logger.
// A nil logger falls back to the process default.
func NewEmailNotifier(log *slog.Logger) *EmailNotifier {
	if log == nil {
		log = slog.Default()
	}
	return &EmailNotifier{log: log}
}

func (n *EmailNotifier) Notify(e domain.Registrable) error {
	n.log.Info("order registered, sending confirmation email",
		"message_id", uuid.NewString(),
		"order_id", e.ID(),
		"customer", e.CustomerName(),
		"total", e.Total(),
	)
	return nil
}
