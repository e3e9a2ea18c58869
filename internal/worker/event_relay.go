package worker

import (
	"go.uber.org/zap"

	"github.com/spec-kit/employee-service/internal/events"
)

// RelayConfig describes where lifecycle events are forwarded. A nil
// Publisher disables forwarding.
type RelayConfig struct {
	Publisher events.Publisher
	Channel   string
}

// StartEventRelay subscribes the log handler and, when configured, the
// Redis relay to every employee event type.
func StartEventRelay(dispatcher events.Dispatcher, logger *zap.Logger, cfg RelayConfig) {
	if dispatcher == nil {
		return
	}
	logHandler := events.NewLogHandler(logger)
	var relay events.EventHandler
	if cfg.Publisher != nil {
		relay = events.NewRelayHandler(cfg.Publisher, cfg.Channel)
		logger.Info("relaying employee events", zap.String("channel", cfg.Channel))
	}
	for _, t := range events.AllTypes() {
		dispatcher.Subscribe(t, logHandler)
		if relay != nil {
			dispatcher.Subscribe(t, relay)
		}
	}
}
