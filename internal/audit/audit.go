// Package audit records dial-plan configuration changes published on the
// event bus. Logging is the only side effect; failures never propagate to
// the publishing operation.
package audit

import (
	"context"
	"log/slog"

	"dialplan_backend/internal/events"
	"dialplan_backend/platform/logger"
)

// Subscriber logs registry mutation events.
type Subscriber struct {
	log *logger.Logger
}

// NewSubscriber creates an audit subscriber.
func NewSubscriber(log *logger.Logger) *Subscriber {
	return &Subscriber{log: log}
}

// Register subscribes the auditor to all dialing mutation events.
func (s *Subscriber) Register(bus events.Bus) {
	bus.Subscribe(events.DialConfigUpserted{}.EventName(), s)
	bus.Subscribe(events.DialConfigRemoved{}.EventName(), s)
	bus.Subscribe(events.DefaultCountryChanged{}.EventName(), s)
}

// Handle routes events to the appropriate log line.
func (s *Subscriber) Handle(ctx context.Context, event events.Event) error {
	log := s.log.WithContext(ctx)

	switch e := event.(type) {
	case events.DialConfigUpserted:
		log.Info("dial config upserted",
			slog.String("country", e.Country),
			slog.String("trunk_prefix", e.TrunkPrefix),
			slog.Bool("add_leading_zero", e.AddLeadingZero),
		)
	case events.DialConfigRemoved:
		log.Info("dial config removed",
			slog.String("country", e.Country),
			slog.Bool("default_reset", e.DefaultReset),
		)
	case events.DefaultCountryChanged:
		log.Info("default country changed",
			slog.String("previous", e.Previous),
			slog.String("current", e.Current),
		)
	}
	return nil
}

var _ events.Handler = (*Subscriber)(nil)
