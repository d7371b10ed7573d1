// Package service provides the dial-plan business logic: number
// normalization and maintenance of the per-country config registry.
package service

import (
	"context"

	"dialplan_backend/internal/dialing/registry"
	"dialplan_backend/internal/dialing/transport"
	"dialplan_backend/internal/events"
	"dialplan_backend/platform/apperr"
	"dialplan_backend/platform/logger"
	"dialplan_backend/platform/phone"
)

// Service wires the normalization engine to the session registry, the
// external number parser, and the domain event bus.
type Service struct {
	parser phone.Parser
	reg    *registry.Registry
	bus    events.Bus
	log    *logger.Logger
}

// New creates a new dialing service.
func New(parser phone.Parser, reg *registry.Registry, bus events.Bus, log *logger.Logger) *Service {
	return &Service{parser: parser, reg: reg, bus: bus, log: log}
}

// Registry exposes the session registry for startup seeding.
func (s *Service) Registry() *registry.Registry {
	return s.reg
}

// Normalize runs the engine for one raw number. A request without a country
// hint gets the session's default country, mirroring the pre-filled country
// field of the input form this API replaces.
func (s *Service) Normalize(ctx context.Context, req transport.NormalizeRequest) transport.NormalizeResponse {
	caller := PartialConfig{
		Country:        req.Country,
		TrunkPrefix:    req.TrunkPrefix,
		AddLeadingZero: req.AddLeadingZero,
	}
	if caller.Country == nil {
		defaultCountry := s.reg.DefaultCountry()
		caller.Country = &defaultCountry
	}

	result := Normalize(s.parser, s.reg, req.Raw, caller)

	s.log.WithContext(ctx).Debug("number normalized",
		"isValid", result.IsValid,
		"country", *caller.Country,
	)
	return transport.NormalizeResponse{
		E164:       result.E164,
		DialFormat: result.DialFormat,
		IsValid:    result.IsValid,
	}
}

// Preview reformats a partial number for the live input field. Display only;
// it has no effect on normalization.
func (s *Service) Preview(req transport.PreviewRequest) transport.PreviewResponse {
	country := s.reg.DefaultCountry()
	if req.Country != nil {
		country = *req.Country
	}
	return transport.PreviewResponse{
		Formatted: s.parser.FormatIncomplete(req.Raw, country),
	}
}

// UpsertConfig stores or replaces the rule for country. Last write wins.
func (s *Service) UpsertConfig(ctx context.Context, country string, req transport.UpsertDialConfigRequest) transport.DialConfigResponse {
	cfg := registry.CountryConfig{
		TrunkPrefix:    req.TrunkPrefix,
		AddLeadingZero: req.AddLeadingZero,
	}
	s.reg.Upsert(country, cfg)

	s.bus.Publish(ctx, events.DialConfigUpserted{
		BaseEvent:      events.NewBaseEvent(),
		Country:        country,
		TrunkPrefix:    cfg.TrunkPrefix,
		AddLeadingZero: cfg.AddLeadingZero,
	})
	return toResponse(country, cfg)
}

// RemoveConfig deletes the rule for country; removing an unknown country is
// a no-op, not an error.
func (s *Service) RemoveConfig(ctx context.Context, country string) {
	defaultReset := s.reg.Remove(country)

	s.bus.Publish(ctx, events.DialConfigRemoved{
		BaseEvent:    events.NewBaseEvent(),
		Country:      country,
		DefaultReset: defaultReset,
	})
}

// SetDefaultCountry points the session default at country. The country is
// allowed to have no stored rule yet.
func (s *Service) SetDefaultCountry(ctx context.Context, country string) transport.DefaultCountryResponse {
	previous := s.reg.SetDefault(country)

	if previous != country {
		s.bus.Publish(ctx, events.DefaultCountryChanged{
			BaseEvent: events.NewBaseEvent(),
			Previous:  previous,
			Current:   country,
		})
	}
	return transport.DefaultCountryResponse{DefaultCountry: country}
}

// GetConfig retrieves the rule for country.
func (s *Service) GetConfig(country string) (transport.DialConfigResponse, error) {
	cfg, ok := s.reg.Get(country)
	if !ok {
		return transport.DialConfigResponse{}, apperr.NotFound("no dial config for country " + country)
	}
	return toResponse(country, cfg), nil
}

// ListConfigs returns all stored rules plus the session default country.
func (s *Service) ListConfigs() transport.DialConfigListResponse {
	entries := s.reg.List()

	items := make([]transport.DialConfigResponse, len(entries))
	for i, e := range entries {
		items[i] = toResponse(e.Country, e.Config)
	}
	return transport.DialConfigListResponse{
		Items:          items,
		Total:          len(items),
		DefaultCountry: s.reg.DefaultCountry(),
	}
}

// toResponse converts a registry entry to its transport response.
func toResponse(country string, cfg registry.CountryConfig) transport.DialConfigResponse {
	return transport.DialConfigResponse{
		Country:        country,
		TrunkPrefix:    cfg.TrunkPrefix,
		AddLeadingZero: cfg.AddLeadingZero,
	}
}
