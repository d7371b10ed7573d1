// Package dialing provides the dial-plan bounded context module.
// It normalizes raw phone numbers into E.164 plus the switch dialing format
// and manages the session's per-country formatting rules.
package dialing

import (
	"dialplan_backend/internal/dialing/handler"
	"dialplan_backend/internal/dialing/registry"
	"dialplan_backend/internal/dialing/seed"
	"dialplan_backend/internal/dialing/service"
	"dialplan_backend/internal/events"
	apphttp "dialplan_backend/internal/http"
	"dialplan_backend/platform/config"
	"dialplan_backend/platform/logger"
	"dialplan_backend/platform/phone"
	"dialplan_backend/platform/validator"
)

// Module is the dialing bounded context module implementing http.Module.
type Module struct {
	handler  *handler.Handler
	service  *service.Service
	registry *registry.Registry
}

// NewModule creates and initializes the dialing module with all its
// dependencies, applying the optional seed file to the session registry.
func NewModule(cfg config.DialingConfig, parser phone.Parser, bus events.Bus, val *validator.Validator, log *logger.Logger) (*Module, error) {
	reg := registry.New(cfg.GetDefaultCountry())
	if path := cfg.GetSeedFile(); path != "" {
		if err := seed.Apply(reg, path); err != nil {
			return nil, err
		}
		log.Info("dial config seed applied", "file", path)
	}

	svc := service.New(parser, reg, bus, log)
	h := handler.New(svc, val)

	return &Module{
		handler:  h,
		service:  svc,
		registry: reg,
	}, nil
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "dialing"
}

// Service returns the service layer for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts dialing routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	dial := ctx.V1.Group("/dial")
	dial.POST("/normalize", m.handler.Normalize)
	dial.POST("/preview", m.handler.Preview)
	dial.PUT("/default-country", m.handler.SetDefaultCountry)

	configs := dial.Group("/configs")
	configs.GET("", m.handler.ListConfigs)
	configs.GET("/:country", m.handler.GetConfig)
	configs.PUT("/:country", m.handler.UpsertConfig)
	configs.DELETE("/:country", m.handler.RemoveConfig)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
