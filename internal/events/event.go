// Package events provides domain event definitions for decoupled,
// event-driven communication between modules.
// Infrastructure (Bus, Handler) is in platform/events.
package events

import (
	"dialplan_backend/platform/events"
)

// Re-export platform types for convenience
type (
	Event       = events.Event
	Bus         = events.Bus
	Handler     = events.Handler
	HandlerFunc = events.HandlerFunc
	BaseEvent   = events.BaseEvent
)

// Re-export platform functions
var NewBaseEvent = events.NewBaseEvent

// =============================================================================
// Dialing Domain Events
// =============================================================================

// DialConfigUpserted is published when a per-country dial config is created
// or replaced.
type DialConfigUpserted struct {
	BaseEvent
	Country        string `json:"country"`
	TrunkPrefix    string `json:"trunkPrefix"`
	AddLeadingZero bool   `json:"addLeadingZero"`
}

func (e DialConfigUpserted) EventName() string { return "dialing.config.upserted" }

// DialConfigRemoved is published when a per-country dial config is removed.
// DefaultReset reports whether the removal also reset the default country.
type DialConfigRemoved struct {
	BaseEvent
	Country      string `json:"country"`
	DefaultReset bool   `json:"defaultReset"`
}

func (e DialConfigRemoved) EventName() string { return "dialing.config.removed" }

// DefaultCountryChanged is published when the registry's default country
// selector changes.
type DefaultCountryChanged struct {
	BaseEvent
	Previous string `json:"previous"`
	Current  string `json:"current"`
}

func (e DefaultCountryChanged) EventName() string { return "dialing.default_country.changed" }
