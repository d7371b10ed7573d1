package service

import (
	"context"
	"testing"

	"dialplan_backend/internal/dialing/registry"
	"dialplan_backend/internal/dialing/transport"
	"dialplan_backend/internal/events"
	"dialplan_backend/platform/apperr"
	"dialplan_backend/platform/logger"
	"dialplan_backend/platform/phone"
)

// recordingBus captures published events for assertions.
type recordingBus struct {
	published []events.Event
}

func (b *recordingBus) Publish(_ context.Context, event events.Event) {
	b.published = append(b.published, event)
}

func (b *recordingBus) Subscribe(string, events.Handler) {}

func newTestService(parser *fakeParser) (*Service, *recordingBus) {
	bus := &recordingBus{}
	svc := New(parser, registry.New("EG"), bus, logger.New("development"))
	return svc, bus
}

func TestServiceNormalizeUsesDefaultCountryWhenHintOmitted(t *testing.T) {
	parser := &fakeParser{results: map[string]phone.Parsed{}}
	svc, _ := newTestService(parser)
	svc.Registry().SetDefault("NL")

	svc.Normalize(context.Background(), transport.NormalizeRequest{Raw: "0612345678"})

	if parser.lastHint != "NL" {
		t.Fatalf("expected parser hint NL from session default, got %q", parser.lastHint)
	}
}

func TestServiceNormalizeKeepsExplicitCountryHint(t *testing.T) {
	parser := &fakeParser{results: map[string]phone.Parsed{}}
	svc, _ := newTestService(parser)

	country := "US"
	svc.Normalize(context.Background(), transport.NormalizeRequest{Raw: "415", Country: &country})

	if parser.lastHint != "US" {
		t.Fatalf("expected parser hint US, got %q", parser.lastHint)
	}
}

func TestServiceUpsertConfigStoresRuleAndPublishesEvent(t *testing.T) {
	svc, bus := newTestService(&fakeParser{})

	resp := svc.UpsertConfig(context.Background(), "EG", transport.UpsertDialConfigRequest{
		TrunkPrefix:    "0",
		AddLeadingZero: false,
	})

	if resp.Country != "EG" || resp.TrunkPrefix != "0" {
		t.Fatalf("unexpected response %+v", resp)
	}
	if _, ok := svc.Registry().Get("EG"); !ok {
		t.Fatal("expected EG entry in registry")
	}
	if len(bus.published) != 1 {
		t.Fatalf("expected 1 event, got %d", len(bus.published))
	}
	e, ok := bus.published[0].(events.DialConfigUpserted)
	if !ok {
		t.Fatalf("expected DialConfigUpserted, got %T", bus.published[0])
	}
	if e.Country != "EG" || e.TrunkPrefix != "0" {
		t.Fatalf("unexpected event %+v", e)
	}
}

func TestServiceRemoveConfigReportsDefaultReset(t *testing.T) {
	svc, bus := newTestService(&fakeParser{})
	svc.UpsertConfig(context.Background(), "NL", transport.UpsertDialConfigRequest{TrunkPrefix: "0"})
	svc.SetDefaultCountry(context.Background(), "NL")
	bus.published = nil

	svc.RemoveConfig(context.Background(), "NL")

	if got := svc.Registry().DefaultCountry(); got != registry.FallbackCountry {
		t.Fatalf("expected default reset to %q, got %q", registry.FallbackCountry, got)
	}
	if len(bus.published) != 1 {
		t.Fatalf("expected 1 event, got %d", len(bus.published))
	}
	e, ok := bus.published[0].(events.DialConfigRemoved)
	if !ok {
		t.Fatalf("expected DialConfigRemoved, got %T", bus.published[0])
	}
	if !e.DefaultReset {
		t.Fatal("expected event to report the default reset")
	}
}

func TestServiceSetDefaultCountrySkipsEventWhenUnchanged(t *testing.T) {
	svc, bus := newTestService(&fakeParser{})

	svc.SetDefaultCountry(context.Background(), "EG")

	if len(bus.published) != 0 {
		t.Fatalf("expected no event for unchanged default, got %d", len(bus.published))
	}
}

func TestServiceGetConfigReturnsNotFoundForUnknownCountry(t *testing.T) {
	svc, _ := newTestService(&fakeParser{})

	_, err := svc.GetConfig("US")

	if !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestServiceListConfigsIncludesDefaultCountry(t *testing.T) {
	svc, _ := newTestService(&fakeParser{})
	svc.UpsertConfig(context.Background(), "NL", transport.UpsertDialConfigRequest{TrunkPrefix: "0"})
	svc.UpsertConfig(context.Background(), "DE", transport.UpsertDialConfigRequest{AddLeadingZero: true})

	resp := svc.ListConfigs()

	if resp.Total != 2 || len(resp.Items) != 2 {
		t.Fatalf("expected 2 items, got %+v", resp)
	}
	if resp.DefaultCountry != "EG" {
		t.Fatalf("expected default country EG, got %q", resp.DefaultCountry)
	}
	if resp.Items[0].Country != "DE" || resp.Items[1].Country != "NL" {
		t.Fatalf("expected sorted items, got %+v", resp.Items)
	}
}
