package events

import (
	"fmt"

	"festgate/internal/shared/config"
)

// Catalog is the read-only set of events this deployment registers for.
// Two events, fixed at build time; the upstream endpoint and shared secret
// come from configuration so deployments can rotate them.
type Catalog struct {
	events []EventConfig
	bySlug map[string]EventConfig
}

// NewCatalog builds the catalog from the static event descriptors plus the
// configured upstream settings.
func NewCatalog(cfg *config.Config) *Catalog {
	events := []EventConfig{
		{
			EventName:   "Pixel2Portal",
			EventDate:   "Dec 5, 2025 • PESCE Mandya",
			EndpointURL: cfg.Upstream.EndpointURL,
			APIKey:      cfg.Upstream.APIKey,
			PayeeVPA:    "yashas.a.5960@ybl",
			PayeeName:   "Yashas Gowda A",
			RegFeeINR:   100,
			Slug:        "pixel2portal",
		},
		{
			EventName:   "Blind Code Golf",
			EventDate:   "Dec 5, 2025 • PESCE Mandya",
			EndpointURL: cfg.Upstream.EndpointURL,
			APIKey:      cfg.Upstream.APIKey,
			PayeeVPA:    "yashas.a.5960@ybl",
			PayeeName:   "Yashas Gowda A",
			RegFeeINR:   100,
			Slug:        "blind-code-golf",
		},
	}

	bySlug := make(map[string]EventConfig, len(events))
	for _, ev := range events {
		bySlug[ev.Slug] = ev
	}

	return &Catalog{
		events: events,
		bySlug: bySlug,
	}
}

// All returns every event in catalog order.
func (c *Catalog) All() []EventConfig {
	out := make([]EventConfig, len(c.events))
	copy(out, c.events)
	return out
}

// BySlug returns the event registered under slug.
func (c *Catalog) BySlug(slug string) (EventConfig, error) {
	ev, ok := c.bySlug[slug]
	if !ok {
		return EventConfig{}, fmt.Errorf("%w: %s", ErrUnknownEvent, slug)
	}
	return ev, nil
}

// ErrUnknownEvent is returned for slugs outside the catalog.
var ErrUnknownEvent = fmt.Errorf("unknown event")
