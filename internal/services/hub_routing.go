package services

import (
	"context"
	"strconv"
	"strings"

	"pouch-tracking-service/internal/domain"
	"pouch-tracking-service/internal/platform/obs"
	"pouch-tracking-service/internal/ports"
)

// HubRouter enforces the two-leg hub-and-spoke policy on pouch writes.
// The hub sector id is read from the configuration store on every call, so
// changing it takes effect without a restart.
type HubRouter struct {
	config ports.ConfigStore
	key    string
}

func NewHubRouter(config ports.ConfigStore, key string) *HubRouter {
	if key == "" {
		key = "HUB_SETOR_ID"
	}
	return &HubRouter{config: config, key: key}
}

// HubSectorID returns the configured hub sector id. ok is false when no hub
// is configured, the value is not a positive integer, or the lookup failed.
func (h *HubRouter) HubSectorID(ctx context.Context) (int64, bool) {
	if h == nil || h.config == nil {
		return 0, false
	}

	raw, ok, err := h.config.GetConfigValue(ctx, h.key)
	if err != nil {
		obs.Logf(ctx, "op=hub.lookup key=%s err=%v msg=%q", h.key, err, "hub routing disabled")
		return 0, false
	}
	if !ok {
		return 0, false
	}

	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		obs.Logf(ctx, "op=hub.lookup key=%s value=%q msg=%q", h.key, raw, "hub id is not a positive integer")
		return 0, false
	}

	return id, true
}

// Apply returns draft with the hub rule applied.
func (h *HubRouter) Apply(ctx context.Context, draft domain.PouchDraft) domain.PouchDraft {
	hubID, ok := h.HubSectorID(ctx)
	if !ok {
		return draft
	}

	out, redirected := EnforceHubRouting(draft, hubID)
	if redirected {
		obs.HubRedirect()
		obs.Logf(ctx, "op=hub.redirect number=%q hub=%d", draft.Number, hubID)
	}
	return out
}

// EnforceHubRouting applies the hub rule for hubID. A pouch that neither
// starts nor ends at the hub is redirected to the hub; a pouch already
// touching the hub keeps its destination.
func EnforceHubRouting(draft domain.PouchDraft, hubID int64) (domain.PouchDraft, bool) {
	if domain.SameID(draft.OriginSectorID, hubID) || domain.SameID(draft.DestinationSectorID, hubID) {
		return draft, false
	}

	draft.DestinationSectorID = domain.Int64Ptr(hubID)
	return draft, true
}
