package identity

import (
	"context"

	"github.com/sneakpeak/storefront/internal/domains/checkout/ports"
)

var _ ports.IdentityProvider = (*StaticProvider)(nil)

// StaticProvider resolves every request to a fixed shopper. The memory
// deployment is single-session, so one identity covers it.
type StaticProvider struct {
	identity ports.Identity
}

// NewStaticProvider builds a provider for the given shopper id.
func NewStaticProvider(id, role string) *StaticProvider {
	return &StaticProvider{identity: ports.Identity{ID: id, Role: role}}
}

func (p *StaticProvider) Current(context.Context) ports.Identity {
	return p.identity
}
