package ports

import "context"

// Identity describes the shopper confirming the checkout.
type Identity struct {
	ID   string
	Role string
}

// IdentityProvider resolves the acting shopper. The memory deployment
// uses a static adapter.
type IdentityProvider interface {
	Current(ctx context.Context) Identity
}
