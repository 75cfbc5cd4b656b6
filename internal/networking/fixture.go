package networking

import (
	"context"
	"fmt"
)

// Host is a test host which network fixtures are attached to.
type Host interface {
	Name() string
}

// Container is a workload connected to a network fixture.
type Container interface {
	Name() string
}

// Network is a network fixture used by system tests.
type Network interface {
	fmt.Stringer

	// Name returns fixture display name.
	Name() string

	// NetworkID returns identifier of the underlying network.
	NetworkID() string

	// Deleted reports whether network was deleted.
	Deleted() bool

	// Delete removes network. Host is optional and can be nil.
	Delete(ctx context.Context, host Host) error

	// Disconnect detaches container running on host from network.
	Disconnect(ctx context.Context, host Host, container Container) error
}
