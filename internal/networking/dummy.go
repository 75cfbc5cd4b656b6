package networking

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var _ Network = (*DummyNetwork)(nil)

// DummyNetwork is a network fixture which does nothing.
//
// Used by tests which don't depend on network behavior.
// Dummy network is never marked as deleted.
type DummyNetwork struct {
	log zerolog.Logger

	name    string
	network string
	deleted bool
}

// NewDummyNetwork returns a new dummy network.
//
// Name is also used as network ID as there is no underlying network.
func NewDummyNetwork(name string) *DummyNetwork {
	return &DummyNetwork{
		log:     log.Logger.With().Str("context", "network").Logger(),
		name:    name,
		network: name,
	}
}

func (n *DummyNetwork) Name() string {
	return n.name
}

func (n *DummyNetwork) NetworkID() string {
	return n.network
}

func (n *DummyNetwork) Deleted() bool {
	return n.deleted
}

func (n *DummyNetwork) Delete(_ context.Context, _ Host) error {
	n.log.Debug().
		Str("network", n.name).
		Msg("skip delete of dummy network")
	return nil
}

func (n *DummyNetwork) Disconnect(_ context.Context, _ Host, _ Container) error {
	n.log.Debug().
		Str("network", n.name).
		Msg("skip disconnect from dummy network")
	return nil
}

func (n *DummyNetwork) String() string {
	return n.name
}
