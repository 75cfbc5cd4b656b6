package networking

import (
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/x1unix/calico-st/internal/config"
)

var (
	defaultResolver *Resolver
	resolverOnce    sync.Once
)

// DefaultResolver returns process-wide resolver which reads ST_NETWORKING environment variable.
func DefaultResolver() *Resolver {
	resolverOnce.Do(func() {
		defaultResolver = NewResolver(log.Logger, config.LookupNetworking)
	})

	return defaultResolver
}

// GetNetworkingMode returns networking mode configured for current process.
func GetNetworkingMode() (Mode, error) {
	return DefaultResolver().Mode()
}
