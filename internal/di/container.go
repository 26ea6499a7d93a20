// Package di provides dependency injection configuration for the
// SoundBox server.
package di

import (
	"github.com/samber/do/v2"

	"github.com/soundboxapp/soundbox-server/internal/catalog"
	"github.com/soundboxapp/soundbox-server/internal/config"
	"github.com/soundboxapp/soundbox-server/internal/logger"
)

// NewContainer creates and configures the DI container with all providers.
func NewContainer() *do.RootScope {
	injector := do.New()

	// Core infrastructure
	do.Provide(injector, ProvideConfig)
	do.Provide(injector, ProvideLogger)

	// Catalog
	do.Provide(injector, ProvideCatalogService)

	// Server
	do.Provide(injector, ProvideHTTPServer)

	return injector
}

// Bootstrap initializes all services. This triggers lazy initialization
// down the provider chain and starts the HTTP listener.
func Bootstrap(injector *do.RootScope) error {
	if _, err := do.Invoke[*config.Config](injector); err != nil {
		return err
	}

	_ = do.MustInvoke[*logger.Logger](injector)
	_ = do.MustInvoke[*catalog.Service](injector)
	_ = do.MustInvoke[*HTTPServerHandle](injector)

	return nil
}
