// Package loader provides the feature loading system.
//
// Each feature implements the Feature interface and registers its own routes
// when loaded. The Manager keeps the registry and loads enabled features in
// registration order.
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// Features such as combo, search, levels and integrity are developed and
// tested in isolation and wired together in the start command.
package loader
