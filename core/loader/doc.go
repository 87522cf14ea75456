// Package loader provides the plugin-like feature loading system.
//
// Each feature implements the Feature interface, which names it, says whether
// it is enabled and registers its routes.
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// # Manager
//
// The Manager holds the registry of features. Register adds one; LoadAll
// loads every enabled feature in registration order.
//
// Features such as 'desired', 'reported', 'shadow' and 'integrity' are built
// and tested in isolation and only meet in the start command.
package loader
