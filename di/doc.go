// Package di integrates cfgmap with the Fx dependency injection container.
//
// It defines two extension points, Fetcher (where raw configuration bytes
// come from) and Decoder (how they become a tree), and wires them together:
//
//	module := di.NewModule("config",
//	    di.WithFetcher(fetcher),
//	    di.WithDecoder(di.DecoderFunc(yamldecode.Decode)),
//	    di.WithDefaultPath("defaults/"),
//	)
//
//	app := fx.New(module, fx.Invoke(func(m *cfgmap.Map) { ... }))
//
// Provider is also usable on its own, outside a container.
package di
