// Package cfgmap provides an in-memory, schema-less configuration store: a
// recursive tree of typed values addressed by slash-delimited paths, paired
// with a composable condition algebra for validating the shape and content
// of any node.
//
// It is meant for the case where the shape of configuration is only
// partially known ahead of time (nested sections, optional defaults, mixed
// lists), where unmarshaling into a fixed struct is a poor fit.
//
// # Building a tree
//
//	m := cfgmap.New()
//	m.Add("server", cfgmap.New().Value())
//	m.Add("server/port", cfgmap.Int(8080))
//	m.Add("server/hosts", cfgmap.List(cfgmap.Str("a"), cfgmap.Str("b")))
//
// Trees can also be decoded from parsed documents; see the decode/json,
// decode/yaml and decode/toml subpackages.
//
// # Path syntax
//
// A path is a sequence of keys separated by "/", resolved left to right.
// A segment landing on a list is followed by a numeric index segment:
//
//	m.Get("server/hosts/0")
//
// Any failure along the way (missing key, wrong kind, bad index) resolves
// to nil rather than an error; absence is the ordinary outcome of a lookup.
//
// # Conditions
//
// Conditions validate a value without unpacking it. They compose with And,
// Or and Not, and CheckThat applies one to any lookup result, treating an
// absent value as failing every condition:
//
//	m.Get("server/port").CheckThat(cfgmap.IsInt.Or(cfgmap.IsFloat))
//	m.Get("server/hosts").CheckThat(cfgmap.IsListWith(cfgmap.IsStr))
//
// # Default sections
//
// A Map carries a Default prefix naming a fallback subtree. GetOption and
// UpdateOption try the category-qualified path first, then the default:
//
//	m.Default = "defaults/"
//	m.GetOption("http", "timeout") // "http/timeout", else "defaults/timeout"
//
// The prefix is concatenated literally, so it must carry its own trailing
// separator.
//
// A Map is a single-owner structure: it is not safe for concurrent use.
package cfgmap
