// Package toml decodes TOML documents into cfgmap configuration trees.
//
// This package uses github.com/pelletier/go-toml/v2. TOML datetime flavors
// (offset datetime, local datetime, local date, local time) all decode to
// Datetime values; local flavors are anchored in the local time zone.
package toml
