// Package yaml decodes YAML documents into cfgmap configuration trees.
//
// This package uses github.com/goccy/go-yaml. The top-level node must be a
// mapping; anything else fails with ErrNotMapping. YAML anchors and aliases
// are resolved by the parser before conversion, so decoded trees contain
// only plain values.
package yaml
