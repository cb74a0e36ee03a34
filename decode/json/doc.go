// Package json decodes JSON documents into cfgmap configuration trees.
//
// The top-level JSON value must be an object; anything else fails with
// ErrNotObject. Decoding uses json.Number so that integers survive without
// a round trip through float64:
//
//	1, -7          -> Int
//	1.5, 1e10      -> Float
//	null           -> Null
//	[...], {...}   -> List, Map
package json
