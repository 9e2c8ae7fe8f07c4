// Package keycode holds the logical-key to native-key-code tables for
// each platform backend. Tables are exposed as fresh copies so every
// Sender/Listener instance owns its mapping and could remap it later
// without affecting others.
package keycode

import "typrio/keys"

// clone returns a private copy of a table.
func clone(src map[keys.Key]uint16) map[keys.Key]uint16 {
	dst := make(map[keys.Key]uint16, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

// reverse inverts a Key->code table into code->Key.
func reverse(src map[keys.Key]uint16) map[uint16]keys.Key {
	dst := make(map[uint16]keys.Key, len(src))
	for k, v := range src {
		dst[v] = k
	}
	return dst
}
