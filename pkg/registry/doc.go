// Package registry provides a generic, type-safe registry keyed by
// case-sensitive type tags. The parser and the render pipeline each keep
// their own instances: one mapping element type names to element parsers or
// renderers, one doing the same for action types.
//
// Registries are plain values created by the host and handed to the
// components that need them. Registering a name that is already present
// replaces the previous entry, which is how hosts override built-ins.
package registry
