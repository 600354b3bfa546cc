// Package registry maps (source, target) type pairs to conversion functions.
//
// Lookups consult the exact table first, then the resolution cache, and finally
// walk the source type hierarchy. A resolved function is cached under the requested
// pair; failed resolutions are never cached.
package registry
