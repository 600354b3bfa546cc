// Package value defines small calendar and text value types that have no direct
// counterpart in the standard library but take part in conversions.
package value
