// Package tagged attaches discriminants to values.
//
// Two policies are provided:
// - Value[T]: immutable. New/With derive a new value carrying the tag and
// never touch the input, so tagging an already tagged value is always safe.
// - Record: an open field set stamped in place by Stamp/StampWith. A record
// may be stamped only once and only while it is still extensible.
//
// The sum types of typekit implement Tagged, so generic code can switch on
// Tag() regardless of the concrete type.
package tagged
