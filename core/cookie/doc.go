// Package cookie defines the canonical cookie record shared by the file parsers
// and the reconcile engine.
//
// # Record
//
// Cookie is built once per source line (Netscape) or array element (JSON) and
// consumed immediately by the reconcile engine. It is never persisted as-is.
//
// # Identity
//
// Two records refer to the same store row when their Key is equal: name, host,
// path and an empty origin-attribute partition.
//
// # Time units
//
// Expiry is always expressed in milliseconds since the Unix epoch once a parser
// has run it through NormalizeExpiry. Access and creation timestamps written by
// the store adapter use microseconds (see NowMicros).
package cookie
