// Package cookiefile detects and parses exported cookie files.
//
// Two formats are understood:
//   - Netscape cookie-jar text: tab separated, seven or more fields per line,
//     optional "#HttpOnly_" prefix, "#" comments.
//   - JSON: a top-level array of loosely keyed objects, as written by browser
//     extensions (EditThisCookie, Cookie-Editor) and other tools.
//
// Both parsers return a lazy, one-pass sequence of cookie.Cookie with the
// expiry already normalized to milliseconds.
//
// # Usage
//
//	format, err := cookiefile.Detect(data)
//	records, err := cookiefile.Parse(format, data)
//	for c, err := range records {
//	    ...
//	}
package cookiefile
