// Package utils provides common utility functions for the cookie importer.
// It holds the loose numeric coercions used when reading hand-edited or
// extension-generated cookie exports, where numbers show up as strings and
// strings carry trailing garbage.
package utils
