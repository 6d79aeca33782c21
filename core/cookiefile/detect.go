package cookiefile

import (
	"bytes"
	"errors"
	"fmt"
	"iter"

	"cookie-importer/core/cookie"

	"github.com/tidwall/gjson"
)

// ErrUnrecognizedFormat is returned when the content is neither a JSON cookie
// array nor a Netscape cookie jar.
var ErrUnrecognizedFormat = errors.New("unrecognized cookie file format")

// NetscapeHeader is the first line written by most cookie-jar exporters.
const NetscapeHeader = "# Netscape HTTP Cookie File"

// utf8BOM is written by some Windows editors and exporters at the start of a file.
var utf8BOM = []byte("\xef\xbb\xbf")

// stripBOM removes one leading UTF-8 byte order mark.
func stripBOM(data []byte) []byte {
	return bytes.TrimPrefix(data, utf8BOM)
}

// Format identifies the layout of an export file.
type Format string

const (
	// FormatJSON is an array of cookie objects.
	FormatJSON Format = "json"
	// FormatNetscape is the tab separated cookie-jar layout.
	FormatNetscape Format = "netscape"
)

// Detect decides which parser applies to data. A leading UTF-8 BOM is ignored.
// A document that parses as JSON is always JSON, even if it contains tabs.
func Detect(data []byte) (Format, error) {
	content := bytes.TrimSpace(stripBOM(data))

	if len(content) > 0 && gjson.ValidBytes(content) {
		return FormatJSON, nil
	}
	if bytes.Contains(content, []byte(NetscapeHeader)) || bytes.IndexByte(content, '\t') >= 0 {
		return FormatNetscape, nil
	}

	return "", ErrUnrecognizedFormat
}

// Parse runs the parser matching format over data.
func Parse(format Format, data []byte) (iter.Seq2[cookie.Cookie, error], error) {
	switch format {
	case FormatJSON:
		return ParseJSON(data)
	case FormatNetscape:
		return ParseNetscape(bytes.NewReader(stripBOM(data))), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnrecognizedFormat, format)
	}
}

// DetectAndParse is Detect followed by Parse.
func DetectAndParse(data []byte) (Format, iter.Seq2[cookie.Cookie, error], error) {
	format, err := Detect(data)
	if err != nil {
		return "", nil, err
	}
	records, err := Parse(format, data)
	if err != nil {
		return format, nil, err
	}
	return format, records, nil
}
