package cookiefile

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"strings"

	"cookie-importer/core/cookie"
	"cookie-importer/core/utils"
)

// httpOnlyPrefix marks HttpOnly cookies in cookie-jar files (curl, yt-dlp).
const httpOnlyPrefix = "#HttpOnly_"

// netscapeFields is the minimum number of tab separated fields of a cookie line:
// domain, includeSubdomains, path, secure, expiry, name, value.
const netscapeFields = 7

// maxLineSize bounds a single line; JWT-sized values exceed bufio's 64 KiB default.
const maxLineSize = 1 << 20

// ParseNetscape returns a lazy sequence of cookies read from a Netscape
// cookie-jar. Blank lines, comments and lines with fewer than seven fields are
// skipped silently. A read error is yielded once, as the last element.
func ParseNetscape(r io.Reader) iter.Seq2[cookie.Cookie, error] {
	return func(yield func(cookie.Cookie, error) bool) {
		scanner := bufio.NewScanner(r)
		scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

		for scanner.Scan() {
			c, ok := parseNetscapeLine(scanner.Text())
			if !ok {
				continue
			}
			if !yield(c, nil) {
				return
			}
		}

		if err := scanner.Err(); err != nil {
			yield(cookie.Cookie{}, fmt.Errorf("failed to read Netscape cookie file: %w", err))
		}
	}
}

// parseNetscapeLine converts one line. ok is false for lines that carry no cookie.
func parseNetscapeLine(line string) (cookie.Cookie, bool) {
	httpOnly := false
	if strings.HasPrefix(line, httpOnlyPrefix) {
		httpOnly = true
		line = line[len(httpOnlyPrefix):]
	}

	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return cookie.Cookie{}, false
	}

	fields := strings.Split(line, "\t")
	if len(fields) < netscapeFields {
		return cookie.Cookie{}, false
	}

	return cookie.Cookie{
		Name:     fields[5],
		Value:    strings.Join(fields[6:], "\t"),
		Domain:   fields[0],
		Path:     fields[2],
		Secure:   strings.EqualFold(fields[3], "TRUE"),
		HTTPOnly: httpOnly,
		Expiry:   cookie.NormalizeExpiry(utils.ParseLeadingInt(fields[4])),
		SameSite: 0,
	}, true
}
