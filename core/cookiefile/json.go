package cookiefile

import (
	"fmt"
	"iter"

	"cookie-importer/core/cookie"
	"cookie-importer/core/utils"

	"github.com/tidwall/gjson"
)

// Aliases per canonical attribute, tried in order. The first truthy value wins,
// so an empty "name" falls through to "Name" the way exporters expect.
var (
	nameKeys     = []string{"name", "Name"}
	valueKeys    = []string{"value", "Value", "content", "Content"}
	domainKeys   = []string{"domain", "Domain", "host", "Host"}
	pathKeys     = []string{"path", "Path"}
	secureKeys   = []string{"secure", "Secure", "isSecure"}
	httpOnlyKeys = []string{"httpOnly", "HttpOnly", "isHttpOnly"}
	sameSiteKeys = []string{"sameSite"}
	expiryKeys   = []string{"expirationDate", "expiry", "expires", "Expires"}
)

// ParseJSON returns the cookies of a JSON export in array order.
// Any top-level shape other than an array fails with ErrUnrecognizedFormat.
func ParseJSON(data []byte) (iter.Seq2[cookie.Cookie, error], error) {
	data = stripBOM(data)
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: invalid JSON", ErrUnrecognizedFormat)
	}
	root := gjson.ParseBytes(data)
	if !root.IsArray() {
		return nil, fmt.Errorf("%w: expected a JSON array of cookies, got %s", ErrUnrecognizedFormat, kindOf(root))
	}

	return func(yield func(cookie.Cookie, error) bool) {
		root.ForEach(func(_, obj gjson.Result) bool {
			return yield(jsonToCookie(obj), nil)
		})
	}, nil
}

func jsonToCookie(obj gjson.Result) cookie.Cookie {
	fields := objectFields(obj)
	c := cookie.Cookie{
		Name:     firstTruthy(fields, nameKeys).String(),
		Value:    firstTruthy(fields, valueKeys).String(),
		Domain:   firstTruthy(fields, domainKeys).String(),
		Path:     firstTruthy(fields, pathKeys).String(),
		Secure:   truthy(firstTruthy(fields, secureKeys)),
		HTTPOnly: truthy(firstTruthy(fields, httpOnlyKeys)),
		SameSite: utils.ToInt(firstTruthy(fields, sameSiteKeys).Value()),
	}
	if c.Path == "" {
		c.Path = cookie.DefaultPath
	}

	raw := firstTruthy(fields, expiryKeys)
	c.Expiry = cookie.NormalizeExpiryFloat(utils.ToFloat64(raw.Value()))

	return c
}

// objectFields indexes the members of obj by key. A repeated key keeps its
// last value, as JSON.parse does. Non-objects have no fields.
func objectFields(obj gjson.Result) map[string]gjson.Result {
	fields := make(map[string]gjson.Result)
	if !obj.IsObject() {
		return fields
	}
	obj.ForEach(func(key, value gjson.Result) bool {
		fields[key.String()] = value
		return true
	})
	return fields
}

// firstTruthy returns the first alias holding a truthy value, or an empty result.
func firstTruthy(fields map[string]gjson.Result, keys []string) gjson.Result {
	for _, key := range keys {
		if v := fields[key]; truthy(v) {
			return v
		}
	}
	return gjson.Result{}
}

// truthy follows JavaScript truthiness: false, 0, "", null and missing are falsy.
func truthy(v gjson.Result) bool {
	switch v.Type {
	case gjson.True, gjson.JSON:
		return true
	case gjson.Number:
		return v.Num != 0
	case gjson.String:
		return v.Str != ""
	default:
		return false
	}
}

func kindOf(v gjson.Result) string {
	switch {
	case v.IsObject():
		return "object"
	case v.Type == gjson.String:
		return "string"
	case v.Type == gjson.Number:
		return "number"
	case v.Type == gjson.True, v.Type == gjson.False:
		return "boolean"
	default:
		return "null"
	}
}
