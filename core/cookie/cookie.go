package cookie

// Scheme restriction values stored in moz_cookies.schemeMap.
const (
	// SchemeUnrestricted lets the cookie travel over any scheme.
	SchemeUnrestricted = 0
	// SchemeSecure restricts the cookie to secure schemes.
	SchemeSecure = 2
)

// DefaultPath is used when the source omits a path.
const DefaultPath = "/"

// Cookie is the canonical cookie record.
// Value is sensitive: it must never be logged or put into error messages.
type Cookie struct {
	Name     string `json:"name"`
	Value    string `json:"-"`
	Domain   string `json:"domain"`
	Path     string `json:"path"`
	Secure   bool   `json:"secure"`
	HTTPOnly bool   `json:"http_only"`
	// Expiry is in milliseconds since the Unix epoch, 0 for session cookies.
	Expiry   int64 `json:"expiry"`
	SameSite int   `json:"same_site"`
}

// Key identifies a row in the target store.
type Key struct {
	Name             string
	Host             string
	Path             string
	OriginAttributes string
}

// String returns a compact representation used in logs and errors.
func (k Key) String() string {
	return k.Name + "@" + k.Host + k.Path
}

// Key returns the identity key of the cookie in the unpartitioned store.
func (c Cookie) Key() Key {
	return Key{
		Name: c.Name,
		Host: c.Domain,
		Path: c.Path,
	}
}

// SchemeMap returns the scheme restriction for the cookie.
func (c Cookie) SchemeMap() int {
	return SchemeMap(c.Secure)
}

// SchemeMap maps the secure flag to a scheme restriction value.
func SchemeMap(secure bool) int {
	if secure {
		return SchemeSecure
	}
	return SchemeUnrestricted
}

// BoolInt converts a flag to the 0/1 integer the store expects.
func BoolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
