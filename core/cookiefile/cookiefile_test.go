package cookiefile_test

import (
	"errors"
	"iter"
	"strings"
	"testing"

	"cookie-importer/core/cookie"
	"cookie-importer/core/cookiefile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(t *testing.T, seq iter.Seq2[cookie.Cookie, error]) []cookie.Cookie {
	t.Helper()
	var out []cookie.Cookie
	for c, err := range seq {
		require.NoError(t, err)
		out = append(out, c)
	}
	return out
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    cookiefile.Format
		wantErr bool
	}{
		{"JSON array", `[{"name":"a"}]`, cookiefile.FormatJSON, false},
		{"JSON object is still JSON", `{"a":1}`, cookiefile.FormatJSON, false},
		{"JSON with tabs wins", "[\t{\"name\":\"a\"}\t]", cookiefile.FormatJSON, false},
		{"Netscape header", "# Netscape HTTP Cookie File\n", cookiefile.FormatNetscape, false},
		{"Tabs only", ".x.com\tTRUE\t/\tFALSE\t0\ta\tb", cookiefile.FormatNetscape, false},
		{"Surrounding whitespace", "\n\n  [ ]  \n", cookiefile.FormatJSON, false},
		{"Plain text", "hello world", "", true},
		{"Empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := cookiefile.Detect([]byte(tt.content))
			if tt.wantErr {
				assert.ErrorIs(t, err, cookiefile.ErrUnrecognizedFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseNetscape_Lines(t *testing.T) {
	content := strings.Join([]string{
		"# Netscape HTTP Cookie File",
		"# comment line",
		"",
		".example.com\tTRUE\t/\tTRUE\t1700000000\tsid\tabc123",
		"#HttpOnly_.example.com\tTRUE\t/app\tfalse\t0\ttoken\tv1",
		"too\tfew\tfields",
		"   ",
	}, "\r\n")

	cookies := collect(t, cookiefile.ParseNetscape(strings.NewReader(content)))
	require.Len(t, cookies, 2)

	assert.Equal(t, cookie.Cookie{
		Name:     "sid",
		Value:    "abc123",
		Domain:   ".example.com",
		Path:     "/",
		Secure:   true,
		HTTPOnly: false,
		Expiry:   1700000000000,
		SameSite: 0,
	}, cookies[0])

	assert.Equal(t, "token", cookies[1].Name)
	assert.Equal(t, "/app", cookies[1].Path)
	assert.True(t, cookies[1].HTTPOnly)
	assert.False(t, cookies[1].Secure)
	assert.Equal(t, int64(0), cookies[1].Expiry)
}

func TestParseNetscape_ValueWithTabsRoundTrips(t *testing.T) {
	line := "example.org\tFALSE\t/p\tFALSE\t1700000000\tname\tpart1\tpart2\t\tpart4"

	cookies := collect(t, cookiefile.ParseNetscape(strings.NewReader(line)))
	require.Len(t, cookies, 1)
	c := cookies[0]

	assert.Equal(t, "part1\tpart2\t\tpart4", c.Value)

	fields := strings.Split(line, "\t")
	rebuilt := strings.Join(append([]string{c.Domain, fields[1], c.Path, fields[3], fields[4], c.Name}, c.Value), "\t")
	assert.Equal(t, line, rebuilt)
}

func TestParseNetscape_HttpOnlyPrefixParsesRemainderIdentically(t *testing.T) {
	plain := ".example.com\tTRUE\t/\tTRUE\t1700000000\tsid\tabc"

	withPrefix := collect(t, cookiefile.ParseNetscape(strings.NewReader("#HttpOnly_"+plain)))
	without := collect(t, cookiefile.ParseNetscape(strings.NewReader(plain)))
	require.Len(t, withPrefix, 1)
	require.Len(t, without, 1)

	assert.True(t, withPrefix[0].HTTPOnly)
	assert.False(t, without[0].HTTPOnly)

	withPrefix[0].HTTPOnly = false
	assert.Equal(t, without[0], withPrefix[0])
}

func TestParseNetscape_Expiry(t *testing.T) {
	tests := []struct {
		raw  string
		want int64
	}{
		{"1700000000", 1700000000000},
		{"1700000000000", 1700000000000},
		{"0", 0},
		{"never", 0},
		{"1700000000.9", 1700000000000},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			line := "a.com\tFALSE\t/\tFALSE\t" + tt.raw + "\tn\tv"
			cookies := collect(t, cookiefile.ParseNetscape(strings.NewReader(line)))
			require.Len(t, cookies, 1)
			assert.Equal(t, tt.want, cookies[0].Expiry)
		})
	}
}

func TestParseNetscape_StopsEarly(t *testing.T) {
	content := "a.com\tFALSE\t/\tFALSE\t0\tone\t1\na.com\tFALSE\t/\tFALSE\t0\ttwo\t2\n"

	var names []string
	for c, err := range cookiefile.ParseNetscape(strings.NewReader(content)) {
		require.NoError(t, err)
		names = append(names, c.Name)
		break
	}
	assert.Equal(t, []string{"one"}, names)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("device gone") }

func TestParseNetscape_ReadError(t *testing.T) {
	var gotErr error
	for _, err := range cookiefile.ParseNetscape(failingReader{}) {
		gotErr = err
	}
	assert.ErrorContains(t, gotErr, "device gone")
}

func TestParseJSON_Defaults(t *testing.T) {
	seq, err := cookiefile.ParseJSON([]byte(`[{"name":"a","domain":"x.com","expirationDate":1700000000}]`))
	require.NoError(t, err)

	cookies := collect(t, seq)
	require.Len(t, cookies, 1)
	assert.Equal(t, cookie.Cookie{
		Name:     "a",
		Value:    "",
		Domain:   "x.com",
		Path:     "/",
		Secure:   false,
		HTTPOnly: false,
		Expiry:   1700000000000,
		SameSite: 0,
	}, cookies[0])
}

func TestParseJSON_Aliases(t *testing.T) {
	data := `[
		{"Name":"b","Content":"v","Host":".y.com","Path":"/p","isSecure":true,"isHttpOnly":1,"sameSite":2,"expires":"1700000000"},
		{"name":"c","Value":"w","Domain":"z.com","Secure":true,"HttpOnly":true,"Expires":1700000000000},
		{"name":"","Name":"d","value":"","content":"fallback","domain":"q.com","secure":false,"Secure":true,"expiry":1735689600.5}
	]`
	seq, err := cookiefile.ParseJSON([]byte(data))
	require.NoError(t, err)

	cookies := collect(t, seq)
	require.Len(t, cookies, 3)

	assert.Equal(t, "b", cookies[0].Name)
	assert.Equal(t, "v", cookies[0].Value)
	assert.Equal(t, ".y.com", cookies[0].Domain)
	assert.Equal(t, "/p", cookies[0].Path)
	assert.True(t, cookies[0].Secure)
	assert.True(t, cookies[0].HTTPOnly)
	assert.Equal(t, 2, cookies[0].SameSite)
	assert.Equal(t, int64(1700000000000), cookies[0].Expiry)

	assert.Equal(t, "w", cookies[1].Value)
	assert.Equal(t, "z.com", cookies[1].Domain)
	assert.True(t, cookies[1].Secure)
	assert.True(t, cookies[1].HTTPOnly)
	assert.Equal(t, int64(1700000000000), cookies[1].Expiry)

	assert.Equal(t, "d", cookies[2].Name)
	assert.Equal(t, "fallback", cookies[2].Value)
	assert.True(t, cookies[2].Secure)
	assert.Equal(t, int64(1735689600500), cookies[2].Expiry)
}

func TestParseJSON_SameSiteStringIsZero(t *testing.T) {
	seq, err := cookiefile.ParseJSON([]byte(`[{"name":"a","domain":"x.com","sameSite":"lax"}]`))
	require.NoError(t, err)

	cookies := collect(t, seq)
	require.Len(t, cookies, 1)
	assert.Equal(t, 0, cookies[0].SameSite)
}

func TestParseJSON_NotArray(t *testing.T) {
	for _, doc := range []string{`{"a":1}`, `"text"`, `42`, `null`} {
		t.Run(doc, func(t *testing.T) {
			_, err := cookiefile.ParseJSON([]byte(doc))
			assert.ErrorIs(t, err, cookiefile.ErrUnrecognizedFormat)
		})
	}
}

func TestDetectAndParse_ObjectIsJSONButRejected(t *testing.T) {
	format, err := cookiefile.Detect([]byte(`{"a":1}`))
	require.NoError(t, err)
	assert.Equal(t, cookiefile.FormatJSON, format)

	_, _, err = cookiefile.DetectAndParse([]byte(`{"a":1}`))
	assert.ErrorIs(t, err, cookiefile.ErrUnrecognizedFormat)
}

func TestDetectAndParse_Netscape(t *testing.T) {
	data := []byte("# Netscape HTTP Cookie File\nx.com\tFALSE\t/\tFALSE\t0\ta\tb\n")

	format, seq, err := cookiefile.DetectAndParse(data)
	require.NoError(t, err)
	assert.Equal(t, cookiefile.FormatNetscape, format)
	assert.Len(t, collect(t, seq), 1)
}

func TestParse_UnknownFormat(t *testing.T) {
	_, err := cookiefile.Parse("xml", nil)
	assert.ErrorIs(t, err, cookiefile.ErrUnrecognizedFormat)
}

func TestDetectAndParse_ByteOrderMark(t *testing.T) {
	t.Run("Tab indented JSON", func(t *testing.T) {
		data := []byte("\xef\xbb\xbf[\n\t{\"name\":\"a\",\"domain\":\"x.com\"}\n]")

		format, seq, err := cookiefile.DetectAndParse(data)
		require.NoError(t, err)
		assert.Equal(t, cookiefile.FormatJSON, format)

		cookies := collect(t, seq)
		require.Len(t, cookies, 1)
		assert.Equal(t, "a", cookies[0].Name)
		assert.Equal(t, "x.com", cookies[0].Domain)
	})

	t.Run("ParseJSON directly", func(t *testing.T) {
		seq, err := cookiefile.ParseJSON([]byte("\xef\xbb\xbf[{\"name\":\"a\"}]"))
		require.NoError(t, err)
		assert.Len(t, collect(t, seq), 1)
	})

	t.Run("Netscape", func(t *testing.T) {
		data := []byte("\xef\xbb\xbfx.com\tFALSE\t/\tFALSE\t0\ta\tb\n")

		format, seq, err := cookiefile.DetectAndParse(data)
		require.NoError(t, err)
		assert.Equal(t, cookiefile.FormatNetscape, format)

		cookies := collect(t, seq)
		require.Len(t, cookies, 1)
		assert.Equal(t, "x.com", cookies[0].Domain)
	})
}

func TestParseJSON_RepeatedKeyKeepsLast(t *testing.T) {
	data := `[
		{"name":"a","name":"b","domain":"x.com","domain":"y.com"},
		{"name":"a","name":"","Name":"c","domain":"x.com"}
	]`
	seq, err := cookiefile.ParseJSON([]byte(data))
	require.NoError(t, err)

	cookies := collect(t, seq)
	require.Len(t, cookies, 2)
	assert.Equal(t, "b", cookies[0].Name)
	assert.Equal(t, "y.com", cookies[0].Domain)
	assert.Equal(t, "c", cookies[1].Name, "an empty last value falls through to the next alias")
}
