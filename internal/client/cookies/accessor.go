package cookies

import (
	"net/http"
	"strings"
)

// Names of the cookies that carry the backend session.
const (
	SessionCookie = "sessionid"
	CSRFCookie    = "csrftoken"
)

// Lookup returns the value of the cookie called name in a Cookie-header
// style string ("a=1; b=2"). Values may themselves contain '='. An empty
// value counts as absent.
func Lookup(header, name string) (string, bool) {
	if header == "" || name == "" {
		return "", false
	}
	for _, part := range strings.Split(header, ";") {
		k, v, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok || strings.TrimSpace(k) != name {
			continue
		}
		if v == "" {
			return "", false
		}
		return v, true
	}
	return "", false
}

// Header renders cookies as a Cookie-header style string.
func Header(cs []*http.Cookie) string {
	parts := make([]string, 0, len(cs))
	for _, c := range cs {
		parts = append(parts, c.Name+"="+c.Value)
	}
	return strings.Join(parts, "; ")
}
