// Package cookies holds the client's cookie store: a Cookie-header accessor
// and Jar, an http.CookieJar scoped to the API origin that can be persisted
// between runs.
package cookies

import (
	"context"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"

	"github.com/dmitrijs2005/gophdiary/internal/client/models"
	"golang.org/x/net/publicsuffix"
)

// Persister loads and saves the cookie set of one origin.
type Persister interface {
	Load(ctx context.Context) ([]models.StoredCookie, error)
	Save(ctx context.Context, cs []models.StoredCookie) error
}

// Jar is an http.CookieJar bound to the API base URL.
//
// Only name and value of a cookie survive persistence, so restored cookies
// become session cookies for the whole origin.
type Jar struct {
	base  *url.URL
	jar   *cookiejar.Jar
	store Persister
}

var _ http.CookieJar = (*Jar)(nil)

// NewJar creates an empty jar for base. store may be nil, in which case Load
// and Save are no-ops.
func NewJar(base *url.URL, store Persister) (*Jar, error) {
	j, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, fmt.Errorf("cookie jar: %w", err)
	}
	return &Jar{base: base, jar: j, store: store}, nil
}

func (j *Jar) SetCookies(u *url.URL, cs []*http.Cookie) { j.jar.SetCookies(u, cs) }

func (j *Jar) Cookies(u *url.URL) []*http.Cookie { return j.jar.Cookies(u) }

// Header returns the cookies the API origin would receive, as one string.
func (j *Jar) Header() string {
	return Header(j.jar.Cookies(j.scope()))
}

// Get returns the value of a cookie visible to the API origin.
func (j *Jar) Get(name string) (string, bool) {
	return Lookup(j.Header(), name)
}

// Has reports whether a non-empty cookie called name is present.
func (j *Jar) Has(name string) bool {
	_, ok := j.Get(name)
	return ok
}

// Clear expires the named cookies for the API origin, the equivalent of
// writing "name=; expires=Thu, 01 Jan 1970 00:00:00 GMT; path=/".
func (j *Jar) Clear(names ...string) {
	expired := make([]*http.Cookie, 0, len(names))
	for _, n := range names {
		expired = append(expired, &http.Cookie{Name: n, Value: "", Path: "/", MaxAge: -1})
	}
	j.jar.SetCookies(j.root(), expired)
}

// Load restores persisted cookies into the jar.
func (j *Jar) Load(ctx context.Context) error {
	if j.store == nil {
		return nil
	}
	saved, err := j.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("load cookies: %w", err)
	}
	cs := make([]*http.Cookie, 0, len(saved))
	for _, c := range saved {
		cs = append(cs, &http.Cookie{Name: c.Name, Value: c.Value, Path: "/"})
	}
	j.jar.SetCookies(j.root(), cs)
	return nil
}

// Save persists the cookies currently visible to the API origin.
func (j *Jar) Save(ctx context.Context) error {
	if j.store == nil {
		return nil
	}
	current := j.jar.Cookies(j.scope())
	cs := make([]models.StoredCookie, 0, len(current))
	for _, c := range current {
		cs = append(cs, models.StoredCookie{Name: c.Name, Value: c.Value})
	}
	if err := j.store.Save(ctx, cs); err != nil {
		return fmt.Errorf("save cookies: %w", err)
	}
	return nil
}

func (j *Jar) root() *url.URL {
	return &url.URL{Scheme: j.base.Scheme, Host: j.base.Host, Path: "/"}
}

// scope is the URL whose cookies count as the session: every endpoint lives
// under /api/.
func (j *Jar) scope() *url.URL {
	return &url.URL{Scheme: j.base.Scheme, Host: j.base.Host, Path: "/api/"}
}
