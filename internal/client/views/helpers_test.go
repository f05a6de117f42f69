package views

import (
	"github.com/dmitrijs2005/gophdiary/internal/client/client/clienttest"
	"github.com/dmitrijs2005/gophdiary/internal/client/services"
	"github.com/dmitrijs2005/gophdiary/internal/client/session"
)

type fixture struct {
	fc      *clienttest.Fake
	auth    services.AuthService
	router  *Router
	notes   *Recorder
	session *session.Session
}

func newFixture(fc *clienttest.Fake) *fixture {
	s := session.New()
	return &fixture{
		fc:      fc,
		auth:    services.NewAuthService(fc, s, nil),
		router:  NewRouter(s),
		notes:   &Recorder{},
		session: s,
	}
}
