package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gophdiary/internal/client/client"
	"github.com/dmitrijs2005/gophdiary/internal/client/models"
	"github.com/dmitrijs2005/gophdiary/internal/client/session"
	"github.com/dmitrijs2005/gophdiary/internal/logging"
)

// AuthService defines authentication operations for the front-ends.
//
// Contract:
//   - CheckSession: probe the server; success means Authenticated, any
//     failure Unauthenticated.
//   - Login: authenticate and mark the session Authenticated.
//   - Logout: end the session on the server and always forget it locally.
//   - Register: create an account and log into it.
//
// Every method updates the shared Session.
type AuthService interface {
	CheckSession(ctx context.Context) error
	Login(ctx context.Context, username string, password []byte) error
	Logout(ctx context.Context) error
	Register(ctx context.Context, username, email string, password []byte) error
	Session() *session.Session
}

type authService struct {
	client  client.Client
	session *session.Session
	log     logging.Logger
}

// NewAuthService constructs an AuthService bound to the given API client and
// session.
func NewAuthService(c client.Client, s *session.Session, log logging.Logger) AuthService {
	if log == nil {
		log = logging.Nop()
	}
	return &authService{client: c, session: s, log: log}
}

func (a *authService) Session() *session.Session { return a.session }

// CheckSession asks the server for the current user. The returned error is
// informational; the session state already reflects it.
func (a *authService) CheckSession(ctx context.Context) error {
	info, err := a.client.UserInfo(ctx)
	if err != nil {
		a.session.Set(session.Unauthenticated, "")
		return fmt.Errorf("check session: %w", err)
	}
	a.session.Set(session.Authenticated, info.Username)
	return nil
}

func (a *authService) Login(ctx context.Context, username string, password []byte) error {
	err := a.client.Login(ctx, models.Credentials{Username: username, Password: string(password)})
	if err != nil {
		a.session.Set(session.Unauthenticated, "")
		return fmt.Errorf("login error: %w", err)
	}
	a.session.Set(session.Authenticated, username)
	a.log.Info(ctx, "logged in", "username", username)
	return nil
}

// Logout asks the server to end the session. Local cookies are cleared and
// the state becomes Unauthenticated whatever the server answered; the call
// error is still returned.
func (a *authService) Logout(ctx context.Context) error {
	callErr := a.client.Logout(ctx)
	if callErr != nil {
		a.log.Warn(ctx, "logout request failed", "error", callErr)
	}
	if err := a.client.ClearSession(ctx); err != nil {
		a.log.Warn(ctx, "failed to clear local session", "error", err)
	}
	a.session.Set(session.Unauthenticated, "")
	if callErr != nil {
		return fmt.Errorf("logout error: %w", callErr)
	}
	return nil
}

// Register creates the account, then logs into it with the same credentials.
func (a *authService) Register(ctx context.Context, username, email string, password []byte) error {
	reg := models.Registration{Username: username, Email: email, Password: string(password)}
	if err := a.client.Register(ctx, reg); err != nil {
		return fmt.Errorf("register error: %w", err)
	}
	return a.Login(ctx, username, password)
}
