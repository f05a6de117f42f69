package views

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/gophdiary/internal/client/client"
	"github.com/dmitrijs2005/gophdiary/internal/client/services"
)

const (
	MsgFillAllFields     = "Please fill in all fields"
	MsgInvalidLogin      = "Invalid username or password"
	MsgServerError       = "Server error. Please try again later."
	MsgNetworkError      = "Network error. Please check your connection."
	MsgLoginFailed       = "Login failed. Please check your credentials."
	MsgLoginSuccess      = "Login successful!"
	MsgPasswordsMismatch = "Passwords do not match"
	MsgSignupSuccess     = "Account created successfully!"
	MsgSignupFailed      = "Signup failed. Please try again."
	MsgLogoutSuccess     = "Logged out successfully"
	MsgLogoutFailed      = "Failed to logout. Please try again."
)

// LoginView is the login form.
type LoginView struct {
	Username string
	Password string
	Loading  bool

	auth   services.AuthService
	router *Router
	notify Notifier
}

func NewLoginView(auth services.AuthService, router *Router, n Notifier) *LoginView {
	return &LoginView{auth: auth, router: router, notify: orNop(n)}
}

// Submit logs in with the form values. Empty fields are rejected without a
// request. On success the router moves to the dashboard.
func (v *LoginView) Submit(ctx context.Context) bool {
	if v.Username == "" || v.Password == "" {
		v.notify.Error(MsgFillAllFields)
		return false
	}

	v.Loading = true
	defer func() { v.Loading = false }()

	if err := v.auth.Login(ctx, v.Username, []byte(v.Password)); err != nil {
		v.notify.Error(loginErrorMessage(err))
		return false
	}
	v.Password = ""
	v.notify.Success(MsgLoginSuccess)
	v.router.Navigate(RouteDashboard)
	return true
}

// loginErrorMessage maps a failed login to the message shown to the user.
func loginErrorMessage(err error) string {
	status := client.StatusCode(err)
	switch {
	case status == http.StatusUnauthorized:
		return MsgInvalidLogin
	case status >= http.StatusInternalServerError:
		return MsgServerError
	case errors.Is(err, client.ErrUnavailable):
		return MsgNetworkError
	default:
		return MsgLoginFailed
	}
}

// SignupView is the registration form.
type SignupView struct {
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
	Loading         bool

	auth   services.AuthService
	router *Router
	notify Notifier
}

func NewSignupView(auth services.AuthService, router *Router, n Notifier) *SignupView {
	return &SignupView{auth: auth, router: router, notify: orNop(n)}
}

// Submit registers the account and logs into it.
func (v *SignupView) Submit(ctx context.Context) bool {
	if strings.TrimSpace(v.Username) == "" || strings.TrimSpace(v.Email) == "" || v.Password == "" {
		v.notify.Error(MsgFillAllFields)
		return false
	}
	if v.Password != v.ConfirmPassword {
		v.notify.Error(MsgPasswordsMismatch)
		return false
	}

	v.Loading = true
	defer func() { v.Loading = false }()

	err := v.auth.Register(ctx, strings.TrimSpace(v.Username), strings.TrimSpace(v.Email), []byte(v.Password))
	if err != nil {
		msg := MsgSignupFailed
		var he *client.HTTPError
		if errors.As(err, &he) && he.Message != "" && he.StatusCode < http.StatusInternalServerError {
			msg = he.Message
		}
		v.notify.Error(msg)
		return false
	}
	v.Password, v.ConfirmPassword = "", ""
	v.notify.Success(MsgSignupSuccess)
	v.router.Navigate(RouteDashboard)
	return true
}

// Logout ends the session from any authenticated page. The local session
// is dropped even when the server call fails.
func Logout(ctx context.Context, auth services.AuthService, router *Router, n Notifier) bool {
	n = orNop(n)
	err := auth.Logout(ctx)
	router.Navigate(RouteLogin)
	if err != nil {
		n.Error(MsgLogoutFailed)
		return false
	}
	n.Success(MsgLogoutSuccess)
	return true
}
