package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gophdiary/internal/client/views"
	"github.com/dmitrijs2005/gophdiary/internal/shared"
)

// The prompt helpers are indirections used to facilitate testing.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getMultiline  = GetMultiline
	getConfirm    = GetConfirm
)

// Login prompts for credentials and logs in.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, "Enter password", a.out)
	if err != nil {
		return err
	}
	defer shared.WipeByteArray(password)

	return failed(a.LoginWith(ctx, username, password))
}

// LoginWith submits the login form with the given credentials.
func (a *App) LoginWith(ctx context.Context, username string, password []byte) bool {
	a.loginView.Username = username
	a.loginView.Password = string(password)
	defer func() { a.loginView.Password = "" }()
	return a.loginView.Submit(ctx)
}

// Signup prompts for the account details, creates the account and logs in.
func (a *App) Signup(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, "Enter password", a.out)
	if err != nil {
		return err
	}
	defer shared.WipeByteArray(password)
	confirm, err := getPassword(a.reader, "Confirm password", a.out)
	if err != nil {
		return err
	}
	defer shared.WipeByteArray(confirm)

	return failed(a.SignupWith(ctx, username, email, password, confirm))
}

// SignupWith submits the signup form.
func (a *App) SignupWith(ctx context.Context, username, email string, password, confirm []byte) bool {
	v := a.signupView
	v.Username, v.Email = username, email
	v.Password, v.ConfirmPassword = string(password), string(confirm)
	defer func() { v.Password, v.ConfirmPassword = "", "" }()
	return v.Submit(ctx)
}

// Logout ends the session; local cookies are dropped even if the server
// call fails.
func (a *App) Logout(ctx context.Context) error {
	return failed(views.Logout(ctx, a.auth, a.router, a.notify))
}

// Whoami prints the session state as the server sees it.
func (a *App) Whoami(ctx context.Context) error {
	a.CheckSession(ctx)
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Not logged in")
		return ErrCommandFailed
	}
	name := a.session.Username()
	if name == "" {
		name = "(unknown user)"
	}
	fmt.Fprintf(a.out, "Logged in as %s\n", name)
	return nil
}
