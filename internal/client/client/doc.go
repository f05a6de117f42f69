// Package client talks to the diary REST backend.
//
// # Overview
//
// The package provides:
//  1. The typed API contract (see the Client interface): UserInfo, Login,
//     Logout, Register, entries CRUD and profile read/update.
//  2. HTTPClient, a net/http implementation that keeps credentials in a
//     cookie jar, refreshes the CSRF cookie before every mutating request and
//     echoes it in the X-CSRFToken header.
//  3. Local persistence bootstrap (InitDatabase, RunMigrations) for the
//     SQLite cookie store, applying embedded goose migrations.
//
// # Error Handling
//
// Non-2xx responses fail with *HTTPError, whose message is the server's
// "error" field when present. Transport failures wrap ErrUnavailable and
// unexpected 2xx bodies wrap ErrMalformedResponse. Authentication failures
// match ErrUnauthorized with errors.Is.
//
// Every call takes a context.Context; the http.Client timeout applies on top.
package client
