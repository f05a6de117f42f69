// Package services contains the application services of the diary client.
// They sit between the front-ends (REPL, commands, TUI) and the typed API
// client, and keep the session state in step with the server.
package services
