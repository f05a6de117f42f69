// Package views holds the front-end independent view models of the diary
// client: the login and signup forms, the entries dashboard, the profile
// page and the router that guards them.
//
// A view keeps its own state, talks to the services and reports every
// outcome through a Notifier. The REPL and the TUI only render view state.
package views
