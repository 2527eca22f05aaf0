// Package cli provides the interactive moneytrack command-line client.
//
// It wires configuration, local session storage, and the backend API into an
// interactive REPL. Typical flow: sign in (or sign up), then record and list
// transactions; the session token is persisted locally so a restarted client
// stays signed in until logout.
//
// Key commands:
//   - signin / signup / logout
//   - whoami — show the authenticated profile
//   - add    — record an expense or income
//   - list   — filtered listing with summary totals
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// All failures of a command are reported as a single inline message; nothing
// escapes the loop.
package cli
