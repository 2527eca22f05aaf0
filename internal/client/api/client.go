// Package api implements the HTTP client for the moneytrack backend.
//
// Two endpoints form the authentication contract: POST /api/auth/signin and
// POST /api/auth/signup, both JSON in, JSON out. The rest of the API
// (profile, transactions) requires a bearer token obtained from one of them.
package api

import (
	"context"
	"errors"

	"github.com/moneytrack/moneytrack/internal/client/models"
)

// Client defines the remote operations the CLI depends on. The concrete
// implementation is HTTPClient; tests substitute fakes.
type Client interface {
	// SignIn exchanges credentials for a session token.
	SignIn(ctx context.Context, email, password string) (string, error)

	// SignUp registers a new account and returns its session token.
	SignUp(ctx context.Context, name, email, password string) (string, error)

	// Me returns the profile of the token's owner.
	Me(ctx context.Context, token string) (models.Profile, error)

	// AddTransaction records a new expense or income entry.
	AddTransaction(ctx context.Context, token string, tx models.NewTransaction) error

	// Transactions fetches the filtered listing with summary totals.
	Transactions(ctx context.Context, token string, f models.TransactionFilter) (models.Report, error)
}

// ErrUnavailable marks transport-level failures (connection refused, DNS,
// interrupted body) as opposed to responses the server actually produced.
var ErrUnavailable = errors.New("server unavailable")
