// Package session persists the CLI's session state as key-value pairs in
// the local database. The well-known keys are defined below; the token is
// stored under KeyToken and survives restarts until overwritten or cleared.
package session

import "context"

// Well-known session keys.
const (
	KeyToken = "token"
	KeyEmail = "email"
	KeyName  = "name"
)

type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
