// Package services contains application services for the moneytrack CLI.
// This file defines the authentication service: sign-in, sign-up, logout,
// and inspection of the locally stored session.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/moneytrack/moneytrack/internal/client/api"
	"github.com/moneytrack/moneytrack/internal/client/repositories/session"
	"github.com/moneytrack/moneytrack/internal/common"
	"github.com/moneytrack/moneytrack/internal/dbx"
)

// SignInForm carries the sign-in fields as entered by the user. Email is
// trimmed before submission; the password is sent verbatim.
type SignInForm struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

// SignUpForm carries the sign-up fields. ConfirmPassword never leaves the
// client: it is only compared against Password before any request is made.
type SignUpForm struct {
	Name            string `validate:"required"`
	Email           string `validate:"required,email"`
	Password        string `validate:"required"`
	ConfirmPassword string `validate:"required"`
}

// Session is the locally persisted authentication state. ExpiresAt is zero
// when the token carries no readable exp claim.
type Session struct {
	Token     string
	Email     string
	Name      string
	ExpiresAt time.Time
}

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - SignIn: authenticate against the server and persist the session token.
//   - SignUp: create a new account; on success the server signs the user in.
//   - Logout: wipe the locally stored session.
//   - CurrentSession: report the stored session, if any.
//
// All methods must honor context cancellation. Each SignIn/SignUp call maps
// to at most one HTTP request; there is no retrying and no suppression of
// repeated submissions.
type AuthService interface {
	SignIn(ctx context.Context, form SignInForm) (Session, error)
	SignUp(ctx context.Context, form SignUpForm) (Session, error)
	Logout(ctx context.Context) error
	CurrentSession(ctx context.Context) (Session, error)
}

// authService is the concrete AuthService backed by a remote Client and the
// local session database.
type authService struct {
	client   api.Client
	db       *sql.DB
	validate *validator.Validate
}

// NewAuthService constructs an AuthService bound to the given API client and DB.
func NewAuthService(client api.Client, db *sql.DB) AuthService {
	return &authService{client: client, db: db, validate: validator.New()}
}

func (a *authService) getSessionRepo() session.Repository {
	return session.NewSQLiteRepository(a.db)
}

// SignIn submits the credentials and, on success, stores the returned token.
// Server and transport failures are returned as-is; err.Error() is always a
// message fit for inline display.
func (a *authService) SignIn(ctx context.Context, form SignInForm) (Session, error) {
	form.Email = strings.TrimSpace(form.Email)

	if err := a.validate.Struct(form); err != nil {
		return Session{}, validationError(err)
	}

	token, err := a.client.SignIn(ctx, form.Email, form.Password)
	if err != nil {
		return Session{}, err
	}

	sess := Session{Token: token, Email: form.Email, ExpiresAt: tokenExpiry(token)}
	if err := a.saveSession(ctx, sess); err != nil {
		return Session{}, fmt.Errorf("session saving error: %w", err)
	}
	return sess, nil
}

// SignUp checks the confirmation field, submits the registration, and stores
// the returned token. When the passwords differ, no request is made and
// common.ErrPasswordMismatch is returned.
func (a *authService) SignUp(ctx context.Context, form SignUpForm) (Session, error) {
	form.Name = strings.TrimSpace(form.Name)
	form.Email = strings.TrimSpace(form.Email)

	if err := a.validate.Struct(form); err != nil {
		return Session{}, validationError(err)
	}
	if form.Password != form.ConfirmPassword {
		return Session{}, common.ErrPasswordMismatch
	}

	token, err := a.client.SignUp(ctx, form.Name, form.Email, form.Password)
	if err != nil {
		return Session{}, err
	}

	sess := Session{Token: token, Email: form.Email, Name: form.Name, ExpiresAt: tokenExpiry(token)}
	if err := a.saveSession(ctx, sess); err != nil {
		return Session{}, fmt.Errorf("session saving error: %w", err)
	}
	return sess, nil
}

// saveSession persists the token and the identity fields in one transaction.
func (a *authService) saveSession(ctx context.Context, sess Session) error {
	return dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		txRepo := session.NewSQLiteRepository(tx)
		if err := txRepo.Set(ctx, session.KeyToken, []byte(sess.Token)); err != nil {
			return err
		}
		if err := txRepo.Set(ctx, session.KeyEmail, []byte(sess.Email)); err != nil {
			return err
		}
		if sess.Name == "" {
			return txRepo.Delete(ctx, session.KeyName)
		}
		return txRepo.Set(ctx, session.KeyName, []byte(sess.Name))
	})
}

// Logout wipes the stored session.
func (a *authService) Logout(ctx context.Context) error {
	return a.getSessionRepo().Clear(ctx)
}

// CurrentSession loads the stored session. It returns common.ErrNotSignedIn
// when no token is stored and common.ErrSessionExpired (together with the
// session) when the token's exp claim is in the past.
func (a *authService) CurrentSession(ctx context.Context) (Session, error) {
	repo := a.getSessionRepo()

	token, err := repo.Get(ctx, session.KeyToken)
	if err != nil {
		return Session{}, err
	}
	if token == nil {
		return Session{}, common.ErrNotSignedIn
	}

	email, err := repo.Get(ctx, session.KeyEmail)
	if err != nil {
		return Session{}, err
	}
	name, err := repo.Get(ctx, session.KeyName)
	if err != nil {
		return Session{}, err
	}

	sess := Session{
		Token:     string(token),
		Email:     string(email),
		Name:      string(name),
		ExpiresAt: tokenExpiry(string(token)),
	}

	if !sess.ExpiresAt.IsZero() && sess.ExpiresAt.Before(time.Now()) {
		return sess, common.ErrSessionExpired
	}
	return sess, nil
}

// validationError converts validator output into a single displayable message.
func validationError(err error) error {
	var verr validator.ValidationErrors
	if errors.As(err, &verr) && len(verr) > 0 {
		return fmt.Errorf("invalid %s", strings.ToLower(verr[0].Field()))
	}
	return err
}
