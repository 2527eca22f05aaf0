package cli

import (
	"context"
	"fmt"

	"github.com/moneytrack/moneytrack/internal/client/services"
	"github.com/moneytrack/moneytrack/internal/common"
)

// getSimpleText, getRawLine and getPassword are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var (
	getSimpleText = GetSimpleText
	getRawLine    = GetRawLine
	getPassword   = GetPassword
)

// SignIn prompts for credentials and submits them. Every outcome of the
// submission itself is reflected inline: the server's message on rejection,
// the transport error text on network failure, a signed-in state change on
// success. Only prompt I/O errors are returned.
func (a *App) SignIn(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	sess, err := a.authService.SignIn(ctx, services.SignInForm{
		Email:    email,
		Password: string(password),
	})
	if err != nil {
		a.showError(err.Error())
		return nil
	}

	a.userEmail = sess.Email
	fmt.Fprintf(a.out, "Signed in as %s\n", sess.Email)
	return nil
}

// SignUp prompts for the registration fields and submits them. The
// confirmation password is compared locally; on mismatch no request is made
// and the mismatch message is displayed.
func (a *App) SignUp(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	confirm, err := getPassword("Confirm password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	sess, err := a.authService.SignUp(ctx, services.SignUpForm{
		Name:            name,
		Email:           email,
		Password:        string(password),
		ConfirmPassword: string(confirm),
	})
	if err != nil {
		a.showError(err.Error())
		return nil
	}

	a.userEmail = sess.Email
	fmt.Fprintf(a.out, "Account created, signed in as %s\n", sess.Email)
	return nil
}

// Logout clears the stored session and the in-memory state.
func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		a.showError(err.Error())
		return nil
	}
	a.userEmail = ""
	fmt.Fprintln(a.out, "Signed out")
	return nil
}
