package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// execStub records which commands the REPL dispatched.
type execStub struct {
	signedIn bool
	calls    []string
}

func (s *execStub) isSignedIn() bool { return s.signedIn }
func (s *execStub) record(name string) error {
	s.calls = append(s.calls, name)
	return nil
}
func (s *execStub) SignIn(context.Context) error { return s.record("signin") }
func (s *execStub) SignUp(context.Context) error { return s.record("signup") }
func (s *execStub) Whoami(context.Context) error { return s.record("whoami") }
func (s *execStub) Add(context.Context) error    { return s.record("add") }
func (s *execStub) List(context.Context) error   { return s.record("list") }
func (s *execStub) Logout(context.Context) error { return s.record("logout") }

func runScript(t *testing.T, s *execStub, script string) []string {
	t.Helper()
	origPrintln := printlnFn
	var lines []string
	printlnFn = func(a ...any) (int, error) {
		parts := make([]string, 0, len(a))
		for _, v := range a {
			if str, ok := v.(string); ok {
				parts = append(parts, str)
			}
		}
		lines = append(lines, strings.Join(parts, " "))
		return 0, nil
	}
	defer func() { printlnFn = origPrintln }()

	scanner := bufio.NewScanner(strings.NewReader(script))
	runREPL(context.Background(), s, func() string { return "" }, scanner)
	return lines
}

func TestREPL_DispatchesCommands(t *testing.T) {
	s := &execStub{}
	runScript(t, s, "signin\nsignup\nwhoami\nadd\nlist\nlogout\nexit\n")

	assert.Equal(t, []string{"signin", "signup", "whoami", "add", "list", "logout"}, s.calls)
}

func TestREPL_Aliases(t *testing.T) {
	s := &execStub{}
	runScript(t, s, "login\nregister\nl\nquit\n")

	assert.Equal(t, []string{"signin", "signup", "list"}, s.calls)
}

func TestREPL_UnknownCommandReported(t *testing.T) {
	s := &execStub{}
	lines := runScript(t, s, "frobnicate\nexit\n")

	assert.Empty(t, s.calls)
	found := false
	for _, l := range lines {
		if strings.Contains(l, "Unknown command:") {
			found = true
		}
	}
	assert.True(t, found, "unknown command must be reported: %v", lines)
}

func TestREPL_BlankLinesIgnored(t *testing.T) {
	s := &execStub{}
	runScript(t, s, "\n\n  \nexit\n")
	assert.Empty(t, s.calls)
}

func TestREPL_HelpDependsOnState(t *testing.T) {
	out := runScript(t, &execStub{signedIn: false}, "help\nexit\n")
	joined := strings.Join(out, "\n")
	assert.Contains(t, joined, "signin")

	out = runScript(t, &execStub{signedIn: true}, "help\nexit\n")
	joined = strings.Join(out, "\n")
	assert.Contains(t, joined, "logout")
}

func TestREPL_ExitsOnEOF(t *testing.T) {
	s := &execStub{}
	runScript(t, s, "signin")
	assert.Equal(t, []string{"signin"}, s.calls)
}
