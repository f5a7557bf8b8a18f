package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExec struct {
	loggedIn bool
	calls    []string
}

func (f *fakeExec) record(s string) error { f.calls = append(f.calls, s); return nil }

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Register(ctx context.Context) error { return f.record("register") }
func (f *fakeExec) Login(ctx context.Context) error {
	f.loggedIn = true
	return f.record("login")
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.loggedIn = false
	return f.record("logout")
}
func (f *fakeExec) Posts(ctx context.Context) error { return f.record("posts") }
func (f *fakeExec) Show(ctx context.Context, id string) error { return f.record("show " + id) }
func (f *fakeExec) Create(ctx context.Context) error { return f.record("create") }
func (f *fakeExec) Edit(ctx context.Context, id string) error { return f.record("edit " + id) }
func (f *fakeExec) Delete(ctx context.Context, id string) error { return f.record("delete " + id) }

func TestExecute_Dispatch(t *testing.T) {
	tests := []struct {
		name    string
		parts   []string
		want    []string
		wantErr error
		output  string
	}{
		{name: "posts", parts: []string{"posts"}, want: []string{"posts"}},
		{name: "list alias", parts: []string{"l"}, want: []string{"posts"}},
		{name: "show", parts: []string{"show", "42"}, want: []string{"show 42"}},
		{name: "edit", parts: []string{"edit", "42", "extra"}, want: []string{"edit 42"}},
		{name: "delete", parts: []string{"delete", "7"}, want: []string{"delete 7"}},
		{name: "missing id", parts: []string{"edit"}, wantErr: errUsage, output: "Usage: edit <id>\n"},
		{name: "unknown", parts: []string{"frobnicate"}, wantErr: errUsage, output: "Unknown command: frobnicate\n"},
		{name: "help", parts: []string{"help"}, output: "Available commands: posts, show <id>, register, login, exit\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &fakeExec{}
			var out bytes.Buffer

			err := execute(context.Background(), f, tt.parts, &out)

			require.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.want, f.calls)
			if tt.output != "" {
				assert.Equal(t, tt.output, out.String())
			}
		})
	}
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	input := "help\nlogin\n\nhelp\ncreate\nposts\nshow 123\nfoobar\nlogout\nexit\nposts\n"

	f := &fakeExec{}
	var out bytes.Buffer

	runREPL(context.Background(), f, func() string { return "(status)" }, rdr(input), &out)

	assert.Equal(t, []string{"login", "create", "posts", "show 123", "logout"}, f.calls, "nothing runs after exit")
	assert.Contains(t, out.String(), "blog(status)> ")
	assert.Contains(t, out.String(), "Available commands: posts, show <id>, create, edit <id>, delete <id>, logout, exit")
	assert.Contains(t, out.String(), "Unknown command: foobar")
	assert.Contains(t, out.String(), "Bye!")
}

func TestRunREPL_StopsOnEOF(t *testing.T) {
	f := &fakeExec{}
	var out bytes.Buffer

	runREPL(context.Background(), f, func() string { return "" }, rdr("posts"), &out)

	assert.Equal(t, []string{"posts"}, f.calls, "a last line without newline still runs")
	assert.NotContains(t, out.String(), "Bye!")
}
