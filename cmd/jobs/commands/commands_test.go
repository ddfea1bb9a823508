package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teranos/jobs/am"
	"github.com/teranos/jobs/errors"
)

func TestMain(m *testing.M) {
	pterm.DisableColor()
	os.Exit(m.Run())
}

// syncBuffer lets the watch test read output while the command writes it
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// isolate keeps user config and JOBS_* variables out of the test
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	for _, kv := range os.Environ() {
		if name, _, ok := strings.Cut(kv, "="); ok && strings.HasPrefix(name, "JOBS_") {
			t.Setenv(name, "")
			os.Unsetenv(name)
		}
	}
	am.Reset()
	t.Cleanup(am.Reset)
}

func writeJobs(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "jobs.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

const acmeJobs = `{"jobs":[{"id":1,"company":"Acme","title":"Engineer","type":"FT","status":"Accepted"}]}`

func TestShow(t *testing.T) {
	isolate(t)
	path := writeJobs(t, acmeJobs)

	stdout, _, err := execute(t, "--file", path, "--no-clear")
	require.NoError(t, err)

	assert.NotContains(t, stdout, "\033[2J")
	for _, want := range []string{"╭", "Company", "Acme", "Engineer", "FT", "Accepted"} {
		assert.Contains(t, stdout, want)
	}
	assert.Less(t, strings.Index(stdout, "╭"), strings.Index(stdout, "Acme"), "banner before table")
}

func TestShow_ClearsScreenByDefault(t *testing.T) {
	isolate(t)
	path := writeJobs(t, `{"jobs":[]}`)

	stdout, _, err := execute(t, "-f", path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "\033[H\033[2J"))
	assert.Contains(t, stdout, "Company", "empty list still shows the header")
}

func TestShow_Failures(t *testing.T) {
	tests := []struct {
		name    string
		content string
		args    []string
		check   func(error) bool
	}{
		{
			name:  "missing file",
			args:  []string{"--file", filepath.Join(os.TempDir(), "does-not-exist", "jobs.json")},
			check: errors.IsReadError,
		},
		{
			name:    "malformed json",
			content: `{"jobs":[`,
			check:   errors.IsParseError,
		},
		{
			name:    "banner glyph missing",
			content: acmeJobs,
			args:    []string{"--banner", "☃"},
			check:   errors.IsRenderError,
		},
		{
			name:    "blank banner",
			content: acmeJobs,
			args:    []string{"--banner", " "},
			check:   errors.IsInvalidConfigError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			args := append([]string{"--no-clear"}, tt.args...)
			if tt.content != "" {
				args = append(args, "--file", writeJobs(t, tt.content))
			}

			stdout, _, err := execute(t, args...)
			require.Error(t, err)
			assert.True(t, tt.check(err), "unexpected error kind: %v", err)
			assert.Empty(t, stdout, "nothing is printed when any step fails")
		})
	}
}

func TestShow_EnvironmentPath(t *testing.T) {
	isolate(t)
	path := writeJobs(t, acmeJobs)
	t.Setenv("JOBS_PATH", path)

	stdout, _, err := execute(t, "--no-clear")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Acme")
}

func TestAmShow(t *testing.T) {
	isolate(t)

	stdout, _, err := execute(t, "am", "show", "--format", "json", "--file", "/srv/jobs.yaml", "--banner", "Hunt")
	require.NoError(t, err)

	var cfg am.Config
	require.NoError(t, json.Unmarshal([]byte(stdout), &cfg))
	assert.Equal(t, "/srv/jobs.yaml", cfg.Jobs.Path)
	assert.Equal(t, "Hunt", cfg.Display.BannerText)
	assert.True(t, cfg.Display.ClearScreen)

	for _, format := range []string{"toml", "yaml"} {
		stdout, _, err := execute(t, "am", "show", "--format", format)
		require.NoError(t, err)
		assert.Contains(t, stdout, "banner_text")
	}

	_, _, err = execute(t, "am", "show", "--format", "ini")
	require.Error(t, err)
}

func TestAmGet(t *testing.T) {
	isolate(t)

	stdout, _, err := execute(t, "am", "get", "display.banner_text")
	require.NoError(t, err)
	assert.Equal(t, am.DefaultBannerText+"\n", stdout)

	_, _, err = execute(t, "am", "get", "display.nope")
	require.Error(t, err)
}

func TestAmGet_SeesFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"file", []string{"am", "get", "jobs.path", "--file", "/srv/jobs.yaml"}, "/srv/jobs.yaml\n"},
		{"banner", []string{"am", "get", "display.banner_text", "--banner", "Hunt"}, "Hunt\n"},
		{"no-clear", []string{"am", "get", "display.clear_screen", "--no-clear"}, "false\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			stdout, _, err := execute(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, stdout)
		})
	}
}

func TestAmValidate(t *testing.T) {
	isolate(t)

	stdout, _, err := execute(t, "am", "validate")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Configuration is valid")

	_, _, err = execute(t, "am", "validate", "--banner", "")
	require.Error(t, err)
	assert.True(t, errors.IsInvalidConfigError(err))
}

func TestAmWhere(t *testing.T) {
	isolate(t)

	stdout, _, err := execute(t, "am", "where")
	require.NoError(t, err)
	assert.Contains(t, stdout, "/etc/jobs/am.toml")
	assert.Contains(t, stdout, filepath.Join(".jobs", "am.toml"))
}

func TestVersion(t *testing.T) {
	isolate(t)

	stdout, _, err := execute(t, "version", "--json")
	require.NoError(t, err)

	var info map[string]string
	require.NoError(t, json.Unmarshal([]byte(stdout), &info))
	assert.NotEmpty(t, info["go_version"])

	stdout, _, err = execute(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "jobs "))
}

func TestWatch(t *testing.T) {
	isolate(t)
	path := writeJobs(t, acmeJobs)

	var stdout, stderr syncBuffer
	root := NewRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs([]string{"watch", "--file", path, "--no-clear"})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- root.ExecuteContext(ctx) }()

	require.Eventually(t, func() bool { return strings.Contains(stdout.String(), "Acme") },
		5*time.Second, 20*time.Millisecond, "initial draw")

	require.NoError(t, os.WriteFile(path, []byte(`{"jobs":[`), 0o644))
	require.Eventually(t, func() bool { return strings.Contains(stderr.String(), "Error:") },
		5*time.Second, 20*time.Millisecond, "malformed save is reported")

	require.NoError(t, os.WriteFile(path,
		[]byte(`{"jobs":[{"id":2,"company":"Globex","title":"Analyst","type":"PT","status":"Rejected"}]}`), 0o644))
	require.Eventually(t, func() bool { return strings.Contains(stdout.String(), "Globex") },
		5*time.Second, 20*time.Millisecond, "redraw after save")

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop after cancel")
	}
}

func TestWatch_StartupFailure(t *testing.T) {
	isolate(t)

	_, _, err := execute(t, "watch", "--file", filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.True(t, errors.IsReadError(err))
}

func TestPrintError(t *testing.T) {
	var buf bytes.Buffer
	PrintError(&buf, errors.WithHint(errors.New("boom"), "try again"))
	assert.Equal(t, "Error: boom\nHint: try again\n", buf.String())

	buf.Reset()
	PrintError(&buf, nil)
	assert.Empty(t, buf.String())
}
