package cli

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	_ "modernc.org/sqlite"

	"zed-recent/internal/config"
	"zed-recent/internal/store"
)

type response struct {
	Items []map[string]any `json:"items"`
}

func runCLI(t *testing.T, args []string) (stdout []byte, stderr []byte, err error) {
	t.Helper()

	cmd := NewRootCmd()

	var outBuf bytes.Buffer
	var errBuf bytes.Buffer
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)

	e := cmd.Execute()
	return outBuf.Bytes(), errBuf.Bytes(), e
}

// isolate points every config source at a fresh temp dir.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv(store.EnvConfigDir, dir)
	t.Setenv(config.EnvHistoryDB, "")
	t.Setenv(config.EnvDebug, "")
	t.Setenv(config.EnvPretty, "")
	t.Setenv(config.EnvProjectsDirectories, "")
	return dir
}

func mustResponse(t *testing.T, args ...string) response {
	t.Helper()
	stdout, stderr, err := runCLI(t, args)
	if err != nil {
		t.Fatalf("command failed: zed-recent %v\nerr: %v\nstderr:\n%s\nstdout:\n%s", args, err, string(stderr), string(stdout))
	}
	var resp response
	if err := json.Unmarshal(stdout, &resp); err != nil {
		t.Fatalf("unmarshal stdout: %v\nstdout:\n%s", err, string(stdout))
	}
	if len(resp.Items) == 0 {
		t.Fatalf("expected at least one item; stdout:\n%s", string(stdout))
	}
	return resp
}

func writeHistory(t *testing.T, dir string, stmts ...string) {
	t.Helper()
	path := filepath.Join(dir, "Zed", "db", "0-stable", "db.sqlite")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open fixture: %v", err)
	}
	defer db.Close()
	all := append([]string{
		`CREATE TABLE workspaces (workspace_id INTEGER PRIMARY KEY, local_paths BLOB, timestamp TEXT NOT NULL)`,
	}, stmts...)
	for _, s := range all {
		if _, err := db.Exec(s); err != nil {
			t.Fatalf("exec %q: %v", s, err)
		}
	}
}

func TestRecentMode_EmitsItemsFromHistory(t *testing.T) {
	dir := isolate(t)
	writeHistory(t, dir,
		`INSERT INTO workspaces VALUES (5, '/home/u/api', '2024-01-01 00:00:00')`,
		`INSERT INTO workspaces VALUES (9, 'vscode-remote://wsl/home/u/proj', '2024-02-01 00:00:00')`,
	)

	resp := mustResponse(t)
	if len(resp.Items) != 2 {
		t.Fatalf("expected 2 items, got %d: %v", len(resp.Items), resp.Items)
	}
	first := resp.Items[0]
	if first["uid"] != "9" || first["title"] != "proj" || first["arg"] != "/home/u/proj" || first["subtitle"] != "/home/u/proj" {
		t.Fatalf("unexpected first item: %v", first)
	}
	icon, _ := first["icon"].(map[string]any)
	if icon["path"] != "/home/u/proj" || icon["type"] != "fileicon" {
		t.Fatalf("unexpected icon: %v", icon)
	}
	for _, it := range resp.Items {
		if _, ok := it["valid"]; ok {
			t.Fatalf("expected no valid key on real items: %v", it)
		}
	}

	resp = mustResponse(t, "API")
	if len(resp.Items) != 1 || resp.Items[0]["uid"] != "5" {
		t.Fatalf("expected only workspace 5 for query, got %v", resp.Items)
	}
}

func TestRecentMode_NoMatchEmitsPlaceholder(t *testing.T) {
	dir := isolate(t)
	writeHistory(t, dir, `INSERT INTO workspaces VALUES (1, '/home/u/api', '2024-01-01 00:00:00')`)

	resp := mustResponse(t, "nothing-matches-this")
	if len(resp.Items) != 1 {
		t.Fatalf("expected exactly one placeholder, got %v", resp.Items)
	}
	it := resp.Items[0]
	if it["uid"] != "no-results" || it["valid"] != false || it["arg"] != "" {
		t.Fatalf("unexpected placeholder: %v", it)
	}
}

func TestRecentMode_MissingHistoryFailsWithoutOutput(t *testing.T) {
	isolate(t)

	stdout, stderr, err := runCLI(t, []string{"query"})
	if err == nil {
		t.Fatalf("expected failure without a history database")
	}
	if len(stdout) != 0 {
		t.Fatalf("expected no stdout on failure, got %q", string(stdout))
	}
	if !strings.Contains(string(stderr), "storage unavailable") {
		t.Fatalf("expected storage error on stderr, got %q", string(stderr))
	}
}

func TestDirsMode_ListsSortedSubdirectories(t *testing.T) {
	isolate(t)
	home := t.TempDir()
	for _, n := range []string{"Banana", "apple", ".hidden"} {
		if err := os.MkdirAll(filepath.Join(home, "code", n), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
	}
	t.Setenv("HOME", home)
	t.Setenv(config.EnvProjectsDirectories, "~/code\n\n/definitely/not/here\n")

	resp := mustResponse(t, "--dirs")
	var got []string
	for _, it := range resp.Items {
		got = append(got, it["title"].(string))
	}
	if strings.Join(got, ",") != "apple,Banana" {
		t.Fatalf("expected apple,Banana; got %v", got)
	}
	wantArg := filepath.Join(home, "code", "apple")
	if resp.Items[0]["arg"] != wantArg || resp.Items[0]["uid"] != wantArg {
		t.Fatalf("expected arg/uid %q, got %v", wantArg, resp.Items[0])
	}

	resp = mustResponse(t, "--dirs", "ban")
	if len(resp.Items) != 1 || resp.Items[0]["title"] != "Banana" {
		t.Fatalf("expected Banana only, got %v", resp.Items)
	}
}

func TestDirsMode_NoRootsEmitsPlaceholder(t *testing.T) {
	isolate(t)
	os.Unsetenv(config.EnvProjectsDirectories)

	resp := mustResponse(t, "--dirs")
	if len(resp.Items) != 1 || resp.Items[0]["uid"] != "no-results" {
		t.Fatalf("expected placeholder, got %v", resp.Items)
	}
}

func TestPrettyOutputIsValidJSON(t *testing.T) {
	isolate(t)

	stdout, _, err := runCLI(t, []string{"--dirs", "--pretty"})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !bytes.Contains(stdout, []byte("\n  \"items\": [")) {
		t.Fatalf("expected indented output, got %q", string(stdout))
	}
	var resp response
	if err := json.Unmarshal(stdout, &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
}

func TestPrettyFromEnvironment(t *testing.T) {
	isolate(t)
	t.Setenv(config.EnvPretty, "1")

	stdout, _, err := runCLI(t, []string{"--dirs"})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !bytes.Contains(stdout, []byte("\n  \"items\": [")) {
		t.Fatalf("expected indented output, got %q", string(stdout))
	}
}

func TestExtraPositionalArgsAreIgnored(t *testing.T) {
	isolate(t)
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "alpha"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	t.Setenv(config.EnvProjectsDirectories, root)

	resp := mustResponse(t, "--dirs", "--", "alp", "zzz")
	if len(resp.Items) != 1 || resp.Items[0]["title"] != "alpha" {
		t.Fatalf("expected the first argument to be the query, got %v", resp.Items)
	}
}

func TestHelpLikeQueryEmitsPlaceholder(t *testing.T) {
	isolate(t)

	resp := mustResponse(t, "--dirs", "--", "-h")
	if len(resp.Items) != 1 || resp.Items[0]["uid"] != "no-results" {
		t.Fatalf("expected placeholder, got %v", resp.Items)
	}
}
