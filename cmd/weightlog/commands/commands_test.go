package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// run executes the CLI against home and returns stdout.
func run(t *testing.T, home string, args ...string) (string, error) {
	t.Helper()
	root := newRoot()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append([]string{"--home", home, "--log-level", "error"}, args...))
	err := root.Execute()
	return out.String(), err
}

func mustRun(t *testing.T, home string, args ...string) string {
	t.Helper()
	out, err := run(t, home, args...)
	if err != nil {
		t.Fatalf("weightlog %s: %v", strings.Join(args, " "), err)
	}
	return out
}

func seed(t *testing.T, home string) {
	t.Helper()
	mustRun(t, home, "settings", "--start-date", "2025-01-01", "--start-weight", "90", "--target-weight", "80")
	for _, w := range []string{"90", "89.5", "89", "88.8"} {
		mustRun(t, home, "add", "--weight", w)
	}
}

func TestAddListEditRemove(t *testing.T) {
	home := t.TempDir()
	seed(t, home)

	out := mustRun(t, home, "list")
	for _, want := range []string{"2025-01-01", "2025-01-04", "89.50", "-0.50", "—"} {
		if !strings.Contains(out, want) {
			t.Fatalf("list missing %q:\n%s", want, out)
		}
	}

	out = mustRun(t, home, "edit", "2", "weight", "89.2")
	if !strings.Contains(out, "-0.80") {
		t.Fatalf("edit output = %q", out)
	}

	mustRun(t, home, "rm", "1")
	out = mustRun(t, home, "--json", "list")
	if strings.Count(out, `"date"`) != 3 {
		t.Fatalf("entries after rm:\n%s", out)
	}

	if _, err := run(t, home, "rm", "0"); err == nil {
		t.Fatal("expected error for position 0")
	}
	if _, err := run(t, home, "edit", "9", "notes", "x"); err == nil {
		t.Fatal("expected error for missing entry")
	}
}

func TestRangeTrendBounds(t *testing.T) {
	home := t.TempDir()
	seed(t, home)

	if out := mustRun(t, home, "range"); !strings.Contains(out, "From 2025-01-01 to 2025-01-04") {
		t.Fatalf("range = %q", out)
	}
	if out := mustRun(t, home, "range", "--quick", "week"); !strings.Contains(out, "From 2024-12-28 to 2025-01-04") {
		t.Fatalf("quick range = %q", out)
	}
	if _, err := run(t, home, "range", "--quick", "decade"); err == nil {
		t.Fatal("expected error for unknown quick range")
	}

	out := mustRun(t, home, "trend")
	if !strings.Contains(out, "Weight trend:") || !strings.Contains(out, "Daily change trend:") {
		t.Fatalf("trend = %q", out)
	}

	if out := mustRun(t, home, "bounds"); !strings.Contains(out, "Min: 80.00") || !strings.Contains(out, "Max: 90.00") {
		t.Fatalf("bounds = %q", out)
	}
	mustRun(t, home, "settings", "--start-weight", "70")
	if out := mustRun(t, home, "bounds"); !strings.Contains(out, "disabled") {
		t.Fatalf("bounds = %q, want disabled", out)
	}
}

func TestChart(t *testing.T) {
	home := t.TempDir()
	seed(t, home)

	path := filepath.Join(t.TempDir(), "weight.svg")
	mustRun(t, home, "chart", "weight", "--out", path, "--quick", "month")
	b, err := os.ReadFile(path)
	if err != nil || !bytes.Contains(b, []byte("<svg")) {
		t.Fatalf("chart file: %v", err)
	}
	if _, err := run(t, home, "chart", "weight", "--out", filepath.Join(t.TempDir(), "w.bmp")); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestExportImportAndPrefs(t *testing.T) {
	src := t.TempDir()
	seed(t, src)
	mustRun(t, src, "prefs", "--trend=false")

	file := filepath.Join(t.TempDir(), "export.json")
	mustRun(t, src, "export", "--out", file, "--passphrase", "pw")

	dst := t.TempDir()
	if _, err := run(t, dst, "import", file); err == nil {
		t.Fatal("expected error without passphrase")
	}
	out := mustRun(t, dst, "import", file, "-p", "pw")
	if !strings.Contains(out, "4 entries") {
		t.Fatalf("import = %q", out)
	}
	if out := mustRun(t, dst, "prefs"); !strings.Contains(out, "Trend:           off") {
		t.Fatalf("prefs = %q", out)
	}

	bad := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(bad, []byte("{oops"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := run(t, dst, "import", bad); err == nil || err.Error() != "Invalid JSON file" {
		t.Fatalf("err = %v, want Invalid JSON file", err)
	}
}
