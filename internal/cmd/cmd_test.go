package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jimezsa/jobboard/internal/config"
	"github.com/jimezsa/jobboard/internal/store"
	"github.com/jimezsa/jobboard/internal/ui"
	"github.com/rs/zerolog"
)

const twoPostings = `<html><head>
<script type="application/ld+json">
[
  {"@type": "JobPosting", "title": "Go Developer", "jobLocation": "Berlin", "telephone": "555-0100"},
  {"@type": "JobPosting", "title": "SRE", "baseSalary": "80k"}
]
</script>
</head></html>`

func newTestContext(t *testing.T, input string) (*Context, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	t.Setenv("JOBBOARD_CONFIG_DIR", t.TempDir())

	var out, errOut bytes.Buffer
	return &Context{
		In:        strings.NewReader(input),
		Out:       &out,
		Err:       &errOut,
		UI:        ui.New(strings.NewReader(input), &out, &errOut, ui.ColorNever, true),
		Config:    config.DefaultConfig(),
		Database:  filepath.Join(t.TempDir(), "board.db"),
		Logger:    zerolog.Nop(),
		Version:   "test",
		ColorMode: ui.ColorNever,
	}, &out, &errOut
}

func TestMenuReportsTablesAndExits(t *testing.T) {
	ctx, out, _ := newTestContext(t, "9\n")

	if err := (&MenuCmd{}).Run(ctx); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	for _, want := range []string{
		"Table 'users' ready.",
		"Table 'jobs' ready.",
		"Table 'applications' ready.",
		"=== JobConnect Menu ===",
		"Exiting...",
	} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("output missing %q\n%s", want, out.String())
		}
	}
}

func TestMenuReportsFailingTableOnStderr(t *testing.T) {
	ctx, out, errOut := newTestContext(t, "9\n")

	st, err := store.Open(ctx.Database)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	for _, stmt := range []string{`CREATE TABLE x (a TEXT)`, `CREATE INDEX jobs ON x(a)`} {
		if _, err := st.DB.Exec(stmt); err != nil {
			t.Fatalf("Exec(%s) error = %v", stmt, err)
		}
	}
	if err := st.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	if err := (&MenuCmd{}).Run(ctx); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !strings.HasPrefix(errOut.String(), "SQL error (jobs): ") {
		t.Fatalf("stderr = %q, want SQL error for jobs", errOut.String())
	}
	if strings.Contains(out.String(), "Table 'jobs' ready.") {
		t.Fatalf("jobs reported ready\n%s", out.String())
	}
	for _, want := range []string{"Table 'users' ready.", "Table 'applications' ready.", "Exiting..."} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("output missing %q\n%s", want, out.String())
		}
	}
}

func TestMenuFailsWhenDatabaseCannotOpen(t *testing.T) {
	ctx, _, _ := newTestContext(t, "9\n")
	ctx.Database = filepath.Join(t.TempDir(), "missing-dir", "board.db")

	if err := (&MenuCmd{}).Run(ctx); err == nil {
		t.Fatalf("Run() should fail for an unopenable database")
	}
}

func TestImportThenExport(t *testing.T) {
	ctx, out, _ := newTestContext(t, "1\nacme\nhr@acme.test\nsecret\n2\n9\n")
	if err := (&MenuCmd{}).Run(ctx); err != nil {
		t.Fatalf("register via menu: %v", err)
	}
	out.Reset()

	source := filepath.Join(t.TempDir(), "postings.html")
	if err := os.WriteFile(source, []byte(twoPostings), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	imp := &ImportCmd{Source: source, Employer: "acme", Password: "secret"}
	if err := imp.Run(ctx); err != nil {
		t.Fatalf("import Run() error = %v", err)
	}
	if !strings.Contains(out.String(), "Imported 2 of 2 job(s) for acme.") {
		t.Fatalf("unexpected import output: %q", out.String())
	}
	out.Reset()

	jobs := &JobsCmd{Format: "csv"}
	if err := jobs.Run(ctx); err != nil {
		t.Fatalf("jobs Run() error = %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 rows, got %q", out.String())
	}
	if lines[0] != "id,title,description,requirements,location,salary_range,contact_number" {
		t.Fatalf("unexpected header %q", lines[0])
	}
	if lines[1] != "1,Go Developer,,,Berlin,,555-0100" || lines[2] != "2,SRE,,,,80k," {
		t.Fatalf("unexpected rows %q", lines[1:])
	}

	out.Reset()
	mine := &JobsCmd{Employer: "acme", Format: "pipe"}
	if err := mine.Run(ctx); err != nil {
		t.Fatalf("jobs --employer Run() error = %v", err)
	}
	if !strings.HasPrefix(out.String(), "id = 1 | title = Go Developer | location = Berlin | ") {
		t.Fatalf("unexpected employer listing %q", out.String())
	}
}

func TestImportRejectsBadCredentials(t *testing.T) {
	ctx, _, _ := newTestContext(t, "")
	source := filepath.Join(t.TempDir(), "postings.html")
	if err := os.WriteFile(source, []byte(twoPostings), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	imp := &ImportCmd{Source: source, Employer: "nobody", Password: "x"}
	if err := imp.Run(ctx); err == nil {
		t.Fatalf("import with unknown employer should fail")
	}
}

func TestResolveFormat(t *testing.T) {
	var buf bytes.Buffer
	got, err := resolveFormat("", "", &buf)
	if err != nil || got != "csv" {
		t.Fatalf("resolveFormat(non-tty) = %q, %v", got, err)
	}
	got, err = resolveFormat("md", "", &buf)
	if err != nil || got != "md" {
		t.Fatalf("resolveFormat(md) = %q, %v", got, err)
	}
}
