package cmd

import (
	"context"
	"flag"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/subcommands"
)

// useTempProject points the global files to a fresh temporary directory, where nothing exists yet.
func useTempProject(t *testing.T) (project, contributions string) {
	t.Helper()
	tmp := t.TempDir()
	project = filepath.Join(tmp, "project.json")
	contributions = filepath.Join(tmp, "contributions.jsonl")

	oldProject, oldContributions, oldRaw := projectFile, contributionsFile, rawMarkdown
	projectFile, contributionsFile = &project, &contributions
	raw := true
	rawMarkdown = &raw
	t.Cleanup(func() { projectFile, contributionsFile, rawMarkdown = oldProject, oldContributions, oldRaw })
	return project, contributions
}

// execute runs cmd with args and returns its exit status and what it printed on stdout.
func execute(t *testing.T, cmd subcommands.Command, args ...string) (subcommands.ExitStatus, string) {
	t.Helper()
	f := flag.NewFlagSet("test", flag.ContinueOnError)
	cmd.SetFlags(f)
	if err := f.Parse(args); err != nil {
		t.Fatalf("invalid flags %q: %v", args, err)
	}

	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w
	defer func() { os.Stdout = oldStdout }()

	status := cmd.Execute(context.Background(), f)
	w.Close()
	out, _ := io.ReadAll(r)
	return status, string(out)
}

func TestReviseCmd(t *testing.T) {
	_, contributions := useTempProject(t)

	status, out := execute(t, &reviseCmd{}, "-d", "2026-05-30", "-p", "new", "-a", "500000")
	if status != subcommands.ExitSuccess {
		t.Fatalf("Expected ExitSuccess, got %v", status)
	}
	if want := "New investor now contributes AED 500,000 on 2026-05-30, other investors AED 1,282,000."; !strings.Contains(out, want) {
		t.Errorf("output = %q, want %q", out, want)
	}

	got, err := os.ReadFile(contributions)
	if err != nil {
		t.Fatalf("Failed to read contributions file: %v", err)
	}
	want := `{"date":"2026-05-30","plan":1782000,"newInvestor":500000}`
	if !strings.Contains(string(got), want) {
		t.Errorf("contributions file =\n%s\nwant a line %s", got, want)
	}
	if n := strings.Count(string(got), "\n"); n != 8 {
		t.Errorf("contributions file has %d lines, want 8", n)
	}

	// the file is read back on the next revision.
	if status, _ := execute(t, &reviseCmd{}, "-d", "2027-01-30", "-p", "antoine", "-a", "100000"); status != subcommands.ExitSuccess {
		t.Fatalf("Expected ExitSuccess, got %v", status)
	}
	got, _ = os.ReadFile(contributions)
	for _, want := range []string{want, `{"date":"2027-01-30","plan":1188000,"antoine":100000}`} {
		if !strings.Contains(string(got), want) {
			t.Errorf("contributions file =\n%s\nwant a line %s", got, want)
		}
	}
}

func TestReviseCmd_Errors(t *testing.T) {
	_, contributions := useTempProject(t)

	testCases := []struct {
		name string
		args []string
		want subcommands.ExitStatus
	}{
		{"fixed window", []string{"-d", "2025-01-31", "-p", "antoine", "-a", "1"}, subcommands.ExitFailure},
		{"unknown window", []string{"-d", "2025-12-31", "-p", "antoine", "-a", "1"}, subcommands.ExitFailure},
		{"other investors", []string{"-d", "2026-05-30", "-p", "others", "-a", "1"}, subcommands.ExitFailure},
		{"bad participant", []string{"-d", "2026-05-30", "-p", "bob", "-a", "1"}, subcommands.ExitUsageError},
		{"bad amount", []string{"-d", "2026-05-30", "-p", "antoine", "-a", "lots"}, subcommands.ExitUsageError},
		{"bad date", []string{"-d", "someday", "-p", "antoine", "-a", "1"}, subcommands.ExitUsageError},
		{"missing date", []string{"-p", "antoine", "-a", "1"}, subcommands.ExitUsageError},
		{"relative date", []string{"-d", "-50y", "-p", "antoine", "-a", "1"}, subcommands.ExitFailure},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if status, _ := execute(t, &reviseCmd{}, tc.args...); status != tc.want {
				t.Errorf("Expected %v, got %v", tc.want, status)
			}
		})
	}
	if _, err := os.Stat(contributions); !os.IsNotExist(err) {
		t.Errorf("contributions file was written after failed revisions: %v", err)
	}
}

func TestContributionsCmd_Format(t *testing.T) {
	_, contributions := useTempProject(t)
	original := `{"date":"2025-09-30", "newInvestor":1000, "plan":800}
{"date":"2024-09-30","antoine":1000,"plan":1000}
`
	if err := os.WriteFile(contributions, []byte(original), 0644); err != nil {
		t.Fatalf("Failed to write contributions file: %v", err)
	}

	if status, _ := execute(t, &contributionsCmd{}, "-fmt"); status != subcommands.ExitSuccess {
		t.Fatalf("Expected ExitSuccess, got %v", status)
	}
	got, err := os.ReadFile(contributions)
	if err != nil {
		t.Fatalf("Failed to read contributions file: %v", err)
	}
	want := `{"date":"2024-09-30","plan":1000,"antoine":1000}
{"date":"2025-09-30","plan":800,"newInvestor":1000}
`
	if string(got) != want {
		t.Errorf("formatted file mismatch.\nGot:\n%s\nWant:\n%s", got, want)
	}
}

func TestScenarioCmd(t *testing.T) {
	useTempProject(t)

	status, out := execute(t, &scenarioCmd{}, "-d", "2028-09-30", "-today", "2026-10-16", "-c", "usd")
	if status != subcommands.ExitSuccess {
		t.Fatalf("Expected ExitSuccess, got %v", status)
	}
	for _, want := range []string{
		"# Co-investment on 2028-09-30",
		"Amounts are in USD.",
		"## Sale today (2026-10-16)",
		"## Exit on 2028-09-30",
		"guarantee at 20% p.a.",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("scenario output =\n%s\nwant it to contain %q", out, want)
		}
	}

	if status, _ := execute(t, &scenarioCmd{}, "-c", "GBP"); status != subcommands.ExitUsageError {
		t.Errorf("unknown currency: expected ExitUsageError, got %v", status)
	}
}

func TestScenarioCmd_Prices(t *testing.T) {
	useTempProject(t)
	prices := filepath.Join(t.TempDir(), "prices.csv")
	if err := os.WriteFile(prices, []byte("date,price\n2024-09-30,11800000\n2025-09-30,12800000\n"), 0644); err != nil {
		t.Fatalf("Failed to write prices file: %v", err)
	}

	status, out := execute(t, &saleCmd{}, "-d", "2026-01-01", "-today", "2026-01-01", "-prices", prices)
	if status != subcommands.ExitSuccess {
		t.Fatalf("Expected ExitSuccess, got %v", status)
	}
	if want := "Price AED 12,800,000, total appreciation AED 1,000,000."; !strings.Contains(out, want) {
		t.Errorf("sale output =\n%s\nwant it to contain %q", out, want)
	}

	if err := os.WriteFile(prices, []byte("when,value\n2024-09-30,11800000\n"), 0644); err != nil {
		t.Fatalf("Failed to write prices file: %v", err)
	}
	if status, _ := execute(t, &saleCmd{}, "-prices", prices); status != subcommands.ExitFailure {
		t.Errorf("malformed prices: expected ExitFailure, got %v", status)
	}
}

func TestPricesCmd_Export(t *testing.T) {
	useTempProject(t)
	output := filepath.Join(t.TempDir(), "prices.csv")

	if status, _ := execute(t, &pricesCmd{}, "-o", output); status != subcommands.ExitSuccess {
		t.Fatalf("Expected ExitSuccess, got %v", status)
	}
	got, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("Failed to read exported prices: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(got)), "\n")
	if len(lines) != 1340 {
		t.Errorf("exported %d lines, want a header and 1339 prices", len(lines))
	}
	if lines[0] != "date,price" || lines[1] != "2024-09-30,11800000" || lines[len(lines)-1] != "2028-05-30,17500000" {
		t.Errorf("exported prices start with %q, %q and end with %q", lines[0], lines[1], lines[len(lines)-1])
	}
}

func TestBalancesCmd(t *testing.T) {
	useTempProject(t)

	status, out := execute(t, &balancesCmd{}, "-to", "2025-01-31", "-period", "month")
	if status != subcommands.ExitSuccess {
		t.Fatalf("Expected ExitSuccess, got %v", status)
	}
	if want := "| 2025-01-31 | AED 2,376,000 (100%) |"; !strings.Contains(out, want) {
		t.Errorf("balances output =\n%s\nwant it to contain %q", out, want)
	}
	if status, _ := execute(t, &balancesCmd{}, "-period", "fortnight"); status != subcommands.ExitUsageError {
		t.Errorf("unknown period: expected ExitUsageError, got %v", status)
	}
}
