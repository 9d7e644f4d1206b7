package doctor

import (
	"testing"
	"time"
)

// fakeCheck is a configurable check for exercising the framework.
type fakeCheck struct {
	name     string
	category string
	result   CheckResult
	delay    time.Duration
}

func (f *fakeCheck) Name() string     { return f.name }
func (f *fakeCheck) Category() string { return f.category }
func (f *fakeCheck) Fix() error       { return nil }

func (f *fakeCheck) Run() CheckResult {
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	return f.result
}

func TestCheckStatusString(t *testing.T) {
	cases := []struct {
		status CheckStatus
		want   string
	}{
		{StatusPass, "pass"},
		{StatusWarn, "warn"},
		{StatusFail, "fail"},
		{CheckStatus(99), "unknown"},
	}

	for _, tc := range cases {
		if got := tc.status.String(); got != tc.want {
			t.Errorf("CheckStatus(%d).String() = %q, want %q", tc.status, got, tc.want)
		}
	}
}

func TestRunAllPreservesOrder(t *testing.T) {
	checks := []Check{
		&fakeCheck{name: "a", result: CheckResult{Name: "a", Status: StatusPass}},
		&fakeCheck{name: "b", result: CheckResult{Name: "b", Status: StatusFail}},
		&fakeCheck{name: "c", result: CheckResult{Name: "c", Status: StatusWarn}},
	}

	results := RunAll(checks)

	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	for i, want := range []string{"a", "b", "c"} {
		if results[i].Name != want {
			t.Errorf("results[%d].Name = %q, want %q", i, results[i].Name, want)
		}
	}
}

func TestRunAllParallelPreservesOrder(t *testing.T) {
	// The first check is the slowest; order must still hold.
	checks := []Check{
		&fakeCheck{name: "slow", delay: 20 * time.Millisecond, result: CheckResult{Name: "slow"}},
		&fakeCheck{name: "fast", result: CheckResult{Name: "fast"}},
	}

	results := RunAllParallel(checks)

	if results[0].Name != "slow" || results[1].Name != "fast" {
		t.Errorf("unexpected order: %q, %q", results[0].Name, results[1].Name)
	}
}

func TestGroupByCategory(t *testing.T) {
	checks := []Check{
		&fakeCheck{name: "a", category: "CONFIG"},
		&fakeCheck{name: "b", category: "SYSTEM"},
		&fakeCheck{name: "c", category: "CONFIG"},
	}

	grouped := GroupByCategory(checks)

	if len(grouped["CONFIG"]) != 2 {
		t.Errorf("expected 2 CONFIG checks, got %d", len(grouped["CONFIG"]))
	}
	if len(grouped["SYSTEM"]) != 1 {
		t.Errorf("expected 1 SYSTEM check, got %d", len(grouped["SYSTEM"]))
	}
}

func TestCountByStatus(t *testing.T) {
	results := []CheckResult{
		{Status: StatusPass},
		{Status: StatusPass},
		{Status: StatusWarn},
		{Status: StatusFail},
	}

	counts := CountByStatus(results)

	if counts[StatusPass] != 2 || counts[StatusWarn] != 1 || counts[StatusFail] != 1 {
		t.Errorf("unexpected counts: %v", counts)
	}
}

func TestFixableCount(t *testing.T) {
	results := []CheckResult{
		{Status: StatusFail, Fixable: true},
		{Status: StatusWarn, Fixable: true},
		{Status: StatusPass, Fixable: true}, // passing results don't count
		{Status: StatusFail, Fixable: false},
	}

	if got := FixableCount(results); got != 2 {
		t.Errorf("FixableCount = %d, want 2", got)
	}
}

func TestHasFailuresAndIssues(t *testing.T) {
	clean := []CheckResult{{Status: StatusPass}}
	warned := []CheckResult{{Status: StatusPass}, {Status: StatusWarn}}
	failed := []CheckResult{{Status: StatusFail}}

	if HasFailures(clean) || HasIssues(clean) {
		t.Error("clean results should have no failures or issues")
	}
	if HasFailures(warned) {
		t.Error("warnings are not failures")
	}
	if !HasIssues(warned) {
		t.Error("warnings are issues")
	}
	if !HasFailures(failed) || !HasIssues(failed) {
		t.Error("failures are both failures and issues")
	}
}
