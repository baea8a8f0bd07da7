package harness

import (
	"fmt"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

func TestFixtures(t *testing.T) {
	runFixtureDir(t, "../../testdata/harness")
}

// runFixtureDir loads every case from dir and snapshots each result
// alongside its expectations, so a regression in diagnostic counting or
// success/failure shows up as a snapshot diff rather than a silent
// pass.
func runFixtureDir(t *testing.T, dir string) {
	t.Helper()

	cases, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir(%s): %v", dir, err)
	}
	if len(cases) == 0 {
		t.Skipf("no cases found in %s", dir)
	}

	results := Run(cases)
	for _, r := range results {
		t.Run(r.Name, func(t *testing.T) {
			if !r.Pass {
				t.Errorf("case %q: %s", r.Name, r.FailureReason)
			}
			snaps.MatchSnapshot(t, fmt.Sprintf("%s_result", r.Name), struct {
				Success bool
				DiagnosticCount int
			}{r.Success, r.DiagnosticCount})
		})
	}
}

func TestSummarize(t *testing.T) {
	results := []Result{
		{Name: "a", Pass: true},
		{Name: "b", Pass: false},
		{Name: "c", Pass: true},
	}
	sum := Summarize(results)
	if sum.Total != 3 || sum.Passed != 2 || sum.Failed != 1 {
		t.Fatalf("got %+v", sum)
	}
}
