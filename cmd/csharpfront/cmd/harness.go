package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/cwbudde/csharpfront/internal/harness"
)

var (
	harnessDir string
	harnessFilter string
)

var harnessCmd = &cobra.Command{
	Use: "harness",
	Short: "Run the compliance-harness fixtures against the parser",
	Long: `Load every YAML fixture under --dir, run each case through the
parser, and report which cases passed their expected success/diagnostic-
count assertions.

--filter applies a gjson path expression to the assembled JSON report,
so e.g. --filter "cases.#(pass==false)#.name" lists only failing case
names.`,
	RunE: runHarness,
}

func init() {
	rootCmd.AddCommand(harnessCmd)
	harnessCmd.Flags().StringVar(&harnessDir, "dir", "testdata/harness", "directory of *.yaml fixture files")
	harnessCmd.Flags().StringVar(&harnessFilter, "filter", "", "gjson path expression applied to the JSON report")
}

func runHarness(cmd *cobra.Command, args []string) error {
	cases, err := harness.LoadDir(harnessDir)
	if err != nil {
		return fmt.Errorf("loading fixtures: %w", err)
	}

	results := harness.Run(cases)
	summary := harness.Summarize(results)

	report := "{}"
	for i, r := range results {
		var err error
		base := fmt.Sprintf("cases.%d", i)
		if report, err = sjson.Set(report, base+".name", r.Name); err != nil {
			return err
		}
		if report, err = sjson.Set(report, base+".pass", r.Pass); err != nil {
			return err
		}
		if report, err = sjson.Set(report, base+".success", r.Success); err != nil {
			return err
		}
		if report, err = sjson.Set(report, base+".diagnosticCount", r.DiagnosticCount); err != nil {
			return err
		}
		if r.FailureReason != "" {
			if report, err = sjson.Set(report, base+".reason", r.FailureReason); err != nil {
				return err
			}
		}
	}
	report, err = sjson.Set(report, "summary.total", summary.Total)
	if err != nil {
		return err
	}
	report, err = sjson.Set(report, "summary.passed", summary.Passed)
	if err != nil {
		return err
	}
	report, err = sjson.Set(report, "summary.failed", summary.Failed)
	if err != nil {
		return err
	}

	if harnessFilter != "" {
		fmt.Println(gjson.Get(report, harnessFilter).String())
		return nil
	}

	fmt.Printf("%d/%d cases passed\n", summary.Passed, summary.Total)
	for _, r := range results {
		if !r.Pass {
			fmt.Fprintf(os.Stderr, "FAIL %s: %s\n", r.Name, r.FailureReason)
		}
	}
	if summary.Failed > 0 {
		return fmt.Errorf("%d case(s) failed", summary.Failed)
	}
	return nil
}
