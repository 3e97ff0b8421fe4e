package executor

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
)

// Report summarizes lint and simulation of one block.
type Report struct {
	RunID      string
	Sequences  int
	Visited    int
	Backfilled []int
	Steps      int
	Jumps      []Jump
	Issues     []Issue
	SimErr     error
}

// GenerateReport collects a report from lint issues and a simulation
// result. res may be nil when simulation failed or did not run.
func GenerateReport(runID string, issues []Issue, res *Result, simErr error) *Report {
	r := &Report{
		RunID:  runID,
		Issues: issues,
		SimErr: simErr,
	}

	if res == nil {
		return r
	}

	r.Sequences = len(res.Sequences)
	r.Backfilled = res.Backfilled()
	r.Visited = r.Sequences - len(r.Backfilled)
	r.Steps = len(res.Trace)
	r.Jumps = res.Jumps

	return r
}

// OK reports whether simulation succeeded without lint errors.
func (r *Report) OK() bool {
	if r.SimErr != nil {
		return false
	}
	for _, i := range r.Issues {
		if i.IsError() {
			return false
		}
	}
	return true
}

// WriteReport writes a formatted report to a writer
func (r *Report) WriteReport(w io.Writer) {
	separator := strings.Repeat("=", 60)

	fmt.Fprintln(w, separator)
	fmt.Fprintf(w, "GENERATION REPORT %s\n", r.RunID)
	fmt.Fprintln(w, separator)

	summary := table.NewWriter()
	summary.SetTitle("Summary")
	summary.AppendRows([]table.Row{
		{"Sequences", r.Sequences},
		{"Executed", r.Visited},
		{"Backfilled", fmt.Sprint(r.Backfilled)},
		{"Steps", r.Steps},
		{"Jumps", len(r.Jumps)},
		{"Lint issues", len(r.Issues)},
	})
	fmt.Fprintln(w, summary.Render())

	if len(r.Issues) > 0 {
		issues := table.NewWriter()
		issues.SetTitle("Lint Issues")
		issues.AppendHeader(table.Row{"Type", "Seq", "Pos", "Call", "Label", "Message"})
		for _, i := range r.Issues {
			issues.AppendRow(table.Row{i.Type, i.Sequence, i.Position, i.Call, i.Label, i.Message})
		}
		fmt.Fprintln(w, issues.Render())
	}

	if len(r.Jumps) > 0 {
		jumps := table.NewWriter()
		jumps.SetTitle("Control Transfers")
		jumps.AppendHeader(table.Row{"From", "Label", "To"})
		for _, j := range r.Jumps {
			jumps.AppendRow(table.Row{j.From.String(), j.Label.UniqueName(), j.To.String()})
		}
		fmt.Fprintln(w, jumps.Render())
	}

	status := "SUCCESS"
	if r.SimErr != nil {
		status = "FAILED: " + r.SimErr.Error()
	}
	fmt.Fprintf(w, "Simulation Result: %s\n", status)
	fmt.Fprintln(w)
}

// SaveReportToFile writes the report to path, replacing any existing file.
func (r *Report) SaveReportToFile(path string) error {
	var buf strings.Builder
	r.WriteReport(&buf)

	if err := os.WriteFile(path, []byte(buf.String()), 0o644); err != nil {
		return fmt.Errorf("failed to save report %s: %w", path, err)
	}

	return nil
}
