// SPDX-License-Identifier: MPL-2.0

package harness

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"anypy/internal/pyver"
	"anypy/internal/report"
	"anypy/internal/runner"
	"anypy/internal/table"
)

// Harness drives batch mode: every discovered interpreter is executed in
// sorted order, one at a time, and the aggregated summary table is printed
// at the end.
type Harness struct {
	Runner *runner.Runner
	Stdout io.Writer
}

// New creates a Harness. The runner's live output writer and the harness
// status writer should be the same stream so transcript lines stay in
// document order.
func New(r *runner.Runner, stdout io.Writer) *Harness {
	return &Harness{Runner: r, Stdout: stdout}
}

// RunAll executes every descriptor sequentially with the extra arguments
// appended, printing a status line after each run, then renders the
// aggregated summary table. Each child is fully waited on and its output
// fully drained before the next one starts. A child's exit code is report
// data; only launch failures abort the batch.
func (h *Harness) RunAll(ctx context.Context, descs []pyver.Descriptor, args []string) error {
	records := make([]*runner.Record, 0, len(descs))
	for _, desc := range descs {
		rec, err := h.Runner.Run(ctx, desc, args)
		if err != nil {
			return err
		}
		h.flush()
		fmt.Fprintf(h.Stdout, "Return code = %d and hash of stdout = %s\n\n",
			rec.ExitCode, report.Fingerprint(rec.Stdout))
		log.Debug("execution finished", "executable", desc.Path, "code", rec.ExitCode)
		records = append(records, rec)
	}

	entries := report.Finalize(records)
	fmt.Fprintln(h.Stdout, table.Render(report.TableRows(entries), report.RightJustified()))
	return nil
}

// flush pushes buffered output through so the raw child dump and the status
// lines interleave in document order on buffered writers.
func (h *Harness) flush() {
	if f, ok := h.Stdout.(interface{ Flush() error }); ok {
		_ = f.Flush()
	}
}
