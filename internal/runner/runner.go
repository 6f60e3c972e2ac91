// SPDX-License-Identifier: MPL-2.0

package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"anypy/internal/pyver"
)

// Record captures the outcome of one batch execution. Stdout holds the raw
// captured bytes exactly as the child wrote them; no decoding or newline
// normalization is applied.
type Record struct {
	Descriptor pyver.Descriptor
	ExitCode   ExitCode
	Stdout     []byte
}

// Runner executes interpreter candidates. Stdout and Stderr are the parent
// process streams the child output is relayed to.
type Runner struct {
	Stdout io.Writer
	Stderr io.Writer
}

// Run launches the descriptor's executable with the extra arguments appended
// and returns a Record of its outcome. Before launching, the fully-resolved
// command line is echoed to Stdout in shell-quoted form so any single run
// can be re-issued manually from a transcript.
//
// Child stdout is streamed through a duplicating sink: every chunk is echoed
// to Runner.Stdout and appended to the capture buffer before the next chunk
// is read, so a human watching sees output live while the raw bytes are
// retained for fingerprinting. Child stderr stays connected to Runner.Stderr
// unmodified and is not captured.
func (r *Runner) Run(ctx context.Context, desc pyver.Descriptor, args []string) (*Record, error) {
	fmt.Fprintf(r.Stdout, "%s # running\n", QuoteCommand(append([]string{desc.Path}, args...)))

	var captured bytes.Buffer
	cmd := exec.CommandContext(ctx, desc.Path, args...)
	cmd.Stdout = io.MultiWriter(r.Stdout, &captured)
	cmd.Stderr = r.Stderr

	code, err := r.wait(cmd)
	if err != nil {
		return nil, err
	}
	return &Record{Descriptor: desc, ExitCode: code, Stdout: captured.Bytes()}, nil
}

// Exec launches the descriptor's executable with all three standard streams
// passed through and returns the child's exit code for forwarding. This is
// the single-match mode: nothing is captured or echoed beyond what the child
// itself writes.
func (r *Runner) Exec(ctx context.Context, desc pyver.Descriptor, args []string) (ExitCode, error) {
	cmd := exec.CommandContext(ctx, desc.Path, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	return r.wait(cmd)
}

// wait runs the prepared command to completion. A non-zero child exit is
// returned as data; only launch failures (missing file, permission denied)
// are errors.
func (r *Runner) wait(cmd *exec.Cmd) (ExitCode, error) {
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return ExitCode(exitErr.ExitCode()), nil
		}
		return 0, fmt.Errorf("failed to launch %s: %w", cmd.Path, err)
	}
	return 0, nil
}
