// Package ui provides console interaction for tkkunify: approval
// prompts guarding the in-place rewrite, shared styles and terminal
// mode detection.
package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/lili041/tkkunify/pkg/tkkunify"
)

// ForcedApprover implements the Approver interface for forced
// (non-interactive) approval. It displays a countdown and automatically
// approves after the countdown, used when the --force flag is provided.
type ForcedApprover struct {
	verbose bool
	output  io.Writer
	sleepFn func(time.Duration)
}

// NewForcedApprover creates a new ForcedApprover.
func NewForcedApprover(verbose bool) tkkunify.Approver {
	return &ForcedApprover{
		verbose: verbose,
		output:  os.Stderr,
		sleepFn: time.Sleep,
	}
}

// RequestApproval displays a countdown and automatically approves after the countdown.
func (a *ForcedApprover) RequestApproval(ctx context.Context, target string) (bool, error) {
	fmt.Fprintln(a.output)
	fmt.Fprintf(a.output, "%s DANGER: '%s' and its SVG sheets will be rewritten IN PLACE.\n", WarningStyle.Render("⚠"), target)
	fmt.Fprintln(a.output, "Make sure the edition folder is under version control or backed up.")

	countdownSeconds := int(tkkunify.DefaultForceApprovalCountdown.Seconds())
	for i := countdownSeconds; i > 0; i-- {
		select {
		case <-ctx.Done():
			return false, ctx.Err()
		default:
			fmt.Fprintf(a.output, "\rRewriting in: %d seconds... (Press Ctrl+C to cancel)", i)
			a.sleepFn(1 * time.Second)
		}
	}

	fmt.Fprintf(a.output, "\r✓ Proceeding with in-place rewrite...                              \n")
	return true, nil
}

// Verify ForcedApprover implements the Approver interface at compile time
var _ tkkunify.Approver = (*ForcedApprover)(nil)
