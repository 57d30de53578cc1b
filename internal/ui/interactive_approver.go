package ui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/lili041/tkkunify/pkg/tkkunify"
)

// InteractiveApprover implements the Approver interface for
// console-based interactive confirmation. It prompts the user to type
// the document name to confirm the in-place rewrite.
type InteractiveApprover struct {
	verbose bool
	input   io.Reader
	output  io.Writer
}

// NewInteractiveApprover creates a new InteractiveApprover.
func NewInteractiveApprover(verbose bool) tkkunify.Approver {
	return &InteractiveApprover{
		verbose: verbose,
		input:   os.Stdin,
		output:  os.Stderr,
	}
}

// RequestApproval prompts the user to type the document name to confirm.
func (a *InteractiveApprover) RequestApproval(ctx context.Context, target string) (bool, error) {
	name := filepath.Base(target)
	fmt.Fprintf(a.output, "\n⚠️  WARNING: You are about to rewrite '%s' and its SVG sheets IN PLACE\n", target)
	fmt.Fprintln(a.output, "Group IDs will be replaced in the original files. This cannot be undone without a backup!")
	fmt.Fprintf(a.output, "\nTo confirm, type the document name '%s' and press Enter: ", name)

	// Read user input with context cancellation support
	inputChan := make(chan string, 1)
	errChan := make(chan error, 1)

	go func() {
		reader := bufio.NewReader(a.input)
		input, err := reader.ReadString('\n')
		if err != nil {
			errChan <- err
			return
		}
		inputChan <- strings.TrimSpace(input)
	}()

	select {
	case <-ctx.Done():
		return false, ctx.Err()
	case err := <-errChan:
		return false, fmt.Errorf("failed to read input: %w", err)
	case input := <-inputChan:
		if input == name {
			fmt.Fprintln(a.output, "✓ Confirmed. Proceeding with in-place rewrite...")
			return true, nil
		}
		fmt.Fprintf(a.output, "✗ Input '%s' does not match document name '%s'. Operation cancelled.\n", input, name)
		return false, nil
	}
}

// Verify InteractiveApprover implements the Approver interface at compile time
var _ tkkunify.Approver = (*InteractiveApprover)(nil)
