package tkkunify

import "context"

// Approver handles user interaction for approval workflows, in
// particular the in-place rewrite of SVG files and the textcritics
// document. The rewrite is destructive in the sense that it edits the
// edition's source files directly, so it is guarded by confirmation.
//
// Implementations:
//   - ForcedApprover: shows a countdown and automatically approves
//   - InteractiveApprover: prompts the user to type the document name
type Approver interface {
	// RequestApproval prompts for confirmation before rewriting the
	// textcritics document and its SVG sheets in place.
	//
	// Parameters:
	//   - ctx: Context for cancellation
	//   - target: Name of the document about to be rewritten
	//
	// Returns:
	//   - bool: true if approved, false if denied
	//   - error: Any error that occurred during the approval process
	RequestApproval(ctx context.Context, target string) (bool, error)
}
