package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/lili041/tkkunify/internal/report"
	"github.com/lili041/tkkunify/internal/ui"
	"github.com/lili041/tkkunify/pkg/tkkunify"
)

var auditCmd = &cobra.Command{
	Use:   "audit [edition_path]",
	Short: "Report discrepancies without writing anything",
	Long: `Audit compares the svgGroupId values of the textcritics document
against the id attributes of class="tkk" elements in the SVG sheets.

Two kinds of discrepancies are reported:
  - stale document IDs: svgGroupId values not found on any tkk element
  - orphaned SVG IDs: tkk element ids no document record accounts for

Records marked 'TODO' are excluded from both checks. The exit code is
13 when discrepancies remain, 0 when the edition is consistent, so the
command can serve as a CI consistency gate.

Examples:
  tkkunify audit
  tkkunify audit ./editions/op25
  tkkunify audit --json data/textcritics.json --svg-dir sheets`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAudit,
}

func init() {
	rootCmd.AddCommand(auditCmd)

	auditCmd.Flags().StringVarP(&unifyFlags.metadata, "json", "j", "",
		"Path to the textcritics JSON document")
	auditCmd.Flags().StringVarP(&unifyFlags.svgDir, "svg-dir", "s", "",
		"Folder containing the SVG sheets")
	auditCmd.Flags().DurationVar(&unifyFlags.timeout, "timeout", 3*time.Minute,
		"Catastrophic failure protection timeout (default 3m)")
}

func runAudit(cmd *cobra.Command, args []string) error {
	editionPath := "."
	if len(args) > 0 {
		editionPath = args[0]
	}
	verbose := getVerboseFlag(cmd)

	cfg, marker, err := buildUnifyConfig(editionPath, verbose)
	if err != nil {
		return err
	}
	auditCfg := tkkunify.AuditConfig{
		MetadataPath: cfg.MetadataPath,
		SvgDir:       cfg.SvgDir,
		IDPrefix:     cfg.IDPrefix,
		Verbose:      verbose,
	}

	// The audit never writes, so no approval is needed; the service
	// still requires an approver and the forced one is never invoked.
	service := newUnificationService(marker, ui.NewForcedApprover(verbose), verbose)

	ctx, cancel := context.WithTimeout(context.Background(), unifyFlags.timeout)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		fmt.Fprintln(os.Stderr, "\n[INTERRUPT] Received interrupt signal, cancelling audit...")
		cancel()
	}()

	summary, err := service.Audit(ctx, auditCfg)
	if err != nil && !errors.Is(err, tkkunify.ErrUnresolved) {
		return fmt.Errorf("audit failed: %w", err)
	}

	renderer := report.NewRenderer(os.Stdout, ui.IsInteractive(), verbose)
	renderer.RenderAudit(summary)
	return err
}
