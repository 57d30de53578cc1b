package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/lili041/tkkunify/internal/audit"
	"github.com/lili041/tkkunify/internal/checksum"
	"github.com/lili041/tkkunify/internal/config"
	"github.com/lili041/tkkunify/internal/files/filesystem"
	"github.com/lili041/tkkunify/internal/files/scanner"
	"github.com/lili041/tkkunify/internal/files/writer"
	"github.com/lili041/tkkunify/internal/logging"
	"github.com/lili041/tkkunify/internal/match"
	"github.com/lili041/tkkunify/internal/report"
	"github.com/lili041/tkkunify/internal/services"
	"github.com/lili041/tkkunify/internal/ui"
	"github.com/lili041/tkkunify/internal/unify"
	"github.com/lili041/tkkunify/pkg/tkkunify"
)

var unifyCmd = &cobra.Command{
	Use:   "unify [edition_path]",
	Short: "Unify group IDs between the document and its SVG sheets",
	Long: `Unify reconciles the svgGroupId values of the textcritics document
with the id attributes of class="tkk" elements in the SVG sheets.

The unify command:
1. Loads the textcritics JSON document and scans the SVG folder
2. Assigns canonical IDs (prefix + running number per entry)
3. Matches each record to its sheets by shared catalog numbers
4. Rewrites matched id attributes and svgGroupId values in place
5. Audits the final state and reports remaining discrepancies

Records with the literal svgGroupId value 'TODO' are skipped.

Arguments:
  edition_path    Folder containing textcritics.json, the SVG folder
                  and an optional tkkunify.yaml (default: current dir)

Configuration precedence: flags > environment > tkkunify.yaml > defaults.
Environment: TKK_PREFIX overrides the canonical ID prefix. A .env file
in the working directory is loaded first.

Examples:
  # Preview without writing anything
  tkkunify unify --dry-run

  # Unify the current folder (prompts for confirmation)
  tkkunify unify

  # Unify a specific edition folder without prompting
  tkkunify unify ./editions/op25 --force

  # Explicit paths override the folder layout
  tkkunify unify --json data/textcritics.json --svg-dir sheets`,
	Args: cobra.MaximumNArgs(1),
	RunE: runUnify,
}

type unifyFlagValues struct {
	metadata string
	svgDir   string
	prefix   string
	dryRun   bool
	force    bool
	timeout  time.Duration
}

var unifyFlags unifyFlagValues

func init() {
	rootCmd.AddCommand(unifyCmd)

	unifyCmd.Flags().StringVarP(&unifyFlags.metadata, "json", "j", "",
		"Path to the textcritics JSON document\n"+
			"Precedence: --json > tkkunify.yaml metadata > <edition_path>/textcritics.json")
	unifyCmd.Flags().StringVarP(&unifyFlags.svgDir, "svg-dir", "s", "",
		"Folder containing the SVG sheets\n"+
			"Precedence: --svg-dir > tkkunify.yaml svg_dir > <edition_path>/img")
	unifyCmd.Flags().StringVar(&unifyFlags.prefix, "prefix", "",
		"Canonical ID prefix (default g-tkk-)\n"+
			"Precedence: --prefix > $TKK_PREFIX > tkkunify.yaml id_prefix")
	unifyCmd.Flags().BoolVar(&unifyFlags.dryRun, "dry-run", false,
		"Report what would change without writing any file")
	unifyCmd.Flags().BoolVar(&unifyFlags.force, "force", false,
		"Skip the interactive approval prompt for the in-place rewrite\n"+
			"Shows a countdown instead; intended for CI and scripted runs")
	unifyCmd.Flags().DurationVar(&unifyFlags.timeout, "timeout", 3*time.Minute,
		"Catastrophic failure protection timeout (default 3m)\n"+
			"Prevents indefinite hangs on unreadable filesystems")
}

// buildUnifyConfig resolves the unify configuration from flags,
// environment and the optional tkkunify.yaml in the edition folder.
// This function is extracted for testability.
func buildUnifyConfig(editionPath string, verbose bool) (tkkunify.UnifyConfig, string, error) {
	_ = godotenv.Load()

	projectCfg, err := config.Load(editionPath)
	if err != nil {
		if !errors.Is(err, config.ErrConfigNotFound) {
			return tkkunify.UnifyConfig{}, "", fmt.Errorf("failed to load %s: %w", config.ConfigFileName, err)
		}
		projectCfg = &config.ProjectConfig{}
	}

	metadata := unifyFlags.metadata
	if metadata == "" {
		metadata = projectCfg.Metadata
	}
	if metadata == "" {
		metadata = filepath.Join(editionPath, tkkunify.DefaultMetadataFile)
	}

	svgDir := unifyFlags.svgDir
	if svgDir == "" {
		svgDir = projectCfg.SvgDir
	}
	if svgDir == "" {
		svgDir = filepath.Join(editionPath, tkkunify.DefaultSvgDir)
	}

	prefix := unifyFlags.prefix
	if prefix == "" {
		prefix = os.Getenv("TKK_PREFIX")
	}
	if prefix == "" {
		prefix = projectCfg.IDPrefix
	}
	if prefix == "" {
		prefix = tkkunify.DefaultIDPrefix
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "[VERBOSE] Configuration resolved:\n")
		fmt.Fprintf(os.Stderr, "  Document: %s\n", metadata)
		fmt.Fprintf(os.Stderr, "  SVG folder: %s\n", svgDir)
		fmt.Fprintf(os.Stderr, "  ID prefix: %s\n", prefix)
	}

	cfg := tkkunify.UnifyConfig{
		MetadataPath: metadata,
		SvgDir:       svgDir,
		IDPrefix:     prefix,
		DryRun:       unifyFlags.dryRun,
		Force:        unifyFlags.force,
		Verbose:      verbose,
	}
	return cfg, projectCfg.RowTableMarker, nil
}

func runUnify(cmd *cobra.Command, args []string) error {
	editionPath := "."
	if len(args) > 0 {
		editionPath = args[0]
	}
	verbose := getVerboseFlag(cmd)

	cfg, marker, err := buildUnifyConfig(editionPath, verbose)
	if err != nil {
		return err
	}

	// Select approver implementation based on --force flag
	var approver tkkunify.Approver
	if cfg.Force {
		approver = ui.NewForcedApprover(verbose)
	} else {
		approver = ui.NewInteractiveApprover(verbose)
	}

	service := newUnificationService(marker, approver, verbose)

	// Setup context with timeout and signal handling for graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), unifyFlags.timeout)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		fmt.Fprintln(os.Stderr, "\n[INTERRUPT] Received interrupt signal, cancelling run...")
		cancel()
	}()

	summary, err := service.Unify(ctx, cfg)
	if err != nil && !errors.Is(err, tkkunify.ErrUnresolved) {
		return fmt.Errorf("unification failed: %w", err)
	}

	renderer := report.NewRenderer(os.Stdout, ui.IsInteractive(), verbose)
	renderer.RenderRun(summary)
	return err
}

// newUnificationService assembles the service with its production
// dependencies. marker overrides the row table filename marker when
// non-empty.
func newUnificationService(marker string, approver tkkunify.Approver, verbose bool) *services.UnificationService {
	logger := logging.NewConsoleLogger(verbose)
	calc := checksum.New()
	fsProvider := filesystem.NewOSFileSystem()

	matcher := match.New()
	if marker != "" {
		matcher = match.NewWithMarker(marker)
	}

	return services.NewUnificationService(
		fsProvider,
		scanner.NewScannerWithFS(calc, fsProvider),
		writer.NewWriterWithFS(calc, fsProvider, logger),
		unify.NewService(matcher, logger),
		audit.New(logger),
		approver,
		logger,
	)
}
