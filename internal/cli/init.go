package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/lili041/tkkunify/internal/scaffold"
)

var initCmd = &cobra.Command{
	Use:   "init <target_path>",
	Short: "Initialize a new edition folder",
	Long: `Initialize an edition folder prepared for tkkunify.

The init command creates:
- a textcritics.json skeleton document
- an img/ folder for the SVG sheets
- tkkunify.yaml with the default configuration
- a README with usage instructions

Target directory must be empty or non-existent.

Examples:
  tkkunify init .                # Initialize in current directory
  tkkunify init ./op25           # Initialize in ./op25
  tkkunify init /absolute/path   # Initialize at absolute path`,
	Args: cobra.MinimumNArgs(0),
	RunE: runInit,
}

var (
	initTemplate string
	initList     bool
)

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().StringVarP(&initTemplate, "template", "t", "basic", "Template to use")
	initCmd.Flags().BoolVar(&initList, "list", false, "List available templates")
}

func runInit(cmd *cobra.Command, args []string) error {
	if initList {
		templates, err := scaffold.ListTemplates()
		if err != nil {
			return fmt.Errorf("failed to list templates: %w", err)
		}
		for _, name := range templates {
			fmt.Println(name)
		}
		return nil
	}

	if len(args) == 0 {
		return fmt.Errorf("target path required\n\nUsage: tkkunify init <target_path> [flags]\n\nExamples:\n  tkkunify init .        # Current directory\n  tkkunify init ./op25   # Subdirectory\n\nUse 'tkkunify init --list' to see available templates")
	}

	targetPath := args[0]

	// Determine project name from target path
	projectName := filepath.Base(targetPath)
	if projectName == "." || projectName == ".." {
		cwd, err := os.Getwd()
		if err == nil {
			projectName = filepath.Base(cwd)
		} else {
			projectName = "edition"
		}
	}
	verbose := getVerboseFlag(cmd)

	templates, err := scaffold.ListTemplates()
	if err != nil {
		return fmt.Errorf("failed to list templates: %w", err)
	}

	validTemplate := false
	for _, t := range templates {
		if t == initTemplate {
			validTemplate = true
			break
		}
	}

	if !validTemplate {
		return fmt.Errorf("invalid template '%s'. Available templates: %v", initTemplate, templates)
	}

	scaffolder := scaffold.NewScaffolder(verbose)

	if err := scaffolder.CreateProject(projectName, initTemplate, targetPath); err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}

	tree, err := scaffold.BuildFileTree(targetPath)
	if err != nil {
		// Non-fatal, just skip tree display
		fmt.Fprintf(os.Stderr, "\n✓ Edition folder initialized successfully in '%s' using template '%s'\n\n", targetPath, initTemplate)
	} else {
		fmt.Fprintf(os.Stderr, "\n✓ Edition folder initialized successfully using template '%s'\n\n", initTemplate)
		fmt.Fprintln(os.Stderr, "Created structure:")
		fmt.Fprint(os.Stderr, tree)
	}

	fmt.Fprintln(os.Stderr, "\nNext steps:")
	if targetPath != "." {
		fmt.Fprintf(os.Stderr, "  cd %s\n", targetPath)
	}
	fmt.Fprintln(os.Stderr, "  # Add SVG sheets to img/ and fill in textcritics.json, then:")
	fmt.Fprintln(os.Stderr, "  tkkunify unify --dry-run")
	fmt.Fprintln(os.Stderr, "  tkkunify unify")

	return nil
}
