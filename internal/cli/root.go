// Package cli wires the cobra command tree for the tkkunify binary.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const asciiLogo = `  _   _    _                  _  __
 | |_| | _| | __  _   _ _ __ (_)/ _|_   _
 | __| |/ / |/ / | | | | '_ \| | |_| | | |
 | |_|   <|   <  | |_| | | | | |  _| |_| |
  \__|_|\_\_|\_\  \__,_|_| |_|_|_|  \__, |
                                    |___/`

var rootCmd = &cobra.Command{
	Use:   "tkkunify",
	Short: "TKK group ID unification for digital music editions",
	Long: asciiLogo + `

tkkunify reconciles the group IDs of a textcritical metadata document
(textcritics.json) with the id attributes of class="tkk" elements in
the edition's SVG sheets. Matching sheets are found by shared catalog
and variant numbers in entry IDs and filenames; both sides are then
rewritten in place to a canonical ID.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration or parameters
  12 - User denied the in-place rewrite approval
  13 - Discrepancies remain after unification/audit
  14 - textcritics document not found
  15 - SVG folder empty or missing`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo()
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().Bool("help", false, "Help for tkkunify")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
