// Package cli wires the command-line surface: argument handling, output
// dispatch and the console formatters.
package cli

import (
	"fmt"
	"slices"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/idelchi/bigfiles/internal/bigfiles"
	"github.com/idelchi/bigfiles/internal/integration"
	"github.com/idelchi/bigfiles/internal/sizespec"
)

// CLI represents the command-line interface.
type CLI struct {
	version string
}

// New creates a new CLI instance with the given version.
func New(version string) CLI {
	return CLI{version: version}
}

const (
	// DefaultDirectory is scanned when no directory argument is given.
	DefaultDirectory = "."
	// DefaultSize is the size token used when no size argument is given.
	DefaultSize = "100"
)

// Arguments resolves the positional directory and size token, applying
// defaults for whichever is missing.
func Arguments(args []string) (directory, size string) {
	directory = DefaultDirectory
	size = DefaultSize

	if len(args) > 0 {
		directory = args[0]
	}

	if len(args) > 1 {
		size = args[1]
	}

	return directory, size
}

// Command builds the root cobra command.
func (c CLI) Command() *cobra.Command {
	var options bigfiles.Options

	cmd := &cobra.Command{
		Use:     "bigfiles [DIRECTORY] [SIZE]",
		Short:   "Find large files in a directory",
		Version: c.version,
		Long: heredoc.Doc(`
			bigfiles scans a directory tree and lists files at or above a minimum
			size, sorted largest first, with scan timing information.

			Positional Arguments:
			  DIRECTORY    Path to directory to scan (default: current directory)
			  SIZE         Minimum file size with optional unit
			               - Without unit: interpreted as MB (e.g., 100 = 100MB)
			               - With unit: MB or GB (e.g., 50MB, 1GB, 2G, 500M)
			               Default: 100MB

			Examples:
			  bigfiles /home/user/documents
			      Scan documents for files >= 100MB (default)

			  bigfiles . 50MB
			      Scan current directory for files >= 50MB

			  bigfiles /path 1GB
			      Scan /path for files >= 1GB

			  bigfiles ~/Downloads 200M
			      Scan Downloads for files >= 200MB

			The '-i' flag outputs a shell snippet that pipes results to 'fzf'
			for interactive selection.
		`),
		Args:         cobra.MaximumNArgs(2), // [DIRECTORY] [SIZE]
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Bare "help" behaves like --help, without scanning.
			if len(args) > 0 && args[0] == "help" {
				return cmd.Help()
			}

			if options.Integration {
				rendered, err := integration.Render()
				if err != nil {
					return fmt.Errorf("rendering integration script: %w", err)
				}

				//nolint:forbidigo // Integration script output to console
				fmt.Println(rendered)

				return nil
			}

			allowedOutputs := []string{"table", "json"}
			if !slices.Contains(allowedOutputs, options.Output) {
				return fmt.Errorf("invalid output format %q: must be one of %v", options.Output, allowedOutputs)
			}

			directory, sizeToken := Arguments(args)
			threshold := sizespec.Parse(sizeToken)

			options.Path = directory
			options.MinSize = threshold.Bytes()

			return logic(options, threshold)
		},
	}

	cmd.Flags().StringVarP(&options.Output, "output", "o", "table", "Output format: json or table")
	cmd.Flags().IntVarP(&options.Workers, "workers", "w", 0, "Number of traversal workers (0=auto)")
	cmd.Flags().BoolVar(&options.Debug, "debug", false, "Enable debug output")
	cmd.Flags().BoolVarP(&options.Integration, "init", "i", false, "Output init script for shell usage")

	cmd.Flags().SortFlags = false

	return cmd
}

// Execute runs the CLI with the provided arguments.
func (c CLI) Execute() error {
	return c.Command().Execute()
}
