package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/hurou927/table-schema-gen/internal/config"
)

var errConfigRequired = errors.New("--config is required")

var (
	cfgPath string
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "table-schema-gen",
	Short: "Generate typed schemas from remote table metadata",
	Long: `table-schema-gen fetches the table metadata of one or more bases, maps every
field to a value type and writes zod schemas with TypeScript types, or Go
structs, together with the field id mappings of each table.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cfgPath == "" {
			return errConfigRequired
		}
		var err error
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to YAML config file (required)")
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

// run executes the command line in args and reports a failure on stderr.
func run(args []string, stderr io.Writer) int {
	rootCmd.SetArgs(args)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
