package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hurou927/table-schema-gen/internal/diagnostic"
	"github.com/hurou927/table-schema-gen/internal/generate"
	"github.com/hurou927/table-schema-gen/internal/output"
	"github.com/hurou927/table-schema-gen/internal/schema"
)

var (
	outputPath string
	formatFlag string
	dryRun     bool
	verbose    bool
	debugDump  bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate schemas for the configured bases",
	Long:  `Fetches each configured base, scopes its tables and views, and writes one document with a schema, a type and a table definition per table.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		if formatFlag != "" {
			cfg.Format = formatFlag
		}

		client, err := schema.NewClient(cfg.Endpoint, nil)
		if err != nil {
			return err
		}

		gen := generate.New(cfg, client, generate.Options{
			Sink:    diagnostic.NewLogSink(os.Stderr),
			Log:     os.Stderr,
			Verbose: verbose,
			Debug:   debugDump,
		})

		res, err := gen.Generate(ctx)
		if err != nil {
			return err
		}

		// Determine output destination
		outPath := outputPath
		if outPath == "" {
			outPath = cfg.Output
		}

		if dryRun {
			if _, err := os.Stdout.Write(res.Output); err != nil {
				return fmt.Errorf("writing output: %w", err)
			}
		} else if err := output.Write(outPath, res.Output, os.Stdout); err != nil {
			return err
		}

		fmt.Fprintln(os.Stderr, "Generation complete:")
		for _, line := range res.Summary() {
			fmt.Fprintln(os.Stderr, line)
		}
		if !dryRun && !output.IsStdout(outPath) {
			fmt.Fprintf(os.Stderr, "Output written to: %s\n", outPath)
		}

		return nil
	},
}

func init() {
	generateCmd.Flags().StringVar(&outputPath, "output", "", "output file path (overrides config)")
	generateCmd.Flags().StringVar(&formatFlag, "format", "", "output format: typescript or go (overrides config)")
	generateCmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the document to stdout without writing the output file")
	generateCmd.Flags().BoolVar(&verbose, "verbose", false, "show detailed progress")
	generateCmd.Flags().BoolVar(&debugDump, "debug", false, "dump the built table models to stderr")
	rootCmd.AddCommand(generateCmd)
}
