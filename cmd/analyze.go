package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hurou927/table-schema-gen/internal/diagnostic"
	"github.com/hurou927/table-schema-gen/internal/generate"
	"github.com/hurou927/table-schema-gen/internal/graph"
	"github.com/hurou927/table-schema-gen/internal/schema"
)

var analyzeFormat string

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze the link graph between configured tables",
	Long:  `Fetches and scopes the configured bases, builds a graph of record link fields, and outputs it in the specified format.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		client, err := schema.NewClient(cfg.Endpoint, nil)
		if err != nil {
			return err
		}

		tables, _, err := generate.New(cfg, client, generate.Options{
			Sink: diagnostic.NewLogSink(os.Stderr),
		}).Build(ctx)
		if err != nil {
			return err
		}

		g := graph.Build(tables)

		switch analyzeFormat {
		case "mermaid":
			return graph.WriteMermaid(os.Stdout, g)
		case "text":
			return graph.WriteText(os.Stdout, g)
		default:
			return fmt.Errorf("unknown format: %s (supported: mermaid, text)", analyzeFormat)
		}
	},
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeFormat, "format", "mermaid", "output format: mermaid or text")
	rootCmd.AddCommand(analyzeCmd)
}
