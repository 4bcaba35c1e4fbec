// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hjy895/MegaTempQA/internal/knowledge"
)

var knowledgeCmd = &cobra.Command{
	Use:   "knowledge",
	Short: "Inspect the curated knowledge base (stats, export)",
	Long: `Knowledge inspects the curated knowledge base the generator draws
from. Use subcommands to print entity counts or export the full base.`,
}

// --- stats subcommand ---

var knowledgeStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print knowledge base entity counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		kb := knowledge.Load(os.Stderr)
		stats := kb.Stats()
		fmt.Fprintf(os.Stdout, "Events:        %d\n", stats.Events)
		fmt.Fprintf(os.Stdout, "People:        %d\n", stats.People)
		fmt.Fprintf(os.Stdout, "Organizations: %d\n", stats.Organizations)
		return nil
	},
}

// --- export subcommand ---

var knowledgeExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the knowledge base to YAML or JSON",
	Long: `Export writes the full curated knowledge base to a file, for
inspection or for downstream tooling that wants the raw entities.`,
	RunE: runKnowledgeExport,
}

func runKnowledgeExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	output, _ := cmd.Flags().GetString("output")

	kb := knowledge.Load(os.Stderr)

	switch format {
	case "yaml", "":
		if output == "" {
			output = "knowledge_base.yaml"
		}
		if err := kb.ExportYAML(output); err != nil {
			return err
		}
	case "json":
		if output == "" {
			output = "knowledge_base.json"
		}
		if err := kb.ExportJSON(output); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}

	fmt.Fprintf(os.Stdout, "Exported to %s\n", output)
	return nil
}

func init() {
	knowledgeExportCmd.Flags().String("format", "yaml", "export format: yaml or json")
	knowledgeExportCmd.Flags().String("output", "", "output file (default: knowledge_base.<format>)")

	knowledgeCmd.AddCommand(knowledgeStatsCmd)
	knowledgeCmd.AddCommand(knowledgeExportCmd)
	rootCmd.AddCommand(knowledgeCmd)
}
