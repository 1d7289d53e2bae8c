// Copyright Zainab Saad, 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Zainab-Saad/BankAssist-LLM/internal/knowledge"
	"github.com/Zainab-Saad/BankAssist-LLM/pkg/types"
)

var knowledgeCmd = &cobra.Command{
	Use:   "knowledge",
	Short: "Manage the block index (store, retrieve, show, export)",
	Long: `Knowledge manages a local SQLite index built from converted block
documents. Use subcommands to ingest documents, query them, or export.`,
}

// --- store subcommand ---

var knowledgeStoreCmd = &cobra.Command{
	Use:   "store [documents...]",
	Short: "Ingest Markdown block documents into the index",
	Long: `Store reads one or more block documents, ingests their blocks into a
SQLite database with FTS5 indexing, and refreshes the export file.
Unchanged documents are skipped on subsequent runs. With no arguments it
ingests the convert output document.`,
	RunE: runKnowledgeStore,
}

func runKnowledgeStore(cmd *cobra.Command, args []string) error {
	docs := args
	if len(docs) == 0 {
		doc := types.DefaultOutputPath
		if viper.IsSet("convert.output") {
			doc = viper.GetString("convert.output")
		}
		docs = []string{doc}
	}

	store, err := knowledge.NewStore(knowledgeConfig(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	summary, err := store.Ingest(context.Background(), docs, os.Stdout)
	if err != nil {
		return err
	}
	if summary.Failed > 0 {
		return fmt.Errorf("%d document(s) failed indexing", summary.Failed)
	}
	return nil
}

// --- retrieve subcommand ---

var knowledgeRetrieveCmd = &cobra.Command{
	Use:   "retrieve [query]",
	Short: "Query the block index with full-text search and filters",
	Long: `Retrieve searches the block index using FTS5 full-text search over
questions and answers, structured filters (sheet, source), or a
combination of both. Full-text results are ranked by relevance.`,
	RunE: runKnowledgeRetrieve,
}

func runKnowledgeRetrieve(cmd *cobra.Command, args []string) error {
	store, err := knowledge.NewStore(knowledgeConfig(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	opts := queryOptsFromFlags(cmd, args)
	if opts.IsEmpty() {
		return fmt.Errorf("query or filter required: provide a search query, --sheet, or --source")
	}

	results, err := store.Retrieve(context.Background(), opts)
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatRetrieveOutput(results, jsonOutput)
}

func formatRetrieveOutput(results []knowledge.QueryResult, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	if len(results) == 0 {
		fmt.Println("No results found.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-4s  %-12s  %-14s  %-44s  %s\n",
		"Rank", "ID", "Sheet", "Question", "Answer")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 120))

	for i, r := range results {
		sheet := r.SheetName
		if len(sheet) > 14 {
			sheet = sheet[:11] + "..."
		}
		question := oneLine(r.Question)
		if len(question) > 44 {
			question = question[:41] + "..."
		}
		answer := oneLine(r.Answer)
		if len(answer) > 40 {
			answer = answer[:37] + "..."
		}
		fmt.Fprintf(os.Stdout, "%-4d  %-12s  %-14s  %-44s  %s\n",
			i+1, r.ID, sheet, question, answer)
	}

	fmt.Fprintf(os.Stdout, "\n%d results\n", len(results))
	return nil
}

// oneLine collapses whitespace so multi-line answers fit a table row.
func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// --- show subcommand ---

var knowledgeShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one block in full by its ID",
	Args:  cobra.ExactArgs(1),
	RunE:  runKnowledgeShow,
}

func runKnowledgeShow(cmd *cobra.Command, args []string) error {
	store, err := knowledge.NewStore(knowledgeConfig(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	result, err := store.Get(context.Background(), args[0])
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	fmt.Printf("ID:       %s\n", result.ID)
	fmt.Printf("Sheet:    %s\n", result.SheetName)
	fmt.Printf("Source:   %s\n", result.Source)
	fmt.Printf("Document: %s\n", result.DocumentPath)
	fmt.Printf("Position: %d\n", result.Position)
	fmt.Printf("\n%s\n\n%s\n", result.Question, result.Answer)
	return nil
}

// --- export subcommand ---

var knowledgeExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the block index to YAML or JSON",
	Long: `Export writes the full block index (or a filtered subset) to
export.yaml or export.json under the index directory. Supports the same
filter flags as retrieve for partial exports.`,
	RunE: runKnowledgeExport,
}

func runKnowledgeExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	cfg := knowledgeConfig(cmd)
	store, err := knowledge.NewStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	opts := queryOptsFromFlags(cmd, args)

	switch format {
	case "yaml", "":
		if err := store.ExportYAML(context.Background(), opts); err != nil {
			return err
		}
		fmt.Printf("Exported to %s/export.yaml\n", cfg.IndexDir)
	case "json":
		if err := store.ExportJSON(context.Background(), opts); err != nil {
			return err
		}
		fmt.Printf("Exported to %s/export.json\n", cfg.IndexDir)
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}

	return nil
}

// --- shared helpers ---

func knowledgeConfig(cmd *cobra.Command) types.KnowledgeBaseConfig {
	return types.KnowledgeBaseConfig{
		IndexDir:   stringSetting(cmd, "index-dir", "knowledge.index_dir", types.DefaultIndexDir),
		MaxResults: intSetting(cmd, "max-results", "knowledge.max_results", types.DefaultMaxResults),
	}
}

func queryOptsFromFlags(cmd *cobra.Command, args []string) knowledge.QueryOptions {
	queryText, _ := cmd.Flags().GetString("query")
	if queryText == "" && len(args) > 0 {
		queryText = strings.Join(args, " ")
	}

	sheet, _ := cmd.Flags().GetString("sheet")
	source, _ := cmd.Flags().GetString("source")
	limit, _ := cmd.Flags().GetInt("limit")

	return knowledge.QueryOptions{
		Query:      queryText,
		Sheet:      sheet,
		Source:     source,
		MaxResults: limit,
	}
}

func init() {
	// Shared flags on the parent command, inherited by subcommands.
	knowledgeCmd.PersistentFlags().String("index-dir", types.DefaultIndexDir, "directory for the block index database and exports")
	knowledgeCmd.PersistentFlags().Int("max-results", types.DefaultMaxResults, "maximum number of query results")

	// Retrieve flags.
	knowledgeRetrieveCmd.Flags().String("query", "", "full-text search query")
	knowledgeRetrieveCmd.Flags().String("sheet", "", "filter by sheet name")
	knowledgeRetrieveCmd.Flags().String("source", "", "filter by source workbook")
	knowledgeRetrieveCmd.Flags().Int("limit", 0, "maximum results (0 = use default)")
	knowledgeRetrieveCmd.Flags().Bool("json", false, "output results as JSON")

	// Show flags.
	knowledgeShowCmd.Flags().Bool("json", false, "output the block as JSON")

	// Export flags.
	knowledgeExportCmd.Flags().String("format", "yaml", "export format: yaml or json")
	knowledgeExportCmd.Flags().String("query", "", "full-text search filter for partial export")
	knowledgeExportCmd.Flags().String("sheet", "", "filter by sheet name for partial export")
	knowledgeExportCmd.Flags().String("source", "", "filter by source workbook for partial export")
	knowledgeExportCmd.Flags().Int("limit", 0, "maximum blocks to export (0 = all)")

	// Wire subcommands.
	knowledgeCmd.AddCommand(knowledgeStoreCmd)
	knowledgeCmd.AddCommand(knowledgeRetrieveCmd)
	knowledgeCmd.AddCommand(knowledgeShowCmd)
	knowledgeCmd.AddCommand(knowledgeExportCmd)

	rootCmd.AddCommand(knowledgeCmd)
}
