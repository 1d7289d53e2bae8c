package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Zainab-Saad/BankAssist-LLM/internal/blocks"
	"github.com/Zainab-Saad/BankAssist-LLM/internal/render"
	"github.com/Zainab-Saad/BankAssist-LLM/pkg/types"
)

var previewCmd = &cobra.Command{
	Use:   "preview [document]",
	Short: "Render a Markdown block document as HTML for review",
	Long: `Preview reads a converted block document and renders it as an HTML
fragment: one heading per question with the formatted answer below it.
With no arguments it renders the convert output document. Output goes to
stdout unless --output names a file.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPreview,
}

func runPreview(cmd *cobra.Command, args []string) error {
	doc := types.DefaultOutputPath
	if viper.IsSet("convert.output") {
		doc = viper.GetString("convert.output")
	}
	if len(args) > 0 {
		doc = args[0]
	}

	blks, err := blocks.ReadDocument(doc)
	if err != nil {
		return err
	}

	outPath, _ := cmd.Flags().GetString("output")
	if outPath == "" {
		return render.Document(blks, os.Stdout)
	}

	var buf strings.Builder
	if err := render.Document(blks, &buf); err != nil {
		return err
	}
	if err := os.WriteFile(outPath, []byte(buf.String()), 0o644); err != nil {
		return fmt.Errorf("writing preview: %w", err)
	}
	fmt.Printf("Rendered %d blocks to %s\n", len(blks), outPath)
	return nil
}

func init() {
	previewCmd.Flags().String("output", "", "write HTML to this file instead of stdout")

	rootCmd.AddCommand(previewCmd)
}
