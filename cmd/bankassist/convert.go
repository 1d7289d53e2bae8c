package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Zainab-Saad/BankAssist-LLM/internal/convert"
	"github.com/Zainab-Saad/BankAssist-LLM/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert [workbook]",
	Short: "Convert a product Q&A workbook to a Markdown block document",
	Long: `Convert reads an Excel workbook of bank product questions and answers,
detects question rows, formats answers as bulleted lists or pipe tables,
redacts sensitive values, and writes one Markdown document of blocks with
provenance frontmatter.

The workbook path can be given as an argument, with --workbook, or in the
config file under convert.workbook.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConvert,
}

func runConvert(cmd *cobra.Command, args []string) error {
	workbook := stringSetting(cmd, "workbook", "convert.workbook", "")
	if len(args) > 0 {
		workbook = args[0]
	}
	if workbook == "" {
		return fmt.Errorf("workbook path required: pass it as an argument, with --workbook, or set convert.workbook")
	}

	cfg := types.ConversionConfig{
		WorkbookPath:  workbook,
		OutputPath:    stringSetting(cmd, "output", "convert.output", types.DefaultOutputPath),
		ExcludeSheets: sliceSetting(cmd, "exclude", "convert.exclude", types.DefaultExcludeSheets),
	}

	_, err := convert.Run(cfg, os.Stdout)
	return err
}

func init() {
	convertCmd.Flags().String("workbook", "", "path to the source .xlsx workbook")
	convertCmd.Flags().String("output", types.DefaultOutputPath, "path for the Markdown block document")
	convertCmd.Flags().StringSlice("exclude", types.DefaultExcludeSheets, "sheet names to skip (comma-separated)")

	rootCmd.AddCommand(convertCmd)
}
