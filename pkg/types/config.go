package types

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// DefaultOutputPath is where convert writes the blocks document unless told otherwise.
const DefaultOutputPath = "output.md"

// DefaultExcludeSheets lists the workbook sheets that carry no product Q&A
// content: the index sheet and the scratch sheets left over from authoring.
var DefaultExcludeSheets = []string{"Main", "Sheet1", "Sheet3"}

// DefaultIndexDir is where the knowledge stage keeps its database and exports.
const DefaultIndexDir = "knowledge/index"

// DefaultMaxResults caps query results unless a config or flag overrides it.
const DefaultMaxResults = 20

// ConversionConfig holds settings for the workbook-to-blocks conversion stage.
type ConversionConfig struct {
	// WorkbookPath is the .xlsx file holding the product knowledge sheets.
	WorkbookPath string `json:"workbook_path" yaml:"workbook_path"`

	// OutputPath is the Markdown document the conversion writes (default "output.md").
	OutputPath string `json:"output_path" yaml:"output_path"`

	// ExcludeSheets lists sheet names skipped entirely before processing.
	ExcludeSheets []string `json:"exclude_sheets" yaml:"exclude_sheets"`
}

// Validate reports whether the conversion settings are usable.
func (c ConversionConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.WorkbookPath, validation.Required.Error("workbook path is required")),
		validation.Field(&c.OutputPath, validation.Required.Error("output path is required")),
	)
}

// Excluded reports whether the named sheet is in the exclusion set.
func (c ConversionConfig) Excluded(sheet string) bool {
	for _, name := range c.ExcludeSheets {
		if name == sheet {
			return true
		}
	}
	return false
}

// KnowledgeBaseConfig holds settings for the block index stage.
type KnowledgeBaseConfig struct {
	// IndexDir is the directory holding the SQLite database and export files.
	IndexDir string `json:"index_dir" yaml:"index_dir"`

	// MaxResults is the default maximum number of query results (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// Validate reports whether the knowledge base settings are usable.
func (c KnowledgeBaseConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.IndexDir, validation.Required.Error("index directory is required")),
		validation.Field(&c.MaxResults, validation.Min(0)),
	)
}

// PipelineConfig groups all stage configurations.
type PipelineConfig struct {
	Conversion    ConversionConfig    `json:"conversion" yaml:"conversion"`
	KnowledgeBase KnowledgeBaseConfig `json:"knowledge_base" yaml:"knowledge_base"`
}
