package excel

// ExcelConfig holds configuration for spreadsheet sample sources
type ExcelConfig struct {
	FilePath   string `json:"file_path"`
	Sheet      string `json:"sheet"`       // empty selects the first sheet
	Column     string `json:"column"`      // empty selects the first numeric column
	MaxSamples int    `json:"max_samples"` // 0 means unlimited
}

// DefaultExcelConfig returns sensible defaults for spreadsheet ingestion
func DefaultExcelConfig() ExcelConfig {
	return ExcelConfig{
		MaxSamples: 1_000_000,
	}
}
