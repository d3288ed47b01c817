package excel

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gorandtest/domain/randomness"

	"github.com/xuri/excelize/v2"
)

var (
	// ErrNoNumericColumn is returned when no column holds numeric samples
	ErrNoNumericColumn = errors.New("no numeric column found")
	// ErrColumnNotFound is returned when a requested column is absent
	ErrColumnNotFound = errors.New("column not found")
	// ErrTooManySamples is returned when a file exceeds the configured limit
	ErrTooManySamples = errors.New("too many samples")
)

// DataReader handles reading sample sequences from Excel and CSV files
type DataReader struct {
	config   ExcelConfig
	fileType string // "xlsx" or "csv"
}

// NewDataReader creates a reader that handles both Excel and CSV files
func NewDataReader(cfg ExcelConfig) *DataReader {
	ext := strings.ToLower(filepath.Ext(cfg.FilePath))
	fileType := "xlsx"
	if ext == ".csv" {
		fileType = "csv"
	}
	return &DataReader{config: cfg, fileType: fileType}
}

// LoadSamples reads the configured column (or the first numeric one) and
// returns its values in row order with blank and non-finite cells dropped
func (r *DataReader) LoadSamples(ctx context.Context) (*randomness.SampleSet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := r.ReadData()
	if err != nil {
		return nil, err
	}

	column := r.config.Column
	if column == "" {
		column, err = DetectNumericColumn(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", r.config.FilePath, err)
		}
	} else if !hasHeader(data, column) {
		return nil, fmt.Errorf("%w: %q in %s", ErrColumnNotFound, column, r.config.FilePath)
	}

	values, dropped, err := ParseSamples(data.Column(column))
	if err != nil {
		return nil, fmt.Errorf("column %q: %w", column, err)
	}
	if r.config.MaxSamples > 0 && len(values) > r.config.MaxSamples {
		return nil, fmt.Errorf("%w: %d exceeds limit %d", ErrTooManySamples, len(values), r.config.MaxSamples)
	}

	log.Printf("[DataReader] Loaded %d samples from column %q (%d dropped)", len(values), column, dropped)

	return &randomness.SampleSet{
		Source:  r.config.FilePath,
		Column:  column,
		Values:  values,
		Dropped: dropped,
	}, nil
}

// ReadData reads data from Excel or CSV files into structured format
func (r *DataReader) ReadData() (*ExcelData, error) {
	log.Printf("[DataReader] Starting to read %s file: %s", r.fileType, r.config.FilePath)

	if _, err := os.Stat(r.config.FilePath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%s file not found: %s", strings.ToUpper(r.fileType), r.config.FilePath)
	}

	switch r.fileType {
	case "csv":
		return r.readCSVData()
	case "xlsx":
		return r.readExcelData()
	default:
		return nil, fmt.Errorf("unsupported file type: %s", r.fileType)
	}
}

// readExcelData reads the configured sheet, or the first one, into structured format
func (r *DataReader) readExcelData() (*ExcelData, error) {
	startTime := time.Now()
	f, err := excelize.OpenFile(r.config.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheet := r.config.Sheet
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	log.Printf("[DataReader] Sheet %q read in %.2fms (%d rows)",
		sheet, float64(time.Since(startTime).Nanoseconds())/1e6, len(rows))

	if len(rows) < 2 {
		return nil, fmt.Errorf("Excel file must have at least a header row and one data row")
	}

	return r.processRows(rows)
}

// readCSVData reads CSV data into structured format
func (r *DataReader) readCSVData() (*ExcelData, error) {
	file, err := os.Open(r.config.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	readStart := time.Now()
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV file: %w", err)
	}
	log.Printf("[DataReader] CSV file read in %.2fms (%d rows)",
		float64(time.Since(readStart).Nanoseconds())/1e6, len(rows))

	if len(rows) < 2 {
		return nil, fmt.Errorf("CSV file must have at least a header row and one data row")
	}

	return r.processRows(rows)
}

// processRows converts raw string rows into ExcelData format
func (r *DataReader) processRows(rows [][]string) (*ExcelData, error) {
	headerRow := rows[0]
	headers := make([]string, len(headerRow))
	for i, header := range headerRow {
		headers[i] = strings.TrimSpace(header)
	}

	dataRows := make([]RawRowData, 0, len(rows)-1)
	for i := 1; i < len(rows); i++ {
		rowData := make(RawRowData, len(headers))
		for j, cell := range rows[i] {
			if j < len(headers) {
				rowData[headers[j]] = strings.TrimSpace(cell)
			}
		}
		dataRows = append(dataRows, rowData)
	}

	log.Printf("[DataReader] %s file processed (%d columns, %d rows)",
		strings.ToUpper(r.fileType), len(headers), len(dataRows))

	return &ExcelData{
		Headers: headers,
		Rows:    dataRows,
	}, nil
}

// DetectNumericColumn returns the first column whose non-blank cells all
// parse as numbers, with at least one such cell
func DetectNumericColumn(data *ExcelData) (string, error) {
	for _, header := range data.Headers {
		if values, _, err := ParseSamples(data.Column(header)); err == nil && len(values) > 0 {
			return header, nil
		}
	}
	return "", ErrNoNumericColumn
}

// ParseSamples converts raw cells to floats. Blank and non-finite cells
// are dropped and counted; any other non-numeric cell is an error.
func ParseSamples(cells []string) (values []float64, dropped int, err error) {
	values = make([]float64, 0, len(cells))
	for i, cell := range cells {
		cell = strings.TrimSpace(cell)
		if cell == "" {
			dropped++
			continue
		}
		v, perr := strconv.ParseFloat(cell, 64)
		if perr != nil {
			return nil, 0, fmt.Errorf("row %d: %q is not numeric", i+2, cell)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			dropped++
			continue
		}
		values = append(values, v)
	}
	return values, dropped, nil
}

func hasHeader(data *ExcelData, name string) bool {
	for _, h := range data.Headers {
		if h == name {
			return true
		}
	}
	return false
}
