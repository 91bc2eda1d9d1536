package tabular

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// RawTable is a parsed tabular file: one header row plus data rows of raw
// string cells.
type RawTable struct {
	Headers []string
	Rows    [][]string
}

// FileReader handles reading Excel and CSV dataset files
type FileReader struct {
	filePath string
	fileType string // "xlsx" or "csv"
}

// NewFileReader creates a reader that handles both Excel and CSV files
func NewFileReader(filePath string) *FileReader {
	ext := strings.ToLower(filepath.Ext(filePath))
	fileType := "xlsx"
	if ext == ".csv" {
		fileType = "csv"
	}
	return &FileReader{filePath: filePath, fileType: fileType}
}

// Read parses the file into a raw table
func (r *FileReader) Read() (*RawTable, error) {
	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%s file not found: %s", strings.ToUpper(r.fileType), r.filePath)
	}

	switch r.fileType {
	case "csv":
		return r.readCSV()
	case "xlsx":
		return r.readExcel()
	default:
		return nil, fmt.Errorf("unsupported file type: %s", r.fileType)
	}
}

// readExcel reads Sheet1 of an Excel workbook
func (r *FileReader) readExcel() (*RawTable, error) {
	startTime := time.Now()
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Sheet1")
	if err != nil {
		return nil, fmt.Errorf("failed to read Sheet1: %w", err)
	}
	log.Printf("[FileReader] Excel file read in %.2fms (%d rows)",
		float64(time.Since(startTime).Nanoseconds())/1e6, len(rows))

	return r.splitRows(rows)
}

// readCSV reads a comma-separated file
func (r *FileReader) readCSV() (*RawTable, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // some exports have ragged rows
	startTime := time.Now()
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV file: %w", err)
	}
	log.Printf("[FileReader] CSV file read in %.2fms (%d rows)",
		float64(time.Since(startTime).Nanoseconds())/1e6, len(rows))

	return r.splitRows(rows)
}

// splitRows separates header from data and trims cells
func (r *FileReader) splitRows(rows [][]string) (*RawTable, error) {
	if len(rows) < 2 {
		return nil, fmt.Errorf("%s file must have at least a header row and one data row", strings.ToUpper(r.fileType))
	}

	headers := make([]string, len(rows[0]))
	for i, header := range rows[0] {
		headers[i] = strings.TrimSpace(header)
	}

	log.Printf("[FileReader] %s file processed (%d columns, %d rows)",
		strings.ToUpper(r.fileType), len(headers), len(rows)-1)

	return &RawTable{
		Headers: headers,
		Rows:    rows[1:],
	}, nil
}
