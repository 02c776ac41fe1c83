// =============================================================================
// Compute Sales - Document Loader Module
// =============================================================================
//
// This module loads record files into a uniform in-memory form. Price
// catalogues and sales records arrive from several upstream systems in
// different formats:
//   - JSON exports from the web store (arrays of objects)
//   - CSV exports from the legacy reporting system
//   - XLSX workbooks maintained by hand in the back office
//
// Whatever the source format, a loaded file becomes a slice of Documents
// (field name -> value maps), so the catalogue and sales layers never need
// to know where their data came from.
//
// FIELD VALUE CONTRACT:
//   - JSON strings and CSV/XLSX text cells      -> string
//   - JSON numbers and CSV/XLSX numeric cells   -> float64
//   - empty CSV/XLSX cells                      -> field omitted entirely
//
// Other JSON value types (booleans, nested objects, arrays) pass through
// as-is; consumers type-switch on the fields they care about and treat
// anything unexpected as a malformed field.
//
// =============================================================================

package docloader

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Document is one record from an input file, keyed by field name.
type Document map[string]any

// LoadError describes a file that could not be loaded. The caller decides
// whether that is fatal (price catalogue) or skippable (one sales record in
// a batch).
type LoadError struct {
	// Path is the file that failed to load.
	Path string

	// Err is the underlying cause.
	Err error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// =============================================================================
// LOADING
// =============================================================================

// Load reads the file at path and returns its records as Documents.
//
// The format is chosen by extension: .csv and .xlsx/.xlsm are parsed as
// header-plus-rows tables, everything else is parsed as a JSON array of
// objects. Any failure is reported as a *LoadError wrapping the cause.
func Load(path string) ([]Document, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return loadCSV(path)
	case ".xlsx", ".xlsm":
		return loadXLSX(path)
	default:
		return loadJSON(path)
	}
}

// loadJSON parses a JSON array of objects. A top-level value of any other
// shape is a load failure.
func loadJSON(path string) ([]Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	var docs []Document
	if err := json.Unmarshal(data, &docs); err != nil {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("failed to parse JSON: %w", err)}
	}

	return docs, nil
}

// loadCSV parses a CSV file with a single header row.
func loadCSV(path string) ([]Document, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer file.Close()

	reader := csv.NewReader(bufio.NewReader(file))

	// Tolerant reader settings: the legacy system is inconsistent about
	// quoting and per-row column counts.
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("failed to read CSV: %w", err)}
	}
	if len(rows) == 0 {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("file is empty")}
	}

	return rowsToDocuments(rows[0], rows[1:]), nil
}

// loadXLSX parses the first sheet of a workbook with a single header row.
func loadXLSX(path string) ([]Document, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("workbook has no sheets")}
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("failed to read sheet %q: %w", sheetName, err)}
	}
	if len(rows) == 0 {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("sheet %q is empty", sheetName)}
	}

	return rowsToDocuments(rows[0], rows[1:]), nil
}

// =============================================================================
// TABLE CONVERSION
// =============================================================================

// rowsToDocuments converts header-plus-rows table data into Documents.
// Blank rows are skipped, and empty cells are left out of the Document so
// they behave exactly like absent JSON fields.
func rowsToDocuments(headers []string, rows [][]string) []Document {
	docs := make([]Document, 0, len(rows))

	for _, row := range rows {
		if isRowEmpty(row) {
			continue
		}

		doc := make(Document, len(headers))
		for i, header := range headers {
			header = strings.TrimSpace(header)
			if header == "" || i >= len(row) {
				continue
			}

			value := strings.TrimSpace(row[i])
			if value == "" {
				continue
			}
			doc[header] = cellValue(value)
		}

		docs = append(docs, doc)
	}

	return docs
}

// cellValue converts a raw cell into the value the same field would have
// carried in JSON, so downstream type switches work for every format.
// Cell text that parses to NaN or Inf stays a string: JSON cannot carry a
// non-finite number, and the money layer must never see one.
func cellValue(raw string) any {
	n, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return raw
	}
	return n
}

// isRowEmpty checks if a row contains only empty values.
func isRowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// =============================================================================
// FIELD ACCESS
// =============================================================================

// NameString renders a field value as a product or title name. CSV and XLSX
// exports type bare numeric cells as numbers, so a name that happens to look
// numeric ("1984") arrives as a float64; it still names the same product as
// its JSON string form does.
func NameString(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	default:
		return "", false
	}
}
