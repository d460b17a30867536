package dataprocessing

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	apperrors "github.com/mazouznourelislam20-prog/variable-star-analysis/internal/errors"
	"github.com/mazouznourelislam20-prog/variable-star-analysis/pkg/contracts/domain"
)

// Supported input formats. FormatAuto selects by file extension.
const (
	FormatAuto = "auto"
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

// Loader reads photometric observation files into raw string tables.
// It understands delimited text files and Excel workbooks. Parsing of
// cell contents into numbers is deferred to the Cleaner so that a file
// with malformed values still loads and reports its shape.
type Loader struct {
	logger    *slog.Logger
	delimiter rune
}

// NewLoader creates a Loader. A zero delimiter defaults to comma.
func NewLoader(logger *slog.Logger, delimiter rune) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	if delimiter == 0 {
		delimiter = ','
	}
	return &Loader{logger: logger, delimiter: delimiter}
}

// DetectFormat maps a file path to an input format by extension.
// Workbook extensions select xlsx; everything else is treated as
// delimited text.
func DetectFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return FormatXLSX
	default:
		return FormatCSV
	}
}

// Load reads the observation file at path and returns its rows as raw
// strings. The first line of the file is always treated as a header
// and discarded; column names are fixed by the pipeline, not the file.
// Rows wider than the expected column count fail the load, narrower
// rows are padded with empty cells that the Cleaner later treats as
// missing values.
func (l *Loader) Load(ctx context.Context, path, format string) (*domain.RawTable, error) {
	if format == "" || format == FormatAuto {
		format = DetectFormat(path)
	}

	l.logger.InfoContext(ctx, "loading observation file",
		slog.String("path", path),
		slog.String("format", format))

	var (
		table *domain.RawTable
		err   error
	)
	switch format {
	case FormatCSV:
		table, err = l.loadCSV(path)
	case FormatXLSX:
		table, err = l.loadXLSX(path)
	default:
		return nil, apperrors.NewLoadError(fmt.Sprintf("unsupported input format %q", format), nil)
	}
	if err != nil {
		l.logger.ErrorContext(ctx, "failed to load observation file",
			slog.String("path", path),
			slog.String("error", err.Error()))
		return nil, err
	}

	l.logger.InfoContext(ctx, "observation file loaded",
		slog.String("path", path),
		slog.Int("rows", table.RowCount()),
		slog.Int("columns", len(table.ColumnNames())))
	return table, nil
}

func (l *Loader) loadCSV(path string) (*domain.RawTable, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.NewNotFoundError(path, err)
		}
		return nil, apperrors.NewLoadError(fmt.Sprintf("failed to open %s", path), err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.Comma = l.delimiter
	// Row widths are validated by hand so that short rows can be padded
	// instead of rejected.
	reader.FieldsPerRecord = -1

	rows := make([]domain.RawObservation, 0, 128)
	line := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, apperrors.NewLoadError(fmt.Sprintf("failed to parse %s", path), err).
				WithContext("line", line+1)
		}
		line++
		if line == 1 {
			// Header line. Its contents are ignored; the column set is fixed.
			continue
		}
		obs, err := recordToObservation(record, line)
		if err != nil {
			return nil, err
		}
		rows = append(rows, obs)
	}

	if line == 0 {
		return nil, apperrors.NewLoadError(fmt.Sprintf("no columns to parse from %s", path), nil)
	}

	return &domain.RawTable{Source: path, Rows: rows}, nil
}

func (l *Loader) loadXLSX(path string) (*domain.RawTable, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.NewNotFoundError(path, err)
		}
		return nil, apperrors.NewLoadError(fmt.Sprintf("failed to stat %s", path), err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, apperrors.NewLoadError(fmt.Sprintf("failed to open workbook %s", path), err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			l.logger.Warn("failed to close workbook", slog.String("path", path), slog.String("error", cerr.Error()))
		}
	}()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, apperrors.NewLoadError(fmt.Sprintf("workbook %s has no sheets", path), nil)
	}
	sheet := sheets[0]

	cells, err := f.GetRows(sheet)
	if err != nil {
		return nil, apperrors.NewLoadError(fmt.Sprintf("failed to read sheet %q of %s", sheet, path), err).
			WithContext("sheet", sheet)
	}
	if len(cells) == 0 {
		return nil, apperrors.NewLoadError(fmt.Sprintf("no columns to parse from %s", path), nil)
	}

	rows := make([]domain.RawObservation, 0, len(cells)-1)
	for i, record := range cells[1:] {
		obs, err := recordToObservation(record, i+2)
		if err != nil {
			return nil, err
		}
		rows = append(rows, obs)
	}

	return &domain.RawTable{Source: path, Rows: rows}, nil
}

// recordToObservation converts one data row into a RawObservation.
// line is the 1-based position within the file, used in error reports.
func recordToObservation(record []string, line int) (domain.RawObservation, error) {
	if len(record) > domain.ObservationColumnCount {
		return domain.RawObservation{}, apperrors.NewLoadError(
			fmt.Sprintf("expected %d fields in line %d, saw %d",
				domain.ObservationColumnCount, line, len(record)), nil).
			WithContext("line", line)
	}
	padded := make([]string, domain.ObservationColumnCount)
	copy(padded, record)
	return domain.RawObservation{
		BJD:       padded[0],
		Raw:       padded[1],
		OstDecorr: padded[2],
		OstTfa:    padded[3],
		Err:       padded[4],
	}, nil
}
