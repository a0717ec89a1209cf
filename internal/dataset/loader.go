package dataset

import (
	"encoding/csv"
	"errors"
	"os"
	"sync"

	"go.uber.org/zap"

	apperrors "github.com/spec-kit/support-analytics/pkg/util"
)

var errNoHeader = errors.New("csv has no header row")

// Raw is the loaded CSV before any type coercion. Column names are kept
// verbatim and rows are aligned to the header.
type Raw struct {
	Header []string
	Rows   [][]string
}

// LoadCSV reads the ticket CSV at path. Whole-file problems (missing
// file, unreadable, broken CSV structure) return a DATA_UNAVAILABLE
// error; field-level issues are left for the cleaner.
func LoadCSV(path string) (*Raw, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, apperrors.NewDataUnavailable(path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, apperrors.NewDataUnavailable(path, err)
	}
	if len(records) == 0 {
		return nil, apperrors.NewDataUnavailable(path, errNoHeader)
	}

	header := records[0]
	rows := make([][]string, 0, len(records)-1)
	for _, rec := range records[1:] {
		// Ragged rows are padded so every row matches the header.
		if len(rec) < len(header) {
			padded := make([]string, len(header))
			copy(padded, rec)
			rec = padded
		} else if len(rec) > len(header) {
			rec = rec[:len(header)]
		}
		rows = append(rows, rec)
	}

	return &Raw{Header: header, Rows: rows}, nil
}

// Store memoizes loaded-and-cleaned tables per source path. It is
// constructed once in main and passed down; the underlying files are
// treated as static for the lifetime of the process, so entries are
// never invalidated.
type Store struct {
	mu     sync.Mutex
	logger *zap.Logger
	tables map[string]*Table
}

// NewStore creates an empty store.
func NewStore(logger *zap.Logger) *Store {
	return &Store{
		logger: logger,
		tables: make(map[string]*Table),
	}
}

// Table returns the cleaned table for path, loading it on first use.
func (s *Store) Table(path string) (*Table, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if tbl, ok := s.tables[path]; ok {
		return tbl, nil
	}

	raw, err := LoadCSV(path)
	if err != nil {
		return nil, err
	}
	tbl := Clean(raw, s.logger)
	s.tables[path] = tbl

	s.logger.Info("dataset loaded",
		zap.String("path", path),
		zap.Int("rows", len(tbl.Tickets)),
		zap.Int("columns", len(tbl.Header)),
	)
	return tbl, nil
}
