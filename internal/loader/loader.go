package loader

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/matrixorigin/simdcsv"

	"griddle/internal/domain"
	"griddle/internal/eventbus"
	"griddle/internal/logutil"
)

// batchRows is how many records one simdcsv read returns at most.
const batchRows = 4096

// Service ingests tabular data files. Loads requested over the bus run
// in the background and come back as DataLoaded or LoadFailed events.
type Service interface {
	Load(ctx context.Context, path string) ([]domain.Row, []domain.Column, error)
}

// loaderService is the concrete implementation
type loaderService struct {
	bus eventbus.EventBus
}

// NewService creates a loader service subscribed to LoadRequested
// events.
func NewService(bus eventbus.EventBus) Service {
	s := &loaderService{bus: bus}

	bus.Subscribe(eventbus.EventLoadRequested, func(e eventbus.DomainEvent) {
		req, ok := e.(eventbus.LoadRequestedEvent)
		if !ok {
			return
		}
		go s.loadAndPublish(context.Background(), req.Path)
	})

	return s
}

// loadAndPublish runs one load and reports the outcome on the bus.
func (s *loaderService) loadAndPublish(ctx context.Context, path string) {
	s.bus.Publish(eventbus.LoadStartedEvent{Path: path})

	rows, cols, err := s.Load(ctx, path)
	if err != nil {
		logutil.Errorf("loader: %v", err)
		s.bus.Publish(eventbus.LoadFailedEvent{Path: path, Err: err})
		return
	}

	s.bus.Publish(eventbus.DataLoadedEvent{Path: path, Rows: rows, Columns: cols})
}

// Load reads and decodes one data file. The format follows the file
// extension: .csv and .tsv decode as delimited text with a header row,
// .json as an array of objects. Returned columns are inferred from the
// data and carry field names only.
func (s *loaderService) Load(ctx context.Context, path string) ([]domain.Row, []domain.Column, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return loadDelimited(ctx, path, ',')
	case ".tsv":
		return loadDelimited(ctx, path, '\t')
	case ".json":
		return loadJSON(path)
	default:
		return nil, nil, fmt.Errorf("unsupported data file %q (want .csv, .tsv or .json)", filepath.Base(path))
	}
}

// loadDelimited streams a header-first delimited file through simdcsv.
func loadDelimited(ctx context.Context, path string, comma rune) ([]domain.Row, []domain.Column, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open data file: %w", err)
	}
	defer f.Close()

	reader := simdcsv.NewReaderWithOptions(f, comma, '#', true, true)

	var header []string
	rows := make([]domain.Row, 0, batchRows)
	buf := make([][]string, batchRows)

	for {
		records, cnt, err := reader.Read(batchRows, ctx, buf)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
		}
		for _, rec := range records[:cnt] {
			if header == nil {
				header = append([]string(nil), rec...)
				continue
			}
			rows = append(rows, rowFromRecord(header, rec))
		}
		// A short batch means the stream is exhausted.
		if cnt < batchRows {
			break
		}
	}

	if header == nil {
		return nil, nil, fmt.Errorf("%s has no header row", filepath.Base(path))
	}

	cols := make([]domain.Column, len(header))
	for i, field := range header {
		cols[i] = domain.Column{Field: field}
	}

	logutil.Infof("loader: read %d rows from %s", len(rows), path)
	return rows, cols, nil
}

// rowFromRecord zips one record against the header. Cells that parse as
// numbers are stored numeric so sorting and comparison treat them as
// such; short records simply leave fields absent.
func rowFromRecord(header []string, rec []string) domain.Row {
	row := make(domain.Row, len(header))
	for i, field := range header {
		if i >= len(rec) {
			break
		}
		row[field] = typeCell(rec[i])
	}
	return row
}

// typeCell converts a raw cell to its natural type.
func typeCell(s string) any {
	if s == "" {
		return ""
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}

// loadJSON decodes an array of flat objects.
func loadJSON(path string) ([]domain.Row, []domain.Column, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read data file: %w", err)
	}

	var rows []domain.Row
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}

	logutil.Infof("loader: read %d rows from %s", len(rows), path)
	return rows, inferColumns(rows), nil
}

// inferColumns derives a schema from the first row's keys, sorted for a
// stable order since JSON objects carry none.
func inferColumns(rows []domain.Row) []domain.Column {
	if len(rows) == 0 {
		return nil
	}

	fields := make([]string, 0, len(rows[0]))
	for f := range rows[0] {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	cols := make([]domain.Column, len(fields))
	for i, f := range fields {
		cols[i] = domain.Column{Field: f}
	}
	return cols
}
