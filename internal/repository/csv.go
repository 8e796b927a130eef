package repository

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"sync"

	"biolink/internal/model"

	"github.com/rs/zerolog/log"
)

// CSVStore keeps visits in a flat CSV file with a header row.
// All file access goes through one mutex, so a reader never sees a half-written row.
type CSVStore struct {
	path string

	mu    sync.Mutex
	ready bool
}

// NewCSVStore creates a store backed by the file at path
func NewCSVStore(path string) *CSVStore {
	return &CSVStore{path: path}
}

// Init creates the file with its header row if it does not exist yet
func (s *CSVStore) Init(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.initLocked()
}

func (s *CSVStore) initLocked() error {
	if s.ready {
		return nil
	}

	if err := ensureParentDir(s.path); err != nil {
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	f, err := os.OpenFile(s.path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	switch {
	case info.Size() == 0:
		if err := writeRow(f, model.FieldNames); err != nil {
			return fmt.Errorf("%w: failed to write header: %w", ErrStoreUnavailable, err)
		}
	default:
		// A torn final row must not swallow the next append.
		last := make([]byte, 1)
		if _, err := f.ReadAt(last, info.Size()-1); err != nil {
			return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
		}
		if last[0] != '\n' {
			if _, err := f.WriteAt([]byte("\n"), info.Size()); err != nil {
				return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
			}
		}
	}

	s.ready = true
	log.Info().Str("driver", DriverCSV).Str("path", s.path).Msg("Visit store initialized")
	return nil
}

// Append writes one visit as a single CSV row
func (s *CSVStore) Append(_ context.Context, visit *model.Visit) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.initLocked(); err != nil {
		return fmt.Errorf("%w: %w", ErrAppendFailed, err)
	}

	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrAppendFailed, err)
	}
	defer f.Close()

	if err := writeRow(f, visit.Fields()); err != nil {
		return fmt.Errorf("%w: %w", ErrAppendFailed, err)
	}
	return nil
}

// ListAll reads every well-formed row in file order
func (s *CSVStore) ListAll(_ context.Context) ([]model.Visit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.initLocked(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrListFailed, err)
	}

	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrListFailed, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	visits := make([]model.Visit, 0)
	for line := 1; ; line++ {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				log.Warn().Err(err).Str("path", s.path).Msg("Skipping malformed visit row")
				continue
			}
			return nil, fmt.Errorf("%w: %w", ErrListFailed, err)
		}

		if line == 1 && slices.Equal(record, model.FieldNames) {
			continue
		}

		visit, ok := model.VisitFromFields(record)
		if !ok {
			log.Warn().Int("fields", len(record)).Str("path", s.path).Msg("Skipping malformed visit row")
			continue
		}
		visits = append(visits, visit)
	}

	return visits, nil
}

// Close is a no-op; files are opened per operation
func (s *CSVStore) Close() error {
	return nil
}

// writeRow encodes fields and writes them with a single write call, then syncs
func writeRow(f *os.File, fields []string) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(fields); err != nil {
		return err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}

	if _, err := f.Write(buf.Bytes()); err != nil {
		return err
	}
	return f.Sync()
}
