package csvfile

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/phrazzld/rollcall/internal/platform/logger"
	"github.com/phrazzld/rollcall/internal/store"
)

// codec maps one record kind to and from its positional CSV fields.
type codec[T any] struct {
	entity string
	fields int
	key    func(T) string
	encode func(T) []string
	decode func([]string) (T, error)
}

// Table is a comma-separated file holding one record per line.
// It implements store.Table for the record type T.
type Table[T any] struct {
	path   string
	codec  codec[T]
	logger *slog.Logger
}

func newTable[T any](path string, c codec[T], l *slog.Logger) *Table[T] {
	if l == nil {
		l = slog.Default()
	}
	return &Table[T]{
		path:   path,
		codec:  c,
		logger: l.With(slog.String("component", c.entity+"_file")),
	}
}

// Path returns the file backing the table.
func (t *Table[T]) Path() string {
	return t.path
}

// Ensure creates the backing file, empty, if it does not exist yet.
func (t *Table[T]) Ensure() error {
	f, err := os.OpenFile(t.path, os.O_CREATE|os.O_RDONLY, 0o644)
	if err != nil {
		return store.NewIOError(t.codec.entity, "create", t.path, err)
	}
	return f.Close()
}

// LoadAll implements store.Table.LoadAll.
// A missing file yields an empty result. Lines with the wrong number of fields
// or undecodable values are skipped with a warning.
func (t *Table[T]) LoadAll(ctx context.Context) ([]T, error) {
	log := logger.FromContextOrDefault(ctx, t.logger)

	f, err := os.Open(t.path)
	if errors.Is(err, os.ErrNotExist) {
		log.Debug("file does not exist, nothing to load", slog.String("path", t.path))
		return nil, nil
	}
	if err != nil {
		return nil, store.NewIOError(t.codec.entity, "load", t.path, err)
	}
	defer func() { _ = f.Close() }()

	r := newReader(f)
	var records []T
	for {
		fields, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				log.Warn("skipping unparsable line",
					slog.String("path", t.path),
					slog.Int("line", pe.Line),
					slog.String("error", pe.Err.Error()))
				continue
			}
			return nil, store.NewIOError(t.codec.entity, "load", t.path, err)
		}

		line, _ := r.FieldPos(0)
		record, err := t.decode(fields)
		if err != nil {
			log.Warn("skipping malformed record",
				slog.String("path", t.path),
				slog.Int("line", line),
				slog.String("error", err.Error()))
			continue
		}
		records = append(records, record)
	}

	log.Debug("loaded records", slog.String("path", t.path), slog.Int("count", len(records)))
	return records, nil
}

// Append implements store.Table.Append.
func (t *Table[T]) Append(ctx context.Context, record T) error {
	log := logger.FromContextOrDefault(ctx, t.logger)

	if err := t.check(record); err != nil {
		return store.NewStoreError(t.codec.entity, "append", "refusing to write record", err)
	}

	f, err := os.OpenFile(t.path, os.O_CREATE|os.O_RDWR|os.O_APPEND, 0o644)
	if err != nil {
		return store.NewIOError(t.codec.entity, "append", t.path, err)
	}

	if err := terminateLastLine(f); err != nil {
		_ = f.Close()
		return store.NewIOError(t.codec.entity, "append", t.path, err)
	}

	w := csv.NewWriter(f)
	_ = w.Write(t.codec.encode(record))
	w.Flush()
	if err := errors.Join(w.Error(), f.Close()); err != nil {
		return store.NewIOError(t.codec.entity, "append", t.path, err)
	}

	log.Debug("appended record", slog.String("path", t.path), slog.String("key", t.codec.key(record)))
	return nil
}

// RewriteAll implements store.Table.RewriteAll.
// The new content is written to a temporary file that is then renamed over
// the original, so readers never observe a half-written table.
func (t *Table[T]) RewriteAll(ctx context.Context, records []T) error {
	log := logger.FromContextOrDefault(ctx, t.logger)

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	for _, record := range records {
		if err := t.check(record); err != nil {
			return store.NewStoreError(t.codec.entity, "rewrite", "refusing to write record", err)
		}
		_ = w.Write(t.codec.encode(record))
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return store.NewStoreError(t.codec.entity, "rewrite", "failed to encode records", err)
	}

	if err := os.MkdirAll(filepath.Dir(t.path), 0o755); err != nil {
		return store.NewIOError(t.codec.entity, "rewrite", t.path, err)
	}

	tmp := t.path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0o644); err != nil {
		return store.NewIOError(t.codec.entity, "rewrite", tmp, err)
	}
	if err := os.Rename(tmp, t.path); err != nil {
		_ = os.Remove(tmp)
		return store.NewIOError(t.codec.entity, "rewrite", t.path, err)
	}

	log.Debug("rewrote file", slog.String("path", t.path), slog.Int("count", len(records)))
	return nil
}

// DeleteMatching implements store.Table.DeleteMatching.
// The file is left untouched when nothing matches.
func (t *Table[T]) DeleteMatching(ctx context.Context, match func(T) bool) (int, error) {
	records, err := t.LoadAll(ctx)
	if err != nil {
		return 0, err
	}

	kept := make([]T, 0, len(records))
	for _, record := range records {
		if !match(record) {
			kept = append(kept, record)
		}
	}

	removed := len(records) - len(kept)
	if removed == 0 {
		return 0, nil
	}
	if err := t.RewriteAll(ctx, kept); err != nil {
		return 0, err
	}
	return removed, nil
}

func (t *Table[T]) decode(fields []string) (T, error) {
	var zero T
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	if len(fields) != t.codec.fields {
		return zero, fmt.Errorf("%w: expected %d fields, got %d", store.ErrMalformedRecord, t.codec.fields, len(fields))
	}
	record, err := t.codec.decode(fields)
	if err != nil {
		return zero, fmt.Errorf("%w: %w", store.ErrMalformedRecord, err)
	}
	if t.codec.key(record) == "" {
		return zero, fmt.Errorf("%w: empty key", store.ErrMalformedRecord)
	}
	return record, nil
}

func (t *Table[T]) check(record T) error {
	key := t.codec.key(record)
	if key == "" || strings.ContainsAny(key, "\r\n") {
		return fmt.Errorf("%w: %s key %q", store.ErrInvalidEntity, t.codec.entity, key)
	}
	return nil
}

func newReader(r io.Reader) *csv.Reader {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true
	return cr
}

// terminateLastLine makes sure an appended record starts on its own line even
// when the file was last edited by hand without a trailing newline.
func terminateLastLine(f *os.File) error {
	info, err := f.Stat()
	if err != nil || info.Size() == 0 {
		return err
	}
	last := make([]byte, 1)
	if _, err := f.ReadAt(last, info.Size()-1); err != nil {
		return err
	}
	if last[0] == '\n' {
		return nil
	}
	_, err = f.Write([]byte("\n"))
	return err
}
