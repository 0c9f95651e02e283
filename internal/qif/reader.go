// Package qif reads Quicken Interchange Format files.
//
// A QIF file starts with an optional "!Option:MDY" line and a mandatory
// "!Type:<type>" line, followed by records made of one field per line and
// terminated by a line containing only "^". Field lines start with a
// one-character code, or a two-character code when the line starts with "X".
//
// Header problems abort the read. Past the header nothing aborts: short lines
// are skipped and malformed dates or amounts surface only when the typed
// accessors on model.Transaction are called.
package qif

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/cleared-dev/qifreader/internal/charset"
	"github.com/cleared-dev/qifreader/internal/model"
)

const (
	// recordEnd terminates a record.
	recordEnd = "^"
	// maxLineSize bounds a single line read through Read.
	maxLineSize = 1 << 20
)

// LineScanner is a source of text lines without their terminators.
// *bufio.Scanner satisfies it.
type LineScanner interface {
	Scan() bool
	Text() string
	Err() error
}

// Reader parses QIF input. A Reader holds only configuration and is safe for
// concurrent use.
type Reader struct {
	dateFormat string
	logger     *slog.Logger
}

// Option configures a Reader.
type Option func(*Reader)

// WithDateFormat sets the date format used when the file has no
// "!Option:MDY" header. See model.Layout for accepted formats.
func WithDateFormat(format string) Option {
	return func(r *Reader) {
		if format != "" {
			r.dateFormat = format
		}
	}
}

// WithLogger sets the logger for parse diagnostics and field coercion
// warnings.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Reader) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewReader creates a Reader. Without options it uses model.DefaultDateFormat
// and discards log output.
func NewReader(opts ...Option) *Reader {
	r := &Reader{
		dateFormat: model.DefaultDateFormat,
		logger:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// DateFormat returns the reader's default date format.
func (r *Reader) DateFormat() string {
	return r.dateFormat
}

// ReadFile opens path, decodes it from the named encoding (UTF-8 when empty)
// and parses it. The file is closed before ReadFile returns.
func (r *Reader) ReadFile(path, encoding string) (*model.Transactions, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	dec, err := charset.NewReader(f, encoding)
	if err != nil {
		return nil, err
	}
	ts, err := r.Read(dec)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ts, nil
}

// Read parses QIF text from rd. It does not close rd.
func (r *Reader) Read(rd io.Reader) (*model.Transactions, error) {
	sc := bufio.NewScanner(rd)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return r.Parse(sc)
}

// Parse runs the QIF state machine over lines until they are exhausted.
// On error no partial result is returned.
func (r *Reader) Parse(lines LineScanner) (*model.Transactions, error) {
	src := &lineSource{lines: lines}

	h, err := r.readHeader(src)
	if err != nil {
		return nil, err
	}
	r.logger.Debug("read QIF header", "type", h.typ, "date_format", h.dateFormat)

	ts := model.NewTransactions(h.typ)
	rec := newRecord()
	for {
		line, ok, err := src.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}

		if strings.TrimSpace(line) == recordEnd {
			if !rec.empty() {
				ts.Add(rec.flush(h.dateFormat, r.logger))
				r.logger.Debug("read record", "index", ts.Len()-1, "line", src.n)
			}
			continue
		}

		if code, value, ok := SplitField(line); ok {
			rec.set(code, value)
		}
	}

	if !rec.empty() {
		ts.Add(rec.flush(h.dateFormat, r.logger))
		r.logger.Debug("read unterminated final record", "index", ts.Len()-1)
	}
	return ts, nil
}

// lineSource counts lines and strips a trailing carriage return.
type lineSource struct {
	lines LineScanner
	n     int
}

// next returns the next line. ok is false once the input is exhausted; err
// is set if reading failed.
func (s *lineSource) next() (line string, ok bool, err error) {
	if !s.lines.Scan() {
		if err := s.lines.Err(); err != nil {
			return "", false, fmt.Errorf("reading line %d: %w", s.n+1, err)
		}
		return "", false, nil
	}
	s.n++
	return strings.TrimSuffix(s.lines.Text(), "\r"), true, nil
}
