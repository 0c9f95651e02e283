package model

import (
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Well-known QIF field codes.
const (
	CodeDate   = "D"
	CodeAmount = "T"
	CodeNumber = "N"
	CodePayee  = "P"
	CodeMemo   = "M"
)

var (
	// ErrFieldMissing is returned by typed accessors when the record has no
	// value for the field code.
	ErrFieldMissing = errors.New("field not present")
	// ErrFieldInvalid is returned by typed accessors when the field is present
	// but its raw value cannot be interpreted.
	ErrFieldInvalid = errors.New("field value invalid")
)

// FieldError describes a present field whose raw value failed coercion.
type FieldError struct {
	Code  string
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %s: cannot interpret %q: %v", e.Code, e.Value, e.Err)
}

// Unwrap exposes both ErrFieldInvalid and the underlying parse error.
func (e *FieldError) Unwrap() []error {
	return []error{ErrFieldInvalid, e.Err}
}

var discardLogger = slog.New(slog.DiscardHandler)

// Transaction is a single QIF record: field code -> raw value.
type Transaction struct {
	values     map[string]string
	dateFormat string
	logger     *slog.Logger
}

// NewTransaction copies values into a new Transaction. An empty dateFormat
// means DefaultDateFormat; a nil logger discards coercion warnings.
func NewTransaction(values map[string]string, dateFormat string, logger *slog.Logger) *Transaction {
	if dateFormat == "" {
		dateFormat = DefaultDateFormat
	}
	if logger == nil {
		logger = discardLogger
	}
	v := make(map[string]string, len(values))
	for code, val := range values {
		if code == "" {
			continue
		}
		v[code] = val
	}
	return &Transaction{values: v, dateFormat: dateFormat, logger: logger}
}

// Keys returns the field codes present in the record, sorted.
func (t *Transaction) Keys() []string {
	return slices.Sorted(maps.Keys(t.values))
}

// Value returns the raw value stored for code.
func (t *Transaction) Value(code string) (string, bool) {
	v, ok := t.values[code]
	return v, ok
}

// Len returns the number of fields in the record.
func (t *Transaction) Len() int {
	return len(t.values)
}

// DateFormat returns the format Date parses with.
func (t *Transaction) DateFormat() string {
	return t.dateFormat
}

// Date parses the D field with the record's date format.
func (t *Transaction) Date() (time.Time, error) {
	raw, ok := t.values[CodeDate]
	if !ok {
		return time.Time{}, ErrFieldMissing
	}
	d, err := ParseDate(t.dateFormat, raw)
	if err != nil {
		t.logger.Warn("failed to parse date", "value", raw, "format", t.dateFormat, "error", err)
		return time.Time{}, &FieldError{Code: CodeDate, Value: raw, Err: err}
	}
	return d, nil
}

// Amount parses the T field, ignoring thousands separators.
func (t *Transaction) Amount() (decimal.Decimal, error) {
	raw, ok := t.values[CodeAmount]
	if !ok {
		return decimal.Zero, ErrFieldMissing
	}
	amt, err := ParseAmount(raw)
	if err != nil {
		t.logger.Warn("failed to parse amount", "value", raw, "error", err)
		return decimal.Zero, &FieldError{Code: CodeAmount, Value: raw, Err: err}
	}
	return amt, nil
}

// Number returns the check number (N).
func (t *Transaction) Number() (string, bool) { return t.Value(CodeNumber) }

// Payee returns the payee (P).
func (t *Transaction) Payee() (string, bool) { return t.Value(CodePayee) }

// Memo returns the memo (M).
func (t *Transaction) Memo() (string, bool) { return t.Value(CodeMemo) }

func (t *Transaction) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, k := range t.Keys() {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s=%s", k, t.values[k])
	}
	b.WriteByte('}')
	return b.String()
}

// ParseAmount parses a QIF amount such as "-1,234.56".
func ParseAmount(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(strings.ReplaceAll(raw, ",", ""))
	return decimal.NewFromString(s)
}
