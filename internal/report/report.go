// Package report renders parsed QIF files for the command line.
package report

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cleared-dev/qifreader/internal/model"
)

// DateLayout is how dates are printed, independent of the input format.
const DateLayout = "2006-01-02"

// missing is printed for absent fields.
const missing = "-"

// Header is the CSV header row written by CSVWriter.
const Header = "file,index,type,date,amount,number,payee,memo"

const (
	numFields = 8
	colFile   = 0
	colIndex  = 1
	colType   = 2
	colDate   = 3
	colAmount = 4
	colNumber = 5
	colPayee  = 6
	colMemo   = 7
)

// Summary is the one-line view of a record.
type Summary struct {
	Date   string
	Amount string
	Number string
	Payee  string
	Memo   string
}

// Summarize extracts the commonly displayed fields of t. Absent fields
// become "-"; fields that fail to parse keep their raw text, flagged invalid.
func Summarize(t *model.Transaction) Summary {
	s := Summary{
		Number: valueOr(t.Number()),
		Payee:  valueOr(t.Payee()),
		Memo:   valueOr(t.Memo()),
	}

	d, err := t.Date()
	s.Date = render(err, model.CodeDate, t, func() string { return d.Format(DateLayout) })

	amt, err := t.Amount()
	s.Amount = render(err, model.CodeAmount, t, func() string { return amt.StringFixed(2) })

	return s
}

func render(err error, code string, t *model.Transaction, ok func() string) string {
	switch {
	case err == nil:
		return ok()
	case errors.Is(err, model.ErrFieldMissing):
		return missing
	default:
		raw, _ := t.Value(code)
		return fmt.Sprintf("invalid %q", raw)
	}
}

func valueOr(v string, ok bool) string {
	if !ok {
		return missing
	}
	return v
}

// WriteText prints the file's type, record count and one line per record.
func WriteText(w io.Writer, name string, ts *model.Transactions) error {
	var b strings.Builder
	fmt.Fprintf(&b, "==> %s\n", name)
	fmt.Fprintf(&b, "Type: %s, Count: %d\n", ts.Type(), ts.Len())
	for _, t := range ts.All() {
		s := Summarize(t)
		fmt.Fprintf(&b, "  - Date: %s, Amount: %s, Payee: %s, Memo: %s\n", s.Date, s.Amount, s.Payee, s.Memo)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// WriteCodes prints the distinct field codes used in the file.
func WriteCodes(w io.Writer, name string, ts *model.Transactions) error {
	_, err := fmt.Fprintf(w, "%s\t%s\t%s\n", name, ts.Type(), strings.Join(ts.Codes(), ","))
	return err
}

// CSVWriter writes record summaries of several files as one CSV table.
type CSVWriter struct {
	cw          *csv.Writer
	wroteHeader bool
}

// NewCSVWriter creates a CSVWriter on w.
func NewCSVWriter(w io.Writer) *CSVWriter {
	return &CSVWriter{cw: csv.NewWriter(w)}
}

// MarshalRow converts one record summary to a CSV row.
func MarshalRow(name string, index int, typ string, s Summary) []string {
	row := make([]string, numFields)
	row[colFile] = name
	row[colIndex] = strconv.Itoa(index)
	row[colType] = typ
	row[colDate] = s.Date
	row[colAmount] = s.Amount
	row[colNumber] = s.Number
	row[colPayee] = s.Payee
	row[colMemo] = s.Memo
	return row
}

// Write appends the records of one file, writing the header first if needed.
func (c *CSVWriter) Write(name string, ts *model.Transactions) error {
	if !c.wroteHeader {
		if err := c.cw.Write(strings.Split(Header, ",")); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
		c.wroteHeader = true
	}
	for i, t := range ts.All() {
		if err := c.cw.Write(MarshalRow(name, i, ts.Type(), Summarize(t))); err != nil {
			return fmt.Errorf("writing record %d: %w", i, err)
		}
	}
	c.cw.Flush()
	return c.cw.Error()
}
