package model

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransaction_Date(t *testing.T) {
	tests := []struct {
		name   string
		format string
		raw    string
		want   time.Time
	}{
		{"default dmy", "", "01/02/2016", time.Date(2016, 2, 1, 0, 0, 0, 0, time.UTC)},
		{"mdy", MDYDateFormat, "01/02/2016", time.Date(2016, 1, 2, 0, 0, 0, 0, time.UTC)},
		{"unpadded", DefaultDateFormat, "1/2/2016", time.Date(2016, 2, 1, 0, 0, 0, 0, time.UTC)},
		{"surrounding space", DefaultDateFormat, " 15/03/2020 ", time.Date(2020, 3, 15, 0, 0, 0, 0, time.UTC)},
		{"go layout", "2006-01-02", "2021-12-31", time.Date(2021, 12, 31, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txn := NewTransaction(map[string]string{CodeDate: tt.raw}, tt.format, nil)
			got, err := txn.Date()
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s", got)
		})
	}
}

func TestTransaction_DateMissingVsInvalid(t *testing.T) {
	_, err := NewTransaction(map[string]string{CodePayee: "x"}, "", nil).Date()
	assert.ErrorIs(t, err, ErrFieldMissing)
	assert.NotErrorIs(t, err, ErrFieldInvalid)

	_, err = NewTransaction(map[string]string{CodeDate: "yesterday"}, "", nil).Date()
	assert.ErrorIs(t, err, ErrFieldInvalid)
	assert.NotErrorIs(t, err, ErrFieldMissing)

	var fe *FieldError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, CodeDate, fe.Code)
	assert.Equal(t, "yesterday", fe.Value)
}

func TestTransaction_Amount(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"-10.50", "-10.50"},
		{"1,234.56", "1234.56"},
		{"1,000,000", "1000000.00"},
		{" 42 ", "42.00"},
		{"+3.5", "3.50"},
	}
	for _, tt := range tests {
		txn := NewTransaction(map[string]string{CodeAmount: tt.raw}, "", nil)
		got, err := txn.Amount()
		require.NoError(t, err, "Amount(%q)", tt.raw)
		assert.Equal(t, tt.want, got.StringFixed(2), "Amount(%q)", tt.raw)
	}
}

func TestTransaction_AmountInvalid(t *testing.T) {
	for _, raw := range []string{"abc", "", "12.3.4", "--5"} {
		txn := NewTransaction(map[string]string{CodeAmount: raw}, "", nil)
		_, err := txn.Amount()
		assert.ErrorIs(t, err, ErrFieldInvalid, "Amount(%q)", raw)

		v, ok := txn.Value(CodeAmount)
		assert.True(t, ok)
		assert.Equal(t, raw, v)
	}

	_, err := NewTransaction(nil, "", nil).Amount()
	assert.ErrorIs(t, err, ErrFieldMissing)
}

func TestTransaction_CoercionWarningLogged(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	txn := NewTransaction(map[string]string{CodeAmount: "abc"}, "", logger)
	_, err := txn.Amount()
	require.Error(t, err)
	assert.Contains(t, buf.String(), "failed to parse amount")
	assert.Contains(t, buf.String(), "value=abc")
}

func TestTransaction_Passthroughs(t *testing.T) {
	txn := NewTransaction(map[string]string{
		CodeNumber: "1001",
		CodePayee:  " Coffee Shop ",
		CodeMemo:   "",
		"XA":       "extra",
	}, "", nil)

	n, ok := txn.Number()
	assert.True(t, ok)
	assert.Equal(t, "1001", n)

	p, ok := txn.Payee()
	assert.True(t, ok)
	assert.Equal(t, " Coffee Shop ", p)

	m, ok := txn.Memo()
	assert.True(t, ok, "empty value is still present")
	assert.Equal(t, "", m)

	x, ok := txn.Value("XA")
	assert.True(t, ok)
	assert.Equal(t, "extra", x)

	_, ok = txn.Value("L")
	assert.False(t, ok)

	assert.Equal(t, []string{"M", "N", "P", "XA"}, txn.Keys())
	assert.Equal(t, 4, txn.Len())
}

func TestNewTransaction_CopiesValues(t *testing.T) {
	src := map[string]string{CodePayee: "a", "": "dropped"}
	txn := NewTransaction(src, "", nil)
	src[CodePayee] = "b"

	p, _ := txn.Payee()
	assert.Equal(t, "a", p)
	assert.Equal(t, []string{"P"}, txn.Keys())
	assert.Equal(t, DefaultDateFormat, txn.DateFormat())
}

func TestTransaction_String(t *testing.T) {
	txn := NewTransaction(map[string]string{"T": "5", "D": "1/1/2020"}, "", nil)
	assert.Equal(t, "{D=1/1/2020, T=5}", txn.String())
}

func TestLayout(t *testing.T) {
	tests := []struct {
		format string
		want   string
	}{
		{"dd/MM/yyyy", "2/1/2006"},
		{"MM/dd/yyyy", "1/2/2006"},
		{"d.M.yy", "2.1.06"},
		{"dd MMM yyyy", "2 Jan 2006"},
		{"dd MMMM yyyy", "2 January 2006"},
		{"02/01/2006", "02/01/2006"},
		{"dd/MM/yyyy HH:mm", "2/1/2006 15:04"},
		{"yyyy-MM-dd HH:mm:ss", "2006-1-2 15:04:05"},
		{"15:04", "15:04"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Layout(tt.format), "Layout(%q)", tt.format)
	}
}

func TestParseDate_WithTime(t *testing.T) {
	got, err := ParseDate("dd/MM/yyyy HH:mm", "01/02/2016 13:45")
	require.NoError(t, err)
	assert.True(t, time.Date(2016, 2, 1, 13, 45, 0, 0, time.UTC).Equal(got), "got %s", got)
}

func TestParseDate_Strict(t *testing.T) {
	for _, raw := range []string{"32/01/2016", "01/02/2016 extra", "1/2/16", "29/02/2015"} {
		_, err := ParseDate(DefaultDateFormat, raw)
		assert.Error(t, err, "ParseDate(%q)", raw)
	}

	got, err := ParseDate("d/M/yy", "1/2/16")
	require.NoError(t, err)
	assert.True(t, time.Date(2016, 2, 1, 0, 0, 0, 0, time.UTC).Equal(got))
}
