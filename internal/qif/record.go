package qif

import (
	"log/slog"

	"github.com/cleared-dev/qifreader/internal/model"
)

// record accumulates the fields of the transaction currently being read.
type record struct {
	values map[string]string
}

func newRecord() *record {
	return &record{values: make(map[string]string)}
}

// set stores value under code. A repeated code overwrites the earlier value.
func (r *record) set(code, value string) {
	r.values[code] = value
}

func (r *record) empty() bool {
	return len(r.values) == 0
}

// flush snapshots the accumulated fields into a Transaction and resets the
// record for the next one.
func (r *record) flush(dateFormat string, logger *slog.Logger) *model.Transaction {
	t := model.NewTransaction(r.values, dateFormat, logger)
	clear(r.values)
	return t
}
