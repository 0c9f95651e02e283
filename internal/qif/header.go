package qif

import (
	"strings"

	"github.com/cleared-dev/qifreader/internal/model"
)

const (
	optionPrefix = "!Option:"
	typePrefix   = "!Type:"
	optionMDY    = optionPrefix + "MDY"
)

// header is the parse-wide state decided by the first one or two lines.
type header struct {
	dateFormat string
	typ        string
}

// readHeader consumes the optional "!Option:" line and the mandatory
// "!Type:" line from src.
func (r *Reader) readHeader(src *lineSource) (header, error) {
	h := header{dateFormat: r.dateFormat}

	line, ok, err := src.next()
	if err != nil {
		return h, err
	}
	if !ok {
		return h, &HeaderError{Line: 1, Expected: `"` + optionPrefix + `" or "` + typePrefix + `"`, EOF: true}
	}

	if strings.HasPrefix(line, optionPrefix) {
		if line != optionMDY {
			return h, &HeaderError{Line: src.n, Expected: `"` + optionMDY + `"`, Found: line}
		}
		h.dateFormat = model.MDYDateFormat
		r.logger.Debug("date format overridden by header", "option", line, "date_format", h.dateFormat)

		line, ok, err = src.next()
		if err != nil {
			return h, err
		}
		if !ok {
			return h, &HeaderError{Line: src.n + 1, Expected: `"` + typePrefix + `"`, EOF: true}
		}
	}

	typ, found := strings.CutPrefix(line, typePrefix)
	if !found {
		return h, &HeaderError{Line: src.n, Expected: `"` + typePrefix + `"`, Found: line}
	}
	h.typ = typ
	return h, nil
}
