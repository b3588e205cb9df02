package records

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"account-list/core/reconcile"
)

// Column names of a record collection, in the order they are written.
const (
	ColID   = "id"
	ColName = "sn"
	ColMemo = "memo"
)

var header = []string{ColID, ColName, ColMemo}

// Decode reads a record collection in CSV form.
//
// Columns are matched by header name. id and sn are optional and an empty
// cell means absent; memo is required. Any malformed row fails the whole
// decode with a *reconcile.ParseError. An empty input yields no records.
func Decode(r io.Reader) ([]reconcile.Record, error) {
	reader := csv.NewReader(r)

	head, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return []reconcile.Record{}, nil
	}
	if err != nil {
		return nil, csvParseError(err)
	}

	cols := make(map[string]int, len(head))
	for i, name := range head {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		cols[name] = i
	}
	if _, ok := cols[ColMemo]; !ok {
		return nil, reconcile.NewParseError(1, "", "", fmt.Errorf("missing required column %q", ColMemo))
	}

	var out []reconcile.Record
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, csvParseError(err)
		}
		line, _ := reader.FieldPos(0)

		rec := reconcile.Record{Memo: row[cols[ColMemo]]}

		if i, ok := cols[ColID]; ok && row[i] != "" {
			id, err := strconv.ParseUint(row[i], 10, 64)
			if err != nil {
				return nil, reconcile.NewParseError(line, ColID, row[i], err)
			}
			rec.ID = &id
		}

		if i, ok := cols[ColName]; ok && row[i] != "" {
			name := row[i]
			rec.Name = &name
		}

		out = append(out, rec)
	}

	if out == nil {
		out = []reconcile.Record{}
	}
	return out, nil
}

// Encode writes records as CSV with the header id,sn,memo.
// Absent optional fields are written as empty cells. The header is written
// even when there are no records.
func Encode(w io.Writer, records []reconcile.Record) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	row := make([]string, len(header))
	for i, rec := range records {
		row[0], row[1], row[2] = "", "", rec.Memo
		if rec.ID != nil {
			row[0] = strconv.FormatUint(*rec.ID, 10)
		}
		if rec.Name != nil {
			row[1] = *rec.Name
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

func csvParseError(err error) error {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return reconcile.NewParseError(pe.Line, "", "", pe.Err)
	}
	return fmt.Errorf("failed to read records: %w", err)
}
