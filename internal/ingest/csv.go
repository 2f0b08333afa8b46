// Package ingest adapts the directory CSV dump format to the directory
// builder: one header line discarded, then rows of
// zipcode, address-part..., rule_str.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// Row is one parsed directory CSV row: the address built by joining every
// field between the zipcode and the trailing rule string, and the rule
// string itself.
type Row struct {
	Zipcode     string
	HeadAddrStr string
	RuleStr     string
}

// ReadDirectoryCSV reads every row of r, discarding the header line, and
// returns the parsed rows. A row with fewer than 3 fields is a boundary
// format error and aborts the read — the caller's transaction rolls back.
func ReadDirectoryCSV(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	if _, err := cr.Read(); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("ingest: reading header: %w", err)
	}

	var rows []Row
	lineNo := 1
	for {
		lineNo++
		fields, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("ingest: row %d: %w", lineNo, err)
		}
		if len(fields) < 3 {
			return nil, fmt.Errorf("ingest: row %d: need at least 3 fields, got %d", lineNo, len(fields))
		}
		rows = append(rows, Row{
			Zipcode:     fields[0],
			HeadAddrStr: strings.Join(fields[1:len(fields)-1], ""),
			RuleStr:     fields[len(fields)-1],
		})
	}
	return rows, nil
}
