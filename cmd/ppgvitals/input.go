package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Input formats accepted by the estimate command.
const (
	formatCSV  = "csv"
	formatFIFO = "fifo"
)

// readCSV parses "red,ir" records. Blank lines and lines starting with '#'
// are skipped, and a first record in which neither field is numeric is taken
// as a header.
func readCSV(r io.Reader) (red, ir []uint32, err error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	for first := true; ; first = false {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("csv: %w", err)
		}

		line, _ := cr.FieldPos(0)
		if len(rec) < 2 {
			return nil, nil, fmt.Errorf("csv line %d: want red,ir, got %d fields", line, len(rec))
		}

		rv, rerr := parseCount(rec[0])
		iv, ierr := parseCount(rec[1])
		if rerr != nil || ierr != nil {
			if first && rerr != nil && ierr != nil {
				continue
			}
			return nil, nil, fmt.Errorf("csv line %d: %w", line, errors.Join(rerr, ierr))
		}

		red = append(red, rv)
		ir = append(ir, iv)
	}

	return red, ir, nil
}

func parseCount(s string) (uint32, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint32(v), nil
}
