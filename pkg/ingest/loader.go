package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/exp/mmap"
)

// LoadEdgeTable memory-maps the file at path and parses it in the given format
func LoadEdgeTable(path string, format Format) (*EdgeTable, error) {
	reader, err := mmap.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open edge list: %w", err)
	}
	defer reader.Close()

	table, err := ReadEdgeTable(io.NewSectionReader(reader, 0, int64(reader.Len())), format)
	if err != nil {
		return nil, fmt.Errorf("read edge list %s: %w", path, err)
	}
	return table, nil
}

// ReadEdgeTable parses an edge list from r
func ReadEdgeTable(r io.Reader, format Format) (*EdgeTable, error) {
	switch format {
	case FormatCSV, "":
		return readCSV(r)
	case FormatSNAP:
		return readSNAP(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func readCSV(r io.Reader) (*EdgeTable, error) {
	reader := csv.NewReader(r)
	reader.ReuseRecord = true
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %s, %s (empty input)", ErrMissingColumn, FromColumn, ToColumn)
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	fromIdx, toIdx := -1, -1
	for i, name := range header {
		switch strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")) {
		case FromColumn:
			fromIdx = i
		case ToColumn:
			toIdx = i
		}
	}
	if fromIdx < 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, FromColumn)
	}
	if toIdx < 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, ToColumn)
	}

	return readRecords(reader, fromIdx, toIdx)
}

func readSNAP(r io.Reader) (*EdgeTable, error) {
	reader := csv.NewReader(r)
	reader.Comma = '\t'
	reader.Comment = '#'
	reader.ReuseRecord = true
	reader.FieldsPerRecord = -1

	return readRecords(reader, 0, 1)
}

func readRecords(reader *csv.Reader, fromIdx, toIdx int) (*EdgeTable, error) {
	table := &EdgeTable{}
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read record: %w", err)
		}

		line, _ := reader.FieldPos(0)
		if len(record) <= max(fromIdx, toIdx) {
			return nil, &ParseError{Line: line, Column: ToColumn, Err: errors.New("too few fields")}
		}

		from, err := parseNodeID(record[fromIdx], line, FromColumn)
		if err != nil {
			return nil, err
		}
		to, err := parseNodeID(record[toIdx], line, ToColumn)
		if err != nil {
			return nil, err
		}

		table.Records = append(table.Records, EdgeRecord{From: from, To: to})
	}
	return table, nil
}

func parseNodeID(value string, line int, column string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return 0, &ParseError{Line: line, Column: column, Value: value, Err: err}
	}
	return id, nil
}
