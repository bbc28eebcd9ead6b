package feed

import (
	"encoding/csv"
	"io"
	"strings"
)

// Rows parses raw tabular feed text into header-keyed rows.
//
// The first row is the header; its trimmed cells become the field names
// for every following row. Quoted cells may contain separators, newlines
// and doubled-quote escapes. A leading BOM is stripped and all carriage
// returns are dropped before tokenizing, since the feeds come from
// spreadsheet exports with mixed line endings. Rows that are entirely
// blank after trimming are skipped, as are rows the tokenizer cannot
// make sense of: a broken row must never abort the whole feed.
func Rows(text string) []map[string]string {
	text = strings.TrimPrefix(text, "\ufeff")
	text = strings.ReplaceAll(text, "\r", "")

	r := csv.NewReader(strings.NewReader(text))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	header, err := r.Read()
	if err != nil {
		return nil
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var rows []map[string]string
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue
		}
		if blankRow(rec) {
			continue
		}
		row := make(map[string]string, len(header))
		for i, name := range header {
			if name == "" {
				continue
			}
			v := ""
			if i < len(rec) {
				v = strings.TrimSpace(rec[i])
			}
			row[name] = v
		}
		rows = append(rows, row)
	}
	return rows
}

func blankRow(rec []string) bool {
	for _, c := range rec {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// fieldOf returns the first non-empty value among the accepted header
// spellings for a logical field. Feeds have accumulated several aliases
// per column over time.
func fieldOf(row map[string]string, alts ...string) string {
	for _, k := range alts {
		if v, ok := row[k]; ok && strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// splitList splits a ;-delimited multi-value cell, trimming each element
// and dropping empties.
func splitList(cell string) []string {
	if cell == "" {
		return nil
	}
	parts := strings.Split(cell, ";")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
