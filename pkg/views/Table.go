// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

// Package views projects a map into read-only tables.
package views

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// Formats are the formats supported by Table.Write.
var Formats = []string{"csv", "json", "text", "yaml"}

// Table is a snapshot of rows with named columns.
type Table struct {
	Columns []string
	Rows    [][]string
}

// Records returns each row as a map from column to value.
func (t *Table) Records() []map[string]string {
	records := make([]map[string]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		record := make(map[string]string, len(t.Columns))
		for i, column := range t.Columns {
			if i < len(row) {
				record[column] = row[i]
			}
		}
		records = append(records, record)
	}
	return records
}

// Column returns the values of the named column.
func (t *Table) Column(name string) []string {
	index := -1
	for i, c := range t.Columns {
		if c == name {
			index = i
		}
	}
	if index == -1 {
		return nil
	}
	values := make([]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		values = append(values, row[index])
	}
	return values
}

// Write writes the table in the given format.
func (t *Table) Write(w io.Writer, format string) error {
	switch format {
	case "csv":
		cw := csv.NewWriter(w)
		if err := cw.Write(t.Columns); err != nil {
			return errors.Wrap(err, "error writing header")
		}
		if err := cw.WriteAll(t.Rows); err != nil {
			return errors.Wrap(err, "error writing rows")
		}
		return nil
	case "json":
		return json.NewEncoder(w).Encode(t.Records())
	case "yaml":
		b, err := yaml.Marshal(t.Records())
		if err != nil {
			return errors.Wrap(err, "error serializing table as yaml")
		}
		_, err = w.Write(b)
		return err
	case "text", "":
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, strings.Join(upper(t.Columns), "\t")) // #nosec
		for _, row := range t.Rows {
			fmt.Fprintln(tw, strings.Join(row, "\t")) // #nosec
		}
		return tw.Flush()
	}
	return errors.Errorf("unknown table format %q, expecting one of %v", format, Formats)
}

func upper(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, strings.ToUpper(v))
	}
	return out
}
