package minibase

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"

	"github.com/ryogrid/cqbase/query"
	"github.com/ryogrid/cqbase/storage/tuple"
)

type Result struct {
	Columns []string
	Tuples  []*tuple.Tuple
}

// Rows returns the textual values of every tuple.
func (r *Result) Rows() [][]string {
	rows := make([][]string, 0, len(r.Tuples))
	for _, t := range r.Tuples {
		rows = append(rows, t.ValueStrings())
	}
	return rows
}

// WriteTuples writes one line per non-empty tuple, values joined by separator.
func WriteTuples(w io.Writer, tuples []*tuple.Tuple, separator string) error {
	bw := bufio.NewWriter(w)
	for _, t := range tuples {
		if t.IsEmpty() {
			continue
		}
		if _, err := bw.WriteString(strings.Join(t.ValueStrings(), separator) + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func WriteResultFile(path string, tuples []*tuple.Tuple, separator string) error {
	return writeFile(path, func(w io.Writer) error {
		return WriteTuples(w, tuples, separator)
	})
}

func WriteQueryFile(path string, q *query.Query) error {
	return writeFile(path, func(w io.Writer) error {
		_, err := io.WriteString(w, q.String())
		return err
	})
}

// writeFile creates path, and any missing parent directory, and fills it with write.
func writeFile(path string, write func(io.Writer) error) (err error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrapf(err, "cannot create directory %s", dir)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "cannot create output file %s", path)
	}
	defer func() {
		if closeErr := f.Close(); err == nil && closeErr != nil {
			err = errors.Wrapf(closeErr, "cannot close output file %s", path)
		}
	}()
	if err := write(f); err != nil {
		return errors.Wrapf(err, "cannot write output file %s", path)
	}
	return nil
}

// RenderTable prints the result as a text table.
func RenderTable(w io.Writer, r *Result) {
	table := tablewriter.NewWriter(w)
	table.SetHeader(r.Columns)
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.AppendBulk(r.Rows())
	table.Render()
}
