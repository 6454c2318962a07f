package access

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// TableFileIterator reads rows of a relation file in file order.
// It holds exactly one open reader; Rewind releases it before reopening.
type TableFileIterator struct {
	file   TableFile
	reader io.ReadCloser
	csv    *csv.Reader
}

func NewTableFileIterator(file TableFile) (*TableFileIterator, error) {
	it := &TableFileIterator{file: file}
	if err := it.open(); err != nil {
		return nil, err
	}
	return it, nil
}

func (it *TableFileIterator) open() error {
	reader, err := it.file.Open()
	if err != nil {
		return err
	}
	it.reader = reader
	it.csv = csv.NewReader(reader)
	it.csv.FieldsPerRecord = -1
	it.csv.TrimLeadingSpace = true
	it.csv.LazyQuotes = true
	it.csv.ReuseRecord = false
	return nil
}

// Next returns the trimmed fields of the next row. done is true at end of file.
func (it *TableFileIterator) Next() (fields []string, done bool, err error) {
	if it.csv == nil {
		return nil, true, nil
	}
	record, err := it.csv.Read()
	if err == io.EOF {
		return nil, true, nil
	}
	if err != nil {
		return nil, true, errors.Wrapf(err, "cannot read relation file %s", it.file.Path())
	}
	for i := range record {
		record[i] = strings.TrimSpace(record[i])
	}
	return record, false, nil
}

// Rewind closes the current reader and reopens the file from its first row.
func (it *TableFileIterator) Rewind() error {
	if err := it.Close(); err != nil {
		return err
	}
	return it.open()
}

func (it *TableFileIterator) Close() error {
	if it.reader == nil {
		return nil
	}
	err := it.reader.Close()
	it.reader = nil
	it.csv = nil
	if err != nil {
		return errors.Wrapf(err, "cannot close relation file %s", it.file.Path())
	}
	return nil
}
