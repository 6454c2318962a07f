package access

import (
	"os"
	"path/filepath"
	"testing"

	testingpkg "github.com/ryogrid/cqbase/testing/testing_assert"
)

func readAll(t *testing.T, it *TableFileIterator) [][]string {
	rows := make([][]string, 0)
	for {
		fields, done, err := it.Next()
		testingpkg.Ok(t, err)
		if done {
			return rows
		}
		rows = append(rows, fields)
	}
}

func TestTableFileIteratorTrimsFields(t *testing.T) {
	file := NewMemTableFile("R", []byte("1, 'a b' ,3\n4,'c',  6\n"))
	it, err := NewTableFileIterator(file)
	testingpkg.Ok(t, err)
	defer it.Close()

	testingpkg.Equals(t, [][]string{{"1", "'a b'", "3"}, {"4", "'c'", "6"}}, readAll(t, it))

	// stays at the end
	_, done, err := it.Next()
	testingpkg.Ok(t, err)
	testingpkg.Assert(t, done, "iterator must stay exhausted")
}

func TestTableFileIteratorRewindReleasesReader(t *testing.T) {
	file := NewMemTableFile("R", []byte("1,2\n3,4\n"))
	it, err := NewTableFileIterator(file)
	testingpkg.Ok(t, err)
	testingpkg.Equals(t, 1, file.OpenReaderCount())

	for i := 0; i < 100; i++ {
		testingpkg.Ok(t, it.Rewind())
		testingpkg.Equals(t, 1, file.OpenReaderCount())
	}
	testingpkg.Equals(t, 2, len(readAll(t, it)))

	testingpkg.Ok(t, it.Rewind())
	testingpkg.Equals(t, 2, len(readAll(t, it)))

	testingpkg.Ok(t, it.Close())
	testingpkg.Ok(t, it.Close())
	testingpkg.Equals(t, 0, file.OpenReaderCount())
}

func TestDiskTableFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "R.csv")
	testingpkg.Ok(t, os.WriteFile(path, []byte("7, 8\n\n9, 10\n"), 0o644))

	it, err := NewTableFileIterator(NewDiskTableFile(path))
	testingpkg.Ok(t, err)
	defer it.Close()
	testingpkg.Equals(t, [][]string{{"7", "8"}, {"9", "10"}}, readAll(t, it))

	_, err = NewTableFileIterator(NewDiskTableFile(filepath.Join(t.TempDir(), "missing.csv")))
	testingpkg.Assert(t, err != nil, "opening a missing relation file must fail")
}
