package access

import (
	"bytes"
	"io"
	"os"

	"github.com/dsnet/golib/memfile"
	"github.com/pkg/errors"
)

// TableFile is the backing source of one relation. Every Open returns a fresh
// reader positioned at the first row; the caller owns and must close it.
type TableFile interface {
	Open() (io.ReadCloser, error)
	Path() string
}

// DiskTableFile is a relation stored as files/<name>.csv under the database dir
type DiskTableFile struct {
	path string
}

func NewDiskTableFile(path string) *DiskTableFile {
	return &DiskTableFile{path}
}

func (f *DiskTableFile) Open() (io.ReadCloser, error) {
	file, err := os.Open(f.path)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot open relation file %s", f.path)
	}
	return file, nil
}

func (f *DiskTableFile) Path() string {
	return f.path
}

// MemTableFile keeps relation rows in memory. Used for tests and generated data.
type MemTableFile struct {
	name string
	data []byte
	// number of readers handed out and not closed yet
	openCnt int
}

func NewMemTableFile(name string, data []byte) *MemTableFile {
	return &MemTableFile{name: name, data: data}
}

func (f *MemTableFile) Open() (io.ReadCloser, error) {
	f.openCnt++
	return &memReader{memfile.New(bytes.Clone(f.data)), f, false}, nil
}

func (f *MemTableFile) Path() string {
	return "mem://" + f.name
}

// OpenReaderCount reports how many readers are currently not closed.
func (f *MemTableFile) OpenReaderCount() int {
	return f.openCnt
}

type memReader struct {
	*memfile.File
	owner  *MemTableFile
	closed bool
}

func (r *memReader) Close() error {
	if !r.closed {
		r.closed = true
		r.owner.openCnt--
	}
	return nil
}
