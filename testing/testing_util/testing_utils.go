package testing_util

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ryogrid/cqbase/catalog"
	"github.com/ryogrid/cqbase/common"
	"github.com/ryogrid/cqbase/storage/access"
	"github.com/ryogrid/cqbase/types"
)

// Relation describes one relation of a fixture database. Types use the
// schema.txt spelling ("int", "string"), rows hold the raw field text.
type Relation struct {
	Name  string
	Types []string
	Rows  [][]string
}

func GetValue(data interface{}) (value types.Value) {
	switch v := data.(type) {
	case int:
		value = types.NewInteger(int64(v))
	case int64:
		value = types.NewInteger(v)
	case string:
		value = types.NewVarchar(v)
	case *types.Value:
		return *v
	}
	return
}

func csvText(rows [][]string) string {
	var sb strings.Builder
	for _, row := range rows {
		sb.WriteString(strings.Join(row, ", "))
		sb.WriteString("\n")
	}
	return sb.String()
}

// MakeDatabaseDir lays out schema.txt and files/<name>.csv in a temporary
// directory and returns its path.
func MakeDatabaseDir(tb testing.TB, relations ...Relation) string {
	tb.Helper()
	dir := tb.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, common.RelationFilesDir), 0o755); err != nil {
		tb.Fatal(err)
	}
	var schemaText strings.Builder
	for _, rel := range relations {
		schemaText.WriteString(rel.Name + " " + strings.Join(rel.Types, " ") + "\n")
		path := filepath.Join(dir, common.RelationFilesDir, rel.Name+common.RelationFileExt)
		if err := os.WriteFile(path, []byte(csvText(rel.Rows)), 0o644); err != nil {
			tb.Fatal(err)
		}
	}
	if err := os.WriteFile(filepath.Join(dir, common.SchemaFileName), []byte(schemaText.String()), 0o644); err != nil {
		tb.Fatal(err)
	}
	return dir
}

// MakeMemCatalog registers the relations with in-memory table files.
func MakeMemCatalog(tb testing.TB, relations ...Relation) (*catalog.Catalog, map[string]*access.MemTableFile) {
	tb.Helper()
	c := catalog.NewCatalog("")
	files := make(map[string]*access.MemTableFile)
	for _, rel := range relations {
		colTypes := make([]types.TypeID, 0, len(rel.Types))
		for _, name := range rel.Types {
			typeID, err := types.ParseTypeID(name)
			if err != nil {
				tb.Fatal(err)
			}
			colTypes = append(colTypes, typeID)
		}
		file := access.NewMemTableFile(rel.Name, []byte(csvText(rel.Rows)))
		c.CreateTable(rel.Name, colTypes, file)
		files[rel.Name] = file
	}
	return c, files
}

// WriteFile writes content to name inside dir and returns the full path.
func WriteFile(tb testing.TB, dir string, name string, content string) string {
	tb.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		tb.Fatal(err)
	}
	return path
}
