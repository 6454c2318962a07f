package catalog

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/ryogrid/cqbase/common"
	"github.com/ryogrid/cqbase/types"
)

var ErrMalformedSchemaLine = errors.New("malformed schema line")

// BootstrapCatalog loads <databaseDir>/schema.txt. Each line is
// "relationName type1 type2 ...", whitespace separated.
func BootstrapCatalog(databaseDir string) (*Catalog, error) {
	schemaPath := filepath.Join(databaseDir, common.SchemaFileName)
	file, err := os.Open(schemaPath)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot open schema file %s", schemaPath)
	}
	defer file.Close()

	c := NewCatalog(databaseDir)
	if err := LoadSchema(c, file); err != nil {
		return nil, errors.Wrapf(err, "cannot load schema file %s", schemaPath)
	}
	return c, nil
}

// LoadSchema registers every relation described by r in c.
func LoadSchema(c *Catalog, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		name, columnTypes, err := parseSchemaLine(line)
		if err != nil {
			return errors.Wrapf(err, "line %d", lineNo)
		}
		c.CreateTable(name, columnTypes, nil)
		common.ShPrintf(common.DEBUG_INFO, "catalog: relation %s %v\n", name, columnTypes)
	}
	return errors.Wrap(scanner.Err(), "cannot read schema")
}

func parseSchemaLine(line string) (string, []types.TypeID, error) {
	// a line starting with whitespace has no relation name
	if line[0] == ' ' || line[0] == '\t' {
		return "", nil, errors.Wrapf(ErrMalformedSchemaLine, "missing relation name in %q", line)
	}
	parts := strings.Fields(line)
	columnTypes := make([]types.TypeID, 0, len(parts)-1)
	for _, typeName := range parts[1:] {
		typeID, err := types.ParseTypeID(typeName)
		if err != nil {
			return "", nil, errors.Wrapf(ErrMalformedSchemaLine, "%s: %v", parts[0], err)
		}
		columnTypes = append(columnTypes, typeID)
	}
	return parts[0], columnTypes, nil
}
