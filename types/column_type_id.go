package types

import (
	"strings"

	"github.com/pkg/errors"
)

type TypeID int

const (
	Invalid TypeID = iota
	Integer
	Varchar
)

// ParseTypeID maps a schema.txt type token to a TypeID.
func ParseTypeID(name string) (TypeID, error) {
	switch strings.ToLower(name) {
	case "int", "integer":
		return Integer, nil
	case "string", "varchar":
		return Varchar, nil
	}
	return Invalid, errors.Errorf("unknown column type %q", name)
}

func (t TypeID) String() string {
	switch t {
	case Integer:
		return "int"
	case Varchar:
		return "string"
	}
	return "invalid"
}
