package testing_tbl_gen

import (
	"math/rand"
	"strconv"

	"github.com/ryogrid/cqbase/testing/testing_util"
	"github.com/ryogrid/cqbase/types"
)

type ColumnInsertMeta struct {
	/**
	 * Type of the column
	 */
	Type_ types.TypeID
	/**
	 * Distribution of values
	 */
	Dist_ int32
	/**
	 * max value of the column (exclusive). Strings are drawn from 'v0'..'v<Max_-1>'.
	 */
	Max_ int32
	/**
	 * Counter to generate serial data
	 */
	Serial_counter_ int32
}

type TableInsertMeta struct {
	/**
	 * Name of the table
	 */
	Name_ string
	/**
	 * Number of rows
	 */
	Num_rows_ uint32
	/**
	 * Columns
	 */
	Col_meta_ []*ColumnInsertMeta
}

const DistSerial int32 = 0
const DistUniform int32 = 1

func genValue(col_meta *ColumnInsertMeta, rng *rand.Rand) string {
	var n int32
	if col_meta.Dist_ == DistSerial {
		n = col_meta.Serial_counter_
		col_meta.Serial_counter_ += 1
	} else {
		n = rng.Int31n(col_meta.Max_)
	}
	if col_meta.Type_ == types.Varchar {
		return "'v" + strconv.Itoa(int(n)) + "'"
	}
	return strconv.Itoa(int(n))
}

// GenRelation fills a fixture relation following table_meta. The same seed
// always produces the same rows.
func GenRelation(table_meta *TableInsertMeta, seed int64) testing_util.Relation {
	rng := rand.New(rand.NewSource(seed))
	typeNames := make([]string, 0, len(table_meta.Col_meta_))
	for _, col_meta := range table_meta.Col_meta_ {
		typeNames = append(typeNames, col_meta.Type_.String())
	}
	rows := make([][]string, 0, table_meta.Num_rows_)
	for i := uint32(0); i < table_meta.Num_rows_; i++ {
		row := make([]string, 0, len(table_meta.Col_meta_))
		for _, col_meta := range table_meta.Col_meta_ {
			row = append(row, genValue(col_meta, rng))
		}
		rows = append(rows, row)
	}
	return testing_util.Relation{Name: table_meta.Name_, Types: typeNames, Rows: rows}
}
