package adapter

import (
	"database/sql"
	"fmt"

	"github.com/dynpg/dynpg/value"
)

// decodeRows converts a result set into a vector of row vectors, in row and
// column order as reported by the driver. A column with no decode rule or a
// scan failure fails the whole call; no partial result is returned.
func decodeRows(rows *sql.Rows) (value.VectorValue, error) {
	colTypes, err := rows.ColumnTypes()
	if err != nil {
		return nil, driverError(err)
	}

	cts := make([]value.ColumnType, len(colTypes))
	for cdx, colType := range colTypes {
		ct, ok := value.ColumnTypeFromName(colType.DatabaseTypeName())
		if !ok {
			return nil, unsupportedError("column %q: no decoding for column type %s",
				colType.Name(), colType.DatabaseTypeName())
		}
		cts[cdx] = ct
	}

	results := value.VectorValue{}
	for rows.Next() {
		dest := make([]interface{}, len(cts))
		for cdx := range cts {
			dest[cdx] = scanDest(cts[cdx])
		}

		err = rows.Scan(dest...)
		if err != nil {
			return nil, driverError(err)
		}

		row := make(value.VectorValue, len(cts))
		for cdx := range cts {
			row[cdx] = destValue(dest[cdx])
		}
		results = append(results, value.Value(row))
	}

	err = rows.Err()
	if err != nil {
		return nil, driverError(err)
	}
	return results, nil
}

func scanDest(ct value.ColumnType) interface{} {
	switch ct.Type {
	case value.BooleanType:
		return &sql.NullBool{}
	case value.StringType:
		return &sql.NullString{}
	case value.BytesType:
		return &[]byte{}
	case value.FloatType:
		return &sql.NullFloat64{}
	case value.IntegerType:
		// 16 and 32 bit integers widen to the single 64 bit representation.
		return &sql.NullInt64{}
	}

	panic(fmt.Sprintf("unexpected column type: %#v", ct))
}

func destValue(dest interface{}) value.Value {
	switch d := dest.(type) {
	case *sql.NullBool:
		if !d.Valid {
			return nil
		}
		return value.BoolValue(d.Bool)
	case *sql.NullString:
		if !d.Valid {
			return nil
		}
		return value.StringValue(d.String)
	case *[]byte:
		if *d == nil {
			return nil
		}
		return value.BytesValue(*d)
	case *sql.NullFloat64:
		if !d.Valid {
			return nil
		}
		return value.Float64Value(d.Float64)
	case *sql.NullInt64:
		if !d.Valid {
			return nil
		}
		return value.Int64Value(d.Int64)
	}

	panic(fmt.Sprintf("unexpected scan destination: %#v", dest))
}
