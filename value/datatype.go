package value

import (
	"fmt"

	"github.com/lib/pq/oid"
)

type DataType int

const (
	UnknownType DataType = iota
	BooleanType
	StringType
	BytesType
	FloatType
	IntegerType
)

func (dt DataType) String() string {
	switch dt {
	case BooleanType:
		return "BOOL"
	case StringType:
		return "TEXT"
	case BytesType:
		return "BYTES"
	case FloatType:
		return "DOUBLE"
	case IntegerType:
		return "INT"
	}

	return ""
}

// ColumnType is the decode rule selected by the type the server reported for
// a result column.
type ColumnType struct {
	Type DataType

	// Size of the column in bytes for integers and floats
	Size uint32
}

var (
	columnTypes = map[string]ColumnType{
		oid.TypeName[oid.T_bool]:    {Type: BooleanType, Size: 1},
		oid.TypeName[oid.T_text]:    {Type: StringType},
		oid.TypeName[oid.T_varchar]: {Type: StringType},
		oid.TypeName[oid.T_bpchar]:  {Type: StringType},
		oid.TypeName[oid.T_name]:    {Type: StringType},
		oid.TypeName[oid.T_bytea]:   {Type: BytesType},
		oid.TypeName[oid.T_int2]:    {Type: IntegerType, Size: 2},
		oid.TypeName[oid.T_int4]:    {Type: IntegerType, Size: 4},
		oid.TypeName[oid.T_int8]:    {Type: IntegerType, Size: 8},
		oid.TypeName[oid.T_float4]:  {Type: FloatType, Size: 4},
		oid.TypeName[oid.T_float8]:  {Type: FloatType, Size: 8},
	}
)

// ColumnTypeFromName maps a driver-reported column type name, as returned by
// sql.ColumnType.DatabaseTypeName, to its decode rule. The names are the
// lib/pq oid type names.
func ColumnTypeFromName(nam string) (ColumnType, bool) {
	ct, ok := columnTypes[nam]
	return ct, ok
}

func (ct ColumnType) DataType() string {
	switch ct.Type {
	case BooleanType:
		return "BOOL"
	case StringType:
		return "TEXT"
	case BytesType:
		return "BYTEA"
	case FloatType:
		switch ct.Size {
		case 4:
			return "REAL"
		case 8:
			return "DOUBLE PRECISION"
		}
	case IntegerType:
		switch ct.Size {
		case 2:
			return "SMALLINT"
		case 4:
			return "INT"
		case 8:
			return "BIGINT"
		}
	}

	panic(fmt.Sprintf("unexpected column type: %#v", ct))
}
