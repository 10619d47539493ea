package adapter

import (
	"database/sql/driver"

	"github.com/dynpg/dynpg/value"
)

// NullParameter binds as SQL NULL for any column type the server expects.
// The encoder binds by position before the expected column type is known, so
// the void value needs a bind that is accepted unconditionally.
type NullParameter struct{}

func (NullParameter) Value() (driver.Value, error) {
	return nil, nil
}

// encodeParams converts a parameter vector into the bind list handed to one
// statement execution. The bind list is created fresh per call and the input
// is never mutated.
func encodeParams(params value.Value) ([]interface{}, error) {
	vec, ok := params.(value.VectorValue)
	if !ok {
		return nil, mismatchError("want a vector of parameters; got %s", value.Format(params))
	}

	args := make([]interface{}, 0, len(vec))
	for idx, v := range vec {
		switch v := v.(type) {
		case nil:
			args = append(args, NullParameter{})
		case value.BoolValue:
			args = append(args, bool(v))
		case value.Float64Value:
			args = append(args, float64(v))
		case value.Int64Value:
			args = append(args, int64(v))
		case value.StringValue:
			args = append(args, string(v))
		case value.BytesValue:
			args = append(args, []byte(v))
		case value.VectorValue:
			return nil, mismatchError("parameter %d: a vector may not be bound", idx+1)
		default:
			return nil, unsupportedError("parameter %d: no binding for %T: %s", idx+1, v,
				value.Format(v))
		}
	}

	return args, nil
}
