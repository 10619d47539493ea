package repl

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/dynpg/dynpg/value"
)

// Session is the slice of the client the console needs.
type Session interface {
	Exec(ctx context.Context, query string, params value.Value) (value.Value, error)
	QueryTable(ctx context.Context, query string, params value.Value) ([]string,
		value.VectorValue, error)
}

// readStatement reads runes up to a statement-terminating semicolon outside
// of single quotes. Statement splitting is all the console does to SQL text;
// the server parses it.
func readStatement(rr io.RuneReader) (string, error) {
	var buf bytes.Buffer
	var quoted bool

	for {
		r, _, err := rr.ReadRune()
		if err == io.EOF {
			if strings.TrimSpace(buf.String()) == "" {
				return "", io.EOF
			}
			return buf.String(), nil
		}
		if err != nil {
			return "", err
		}

		if r == '\'' {
			quoted = !quoted
		} else if r == ';' && !quoted {
			return buf.String(), nil
		}
		buf.WriteRune(r)
	}
}

var (
	queryWords = map[string]struct{}{
		"SELECT":  {},
		"VALUES":  {},
		"TABLE":   {},
		"WITH":    {},
		"SHOW":    {},
		"EXPLAIN": {},
	}
)

func isQuery(stmt string) bool {
	words := strings.FieldsFunc(stmt,
		func(r rune) bool { return r == ' ' || r == '\t' || r == '\n' || r == '(' })
	if len(words) == 0 {
		return false
	}
	_, ok := queryWords[strings.ToUpper(words[0])]
	return ok
}

func ReplSQL(ctx context.Context, ses Session, rr io.RuneReader, w io.Writer) {
	for {
		stmt, err := readStatement(rr)
		if err == io.EOF {
			return
		}
		if err != nil {
			fmt.Fprintln(w, err)
			return
		}
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}

		if isQuery(stmt) {
			cols, rows, err := ses.QueryTable(ctx, stmt, value.VectorValue{})
			if err != nil {
				fmt.Fprintln(w, err)
				continue
			}

			tw := tablewriter.NewWriter(w)
			tw.SetAutoFormatHeaders(false)
			tw.SetHeader(cols)

			row := make([]string, len(cols))
			for _, rv := range rows {
				vec, ok := rv.(value.VectorValue)
				if !ok {
					panic(fmt.Sprintf("expected a row vector: %#v", rv))
				}
				for cdx, v := range vec {
					if s, ok := v.(value.StringValue); ok {
						row[cdx] = string(s)
						continue
					}
					row[cdx] = value.Format(v)
				}
				tw.Append(row)
			}
			tw.Render()
			fmt.Fprintf(w, "(%d rows)\n", len(rows))
		} else {
			ret, err := ses.Exec(ctx, stmt, value.VectorValue{})
			if err != nil {
				fmt.Fprintln(w, err)
				continue
			}
			if cnt, ok := ret.(value.Int64Value); ok {
				fmt.Fprintf(w, "%d rows updated\n", int64(cnt))
			}
		}
	}
}
