package repl

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"
)

const (
	dynpgHistory = ".dynpg_history"
)

type lineReader struct {
	line *liner.State
	r    *strings.Reader
}

func (lr *lineReader) ReadRune() (r rune, size int, err error) {
	for {
		if lr.r == nil {
			s, err := lr.line.Prompt("dynpg: ")
			if err != nil {
				return 0, 0, err
			}
			lr.line.AppendHistory(s)
			lr.r = strings.NewReader(s)
		}

		r, sz, err := lr.r.ReadRune()
		if err == io.EOF {
			lr.r = nil
		} else if err != nil {
			return 0, 0, err
		} else {
			return r, sz, nil
		}
	}
}

func Interact(ctx context.Context, ses Session) {
	line := liner.NewLiner()
	defer line.Close()

	if f, err := os.Open(dynpgHistory); err == nil {
		line.ReadHistory(f)
		f.Close()
	}

	ReplSQL(ctx, ses, &lineReader{line: line}, os.Stdout)

	if f, err := os.Create(dynpgHistory); err != nil {
		fmt.Fprintf(os.Stderr, "dynpg: error writing history file, %s: %s", dynpgHistory, err)
	} else {
		line.WriteHistory(f)
		f.Close()
	}
}
