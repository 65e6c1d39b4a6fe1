package parser

import (
	"strconv"
	"strings"
)

// Format renders r in the canonical share layout accepted by Parse.
func Format(r *Result) string {
	var b strings.Builder
	b.WriteString(headerToken)
	b.WriteString(strconv.FormatUint(uint64(r.Day), 10))
	b.WriteByte(' ')
	b.WriteString(strconv.FormatUint(uint64(r.Score), 10))
	b.WriteString("/6")
	if r.HardMode {
		b.WriteByte('*')
	}
	b.WriteString("\n\n")
	for i, row := range r.Guesses {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(row.String())
	}
	return b.String()
}
