// internal/parser/parser.go
//
// Grammar for shared puzzle results such as:
//
//	Tough one today!
//	Wordle 258 4/6*
//
//	⬜⬜🟨⬜🟨
//	⬜🟨⬜🟨⬜
//	🟩⬜🟩⬜⬜
//	🟩🟩🟩🟩🟩
//
// Stages run left to right and never backtrack:
//  1. anchor on the first "Wordle " and drop everything before it
//  2. day: ASCII digits, then one space
//  3. score: one digit 1–6, "/6", optional '*' (hard mode), then whitespace
//  4. grid: 1–6 rows of exactly five tiles separated by '\n'; any trailing
//     non-tile text on a row (spoiler markup, '\r') is discarded
//
// Text after the grid is ignored. The scanner works on byte offsets and
// decodes runes with utf8, so malformed UTF-8 is simply "not a tile".

package parser

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

const headerToken = "Wordle "

// variationSelector is emitted by some clients after the square emoji.
const variationSelector = "\uFE0F"

// Parse extracts a puzzle result from free-form post text.
// Every failure is a *Error whose Kind is one of the Err* sentinels.
func Parse(input string) (*Result, error) {
	start := strings.Index(input, headerToken)
	if start < 0 {
		return nil, &Error{Kind: ErrHeaderNotFound, Row: -1, Detail: `no "Wordle " token`}
	}
	s := &scanner{src: input, pos: start + len(headerToken)}

	day, err := s.day()
	if err != nil {
		return nil, err
	}
	score, hard, err := s.score()
	if err != nil {
		return nil, err
	}
	grid, err := s.grid()
	if err != nil {
		return nil, err
	}
	return &Result{Day: day, Score: score, HardMode: hard, Guesses: grid}, nil
}

type scanner struct {
	src string
	pos int
}

func (s *scanner) rest() string { return s.src[s.pos:] }

func (s *scanner) consume(lit string) bool {
	if strings.HasPrefix(s.rest(), lit) {
		s.pos += len(lit)
		return true
	}
	return false
}

func (s *scanner) fail(kind error, row, offset int, format string, args ...any) error {
	return &Error{Kind: kind, Row: row, Offset: offset, Detail: fmt.Sprintf(format, args...)}
}

func (s *scanner) day() (uint32, error) {
	begin := s.pos
	for s.pos < len(s.src) && isDigit(s.src[s.pos]) {
		s.pos++
	}
	if s.pos == begin {
		return 0, s.fail(ErrInvalidDay, -1, begin, "expected digits")
	}
	n, err := strconv.ParseUint(s.src[begin:s.pos], 10, 32)
	if err != nil {
		return 0, s.fail(ErrInvalidDay, -1, begin, "day %q out of range", s.src[begin:s.pos])
	}
	if !s.consume(" ") {
		return 0, s.fail(ErrInvalidDay, -1, s.pos, "expected space after day")
	}
	return uint32(n), nil
}

func (s *scanner) score() (uint8, bool, error) {
	if s.pos >= len(s.src) || s.src[s.pos] < '1' || s.src[s.pos] > '0'+MaxRows {
		return 0, false, s.fail(ErrInvalidScore, -1, s.pos, "expected score 1-%d", MaxRows)
	}
	score := s.src[s.pos] - '0'
	s.pos++
	if !s.consume("/6") {
		return 0, false, s.fail(ErrInvalidScore, -1, s.pos, `expected "/6"`)
	}
	hard := s.consume("*")
	if s.skipSpace() == 0 {
		return 0, false, s.fail(ErrInvalidScore, -1, s.pos, "expected whitespace after header")
	}
	return score, hard, nil
}

// skipSpace advances over Unicode white space and returns the bytes skipped.
func (s *scanner) skipSpace() int {
	begin := s.pos
	for s.pos < len(s.src) {
		r, size := utf8.DecodeRuneInString(s.rest())
		if !unicode.IsSpace(r) {
			break
		}
		s.pos += size
	}
	return s.pos - begin
}

func (s *scanner) grid() (Grid, error) {
	var grid Grid
	for {
		if _, _, ok := tileAt(s.rest()); !ok {
			if len(grid) == 0 {
				return nil, s.fail(ErrInvalidGrid, 0, s.pos, "no guess rows")
			}
			return grid, nil
		}
		if len(grid) == MaxRows {
			return nil, s.fail(ErrInvalidGrid, MaxRows, s.pos, "more than %d rows", MaxRows)
		}
		row, err := s.row(len(grid))
		if err != nil {
			return nil, err
		}
		grid = append(grid, row)
		if !s.consume("\n") {
			return grid, nil
		}
	}
}

func (s *scanner) row(idx int) (Row, error) {
	begin := s.pos
	marks := make([]Mark, 0, RowLen)
	for {
		m, size, ok := tileAt(s.rest())
		if !ok {
			break
		}
		if len(marks) == RowLen {
			return Row{}, s.fail(ErrInvalidGrid, idx, begin, "more than %d tiles", RowLen)
		}
		marks = append(marks, m)
		s.pos += size
	}
	if len(marks) != RowLen {
		return Row{}, s.fail(ErrInvalidGrid, idx, begin, "got %d tiles, want %d", len(marks), RowLen)
	}

	end := strings.IndexByte(s.rest(), '\n')
	if end < 0 {
		end = len(s.rest())
	}
	if containsTile(s.rest()[:end]) {
		return Row{}, s.fail(ErrInvalidGrid, idx, begin, "more than %d tiles", RowLen)
	}
	s.pos += end

	row, err := newRow(marks)
	if err != nil {
		return Row{}, s.fail(ErrInvalidGrid, idx, begin, "%v", err)
	}
	return row, nil
}

// newRow is the only place a slice becomes a Row; the length is checked here
// so the array conversion can never panic.
func newRow(marks []Mark) (Row, error) {
	if len(marks) != RowLen {
		return Row{}, fmt.Errorf("row has %d tiles, want %d", len(marks), RowLen)
	}
	for i, m := range marks {
		if m.Glyph() == "" {
			return Row{}, fmt.Errorf("tile %d: unknown mark %d", i, m)
		}
	}
	return Row(marks), nil
}

// markOf maps a square emoji to its Mark. Keep in sync with Mark.Glyph.
func markOf(r rune) (Mark, bool) {
	switch r {
	case '🟩':
		return Correct, true
	case '🟨':
		return Present, true
	case '⬜':
		return Absent, true
	case '⬛':
		return AbsentDark, true
	}
	return 0, false
}

// tileAt decodes one tile at the start of s, including an optional
// variation selector, and returns its width in bytes.
func tileAt(s string) (Mark, int, bool) {
	r, size := utf8.DecodeRuneInString(s)
	m, ok := markOf(r)
	if !ok {
		return 0, 0, false
	}
	if strings.HasPrefix(s[size:], variationSelector) {
		size += len(variationSelector)
	}
	return m, size, true
}

func containsTile(s string) bool {
	for _, r := range s {
		if _, ok := markOf(r); ok {
			return true
		}
	}
	return false
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
