// internal/parser/types.go
//
// Core type definitions for a parsed puzzle result.
// Defines:
//   - Mark:   per-letter color of a shared guess (correct/present/absent).
//   - Row:    one guess, always exactly five marks.
//   - Grid:   every guess from first to last (1–6 rows).
//   - Result: the header fields plus the grid.

package parser

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Mark is the color of a single tile in a shared guess row.
type Mark uint8

const (
	Correct    Mark = iota + 1 // 🟩 letter in the right spot
	Present                    // 🟨 letter in the word, wrong spot
	Absent                     // ⬜ letter not in the word (light theme)
	AbsentDark                 // ⬛ letter not in the word (dark theme)
)

const (
	// RowLen is the number of tiles in every guess row.
	RowLen = 5
	// MaxRows is the number of attempts a puzzle allows.
	MaxRows = 6
)

// Glyph returns the square emoji a Mark is shared as.
func (m Mark) Glyph() string {
	switch m {
	case Correct:
		return "🟩"
	case Present:
		return "🟨"
	case Absent:
		return "⬜"
	case AbsentDark:
		return "⬛"
	}
	return ""
}

func (m Mark) String() string {
	switch m {
	case Correct:
		return "correct"
	case Present:
		return "present"
	case Absent:
		return "absent"
	case AbsentDark:
		return "absent_dark"
	}
	return fmt.Sprintf("Mark(%d)", uint8(m))
}

// MarshalJSON encodes a Mark as its name.
func (m Mark) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

// Row is one guess attempt.
type Row [RowLen]Mark

// String renders the row as glyphs.
func (r Row) String() string {
	var b strings.Builder
	for _, m := range r {
		b.WriteString(m.Glyph())
	}
	return b.String()
}

// Contains reports whether any tile in the row is m.
func (r Row) Contains(m Mark) bool {
	for _, x := range r {
		if x == m {
			return true
		}
	}
	return false
}

// Grid is the ordered list of guesses, first attempt first.
type Grid []Row

// Result is a successfully parsed puzzle share.
type Result struct {
	Day      uint32 `json:"day"`      // sequential puzzle number
	Score    uint8  `json:"score"`    // attempts used, 1–6
	HardMode bool   `json:"hardMode"` // header carried a trailing '*'
	Guesses  Grid   `json:"guesses"`
}

// DarkTheme reports whether the poster appears to use the dark color theme,
// i.e. the first guess row contains a dark absent tile.
func (r *Result) DarkTheme() bool {
	if r == nil || len(r.Guesses) == 0 {
		return false
	}
	return r.Guesses[0].Contains(AbsentDark)
}
