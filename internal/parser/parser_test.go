package parser

import (
	"errors"
	"reflect"
	"strings"
	"sync"
	"testing"
)

const sampleGrid = "⬜⬜🟨⬜🟨\n⬜🟨⬜🟨⬜\n🟩⬜🟩⬜⬜\n🟩🟩🟩🟩🟩"

var sampleResult = &Result{
	Day:      258,
	Score:    4,
	HardMode: true,
	Guesses: Grid{
		{Absent, Absent, Present, Absent, Present},
		{Absent, Present, Absent, Present, Absent},
		{Correct, Absent, Correct, Absent, Absent},
		{Correct, Correct, Correct, Correct, Correct},
	},
}

func TestParseAccepts(t *testing.T) {
	spoilered := strings.ReplaceAll(sampleGrid, "\n", " ||spoiler||\n") + " ||spoiler||"

	tests := []struct {
		name  string
		input string
		want  *Result
	}{
		{"canonical", "Wordle 258 4/6*\n\n" + sampleGrid, sampleResult},
		{"leading commentary", "Wow this was hard!\nWordle 258 4/6*\n\n" + sampleGrid, sampleResult},
		{"spoiler suffix", "Wordle 258 4/6*\n\n" + spoilered, sampleResult},
		{"crlf rows", "Wordle 258 4/6*\r\n\r\n" + strings.ReplaceAll(sampleGrid, "\n", "\r\n"), sampleResult},
		{"trailing text after grid", "Wordle 258 4/6*\n\n" + sampleGrid + "\n\n#wordle https://example.com", sampleResult},
		{"variation selectors", "Wordle 258 4/6*\n\n" + strings.ReplaceAll(sampleGrid, "⬜", "⬜️"), sampleResult},
		{
			"normal mode single row",
			"Wordle 1000 1/6\n\n🟩🟩🟩🟩🟩",
			&Result{Day: 1000, Score: 1, Guesses: Grid{{Correct, Correct, Correct, Correct, Correct}}},
		},
		{
			"dark theme",
			"Wordle 7 2/6 \n⬛🟨⬛⬛⬛\n🟩🟩🟩🟩🟩",
			&Result{Day: 7, Score: 2, Guesses: Grid{
				{AbsentDark, Present, AbsentDark, AbsentDark, AbsentDark},
				{Correct, Correct, Correct, Correct, Correct},
			}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Parse = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		kind    error
		wantRow int
	}{
		{"empty", "", ErrHeaderNotFound, -1},
		{"no header", "just some words 🟩🟩🟩🟩🟩", ErrHeaderNotFound, -1},
		{"lowercase header", "wordle 258 4/6\n\n" + sampleGrid, ErrHeaderNotFound, -1},
		{"header without space", "Wordle258 4/6\n\n" + sampleGrid, ErrHeaderNotFound, -1},
		{"no digits", "Wordle abc 4/6\n\n" + sampleGrid, ErrInvalidDay, -1},
		{"day overflow", "Wordle 99999999999 4/6\n\n" + sampleGrid, ErrInvalidDay, -1},
		{"day missing space", "Wordle 258\n4/6\n\n" + sampleGrid, ErrInvalidDay, -1},
		{"score seven", "Wordle 258 7/6\n\n" + sampleGrid, ErrInvalidScore, -1},
		{"score zero", "Wordle 258 0/6\n\n" + sampleGrid, ErrInvalidScore, -1},
		{"failed game", "Wordle 258 X/6\n\n" + sampleGrid, ErrInvalidScore, -1},
		{"wrong denominator", "Wordle 258 4/5\n\n" + sampleGrid, ErrInvalidScore, -1},
		{"no whitespace after header", "Wordle 258 4/6" + sampleGrid, ErrInvalidScore, -1},
		{"truncated header", "Wordle 258 4/", ErrInvalidScore, -1},
		{"no grid", "Wordle 258 4/6\n\nno squares here", ErrInvalidGrid, 0},
		{"header only", "Wordle 258 4/6\n", ErrInvalidGrid, 0},
		{"short row", "Wordle 258 3/6\n\n⬜⬜🟨⬜🟨\n⬜🟨⬜🟨\n🟩🟩🟩🟩🟩", ErrInvalidGrid, 1},
		{"long row", "Wordle 258 1/6\n\n🟩🟩🟩🟩🟩🟩", ErrInvalidGrid, 0},
		{"tile after markup", "Wordle 258 1/6\n\n🟩🟩🟩🟩🟩 🟩", ErrInvalidGrid, 0},
		{"seven rows", "Wordle 258 6/6\n\n" + strings.Repeat("⬜⬜⬜⬜⬜\n", 6) + "🟩🟩🟩🟩🟩", ErrInvalidGrid, 6},
		{"truncated emoji", "Wordle 258 1/6\n\n🟩🟩🟩🟩\xf0\x9f\x9f", ErrInvalidGrid, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if err == nil {
				t.Fatalf("Parse = %+v, want error", got)
			}
			if !errors.Is(err, tt.kind) {
				t.Fatalf("Parse error = %v, want %v", err, tt.kind)
			}
			var perr *Error
			if !errors.As(err, &perr) {
				t.Fatalf("error %T is not *Error", err)
			}
			if perr.Row != tt.wantRow {
				t.Fatalf("Row = %d, want %d", perr.Row, tt.wantRow)
			}
			if perr.Offset < 0 || perr.Offset > len(tt.input) {
				t.Fatalf("Offset %d outside input of length %d", perr.Offset, len(tt.input))
			}
		})
	}
}

func TestParseLongDay(t *testing.T) {
	got, err := Parse("Wordle 4294967295 2/6\n\n⬜⬜⬜⬜⬜\n🟩🟩🟩🟩🟩")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got.Day != 4294967295 {
		t.Fatalf("Day = %d", got.Day)
	}
}

func TestFormatRoundTrip(t *testing.T) {
	marks := []Mark{Correct, Present, Absent, AbsentDark}
	for rows := 1; rows <= MaxRows; rows++ {
		for _, hard := range []bool{false, true} {
			r := &Result{Day: uint32(rows * 97), Score: uint8(rows), HardMode: hard}
			for i := 0; i < rows; i++ {
				var row Row
				for j := range row {
					row[j] = marks[(i+j)%len(marks)]
				}
				r.Guesses = append(r.Guesses, row)
			}
			got, err := Parse(Format(r))
			if err != nil {
				t.Fatalf("rows=%d hard=%v: Parse(Format): %v", rows, hard, err)
			}
			if !reflect.DeepEqual(got, r) {
				t.Fatalf("rows=%d hard=%v: round trip = %+v, want %+v", rows, hard, got, r)
			}
		}
	}
}

func TestFormatCanonical(t *testing.T) {
	if got, want := Format(sampleResult), "Wordle 258 4/6*\n\n"+sampleGrid; got != want {
		t.Fatalf("Format = %q, want %q", got, want)
	}
}

func TestParseIdempotentConcurrent(t *testing.T) {
	inputs := []string{
		"Wordle 258 4/6*\n\n" + sampleGrid,
		"Wordle 258 7/6\n\n" + sampleGrid,
		"nothing here",
	}
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, in := range inputs {
				a, errA := Parse(in)
				b, errB := Parse(in)
				if !reflect.DeepEqual(a, b) || !reflect.DeepEqual(errA, errB) {
					t.Errorf("Parse(%q) not deterministic", in)
				}
			}
		}()
	}
	wg.Wait()
}

func TestDarkTheme(t *testing.T) {
	if sampleResult.DarkTheme() {
		t.Fatal("light grid reported as dark")
	}
	r := &Result{Guesses: Grid{{Correct, AbsentDark, Absent, Absent, Absent}}}
	if !r.DarkTheme() {
		t.Fatal("dark first row not detected")
	}
	r = &Result{Guesses: Grid{
		{Correct, Absent, Absent, Absent, Absent},
		{Correct, AbsentDark, Absent, Absent, Absent},
	}}
	if r.DarkTheme() {
		t.Fatal("only the first row counts")
	}
}

func TestNewRowLength(t *testing.T) {
	if _, err := newRow([]Mark{Correct, Correct, Correct, Correct}); err == nil {
		t.Fatal("short row accepted")
	}
	if _, err := newRow([]Mark{Correct, Correct, Correct, Correct, Correct, Correct}); err == nil {
		t.Fatal("long row accepted")
	}
	if _, err := newRow([]Mark{Correct, Correct, 0, Correct, Correct}); err == nil {
		t.Fatal("unknown mark accepted")
	}
}

func TestMarkGlyphRoundTrip(t *testing.T) {
	for _, m := range []Mark{Correct, Present, Absent, AbsentDark} {
		got, size, ok := tileAt(m.Glyph())
		if !ok || got != m || size != len(m.Glyph()) {
			t.Fatalf("tileAt(%q) = %v, %d, %v", m.Glyph(), got, size, ok)
		}
	}
}

func FuzzParse(f *testing.F) {
	f.Add("Wordle 258 4/6*\n\n" + sampleGrid)
	f.Add("Wordle 258 4/6*\n\n⬜⬜🟨")
	f.Add("Wordle ")
	f.Fuzz(func(t *testing.T, in string) {
		r, err := Parse(in)
		if err != nil {
			var perr *Error
			if !errors.As(err, &perr) {
				t.Fatalf("error %T is not *Error", err)
			}
			return
		}
		if r.Score < 1 || r.Score > MaxRows {
			t.Fatalf("score %d out of range", r.Score)
		}
		if len(r.Guesses) < 1 || len(r.Guesses) > MaxRows {
			t.Fatalf("grid has %d rows", len(r.Guesses))
		}
		if _, err := Parse(Format(r)); err != nil {
			t.Fatalf("canonical form rejected: %v", err)
		}
	})
}
