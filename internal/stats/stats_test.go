package stats

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/robalobadob/wordle-stats/internal/db"
)

const (
	hardLight = "Wordle 258 4/6*\n\n⬜⬜🟨⬜🟨\n⬜🟨⬜🟨⬜\n🟩⬜🟩⬜⬜\n🟩🟩🟩🟩🟩"
	normDark  = "Great start\nWordle 258 3/6\n\n⬛🟨⬛⬛⬛\n🟩🟩⬛🟩⬛\n🟩🟩🟩🟩🟩"
	notAGame  = "I love word games"
)

func observeAll(t *testing.T, rec *Recorder, posts ...string) {
	t.Helper()
	for _, p := range posts {
		if _, _, err := rec.Observe(context.Background(), p); err != nil {
			t.Fatalf("Observe(%q): %v", p, err)
		}
	}
}

func TestRecorderMemory(t *testing.T) {
	sink := NewMemorySink()
	rec := NewRecorder(sink)

	res, ok, err := rec.Observe(context.Background(), hardLight)
	if err != nil || !ok || res.Day != 258 || res.Score != 4 {
		t.Fatalf("Observe = %+v, %v, %v", res, ok, err)
	}
	if res, ok, err := rec.Observe(context.Background(), notAGame); res != nil || ok || err != nil {
		t.Fatalf("Observe(non-game) = %+v, %v, %v", res, ok, err)
	}
	observeAll(t, rec, normDark, normDark)

	got := sink.Snapshot()
	want := Counts{
		Posts: 4,
		Games: map[GameKey]int64{{Day: 258, Score: 4}: 1, {Day: 258, Score: 3}: 2},
		Hard:  map[uint32]int64{258: 1},
		Dark:  map[uint32]int64{258: 2},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Snapshot = %+v, want %+v", got, want)
	}

	counts, _ := sink.GameCounts(context.Background(), 258)
	if !reflect.DeepEqual(counts, []ScoreCount{{Score: 3, Count: 2}, {Score: 4, Count: 1}}) {
		t.Fatalf("GameCounts = %+v", counts)
	}
}

func TestPrometheusSink(t *testing.T) {
	reg := prometheus.NewRegistry()
	sink, err := NewPrometheusSink(reg)
	if err != nil {
		t.Fatalf("NewPrometheusSink: %v", err)
	}
	observeAll(t, NewRecorder(sink), hardLight, normDark, notAGame)

	if v := testutil.ToFloat64(sink.posts); v != 3 {
		t.Fatalf("posts = %v", v)
	}
	if v := testutil.ToFloat64(sink.games.WithLabelValues("258", "4")); v != 1 {
		t.Fatalf("games{258,4} = %v", v)
	}
	if v := testutil.ToFloat64(sink.hard.WithLabelValues("258")); v != 1 {
		t.Fatalf("hard{258} = %v", v)
	}
	if v := testutil.ToFloat64(sink.dark.WithLabelValues("258")); v != 1 {
		t.Fatalf("dark{258} = %v", v)
	}

	if _, err := NewPrometheusSink(reg); err == nil {
		t.Fatal("second registration on the same registry succeeded")
	}
}

func TestSQLiteSink(t *testing.T) {
	conn, err := db.Open(":memory:")
	if err != nil {
		t.Fatalf("db.Open: %v", err)
	}
	defer conn.Close()

	ctx := context.Background()
	sink := NewSQLiteSink(conn)
	observeAll(t, NewRecorder(sink), hardLight, normDark, normDark, notAGame)

	counts, err := sink.GameCounts(ctx, 258)
	if err != nil {
		t.Fatalf("GameCounts: %v", err)
	}
	if !reflect.DeepEqual(counts, []ScoreCount{{Score: 3, Count: 2}, {Score: 4, Count: 1}}) {
		t.Fatalf("GameCounts = %+v", counts)
	}
	if n, _ := sink.ModeCount(ctx, 258, ModeHard); n != 1 {
		t.Fatalf("hard = %d", n)
	}
	if n, _ := sink.ModeCount(ctx, 258, ModeDark); n != 2 {
		t.Fatalf("dark = %d", n)
	}
	if n, _ := sink.ModeCount(ctx, 259, ModeDark); n != 0 {
		t.Fatalf("dark for unseen day = %d", n)
	}
	if n, _ := sink.PostCount(ctx); n != 4 {
		t.Fatalf("posts = %d", n)
	}
}

type failingSink struct{ *MemorySink }

func (failingSink) IncGame(context.Context, uint32, uint8) error {
	return errors.New("disk full")
}

func TestMultiCallsEverySink(t *testing.T) {
	good := NewMemorySink()
	bad := failingSink{NewMemorySink()}
	rec := NewRecorder(Multi(bad, good))

	res, ok, err := rec.Observe(context.Background(), hardLight)
	if err == nil || !strings.Contains(err.Error(), "disk full") {
		t.Fatalf("Observe error = %v, want disk full", err)
	}
	if !ok || res == nil {
		t.Fatal("parse result dropped on sink failure")
	}
	snap := good.Snapshot()
	if snap.Games[GameKey{Day: 258, Score: 4}] != 1 || snap.Hard[258] != 1 {
		t.Fatalf("healthy sink missed increments: %+v", snap)
	}
}
