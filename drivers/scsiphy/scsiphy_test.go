package scsiphy

import (
	"errors"
	"testing"

	"scsiphy-go/errcode"
)

func TestResolveAsyncExactTable(t *testing.T) {
	want := []AsyncTiming{
		{23, 15, 6, 12},
		{11, 5, 5, 11},
		{8, 5, 5, 5},
		{2, 5, 5, 5},
		{2, 2, 2, 2},
	}
	for i, w := range want {
		got, err := ResolveAsync(AsyncSpeed(i))
		if err != nil {
			t.Fatalf("ResolveAsync(%d) error: %v", i, err)
		}
		if got != w {
			t.Fatalf("ResolveAsync(%d) = %+v, want %+v", i, got, w)
		}
	}
}

func TestResolveAsyncRejectsUnknownSpeed(t *testing.T) {
	for _, s := range []AsyncSpeed{NumAsyncSpeeds, 6, 255} {
		got, err := ResolveAsync(s)
		if errcode.Of(err) != errcode.InvalidConfiguration {
			t.Fatalf("ResolveAsync(%d) err = %v, want invalid_configuration", s, err)
		}
		if got != (AsyncTiming{}) {
			t.Fatalf("ResolveAsync(%d) leaked counts %+v", s, got)
		}
	}
}

func TestAsyncTableMonotonic(t *testing.T) {
	if err := CheckAsyncTable(AsyncTable()); err != nil {
		t.Fatalf("built-in table: %v", err)
	}

	// Edited table with a faster row needing more hold must be caught.
	tbl := AsyncTable()
	tbl[AsyncTurbo].Hold = 9
	err := CheckAsyncTable(tbl)
	if !errors.Is(err, errcode.InvalidConfiguration) {
		t.Fatalf("edited table err = %v, want invalid_configuration", err)
	}
}

func TestAsyncTableIsCopy(t *testing.T) {
	tbl := AsyncTable()
	tbl[0].Assert = 0
	if got, _ := ResolveAsync(Async1_5MBs); got.Assert != 23 {
		t.Fatal("AsyncTable exposed the backing array")
	}
}

func TestAsyncSpeedNames(t *testing.T) {
	for s := AsyncSpeed(0); s < NumAsyncSpeeds; s++ {
		got, err := ParseAsyncSpeed(s.String())
		if err != nil || got != s {
			t.Fatalf("ParseAsyncSpeed(%q) = %d, %v", s.String(), got, err)
		}
	}
	if AsyncSpeed(9).String() != "async(9)" {
		t.Fatalf("out of range name = %q", AsyncSpeed(9).String())
	}
	if _, err := ParseAsyncSpeed("20MB/s"); errcode.Of(err) != errcode.InvalidConfiguration {
		t.Fatalf("unknown name err = %v", err)
	}
}

func TestSyncDeskewAndHold(t *testing.T) {
	for p := Period(25); p < 35; p++ {
		d, err := SyncDeskew(p)
		if err != nil || d != 2 {
			t.Fatalf("SyncDeskew(%d) = %d, %v; want 2", p, d, err)
		}
		h, err := SyncHold(p)
		want := 3
		if p == 25 {
			want = 2
		}
		if err != nil || h != want {
			t.Fatalf("SyncHold(%d) = %d, %v; want %d", p, h, err, want)
		}
	}
	for _, p := range []Period{35, 36, 50, 80, 200, 255} {
		d, err := SyncDeskew(p)
		if err != nil || d != 5 {
			t.Fatalf("SyncDeskew(%d) = %d, %v; want 5", p, d, err)
		}
		h, err := SyncHold(p)
		if err != nil || h != 5 {
			t.Fatalf("SyncHold(%d) = %d, %v; want 5", p, h, err)
		}
	}
}

func TestPeriodClocksRoundsToNearest(t *testing.T) {
	type C struct {
		p    Period
		want int
	}
	for _, c := range []C{
		{25, 13}, // 12.5 rounds up
		{26, 13},
		{27, 14}, // 13.5 rounds up
		{33, 17},
		{50, 25},
		{80, 40},
		{255, 128},
	} {
		got, err := PeriodClocks(c.p)
		if err != nil || got != c.want {
			t.Fatalf("PeriodClocks(%d) = %d, %v; want %d", c.p, got, err, c.want)
		}
	}
}

func TestSyncAssertionWriteBudget(t *testing.T) {
	for _, p := range []Period{25, 33, 50, 80} {
		d, _ := SyncDeskew(p)
		a, err := SyncAssertionWrite(p, d)
		if err != nil {
			t.Fatalf("SyncAssertionWrite(%d,%d) error: %v", p, d, err)
		}
		clks, _ := PeriodClocks(p)
		total := a*2 + d + FPGAOverhead
		if diff := total - clks; diff < -1 || diff > 1 {
			t.Fatalf("period %d: 2*%d+%d+%d = %d, clocks %d", p, a, d, FPGAOverhead, total, clks)
		}
	}
}

func TestSyncAssertionWriteValues(t *testing.T) {
	type C struct {
		p      Period
		deskew int
		want   int
	}
	for _, c := range []C{
		{25, 2, 5},
		{33, 2, 7},
		{50, 5, 9},
		{80, 5, 17},
		{80, 0, 19},
		{25, 12, 0}, // whole budget spent on deskew
	} {
		got, err := SyncAssertionWrite(c.p, c.deskew)
		if err != nil || got != c.want {
			t.Fatalf("SyncAssertionWrite(%d,%d) = %d, %v; want %d", c.p, c.deskew, got, err, c.want)
		}
	}
}

func TestSyncAssertionWriteRejectsBadDeskew(t *testing.T) {
	for _, d := range []int{-1, 13, 100} {
		if _, err := SyncAssertionWrite(25, d); errcode.Of(err) != errcode.InvalidConfiguration {
			t.Fatalf("deskew %d err = %v, want invalid_configuration", d, err)
		}
	}
}

func TestSyncAssertionRead(t *testing.T) {
	got, err := SyncAssertionRead(Fast10Period)
	if err != nil || got != Fast10ReadAssert {
		t.Fatalf("SyncAssertionRead(25) = %d, %v; want 4", got, err)
	}
	if formula, _ := SyncAssertionWrite(Fast10Period, 0); formula == got {
		t.Fatal("fastest class should not follow the formula")
	}
	for p := Period(26); p <= MaxPeriod; p++ {
		rd, err := SyncAssertionRead(p)
		if err != nil {
			t.Fatalf("SyncAssertionRead(%d) error: %v", p, err)
		}
		wr, _ := SyncAssertionWrite(p, 0)
		if rd != wr {
			t.Fatalf("period %d: read %d != write(p,0) %d", p, rd, wr)
		}
	}
}

func TestSyncRejectsOutOfDomain(t *testing.T) {
	for _, p := range []Period{-1, -25, 0, 24, 256, 1000} {
		if p.Valid() {
			t.Fatalf("period %d reported valid", p)
		}
		if v, err := SyncDeskew(p); errcode.Of(err) != errcode.InvalidConfiguration || v != 0 {
			t.Fatalf("SyncDeskew(%d) = %d, %v", p, v, err)
		}
		if v, err := SyncHold(p); errcode.Of(err) != errcode.InvalidConfiguration || v != 0 {
			t.Fatalf("SyncHold(%d) = %d, %v", p, v, err)
		}
		if v, err := PeriodClocks(p); errcode.Of(err) != errcode.InvalidConfiguration || v != 0 {
			t.Fatalf("PeriodClocks(%d) = %d, %v", p, v, err)
		}
		if v, err := SyncAssertionWrite(p, 0); errcode.Of(err) != errcode.InvalidConfiguration || v != 0 {
			t.Fatalf("SyncAssertionWrite(%d) = %d, %v", p, v, err)
		}
		if v, err := SyncAssertionRead(p); errcode.Of(err) != errcode.InvalidConfiguration || v != 0 {
			t.Fatalf("SyncAssertionRead(%d) = %d, %v", p, v, err)
		}
		if v, err := ResolveSync(p); errcode.Of(err) != errcode.InvalidConfiguration || v != (SyncTiming{}) {
			t.Fatalf("ResolveSync(%d) = %+v, %v", p, v, err)
		}
	}
}

func TestResolveSync(t *testing.T) {
	got, err := ResolveSync(25)
	if err != nil {
		t.Fatalf("ResolveSync(25) error: %v", err)
	}
	want := SyncTiming{Period: 25, Deskew: 2, Hold: 2, WriteAssert: 5, ReadAssert: 4}
	if got != want {
		t.Fatalf("ResolveSync(25) = %+v, want %+v", got, want)
	}
	got, _ = ResolveSync(50)
	want = SyncTiming{Period: 50, Deskew: 5, Hold: 5, WriteAssert: 9, ReadAssert: 12}
	if got != want {
		t.Fatalf("ResolveSync(50) = %+v, want %+v", got, want)
	}
}

func TestSelectionTimeout(t *testing.T) {
	if SelectionTimeout(false) != 36 {
		t.Fatalf("default selection = %d, want 36", SelectionTimeout(false))
	}
	if SelectionTimeout(true) != 4 {
		t.Fatalf("fast selection = %d, want 4", SelectionTimeout(true))
	}
}

func TestNewProgram(t *testing.T) {
	pg, err := NewProgram(Async5MBs, AsyncOnly, false)
	if err != nil {
		t.Fatalf("async-only program: %v", err)
	}
	if pg.SyncEnabled || pg.Sync != (SyncTiming{}) || pg.Async != (AsyncTiming{8, 5, 5, 5}) || pg.Selection != 36 {
		t.Fatalf("async-only program = %+v", pg)
	}

	pg, err = NewProgram(AsyncTurbo, 25, true)
	if err != nil {
		t.Fatalf("sync program: %v", err)
	}
	if !pg.SyncEnabled || pg.Sync.WriteAssert != 5 || pg.Selection != 4 {
		t.Fatalf("sync program = %+v", pg)
	}

	if pg, err = NewProgram(AsyncTurbo, 12, true); errcode.Of(err) != errcode.InvalidConfiguration || pg != (Program{}) {
		t.Fatalf("bad period: %+v, %v", pg, err)
	}
	if pg, err = NewProgram(NumAsyncSpeeds, 25, true); errcode.Of(err) != errcode.InvalidConfiguration || pg != (Program{}) {
		t.Fatalf("bad speed: %+v, %v", pg, err)
	}
}
