package scsiphy

import (
	"scsiphy-go/errcode"
	"scsiphy-go/x/conv"
	"scsiphy-go/x/mathx"
)

// AsyncSpeed selects a row of the asynchronous timing table, slowest first.
type AsyncSpeed uint8

const (
	Async1_5MBs AsyncSpeed = iota // 1.5 MB/s
	Async3_3MBs                   // 3.3 MB/s
	Async5MBs                     // 5 MB/s, 80 ns assert
	AsyncSafe                     // probably safe
	AsyncTurbo
	NumAsyncSpeeds
)

var asyncNames = [NumAsyncSpeeds]string{"1.5MB/s", "3.3MB/s", "5MB/s", "safe", "turbo"}

func (s AsyncSpeed) String() string {
	if s < NumAsyncSpeeds {
		return asyncNames[s]
	}
	return "async(" + conv.Itos(int(s)) + ")"
}

// ParseAsyncSpeed maps a row name ("5MB/s", "turbo", ...) back to its index.
func ParseAsyncSpeed(name string) (AsyncSpeed, error) {
	for i, n := range asyncNames {
		if n == name {
			return AsyncSpeed(i), nil
		}
	}
	return 0, errcode.Invalid("ParseAsyncSpeed", "unknown speed "+name)
}

// AsyncTiming holds the four phase counts, in clocks, for one async speed.
type AsyncTiming struct {
	Assert uint8
	Deskew uint8
	Hold   uint8
	Glitch uint8
}

// Timing at a 90 MHz clock.
var asyncTimings = [NumAsyncSpeeds]AsyncTiming{
	/*               Assert Deskew Hold Glitch */
	Async1_5MBs: {23, 15, 6, 12},
	Async3_3MBs: {11, 5, 5, 11},
	Async5MBs:   {8, 5, 5, 5}, // 80ns
	AsyncSafe:   {2, 5, 5, 5},
	AsyncTurbo:  {2, 2, 2, 2},
}

// ResolveAsync returns the table row for speed. Speeds outside the table are
// rejected, never mapped to a neighbouring row.
func ResolveAsync(speed AsyncSpeed) (AsyncTiming, error) {
	if speed >= NumAsyncSpeeds {
		return AsyncTiming{}, errcode.Invalid("ResolveAsync", "speed "+conv.Itos(int(speed))+" not in table")
	}
	return asyncTimings[speed], nil
}

// AsyncTable returns a copy of the table, slowest first.
func AsyncTable() []AsyncTiming {
	out := make([]AsyncTiming, len(asyncTimings))
	copy(out, asyncTimings[:])
	return out
}

// CheckAsyncTable verifies that no phase count grows as speed increases.
// Plateaus are allowed.
func CheckAsyncTable(tbl []AsyncTiming) error {
	fields := [4]struct {
		name string
		get  func(AsyncTiming) uint8
	}{
		{"assert", func(t AsyncTiming) uint8 { return t.Assert }},
		{"deskew", func(t AsyncTiming) uint8 { return t.Deskew }},
		{"hold", func(t AsyncTiming) uint8 { return t.Hold }},
		{"glitch", func(t AsyncTiming) uint8 { return t.Glitch }},
	}
	col := make([]uint8, len(tbl))
	for _, f := range fields {
		for i, row := range tbl {
			col[i] = f.get(row)
		}
		if i := mathx.NonIncreasing(col); i >= 0 {
			return errcode.Invalid("CheckAsyncTable", f.name+" increases at row "+conv.Itos(i))
		}
	}
	return nil
}
