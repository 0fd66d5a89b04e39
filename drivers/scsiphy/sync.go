package scsiphy

import (
	"scsiphy-go/errcode"
	"scsiphy-go/x/conv"
	"scsiphy-go/x/mathx"
)

// 5MB/s synchronous timing.
const (
	Fast5Deskew = 5 // 55ns
	Fast5Hold   = 5 // 53ns
)

// 10MB/s synchronous timing.
// deskew + hold + assert + overhead adds up to the 100ns period.
const (
	Fast10Deskew = 2 // 25ns
	Fast10Hold   = 2 // 33ns

	// HoldFallback covers sub-35 periods other than 25. Those are assumed
	// safe with the wider hold, not interpolated.
	HoldFallback = 3

	// Fast10ReadAssert slows the read cycle to 100ns / 2, rounded down.
	// The formula value is too fast for reliable sampling at this rate.
	Fast10ReadAssert = 4
)

// SyncTiming is the derived timing for one negotiated period.
type SyncTiming struct {
	Period      Period
	Deskew      int
	Hold        int
	WriteAssert int
	ReadAssert  int
}

// SyncDeskew picks between the two deskew regimes the sequencer supports.
func SyncDeskew(p Period) (int, error) {
	if err := checkPeriod("SyncDeskew", p); err != nil {
		return 0, err
	}
	if p < Fast10Threshold {
		return Fast10Deskew, nil
	}
	return Fast5Deskew, nil
}

// SyncHold returns the hold count for p.
func SyncHold(p Period) (int, error) {
	if err := checkPeriod("SyncHold", p); err != nil {
		return 0, err
	}
	switch {
	case p >= Fast10Threshold:
		return Fast5Hold, nil
	case p == Fast10Period:
		return Fast10Hold, nil
	default:
		return HoldFallback, nil
	}
}

// PeriodClocks converts p to whole clocks, rounding to nearest.
func PeriodClocks(p Period) (int, error) {
	if err := checkPeriod("PeriodClocks", p); err != nil {
		return 0, err
	}
	return periodClocks(p), nil
}

func periodClocks(p Period) int {
	return mathx.RoundDiv(int(p)*ClockScale, ClockDenominator)
}

// SyncAssertionWrite splits what is left of the period after deskew and
// overhead, giving assertion half of it (rounded up). It must be recomputed
// whenever deskew changes.
func SyncAssertionWrite(p Period, deskew int) (int, error) {
	const op = "SyncAssertionWrite"
	if err := checkPeriod(op, p); err != nil {
		return 0, err
	}
	clks := periodClocks(p)
	if !mathx.Between(deskew, 0, clks-FPGAOverhead+1) {
		return 0, errcode.Invalid(op, "deskew "+conv.Itos(deskew)+" exceeds period budget")
	}
	return syncAssertion(clks, deskew), nil
}

func syncAssertion(clks, deskew int) int {
	return mathx.HalfUp(clks - deskew - FPGAOverhead)
}

// SyncAssertionRead is the write formula with no deskew, except at the
// fastest period where the fixed Fast10ReadAssert is used.
func SyncAssertionRead(p Period) (int, error) {
	if err := checkPeriod("SyncAssertionRead", p); err != nil {
		return 0, err
	}
	if p == Fast10Period {
		return Fast10ReadAssert, nil
	}
	return syncAssertion(periodClocks(p), 0), nil
}

// ResolveSync computes every synchronous count for p.
func ResolveSync(p Period) (SyncTiming, error) {
	if err := checkPeriod("ResolveSync", p); err != nil {
		return SyncTiming{}, err
	}
	// p is validated; the errors below cannot fire.
	deskew, _ := SyncDeskew(p)
	hold, _ := SyncHold(p)
	wr, _ := SyncAssertionWrite(p, deskew)
	rd, _ := SyncAssertionRead(p)
	return SyncTiming{
		Period:      p,
		Deskew:      deskew,
		Hold:        hold,
		WriteAssert: wr,
		ReadAssert:  rd,
	}, nil
}
