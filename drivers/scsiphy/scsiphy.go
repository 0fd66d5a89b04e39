// Package scsiphy derives SCSI bus phase timing, in FPGA clock cycles, for
// each supported transfer mode.
//
// Design notes:
// • Asynchronous timing is a fixed table indexed by speed class.
// • Synchronous timing is computed from the negotiated SDTR period
//   (protocol units of 4 ns) with integer fixed-point maths.
// • Every entry point validates its input and returns
//   errcode.InvalidConfiguration rather than clamping to a nearby mode.
// • No state; all functions are safe for concurrent use.
package scsiphy

import (
	"scsiphy-go/errcode"
	"scsiphy-go/x/conv"
	"scsiphy-go/x/mathx"
)

// ---------------- Clock domain ----------------

const (
	// ClockScale converts a period value to nanoseconds.
	ClockScale = 4
	// ClockDenominator is the fixed-point divisor from scaled period to cycles.
	ClockDenominator = 8
	// FPGAOverhead is the clocks the sequencer spends moving between
	// deskew, assert and hold within one period.
	FPGAOverhead = 2
)

// ---------------- Synchronous period domain ----------------

// Period is a synchronous transfer period in SDTR units (ns / 4).
type Period int

const (
	// Fast10Period is the minimum negotiated period (100 ns, 10 MB/s).
	Fast10Period Period = 25
	// Fast10Threshold separates the 10 MB/s class (below) from the 5 MB/s
	// class (at or above, 140 ns and slower).
	Fast10Threshold Period = 35
	// MaxPeriod is the largest one-byte SDTR transfer period factor.
	MaxPeriod Period = 255
)

// Valid reports whether p is inside the domain the sync formulas cover.
func (p Period) Valid() bool { return mathx.Between(p, Fast10Period, MaxPeriod) }

func checkPeriod(op string, p Period) error {
	if !p.Valid() {
		return errcode.Invalid(op, "period "+conv.Itos(int(p))+" outside 25..255")
	}
	return nil
}
