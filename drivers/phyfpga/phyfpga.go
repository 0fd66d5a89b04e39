// Package phyfpga loads resolved SCSI phase timing into the bus sequencer's
// register block over an I2C-style configuration port.
//
// The loader never derives timing itself; callers pass counts produced by
// scsiphy. Counts that do not fit a byte register are rejected.
package phyfpga

import (
	"tinygo.org/x/drivers"

	"scsiphy-go/drivers/scsiphy"
	"scsiphy-go/errcode"
	"scsiphy-go/x/conv"
)

// Direction selects which sync assertion count is loaded.
type Direction uint8

const (
	DirWrite Direction = iota // target drives data
	DirRead
)

type Config struct {
	Address uint16 // defaults to AddressDefault if zero
}

// Device wraps the sequencer configuration port.
type Device struct {
	bus  drivers.I2C
	addr uint16

	// Fixed buffer to avoid per-call heap allocations.
	w [1 + numRegs]byte
}

func New(bus drivers.I2C, cfg Config) *Device {
	addr := cfg.Address
	if addr == 0 {
		addr = AddressDefault
	}
	return &Device{bus: bus, addr: addr}
}

// Registers is a snapshot of the whole register block.
type Registers [numRegs]byte

func (r Registers) String() string { return conv.Dump(r[:]) }

// LoadAsync writes the four async counts.
func (d *Device) LoadAsync(t scsiphy.AsyncTiming) error {
	return d.writeRegs(regAsyncAssert, t.Assert, t.Deskew, t.Hold, t.Glitch)
}

// LoadSync writes sync counts for one direction and enables sync mode.
// Sync stays disabled until the counts are in, so a failed transfer leaves
// the sequencer in async mode rather than running on mixed counts.
func (d *Device) LoadSync(t scsiphy.SyncTiming, dir Direction) error {
	assert := t.WriteAssert
	mode := byte(modeSyncEnable)
	if dir == DirRead {
		assert = t.ReadAssert
		mode |= modeSyncRead
	}
	var b [3]byte
	for i, v := range [3]int{t.Deskew, t.Hold, assert} {
		c, err := toReg("LoadSync", v)
		if err != nil {
			return err
		}
		b[i] = c
	}
	if err := d.DisableSync(); err != nil {
		return err
	}
	if err := d.writeRegs(regSyncDeskew, b[:]...); err != nil {
		return err
	}
	return d.writeRegs(regMode, mode)
}

// DisableSync drops the sequencer back to async transfers.
func (d *Device) DisableSync() error {
	return d.writeRegs(regMode, 0)
}

// LoadSelection writes the selection delay in clocks.
func (d *Device) LoadSelection(clocks int) error {
	c, err := toReg("LoadSelection", clocks)
	if err != nil {
		return err
	}
	return d.writeRegs(regSelection, c)
}

// Apply loads a complete program. Sync is disabled first and only
// re-enabled by the final mode write. A transfer failing after the first
// write can leave mixed async counts, but always with sync disabled.
func (d *Device) Apply(pg scsiphy.Program, dir Direction) error {
	if _, err := toReg("Apply", pg.Selection); err != nil {
		return err
	}
	if err := d.DisableSync(); err != nil {
		return err
	}
	if err := d.LoadAsync(pg.Async); err != nil {
		return err
	}
	if err := d.LoadSelection(pg.Selection); err != nil {
		return err
	}
	if !pg.SyncEnabled {
		return nil
	}
	return d.LoadSync(pg.Sync, dir)
}

// ReadBack reads the whole register block.
func (d *Device) ReadBack() (Registers, error) {
	var r Registers
	d.w[0] = regAsyncAssert
	if err := d.bus.Tx(d.addr, d.w[:1], r[:]); err != nil {
		return Registers{}, &errcode.E{C: errcode.Transport, Op: "ReadBack", Err: err}
	}
	return r, nil
}

func toReg(op string, v int) (byte, error) {
	if v < 0 || v > 0xFF {
		return 0, errcode.Invalid(op, "count "+conv.Itos(v)+" does not fit register")
	}
	return byte(v), nil
}

func (d *Device) writeRegs(reg byte, vals ...byte) error {
	d.w[0] = reg
	n := copy(d.w[1:], vals)
	if err := d.bus.Tx(d.addr, d.w[:1+n], nil); err != nil {
		return &errcode.E{C: errcode.Transport, Op: "writeRegs", Err: err}
	}
	return nil
}
