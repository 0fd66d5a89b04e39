package main

import "errors"

// memPort is a dry-run sequencer: an auto-incrementing byte register file
// behind the drivers.I2C Tx contract.
type memPort struct {
	regs [256]byte
}

func (m *memPort) Tx(_ uint16, w, r []byte) error {
	if len(w) == 0 {
		return errors.New("memport: no register pointer")
	}
	reg := int(w[0])
	copy(m.regs[reg:], w[1:])
	copy(r, m.regs[reg:])
	return nil
}
