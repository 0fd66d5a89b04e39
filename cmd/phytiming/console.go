package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/google/shlex"

	"scsiphy-go/drivers/phyfpga"
	"scsiphy-go/drivers/scsiphy"
	"scsiphy-go/services/config"
)

var errQuit = errors.New("quit")

const usage = `commands:
  table                 async timing table
  async <index|name>    one async row
  sync <period>         sync counts for an SDTR period
  select [fast]         selection delay
  profile <device> [read]  register image for an embedded profile
  devices               embedded profile names
  quit`

// eval runs one console line. Blank lines and # comments are ignored.
func eval(line string, w io.Writer) error {
	args, err := shlex.Split(line)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return nil
	}
	switch cmd, rest := args[0], args[1:]; cmd {
	case "help", "?":
		fmt.Fprintln(w, usage)
	case "quit", "exit":
		return errQuit
	case "table":
		for i, row := range scsiphy.AsyncTable() {
			printAsync(w, scsiphy.AsyncSpeed(i), row)
		}
	case "async":
		if len(rest) != 1 {
			return errors.New("usage: async <index|name>")
		}
		speed, err := parseSpeed(rest[0])
		if err != nil {
			return err
		}
		row, err := scsiphy.ResolveAsync(speed)
		if err != nil {
			return err
		}
		printAsync(w, speed, row)
	case "sync":
		if len(rest) != 1 {
			return errors.New("usage: sync <period>")
		}
		p, err := strconv.Atoi(rest[0])
		if err != nil {
			return err
		}
		st, err := scsiphy.ResolveSync(scsiphy.Period(p))
		if err != nil {
			return err
		}
		clks, _ := scsiphy.PeriodClocks(st.Period)
		fmt.Fprintf(w, "period=%d (%dns) clocks=%d deskew=%d hold=%d assert_w=%d assert_r=%d\n",
			st.Period, int(st.Period)*scsiphy.ClockScale, clks, st.Deskew, st.Hold, st.WriteAssert, st.ReadAssert)
	case "select":
		fast := len(rest) == 1 && rest[0] == "fast"
		fmt.Fprintf(w, "selection=%d\n", scsiphy.SelectionTimeout(fast))
	case "devices":
		for _, d := range config.Devices() {
			fmt.Fprintln(w, d)
		}
	case "profile":
		if len(rest) < 1 || len(rest) > 2 {
			return errors.New("usage: profile <device> [read]")
		}
		dir := phyfpga.DirWrite
		if len(rest) == 2 && rest[1] == "read" {
			dir = phyfpga.DirRead
		}
		return printProfile(w, rest[0], dir)
	default:
		return errors.New("unknown command: " + cmd)
	}
	return nil
}

func parseSpeed(s string) (scsiphy.AsyncSpeed, error) {
	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 || n > 0xFF {
			return 0, errors.New("speed index out of range: " + s)
		}
		return scsiphy.AsyncSpeed(n), nil
	}
	return scsiphy.ParseAsyncSpeed(s)
}

func printAsync(w io.Writer, s scsiphy.AsyncSpeed, t scsiphy.AsyncTiming) {
	fmt.Fprintf(w, "%d %-7s assert=%d deskew=%d hold=%d glitch=%d\n",
		uint8(s), s, t.Assert, t.Deskew, t.Hold, t.Glitch)
}

// printProfile loads the profile into an in-memory sequencer and dumps the
// resulting register image.
func printProfile(w io.Writer, device string, dir phyfpga.Direction) error {
	p, err := config.Load(device)
	if err != nil {
		return err
	}
	pg, err := p.Resolve()
	if err != nil {
		return err
	}
	port := &memPort{}
	dev := phyfpga.New(port, phyfpga.Config{})
	if err := dev.Apply(pg, dir); err != nil {
		return err
	}
	regs, err := dev.ReadBack()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%s sync=%t regs: %s\n", device, pg.SyncEnabled, regs)
	return nil
}
