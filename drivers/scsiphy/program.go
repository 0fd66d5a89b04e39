package scsiphy

// Program is the full set of counts loaded into the sequencer for one target.
type Program struct {
	Async       AsyncTiming
	Sync        SyncTiming // zero unless SyncEnabled
	SyncEnabled bool
	Selection   int
}

// AsyncOnly is the period value that requests asynchronous transfers only.
const AsyncOnly Period = 0

// NewProgram resolves every count for the given mode. period == AsyncOnly
// leaves synchronous timing disabled. Any rejected input fails the whole
// program; nothing is partially filled in.
func NewProgram(speed AsyncSpeed, period Period, fastSelection bool) (Program, error) {
	at, err := ResolveAsync(speed)
	if err != nil {
		return Program{}, err
	}
	pg := Program{
		Async:     at,
		Selection: SelectionTimeout(fastSelection),
	}
	if period == AsyncOnly {
		return pg, nil
	}
	st, err := ResolveSync(period)
	if err != nil {
		return Program{}, err
	}
	pg.Sync = st
	pg.SyncEnabled = true
	return pg, nil
}
