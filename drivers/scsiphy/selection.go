package scsiphy

// Time until we consider ourselves selected.
const (
	DefaultSelection = 36 // 400ns
	FastSelection    = 4
)

// SelectionTimeout returns the selection delay in clocks.
func SelectionTimeout(fast bool) int {
	if fast {
		return FastSelection
	}
	return DefaultSelection
}
