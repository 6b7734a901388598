package line

// Width is the number of terminal cells a fragment occupies.
type Width uint8

const (
	Half Width = iota + 1
	Full
)

// Cells returns the width as a cell count.
func (w Width) Cells() int {
	if w == Full {
		return 2
	}
	return 1
}

func (w Width) String() string {
	if w == Full {
		return "full"
	}
	return "half"
}
