package state

// Focus enumerates the regions that can receive keyboard input.
type Focus int

const (
	FocusInput Focus = iota
	FocusFont
	FocusFlags
	focusCount
)

// Focuses lists every focus target in tab order.
func Focuses() []Focus {
	out := make([]Focus, 0, int(focusCount))
	for f := Focus(0); f < focusCount; f++ {
		out = append(out, f)
	}
	return out
}

// Next returns the focus target after f, wrapping at the end.
func (f Focus) Next() Focus {
	return Focus((int(f.normalise()) + 1) % int(focusCount))
}

// Prev returns the focus target before f, wrapping at the start.
func (f Focus) Prev() Focus {
	n := int(focusCount)
	return Focus((int(f.normalise()) + n - 1) % n)
}

func (f Focus) normalise() Focus {
	n := int(focusCount)
	return Focus(((int(f) % n) + n) % n)
}

func (f Focus) String() string {
	switch f.normalise() {
	case FocusInput:
		return "input"
	case FocusFont:
		return "font"
	case FocusFlags:
		return "flags"
	default:
		return "unknown"
	}
}
