package gic

// Trigger is the trigger configuration for an interrupt.
type Trigger int

const (
	// Edge configures the interrupt as edge triggered.
	Edge Trigger = iota
	// Level configures the interrupt as level triggered.
	Level
)

func (t Trigger) String() string {
	switch t {
	case Edge:
		return "edge"
	case Level:
		return "level"
	default:
		return "unknown"
	}
}
