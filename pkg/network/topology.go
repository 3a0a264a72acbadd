package network

// Fixed topology of the 8×8 Omega network.
const (
	// Size is the number of network addresses (inputs and outputs).
	Size = 8

	// Stages is the number of switch stages, log2(Size).
	Stages = 3

	// Switches is the number of 2×2 switches per stage.
	Switches = Size / 2

	// addressMask keeps line addresses within the 3-bit space.
	addressMask = Size - 1
)

// Setting is the state of a 2×2 exchange switch.
type Setting int8

const (
	// Unused marks a switch not traversed by any scheduled transfer.
	Unused Setting = iota
	// Straight connects input 0→output 0 and input 1→output 1.
	Straight
	// Cross connects input 0→output 1 and input 1→output 0.
	Cross
)

// String returns the setting name.
func (s Setting) String() string {
	switch s {
	case Straight:
		return "Straight"
	case Cross:
		return "Cross"
	default:
		return "Unused"
	}
}

// Symbol returns the compact report form: "0" Straight, "1" Cross, "-" Unused.
func (s Setting) Symbol() string {
	switch s {
	case Straight:
		return "0"
	case Cross:
		return "1"
	default:
		return "-"
	}
}

// ValidAddress reports whether a is inside the network address space.
func ValidAddress(a int) bool {
	return a >= 0 && a < Size
}

// shuffle applies the perfect shuffle (left rotation over 3 bits) that the
// inter-stage links implement.
func shuffle(line int) int {
	return ((line << 1) & addressMask) | (line >> (Stages - 1))
}
