package network

// Hop is one step of a transfer's path: the switch it occupies at a stage
// and the setting it requires there.
type Hop struct {
	Stage   int     // stage index, 0..Stages-1
	Switch  int     // switch index within the stage, 0..Switches-1
	Setting Setting // Straight or Cross, never Unused
}

// Path is the ordered sequence of exactly Stages hops for one transfer.
type Path [Stages]Hop

// Route computes the self-routed path from src to dst.
//
// At each stage the current line address is shuffled onto a switch input;
// the destination bit for that stage (MSB first) selects the output port,
// and the line continues from there. The result is deterministic and total:
// src == dst yields a valid all-Straight-or-Cross path like any other pair.
//
// Addresses outside [0, Size) are reduced modulo the address space; callers
// are expected to validate addresses before routing.
func Route(src, dst int) Path {
	src &= addressMask
	dst &= addressMask

	var path Path
	line := src
	for stage := 0; stage < Stages; stage++ {
		in := shuffle(line)
		sw := in / 2
		inPort := in % 2
		outPort := (dst >> (Stages - 1 - stage)) & 1

		setting := Straight
		if inPort != outPort {
			setting = Cross
		}
		path[stage] = Hop{Stage: stage, Switch: sw, Setting: setting}

		line = 2*sw + outPort
	}
	return path
}
