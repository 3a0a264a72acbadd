// Package network models the fixed 8×8 Omega interconnection network and
// computes self-routed paths through it.
//
// The network has log2(8) = 3 stages of four 2×2 exchange switches. Between
// stages the links apply a perfect shuffle (left rotation of the 3-bit line
// address). Routing is destination-tagged: stage s consumes destination bit
// 2-s (MSB first) as the output-port choice, so a path is fully determined
// by the (source, destination) pair and no global coordination is needed.
//
// A switch setting is Straight when the input port equals the chosen output
// port and Cross otherwise. Two transfers can share a switch as long as they
// agree on the setting: a switch in either state serves both of its inputs
// at once.
//
// All topology values are immutable process-lifetime constants; Route is a
// pure function and safe for concurrent use.
package network
