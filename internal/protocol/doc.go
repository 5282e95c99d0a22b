// Package protocol owns the MIDI 2.0 transport wire contract.
//
// Ownership boundary:
// - bitfield, ump, midi1 and ci decoding primitives (subpackages, pure)
// - semantic inspection entry points composing them under a Policy
// - decode-vector files (vectors)
//
// The subpackages never log or perform I/O; inspection logs its verdicts.
package protocol
