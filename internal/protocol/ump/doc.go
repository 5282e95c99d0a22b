// Package ump decodes the Universal MIDI Packet envelope.
//
// Ownership boundary:
// - message type and group header fields
// - packet length resolution by message type
// - range-checked word access and the embedded MIDI 1.0 bytes
package ump
