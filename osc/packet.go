package osc

import (
	"encoding"
	"errors"
	"fmt"
	"io"
)

const (
	// MaxPacketSize is the largest packet that will be encoded or decoded.
	MaxPacketSize = 65535

	bit32Size = 4
	bit64Size = 8

	secondsFrom1900To1970 = 2208988800
)

var (
	// ErrShortBuffer is returned when a packet does not fit into the destination buffer.
	ErrShortBuffer = io.ErrShortBuffer
	// ErrPacketTooLarge is returned when a packet to encode or decode exceeds MaxPacketSize.
	ErrPacketTooLarge = errors.New("osc: packet too large")
)

// Packet is the interface for Message and Bundle.
type Packet interface {
	encoding.BinaryMarshaler
	encoding.BinaryUnmarshaler

	// MarshalTo writes the packet into b and returns the number of bytes written.
	MarshalTo(b []byte) (int, error)
}

// ParsePacket parses the given data as an OSC Message or Bundle. The data is copied first,
// so the returned packet does not alias it.
func ParsePacket(data []byte) (Packet, error) {
	if len(data) > MaxPacketSize {
		return nil, fmt.Errorf("ParsePacket: %d bytes: %w", len(data), ErrPacketTooLarge)
	}
	b := make([]byte, len(data))
	copy(b, data)
	return parsePacket(b)
}

// parsePacket assumes that the bytes have already been copied.
func parsePacket(data []byte) (Packet, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("ParsePacket: empty packet")
	}

	switch data[0] {
	case '/':
		m := &Message{}
		if err := m.unmarshalBinary(data); err != nil {
			return nil, err
		}
		return m, nil
	case '#':
		return newBundleFromData(data)
	default:
		return nil, fmt.Errorf("ParsePacket: invalid packet start byte %q", data[0])
	}
}
