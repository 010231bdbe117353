package osc

import (
	"encoding/binary"
	"fmt"
	"time"
)

const (
	bundleTagString = "#bundle"
)

// Bundle represents an OSC bundle. It consists of the OSC-string "#bundle"
// followed by an OSC Time Tag, followed by zero or more OSC bundle/message
// elements. The OSC-timetag is a 64-bit fixed point time tag. See
// http://opensoundcontrol.org/spec-1_0.html for more information.
type Bundle struct {
	Timetag  Timetag
	Elements []Packet
}

// Verify that Bundle implements the Packet interface.
var _ Packet = (*Bundle)(nil)

// NewBundleWithTime returns an OSC Bundle. Use this function to create a new OSC Bundle.
func NewBundleWithTime(time time.Time) *Bundle {
	return &Bundle{Timetag: NewTimetagFromTime(time)}
}

// NewBundle returns an empty OSC Bundle with an immediate time tag.
func NewBundle(elems ...Packet) *Bundle {
	b := &Bundle{Timetag: Immediately}
	for _, e := range elems {
		_ = b.Append(e)
	}
	return b
}

// Append appends an OSC bundle or OSC message to the bundle.
func (b *Bundle) Append(pck Packet) error {
	switch t := pck.(type) {
	default:
		return fmt.Errorf("unsupported OSC packet type: only Bundle and Message are supported")

	case *Bundle, *Message:
		b.Elements = append(b.Elements, t)
	}

	return nil
}

// MarshalBinary implements the encoding.BinaryMarshaler interface.
func (b *Bundle) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 16, 64)

	// Add the '#bundle' string
	n := writePaddedString(bundleTagString, buf)

	// Add the time tag
	binary.BigEndian.PutUint64(buf[n:], uint64(b.Timetag))

	// Process all Bundle elements
	for _, e := range b.Elements {
		bb, err := e.MarshalBinary()
		if err != nil {
			return nil, err
		}

		// Write the size of the element, then the element
		buf = binary.BigEndian.AppendUint32(buf, uint32(len(bb)))
		buf = append(buf, bb...)
	}

	if len(buf) > MaxPacketSize {
		return nil, fmt.Errorf("MarshalBinary: bundle of %d bytes: %w", len(buf), ErrPacketTooLarge)
	}

	return buf, nil
}

// MarshalTo writes the bundle into buf and returns the number of bytes written.
func (b *Bundle) MarshalTo(buf []byte) (int, error) {
	bb, err := b.MarshalBinary()
	if err != nil {
		return 0, err
	}
	if len(bb) > len(buf) {
		return 0, fmt.Errorf("MarshalTo: need %d bytes, have %d: %w", len(bb), len(buf), ErrShortBuffer)
	}
	return copy(buf, bb), nil
}

// NewBundleFromData returns a new OSC bundle created from the parsed data.
func NewBundleFromData(data []byte) (b *Bundle, err error) {
	b = &Bundle{}
	if err = b.UnmarshalBinary(data); err != nil {
		return nil, err
	}
	return b, nil
}

// newBundleFromData assumes that the bytes have already been copied.
func newBundleFromData(data []byte) (b *Bundle, err error) {
	b = &Bundle{}
	if err = b.unmarshalBinary(data); err != nil {
		return nil, err
	}
	return b, nil
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface.
func (b *Bundle) UnmarshalBinary(d []byte) error {
	if len(d) > MaxPacketSize {
		return fmt.Errorf("UnmarshalBinary: %d bytes: %w", len(d), ErrPacketTooLarge)
	}
	data := make([]byte, len(d))
	copy(data, d)

	return b.unmarshalBinary(data)
}

// unmarshalBinary is the actual implementation, it doesn't copy, so we can use a single copy for bundles.
func (b *Bundle) unmarshalBinary(data []byte) error {
	if (len(data) % bit32Size) != 0 {
		return fmt.Errorf("UnmarshalBinary: data isn't padded properly")
	}

	if len(data) < 16 {
		return fmt.Errorf("UnmarshalBinary: bundle is too short")
	}

	// Read the '#bundle' OSC string
	startTag, n, err := parsePaddedString(data)
	if err != nil {
		return err
	}
	data = data[n:]

	if startTag != bundleTagString {
		return fmt.Errorf("invalid bundle start tag: %s", startTag)
	}

	if len(data) < bit64Size {
		return fmt.Errorf("UnmarshalBinary: bundle is too short")
	}
	b.Timetag = Timetag(binary.BigEndian.Uint64(data[:bit64Size]))
	data = data[bit64Size:]
	b.Elements = nil

	// Read until the end of the buffer
	for len(data) > 0 {
		if len(data) < bit32Size {
			return fmt.Errorf("invalid bundle element: %d trailing bytes", len(data))
		}

		// Read the size of the bundle element
		length := int(binary.BigEndian.Uint32(data[:bit32Size]))
		data = data[bit32Size:]
		if length == 0 || length > len(data) || length%bit32Size != 0 {
			return fmt.Errorf("invalid bundle element length: %d", length)
		}

		p, err := parsePacket(data[:length])
		if err != nil {
			return err
		}
		data = data[length:]
		b.Elements = append(b.Elements, p)
	}

	return nil
}
