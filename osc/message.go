package osc

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"strings"
)

var (
	// ErrArgumentCount is returned when a message carries fewer or more arguments than a reader expects.
	ErrArgumentCount = errors.New("osc: wrong argument count")
	// ErrArgumentType is returned when an argument cannot be converted to the requested Go type.
	ErrArgumentType = errors.New("osc: wrong argument type")
)

// Message represents a single OSC message. An OSC message consists of an OSC
// address pattern and zero or more arguments.
type Message struct {
	Address   string
	Arguments []interface{}
}

// Verify that Messages implements the Packet interface.
var _ Packet = (*Message)(nil)

// NewMessage returns a new Message. The address parameter is the OSC address.
func NewMessage(addr string, args ...interface{}) *Message {
	return &Message{Address: addr, Arguments: args}
}

// NewMessageFromData parses data as a single OSC message.
func NewMessageFromData(data []byte) (msg *Message, err error) {
	msg = &Message{}
	if err = msg.UnmarshalBinary(data); err != nil {
		return nil, err
	}
	return msg, nil
}

// Clear clears the OSC address and all arguments.
func (m *Message) Clear() {
	m.Address = ""
	m.Arguments = m.Arguments[:0]
}

// Append appends the given arguments to the arguments list.
func (m *Message) Append(args ...interface{}) error {
	for _, a := range args {
		if ToTypeTag(a) == TypeInvalid {
			return fmt.Errorf("Append: unsupported type: %T", a)
		}
	}
	m.Arguments = append(m.Arguments, args...)
	return nil
}

// Match returns true, if the OSC address pattern of the OSC Message matches the given
// address. The match is case sensitive!
func (m *Message) Match(addr string) bool {
	regexp, err := getRegEx(m.Address)
	if err != nil {
		return false
	}
	return regexp.MatchString(addr)
}

// TypeTags returns the type tag string.
func (m *Message) TypeTags() (string, error) {
	if m == nil {
		return "", fmt.Errorf("TypeTags: message is nil")
	}

	return GetTypeTag(m.Arguments)
}

// String implements the fmt.Stringer interface.
func (m *Message) String() string {
	if m == nil {
		return ""
	}

	tags, _ := m.TypeTags()

	var sb strings.Builder
	sb.WriteString(m.Address)
	if len(tags) == 0 {
		return sb.String()
	}

	sb.WriteByte(' ')
	sb.WriteString(tags)

	for _, arg := range m.Arguments {
		switch arg := arg.(type) {
		case bool, int32, int64, float32, float64, string:
			fmt.Fprintf(&sb, " %v", arg)

		case nil:
			sb.WriteString(" Nil")

		case []byte:
			sb.WriteString(" blob")

		case Timetag:
			fmt.Fprintf(&sb, " %s", arg)
		}
	}

	return sb.String()
}

// size returns the encoded length of the message.
func (m *Message) size() (int, error) {
	if strings.IndexByte(m.Address, 0) >= 0 {
		return 0, fmt.Errorf("size: address %q contains NUL", m.Address)
	}
	n := paddedStringSize(m.Address)
	// ',' plus one tag per argument, null terminated and padded.
	n += len(m.Arguments) + 2 + padBytesNeeded(len(m.Arguments)+2)

	for _, arg := range m.Arguments {
		switch t := arg.(type) {
		default:
			return 0, fmt.Errorf("size: unsupported type: %T", t)

		case bool, nil:
		case int32, float32:
			n += bit32Size
		case int64, float64, Timetag:
			n += bit64Size
		case string:
			if strings.IndexByte(t, 0) >= 0 {
				return 0, fmt.Errorf("size: string %q contains NUL: %w", t, ErrArgumentType)
			}
			n += paddedStringSize(t)
		case []byte:
			n += blobSize(len(t))
		}
	}

	return n, nil
}

// MarshalBinary implements the encoding.BinaryMarshaler interface.
func (m *Message) MarshalBinary() ([]byte, error) {
	n, err := m.size()
	if err != nil {
		return nil, fmt.Errorf("MarshalBinary: %w", err)
	}

	b := make([]byte, n)
	if _, err = m.MarshalTo(b); err != nil {
		return nil, err
	}
	return b, nil
}

// MarshalTo writes the message into b and returns the number of bytes written.
// Nothing is written if b is too small.
func (m *Message) MarshalTo(b []byte) (int, error) {
	size, err := m.size()
	if err != nil {
		return 0, fmt.Errorf("MarshalTo: %w", err)
	}
	if size > MaxPacketSize {
		return 0, fmt.Errorf("MarshalTo: %d bytes: %w", size, ErrPacketTooLarge)
	}
	if size > len(b) {
		return 0, fmt.Errorf("MarshalTo: need %d bytes, have %d: %w", size, len(b), ErrShortBuffer)
	}

	n := writePaddedString(m.Address, b)

	// Write the type tag string to the data buffer
	tn, err := writeTypeTags(m.Arguments, b[n:])
	if err != nil {
		return 0, err
	}
	n += tn

	// Write the payload (OSC arguments) to the data buffer
	for _, arg := range m.Arguments {
		switch t := arg.(type) {
		case int32:
			binary.BigEndian.PutUint32(b[n:], uint32(t))
			n += bit32Size
		case float32:
			binary.BigEndian.PutUint32(b[n:], math.Float32bits(t))
			n += bit32Size
		case int64:
			binary.BigEndian.PutUint64(b[n:], uint64(t))
			n += bit64Size
		case float64:
			binary.BigEndian.PutUint64(b[n:], math.Float64bits(t))
			n += bit64Size
		case Timetag:
			binary.BigEndian.PutUint64(b[n:], uint64(t))
			n += bit64Size
		case string:
			n += writePaddedString(t, b[n:])
		case []byte:
			n += writeBlob(t, b[n:])
		}
	}

	return n, nil
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface.
func (m *Message) UnmarshalBinary(d []byte) error {
	if len(d) > MaxPacketSize {
		return fmt.Errorf("UnmarshalBinary: %d bytes: %w", len(d), ErrPacketTooLarge)
	}
	data := make([]byte, len(d))
	copy(data, d)

	return m.unmarshalBinary(data)
}

// unmarshalBinary doesn't copy, the strings in the message alias data.
func (m *Message) unmarshalBinary(data []byte) error {
	if len(data) == 0 || data[0] != '/' {
		return fmt.Errorf("UnmarshalBinary: data not a valid OSC message")
	}

	if (len(data) % bit32Size) != 0 {
		return fmt.Errorf("UnmarshalBinary: data isn't mod 4")
	}

	// First, read the OSC address
	addr, n, err := parsePaddedString(data)
	if err != nil {
		return fmt.Errorf("UnmarshalBinary: %w", err)
	}

	// Read all arguments
	m.Address = addr
	if err = m.parseArguments(data[n:]); err != nil {
		return fmt.Errorf("UnmarshalBinary: %w", err)
	}

	return nil
}

// parseArguments reads the type tag string and the arguments it describes from data.
func (m *Message) parseArguments(data []byte) error {
	m.Arguments = nil
	if len(data) == 0 {
		return nil
	}

	// Read the type tag string
	typetags, n, err := parsePaddedString(data)
	if err != nil {
		return fmt.Errorf("parseArguments: %w", err)
	}
	data = data[n:]

	// If the typetag doesn't start with ',', it's not valid
	if len(typetags) == 0 || typetags[0] != ',' {
		return fmt.Errorf("unsupported typetag string: %q", typetags)
	}

	if len(typetags) == 1 {
		if len(data) != 0 {
			return fmt.Errorf("parseArguments: %d trailing bytes", len(data))
		}
		return nil
	}

	m.Arguments = make([]interface{}, 0, len(typetags)-1)

	for _, c := range typetags[1:] {
		switch TypeTag(c) {
		default:
			return fmt.Errorf("unsupported typetag: %c", c)

		case TypeInt32, TypeFloat32:
			if len(data) < bit32Size {
				return fmt.Errorf("parseArguments: not enough bytes to read")
			}
			v := binary.BigEndian.Uint32(data)
			if TypeTag(c) == TypeInt32 {
				m.Arguments = append(m.Arguments, int32(v))
			} else {
				m.Arguments = append(m.Arguments, math.Float32frombits(v))
			}
			data = data[bit32Size:]

		case TypeInt64, TypeFloat64, TypeTimeTag:
			if len(data) < bit64Size {
				return fmt.Errorf("parseArguments: not enough bytes to read")
			}
			v := binary.BigEndian.Uint64(data)
			switch TypeTag(c) {
			case TypeInt64:
				m.Arguments = append(m.Arguments, int64(v))
			case TypeFloat64:
				m.Arguments = append(m.Arguments, math.Float64frombits(v))
			default:
				m.Arguments = append(m.Arguments, Timetag(v))
			}
			data = data[bit64Size:]

		case TypeString:
			str, n, err := parsePaddedString(data)
			if err != nil {
				return fmt.Errorf("parseArguments: %w", err)
			}
			m.Arguments = append(m.Arguments, str)
			data = data[n:]

		case TypeBlob:
			blob, n, err := parseBlob(data)
			if err != nil {
				return fmt.Errorf("parseArguments: %w", err)
			}
			m.Arguments = append(m.Arguments, blob)
			data = data[n:]

		case TypeNil:
			m.Arguments = append(m.Arguments, nil)

		case TypeTrue:
			m.Arguments = append(m.Arguments, true)

		case TypeFalse:
			m.Arguments = append(m.Arguments, false)
		}
	}

	if len(data) != 0 {
		return fmt.Errorf("parseArguments: %d trailing bytes", len(data))
	}

	return nil
}
