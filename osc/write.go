package osc

import (
	"fmt"
	"strings"
	"time"
)

// WriteMessage encodes a message with the given address into buf and returns the number of
// bytes written. Each character of format is one type tag: 'i', 'h', 'f', 'd', 's', 'b' and
// 't' consume the next argument, 'T', 'F' and 'N' consume none. Go numerics are converted to
// the tagged width, so a float64 passed for 'f' is sent as float32.
func WriteMessage(buf []byte, address, format string, args ...interface{}) (int, error) {
	m, err := NewMessageFormat(address, format, args...)
	if err != nil {
		return 0, err
	}
	return m.MarshalTo(buf)
}

// NewMessageFormat builds a message from a type tag format string, see WriteMessage.
func NewMessageFormat(address, format string, args ...interface{}) (*Message, error) {
	m := &Message{Address: address, Arguments: make([]interface{}, 0, len(format))}

	for _, c := range format {
		tag := TypeTag(c)
		switch tag {
		case TypeTrue:
			m.Arguments = append(m.Arguments, true)
			continue
		case TypeFalse:
			m.Arguments = append(m.Arguments, false)
			continue
		case TypeNil:
			m.Arguments = append(m.Arguments, nil)
			continue
		}

		if len(args) == 0 {
			return nil, fmt.Errorf("NewMessageFormat: %s: format %q needs more arguments: %w", address, format, ErrArgumentCount)
		}
		v, err := coerce(tag, args[0])
		if err != nil {
			return nil, fmt.Errorf("NewMessageFormat: %s: %w", address, err)
		}
		m.Arguments = append(m.Arguments, v)
		args = args[1:]
	}

	if len(args) > 0 {
		return nil, fmt.Errorf("NewMessageFormat: %s: %d arguments left over for format %q: %w", address, len(args), format, ErrArgumentCount)
	}

	return m, nil
}

// coerce converts arg to the Go type that encodes as tag.
func coerce(tag TypeTag, arg interface{}) (interface{}, error) {
	switch tag {
	case TypeFloat32:
		switch v := arg.(type) {
		case float32:
			return v, nil
		case float64:
			return float32(v), nil
		case int:
			return float32(v), nil
		case int32:
			return float32(v), nil
		case int64:
			return float32(v), nil
		}

	case TypeFloat64:
		switch v := arg.(type) {
		case float32:
			return float64(v), nil
		case float64:
			return v, nil
		case int:
			return float64(v), nil
		case int32:
			return float64(v), nil
		case int64:
			return float64(v), nil
		}

	case TypeInt32:
		switch v := arg.(type) {
		case int:
			return int32(v), nil
		case int32:
			return v, nil
		case int64:
			return int32(v), nil
		}

	case TypeInt64:
		switch v := arg.(type) {
		case int:
			return int64(v), nil
		case int32:
			return int64(v), nil
		case int64:
			return v, nil
		}

	case TypeString:
		if v, ok := arg.(string); ok {
			if strings.IndexByte(v, 0) >= 0 {
				return nil, fmt.Errorf("string %q contains NUL: %w", v, ErrArgumentType)
			}
			return v, nil
		}

	case TypeBlob:
		if v, ok := arg.([]byte); ok {
			return v, nil
		}

	case TypeTimeTag:
		switch v := arg.(type) {
		case Timetag:
			return v, nil
		case time.Time:
			return NewTimetagFromTime(v), nil
		}

	default:
		return nil, fmt.Errorf("unsupported typetag: %c", tag)
	}

	return nil, fmt.Errorf("cannot encode %T as '%c': %w", arg, tag, ErrArgumentType)
}
