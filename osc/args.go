package osc

import "fmt"

// arg returns argument i or an ErrArgumentCount error.
func (m *Message) arg(i int) (interface{}, error) {
	if i < 0 || i >= len(m.Arguments) {
		return nil, fmt.Errorf("%s: argument %d of %d: %w", m.Address, i, len(m.Arguments), ErrArgumentCount)
	}
	return m.Arguments[i], nil
}

// FloatArg returns argument i as a float64. Any numeric OSC type is accepted.
func (m *Message) FloatArg(i int) (float64, error) {
	a, err := m.arg(i)
	if err != nil {
		return 0, err
	}

	switch v := a.(type) {
	case float32:
		return float64(v), nil
	case float64:
		return v, nil
	case int32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case int:
		return float64(v), nil
	}
	return 0, fmt.Errorf("%s: argument %d is %T: %w", m.Address, i, a, ErrArgumentType)
}

// StringArg returns argument i, which must be a string.
func (m *Message) StringArg(i int) (string, error) {
	a, err := m.arg(i)
	if err != nil {
		return "", err
	}

	s, ok := a.(string)
	if !ok {
		return "", fmt.Errorf("%s: argument %d is %T: %w", m.Address, i, a, ErrArgumentType)
	}
	return s, nil
}

// BoolArg returns argument i as a bool. True/False tags map directly, numbers are true when non-zero.
func (m *Message) BoolArg(i int) (bool, error) {
	a, err := m.arg(i)
	if err != nil {
		return false, err
	}

	if b, ok := a.(bool); ok {
		return b, nil
	}
	f, err := m.FloatArg(i)
	if err != nil {
		return false, err
	}
	return f != 0, nil
}

// FloatArgs returns every argument as a float64.
func (m *Message) FloatArgs() ([]float64, error) {
	vs := make([]float64, len(m.Arguments))
	for i := range m.Arguments {
		v, err := m.FloatArg(i)
		if err != nil {
			return nil, err
		}
		vs[i] = v
	}
	return vs, nil
}

// StringArgs returns every argument, each of which must be a string.
func (m *Message) StringArgs() ([]string, error) {
	vs := make([]string, len(m.Arguments))
	for i := range m.Arguments {
		v, err := m.StringArg(i)
		if err != nil {
			return nil, err
		}
		vs[i] = v
	}
	return vs, nil
}
