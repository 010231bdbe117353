package osc

import (
	"errors"
	"reflect"
	"testing"
)

func TestMessage_FloatArg(t *testing.T) {
	msg := NewMessage("/a", float32(0.5), 0.25, int32(3), int64(4), "x")
	for i, want := range []float64{0.5, 0.25, 3, 4} {
		got, err := msg.FloatArg(i)
		if err != nil || got != want {
			t.Errorf("FloatArg(%d) = %v, %v, want %v", i, got, err, want)
		}
	}
	if _, err := msg.FloatArg(4); !errors.Is(err, ErrArgumentType) {
		t.Errorf("FloatArg(4) error = %v, want ErrArgumentType", err)
	}
	if _, err := msg.FloatArg(5); !errors.Is(err, ErrArgumentCount) {
		t.Errorf("FloatArg(5) error = %v, want ErrArgumentCount", err)
	}
	if _, err := msg.FloatArg(-1); !errors.Is(err, ErrArgumentCount) {
		t.Errorf("FloatArg(-1) error = %v, want ErrArgumentCount", err)
	}
}

func TestMessage_StringArg(t *testing.T) {
	msg := NewMessage("/a", "RGB", float32(1))
	if got, err := msg.StringArg(0); err != nil || got != "RGB" {
		t.Errorf("StringArg(0) = %q, %v", got, err)
	}
	if _, err := msg.StringArg(1); !errors.Is(err, ErrArgumentType) {
		t.Errorf("StringArg(1) error = %v, want ErrArgumentType", err)
	}
}

func TestMessage_BoolArg(t *testing.T) {
	msg := NewMessage("/a", true, false, float32(1), int32(0), "x")
	for i, want := range []bool{true, false, true, false} {
		got, err := msg.BoolArg(i)
		if err != nil || got != want {
			t.Errorf("BoolArg(%d) = %v, %v, want %v", i, got, err, want)
		}
	}
	if _, err := msg.BoolArg(4); !errors.Is(err, ErrArgumentType) {
		t.Errorf("BoolArg(4) error = %v, want ErrArgumentType", err)
	}
}

func TestMessage_FloatArgs(t *testing.T) {
	got, err := NewMessage("/a", float32(1), int32(2), 3.5).FloatArgs()
	if err != nil {
		t.Fatalf("FloatArgs() error = %v", err)
	}
	if want := []float64{1, 2, 3.5}; !reflect.DeepEqual(got, want) {
		t.Errorf("FloatArgs() = %v, want %v", got, want)
	}

	if _, err := NewMessage("/a", float32(1), "x").FloatArgs(); !errors.Is(err, ErrArgumentType) {
		t.Errorf("FloatArgs() error = %v, want ErrArgumentType", err)
	}
}

func TestMessage_StringArgs(t *testing.T) {
	got, err := NewMessage("/a", "x", "y").StringArgs()
	if err != nil || !reflect.DeepEqual(got, []string{"x", "y"}) {
		t.Errorf("StringArgs() = %v, %v", got, err)
	}
	if _, err := NewMessage("/a", "x", true).StringArgs(); !errors.Is(err, ErrArgumentType) {
		t.Errorf("StringArgs() error = %v, want ErrArgumentType", err)
	}
}
