package osc

import (
	"errors"
	"reflect"
	"testing"
)

func TestMessage_Append(t *testing.T) {
	oscAddress := "/address"
	message := NewMessage(oscAddress)

	message.Append("string argument")
	message.Append(int32(123456789))
	message.Append(true)

	if len(message.Arguments) != 3 {
		t.Errorf("Number of arguments should be %d and is %d", 3, len(message.Arguments))
	}

	if err := message.Append(42); err == nil {
		t.Errorf("Append(int) should fail, int has no OSC type tag")
	}
	if len(message.Arguments) != 3 {
		t.Errorf("failed Append must not change the arguments, got %d", len(message.Arguments))
	}
}

func TestOscMessageMatch(t *testing.T) {
	tc := []struct {
		desc        string
		addr        string
		addrPattern string
		want        bool
	}{
		{
			"match every two part address",
			"/*/*",
			"/a/b",
			true,
		},
		{
			"star stays inside one part",
			"/*",
			"/a/b",
			false,
		},
		{
			"don't match",
			"/a/b",
			"/a",
			false,
		},
		{
			"match alternatives",
			"/a/{foo,bar}",
			"/a/foo",
			true,
		},
		{
			"don't match if address is not part of the alternatives",
			"/a/{foo,bar}",
			"/a/bob",
			false,
		},
		{
			"character class",
			"/send/[0-3]/hue",
			"/send/2/hue",
			true,
		},
		{
			"negated character class",
			"/send/[!0-3]/hue",
			"/send/2/hue",
			false,
		},
	}

	for _, tt := range tc {
		msg := NewMessage(tt.addr)

		got := msg.Match(tt.addrPattern)
		if got != tt.want {
			t.Errorf("%s: msg.Match('%s') = '%t', want = '%t'", tt.desc, tt.addrPattern, got, tt.want)
		}
	}
}

func TestMessage_TypeTags(t *testing.T) {
	msg := NewMessage("/a", int32(1), float32(2), "s", []byte{}, true, nil)
	got, err := msg.TypeTags()
	if err != nil {
		t.Fatalf("TypeTags() error = %v", err)
	}
	if want := ",ifsbTN"; got != want {
		t.Errorf("TypeTags() = %q, want %q", got, want)
	}

	if _, err := NewMessage("/a", 1).TypeTags(); err == nil {
		t.Errorf("TypeTags() should fail for an int argument")
	}
}

func TestMessage_String(t *testing.T) {
	msg := NewMessage("/send/0/hue", float32(0.25), "RGB", true, nil)
	if got, want := msg.String(), "/send/0/hue ,fsTN 0.25 RGB true Nil"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestMessage_MarshalBinary(t *testing.T) {
	for _, tt := range messageTestCases {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.obj.MarshalBinary()
			if (err != nil) != tt.wantErr {
				t.Errorf("MarshalBinary() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !reflect.DeepEqual(got, tt.raw) {
				t.Errorf("MarshalBinary() got = %q, want %q", got, tt.raw)
			}
		})
	}
}

func TestMessage_MarshalTo(t *testing.T) {
	for _, tt := range messageTestCases {
		t.Run(tt.name, func(t *testing.T) {
			// Dirty buffer: padding must be written, not assumed.
			buf := make([]byte, 128)
			for i := range buf {
				buf[i] = 0xAA
			}

			n, err := tt.obj.MarshalTo(buf)
			if err != nil {
				t.Fatalf("MarshalTo() error = %v", err)
			}
			if !reflect.DeepEqual(buf[:n], tt.raw) {
				t.Errorf("MarshalTo() got = %q, want %q", buf[:n], tt.raw)
			}
		})
	}
}

func TestMessage_MarshalToShortBuffer(t *testing.T) {
	msg := NewMessage("/address", int32(1), "hello")
	buf := make([]byte, 27)
	if _, err := msg.MarshalTo(buf); !errors.Is(err, ErrShortBuffer) {
		t.Errorf("MarshalTo() error = %v, want ErrShortBuffer", err)
	}
}

func TestMessage_MarshalTooLarge(t *testing.T) {
	msg := NewMessage("/big", make([]byte, MaxPacketSize))
	if _, err := msg.MarshalBinary(); !errors.Is(err, ErrPacketTooLarge) {
		t.Errorf("MarshalBinary() error = %v, want ErrPacketTooLarge", err)
	}
}

func TestMessage_MarshalNUL(t *testing.T) {
	buf := make([]byte, 64)
	if _, err := NewMessage("/r", "ab\x00cd").MarshalTo(buf); !errors.Is(err, ErrArgumentType) {
		t.Errorf("MarshalTo() error = %v, want ErrArgumentType", err)
	}
	if _, err := NewMessage("/r\x00x").MarshalBinary(); err == nil {
		t.Errorf("MarshalBinary() with NUL in the address should fail")
	}
	if _, err := NewBundle(NewMessage("/r", "a\x00")).MarshalBinary(); !errors.Is(err, ErrArgumentType) {
		t.Errorf("Bundle.MarshalBinary() error = %v, want ErrArgumentType", err)
	}
}

func TestMessage_UnmarshalBinary(t *testing.T) {
	for _, tt := range messageTestCases {
		t.Run(tt.name, func(t *testing.T) {
			m := new(Message)
			if err := m.UnmarshalBinary(tt.raw); (err != nil) != tt.wantErr {
				t.Errorf("UnmarshalBinary() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !reflect.DeepEqual(m, tt.obj) {
				t.Errorf("UnmarshalBinary() got = %v, want %v", m, tt.obj)
			}
		})
	}
}

func TestMessage_UnmarshalBinaryInvalid(t *testing.T) {
	tests := []struct {
		name string
		raw  []byte
	}{
		{"empty", []byte{}},
		{"no_slash", []byte("abc\x00")},
		{"not_aligned", []byte("/a\x00")},
		{"bad_typetag", []byte("/a\x00\x00x\x00\x00\x00")},
		{"unknown_tag", []byte("/a\x00\x00,z\x00\x00")},
		{"missing_payload", []byte("/a\x00\x00,i\x00\x00")},
		{"trailing_bytes", []byte("/a\x00\x00,\x00\x00\x00\x00\x00\x00\x01")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := new(Message).UnmarshalBinary(tt.raw); err == nil {
				t.Errorf("UnmarshalBinary(%q) should fail", tt.raw)
			}
		})
	}
}

var result interface{}

func BenchmarkMessageMarshalBinary(b *testing.B) {
	var buf []byte
	b.ReportAllocs()
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		buf, _ = temp.MarshalBinary()
	}
	result = buf
}

func BenchmarkMessageMarshalTo(b *testing.B) {
	buf := make([]byte, 256)
	b.ReportAllocs()
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		_, _ = temp.MarshalTo(buf)
	}
	result = buf
}
