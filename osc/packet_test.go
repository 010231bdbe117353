package osc

import (
	"bytes"
	"errors"
	"reflect"
	"testing"
)

var temp = &Message{Address: "/send/0/lut/Y", Arguments: []interface{}{float32(0.123456789), "hello world"}}
var msg, _ = temp.MarshalBinary()

func BenchmarkParsePacket(b *testing.B) {
	b.ResetTimer()
	b.ReportAllocs()
	var p Packet
	for n := 0; n < b.N; n++ {
		p, _ = parsePacket(msg)
	}
	result = p
}

func TestParsePacket(t *testing.T) {
	tests := []testCase{}
	tests = append(tests, messageTestCases...)
	tests = append(tests, bundleTestCases...)
	tests = append(tests,
		testCase{"empty", nil, []byte{}, true},
		testCase{"garbage", nil, []byte("abcd"), true},
	)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePacket(tt.raw)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParsePacket() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				return
			}
			if !reflect.DeepEqual(got, tt.obj) {
				t.Errorf("ParsePacket() got = %v, want %v", got, tt.obj)
			}
		})
	}
}

func TestParsePacketDoesNotAlias(t *testing.T) {
	raw, _ := NewMessage("/s", "abc").MarshalBinary()
	p, err := ParsePacket(raw)
	if err != nil {
		t.Fatalf("ParsePacket() error = %v", err)
	}
	raw[4] = 'x'
	raw[8] = 'x'
	if got := p.(*Message); got.Address != "/s" || got.Arguments[0] != "abc" {
		t.Errorf("parsed message changed with its source buffer: %v", got)
	}
}

func TestParsePacketTooLarge(t *testing.T) {
	msgRaw := append([]byte("/a\x00\x00,s\x00\x00"), bytes.Repeat([]byte("x"), 70000)...)
	msgRaw = append(msgRaw, 0, 0, 0, 0)
	bundleRaw := append([]byte("#bundle\x00\x00\x00\x00\x00\x00\x00\x00\x01"), msgRaw...)

	if _, err := ParsePacket(msgRaw); !errors.Is(err, ErrPacketTooLarge) {
		t.Errorf("ParsePacket() error = %v, want ErrPacketTooLarge", err)
	}
	if err := new(Message).UnmarshalBinary(msgRaw); !errors.Is(err, ErrPacketTooLarge) {
		t.Errorf("Message.UnmarshalBinary() error = %v, want ErrPacketTooLarge", err)
	}
	if err := new(Bundle).UnmarshalBinary(bundleRaw); !errors.Is(err, ErrPacketTooLarge) {
		t.Errorf("Bundle.UnmarshalBinary() error = %v, want ErrPacketTooLarge", err)
	}

	fits := append([]byte("/a\x00\x00,s\x00\x00"), bytes.Repeat([]byte("x"), MaxPacketSize-15)...)
	fits = append(fits, 0, 0, 0, 0)
	if _, err := ParsePacket(fits); err != nil {
		t.Errorf("ParsePacket() of %d bytes error = %v", len(fits), err)
	}
}

func FuzzParsePacket(f *testing.F) {
	for _, tc := range bundleTestCases {
		f.Add(tc.raw)
	}
	for _, tc := range messageTestCases {
		f.Add(tc.raw)
	}
	f.Fuzz(func(t *testing.T, data []byte) {
		packet, err := ParsePacket(data)
		if err != nil {
			return
		}

		dataNew, err := packet.MarshalBinary()
		if err != nil {
			t.Fatalf("MarshalBinary(): err != nil on parsed packet %#v: %v", packet, err)
		}

		packet, err = ParsePacket(dataNew)
		if err != nil {
			t.Fatalf("ParsePacket(): err != nil on marshaled packet %#v: %v", packet, err)
		}

		dataNew2, err := packet.MarshalBinary()
		if err != nil {
			t.Fatalf("MarshalBinary(): err != nil on double-parsed packet %#v: %v", packet, err)
		}

		if !reflect.DeepEqual(dataNew, dataNew2) {
			t.Fatalf("dataNew != dataNew2: dataNew: %s %v\ndataNew2: %s %v\npacket: %v\n", dataNew, dataNew, dataNew2, dataNew2, packet)
		}
	})
}
