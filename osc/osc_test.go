package osc

type testCase struct {
	name    string
	obj     Packet
	raw     []byte
	wantErr bool
}

var messageTestCases = []testCase{
	{
		"no_arguments",
		NewMessage("/a"),
		[]byte("/a\x00\x00,\x00\x00\x00"),
		false,
	},
	{
		"int_and_string",
		NewMessage("/address", int32(1), "hello"),
		[]byte("/address\x00\x00\x00\x00,is\x00\x00\x00\x00\x01hello\x00\x00\x00"),
		false,
	},
	{
		"float32",
		NewMessage("/f", float32(0.5)),
		[]byte("/f\x00\x00,f\x00\x00\x3f\x00\x00\x00"),
		false,
	},
	{
		"true_false_nil",
		NewMessage("/b", true, false, nil),
		[]byte("/b\x00\x00,TFN\x00\x00\x00\x00"),
		false,
	},
	{
		"blob",
		NewMessage("/blob", []byte{1, 2, 3}),
		[]byte("/blob\x00\x00\x00,b\x00\x00\x00\x00\x00\x03\x01\x02\x03\x00"),
		false,
	},
	{
		"double_and_int64",
		NewMessage("/d", float64(1), int64(-1)),
		[]byte("/d\x00\x00,dh\x00\x3f\xf0\x00\x00\x00\x00\x00\x00\xff\xff\xff\xff\xff\xff\xff\xff"),
		false,
	},
	{
		"timetag",
		NewMessage("/t", Timetag(1)),
		[]byte("/t\x00\x00,t\x00\x00\x00\x00\x00\x00\x00\x00\x00\x01"),
		false,
	},
}

var bundleTestCases = []testCase{
	{
		"empty",
		&Bundle{Timetag: 1},
		[]byte("#bundle\x00\x00\x00\x00\x00\x00\x00\x00\x01"),
		false,
	},
	{
		"one_message",
		&Bundle{Timetag: 1, Elements: []Packet{NewMessage("/a")}},
		[]byte("#bundle\x00\x00\x00\x00\x00\x00\x00\x00\x01\x00\x00\x00\x08/a\x00\x00,\x00\x00\x00"),
		false,
	},
	{
		"nested",
		&Bundle{Timetag: 1, Elements: []Packet{
			NewMessage("/f", float32(0.5)),
			&Bundle{Timetag: 1},
		}},
		[]byte("#bundle\x00\x00\x00\x00\x00\x00\x00\x00\x01" +
			"\x00\x00\x00\x0c/f\x00\x00,f\x00\x00\x3f\x00\x00\x00" +
			"\x00\x00\x00\x10#bundle\x00\x00\x00\x00\x00\x00\x00\x00\x01"),
		false,
	},
}
