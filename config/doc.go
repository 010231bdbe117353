// Package config holds the routing configuration: the analog format, the clock offset and
// four send channels, each with geometry, colour adjustments and a four-curve LUT.
//
// Every leaf of the tree has an OSC address and a pair of accessors generated from
// defaults.json. A getter encodes the field as one OSC message into a caller buffer:
//
//	cfg := config.DefaultConfig()
//	buf := make([]byte, osc.MaxPacketSize)
//	n, err := cfg.GetSendLutY(buf, 0) // /send/0/lut/Y ,ffff...
//
// A setter stores a value, and Register binds the setters to a dispatcher so incoming
// messages update the configuration:
//
//	d := osc.NewDispatcher(logger)
//	if err := cfg.Register(d); err != nil {
//		return err
//	}
//	err = d.Dispatch(osc.NewMessage("/send/*/brightness", float32(0.75)))
//
// Indexes outside their array return ErrIndexOutOfRange, LUT setters given anything but
// 32 values return ErrLength.
package config

//go:generate go run ../cmd/oscgen --in defaults.json --out config_gen.go --package config --root Config --type send=SendChannel
