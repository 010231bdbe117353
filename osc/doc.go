// Copyright 2013 - 2015 Sebastian Ruml <sebastian.ruml@gmail.com>
// Copyright 2021 - 2022 Mendel Greenberg <mendel@chabad360.me>

//Package osc encodes, decodes and dispatches OpenSoundControl messages.
//
//This implementation is based on the Open Sound Control 1.0 Specification (http://opensoundcontrol.org/spec-1_0.html).
//It is transport independent: packets are written into and read from caller supplied byte slices.
//
//Features
//
//- Supports OSC messages with the following TypeTags:
//
//	'i' (int32)
//	'f' (float32)
//	's' (string)
//	'b' ([]byte)
//	't' (TimeTag)
//	'h' (int64)
//	'd' (float64)
//	'T' (true)
//	'F' (false)
//	'N' (nil)
//
//- Supports OSC bundles, including TimeTags
//
//- Full support for OSC Address matching and dispatching.
//
//Packets
//
//An OSC packet consists of its contents, a contiguous block of binary data.
//The size of an OSC packet is always 32-bit aligned.
//
//OSC packets come in two flavors:
//
//OSC Messages: An OSC message consists of an OSC address pattern and  zero or more OSC arguments.
//
//OSC Bundles: An OSC Bundle consists of an OSC Timetag, followed by zero or more OSC bundle elements.
//Each bundle element can be another OSC bundle (note this recursive definition: a bundle may contain bundles) or OSC message.
//
//Usage
//
//Writing a message into a buffer:
//  buf := make([]byte, 128)
//  n, err := osc.WriteMessage(buf, "/send/0/hue", "f", 0.25)
//
//Dispatching received data:
//  d := osc.NewDispatcher(logger)
//  d.AddMethodFunc("/send/0/hue", func(msg *osc.Message) error {
//      v, err := msg.FloatArg(0)
//      ...
//  })
//
//  packet, err := osc.ParsePacket(buf[:n])
//  err = d.Dispatch(packet)
package osc
