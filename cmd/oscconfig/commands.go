package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"go.uber.org/zap"

	"github.com/chabad360/oscconfig/config"
	"github.com/chabad360/oscconfig/osc"
)

// patternFor turns an address with %d placeholders into an OSC pattern matching every
// index, e.g. /send/%d/hue with dims [4] becomes /send/[0-3]/hue.
func patternFor(f config.Field) string {
	args := make([]interface{}, len(f.Dims))
	for i, n := range f.Dims {
		args[i] = fmt.Sprintf("[0-%d]", n-1)
	}
	return fmt.Sprintf(strings.ReplaceAll(f.Address, "%d", "%s"), args...)
}

func runAddresses(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, f := range config.Fields {
		tags := f.TypeTags
		if len(tags) > 4 {
			tags = fmt.Sprintf("%c x%d", tags[0], len(tags))
		}
		fmt.Fprintf(tw, "%s\t,%s\n", patternFor(f), tags)
	}
	return tw.Flush()
}

type dumpOptions struct {
	bundle     string
	bufferSize int
}

func runDump(cfg *config.Config, opts dumpOptions, w io.Writer, logger *zap.Logger) error {
	if opts.bufferSize <= 0 {
		return fmt.Errorf("buffer size must be positive, got %d", opts.bufferSize)
	}
	buf := make([]byte, opts.bufferSize)

	var bundle *osc.Bundle
	if opts.bundle != "" {
		bundle = osc.NewBundle()
	}

	count := 0
	err := cfg.SyncAll(buf, func(b []byte) error {
		msg, err := osc.NewMessageFromData(b)
		if err != nil {
			return err
		}
		count++
		if _, err := fmt.Fprintln(w, msg); err != nil {
			return err
		}
		if bundle != nil {
			return bundle.Append(msg)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	if bundle != nil {
		data, err := bundle.MarshalBinary()
		if err != nil {
			return fmt.Errorf("encode bundle: %w", err)
		}
		if err := os.WriteFile(opts.bundle, data, 0o644); err != nil {
			return fmt.Errorf("write bundle: %w", err)
		}
		logger.Info("wrote bundle", zap.String("file", opts.bundle), zap.Int("bytes", len(data)))
	}

	logger.Debug("encoded config", zap.Int("messages", count))
	return nil
}

type applyOptions struct {
	packet  string
	out     string
	address string
	values  []string
}

// concreteAddresses expands f into one address per index combination.
func concreteAddresses(f config.Field) []string {
	addrs := []string{f.Address}
	for _, n := range f.Dims {
		next := make([]string, 0, len(addrs)*n)
		for _, a := range addrs {
			i := strings.Index(a, "%d")
			for idx := range n {
				next = append(next, a[:i]+strconv.Itoa(idx)+a[i+2:])
			}
		}
		addrs = next
	}
	return addrs
}

// argTags returns the type tags of the first field with an address the pattern matches,
// or "" when nothing matches.
func argTags(pattern string) string {
	msg := osc.NewMessage(pattern)
	for _, f := range config.Fields {
		for _, addr := range concreteAddresses(f) {
			if msg.Match(addr) {
				return f.TypeTags
			}
		}
	}
	return ""
}

// messageFromArgs builds a message from command line arguments. Each value is typed by the
// tag the addressed field expects: strings stay strings, T and F take a boolean. Otherwise
// values that parse as numbers become float32 arguments and the rest strings.
func messageFromArgs(address string, values []string) (*osc.Message, error) {
	tags := argTags(address)
	msg := osc.NewMessage(address)
	for i, v := range values {
		var tag byte
		if i < len(tags) {
			tag = tags[i]
		}

		var arg interface{} = v
		switch osc.TypeTag(tag) {
		case osc.TypeString:
		case osc.TypeTrue, osc.TypeFalse:
			if b, err := strconv.ParseBool(v); err == nil {
				arg = b
			}
		default:
			if f, err := strconv.ParseFloat(v, 32); err == nil {
				arg = float32(f)
			}
		}
		if err := msg.Append(arg); err != nil {
			return nil, err
		}
	}
	return msg, nil
}

func runApply(cfg *config.Config, opts applyOptions, w io.Writer, logger *zap.Logger) error {
	var (
		packet osc.Packet
		err    error
	)
	switch {
	case opts.packet != "":
		data, err := os.ReadFile(opts.packet)
		if err != nil {
			return fmt.Errorf("read packet: %w", err)
		}
		if packet, err = osc.ParsePacket(data); err != nil {
			return fmt.Errorf("parse packet: %w", err)
		}
	case opts.address != "":
		if packet, err = messageFromArgs(opts.address, opts.values); err != nil {
			return err
		}
	default:
		return errors.New("apply needs --packet or an address")
	}

	d := osc.NewDispatcher(logger)
	if err := cfg.Register(d); err != nil {
		return fmt.Errorf("register config: %w", err)
	}
	if err := d.Dispatch(packet); err != nil {
		return fmt.Errorf("apply: %w", err)
	}

	if opts.out == "" {
		return cfg.Save(w)
	}

	f, err := os.Create(opts.out)
	if err != nil {
		return fmt.Errorf("create %s: %w", opts.out, err)
	}
	if err := cfg.Save(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	logger.Info("saved config", zap.String("file", opts.out))
	return nil
}
