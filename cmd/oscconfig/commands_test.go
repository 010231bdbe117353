package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"github.com/chabad360/oscconfig/config"
	"github.com/chabad360/oscconfig/osc"
)

func TestPatternFor(t *testing.T) {
	assert.Equal(t, "/clock_offset", patternFor(config.Field{Address: "/clock_offset"}))
	assert.Equal(t, "/send/[0-3]/lut/Y", patternFor(config.Field{Address: "/send/%d/lut/Y", Dims: []int{4}}))
	assert.Equal(t, "/a/[0-1]/b/[0-7]", patternFor(config.Field{Address: "/a/%d/b/%d", Dims: []int{2, 8}}))
}

func TestRunAddresses(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runAddresses(&out))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, len(config.Fields))
	assert.Regexp(t, `^/analog_format/resolution +,s$`, lines[0])
	assert.Regexp(t, `^/analog_format/color_matrix +,f x9$`, lines[3])
	assert.Regexp(t, `^/send/\[0-3\]/lut/B +,f x32$`, lines[len(lines)-1])
}

func TestRunDump(t *testing.T) {
	bundleFile := filepath.Join(t.TempDir(), "config.osc")
	core, logs := observer.New(zap.InfoLevel)

	var out bytes.Buffer
	err := runDump(config.DefaultConfig(), dumpOptions{bundle: bundleFile, bufferSize: osc.MaxPacketSize}, &out, zap.New(core))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 69)
	assert.True(t, strings.HasPrefix(lines[0], "/analog_format/resolution ,s 1920x1080"), lines[0])

	data, err := os.ReadFile(bundleFile)
	require.NoError(t, err)
	p, err := osc.ParsePacket(data)
	require.NoError(t, err)
	b, ok := p.(*osc.Bundle)
	require.True(t, ok)
	assert.Len(t, b.Elements, 69)

	require.Equal(t, 1, logs.FilterMessage("wrote bundle").Len())
}

func TestRunDumpErrors(t *testing.T) {
	logger := zaptest.NewLogger(t)
	var out bytes.Buffer

	assert.Error(t, runDump(config.DefaultConfig(), dumpOptions{bufferSize: 0}, &out, logger))
	assert.Error(t, runDump(config.DefaultConfig(), dumpOptions{bufferSize: 32}, &out, logger))
}

func TestConcreteAddresses(t *testing.T) {
	assert.Equal(t, []string{"/clock_offset"}, concreteAddresses(config.Field{Address: "/clock_offset"}))
	assert.Equal(t,
		[]string{"/a/0/b/0", "/a/0/b/1", "/a/1/b/0", "/a/1/b/1"},
		concreteAddresses(config.Field{Address: "/a/%d/b/%d", Dims: []int{2, 2}}))
}

func TestArgTags(t *testing.T) {
	assert.Equal(t, "s", argTags("/analog_format/resolution"))
	assert.Equal(t, "f", argTags("/send/*/hue"))
	assert.Equal(t, "f", argTags("/send/2/source"))
	assert.Equal(t, strings.Repeat("f", 32), argTags("/send/{0,1}/lut/Y"))
	assert.Empty(t, argTags("/nope"))
}

func TestMessageFromArgs(t *testing.T) {
	tests := []struct {
		name    string
		address string
		values  []string
		want    []interface{}
	}{
		{"unknown_address", "/x", []string{"0.5", "red", "3"}, []interface{}{float32(0.5), "red", float32(3)}},
		{"numeric_string", "/analog_format/resolution", []string{"720"}, []interface{}{"720"}},
		{"nan_string", "/analog_format/colourspace", []string{"nan"}, []interface{}{"nan"}},
		{"float_field", "/send/*/hue", []string{"0.25"}, []interface{}{float32(0.25)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, err := messageFromArgs(tt.address, tt.values)
			require.NoError(t, err)
			assert.Equal(t, tt.want, msg.Arguments)
		})
	}
}

func TestRunApply(t *testing.T) {
	cfg := config.DefaultConfig()

	var out bytes.Buffer
	err := runApply(cfg, applyOptions{address: "/send/*/hue", values: []string{"0.25"}}, &out, zaptest.NewLogger(t))
	require.NoError(t, err)
	for _, s := range cfg.Send {
		assert.Equal(t, 0.25, s.Hue)
	}
	assert.Contains(t, out.String(), "hue: 0.25")

	err = runApply(cfg, applyOptions{address: "/analog_format/resolution", values: []string{"720p"}}, &out, zaptest.NewLogger(t))
	require.NoError(t, err)
	assert.Equal(t, "720p", cfg.AnalogFormat.Resolution)

	err = runApply(cfg, applyOptions{address: "/analog_format/resolution", values: []string{"720"}}, &out, zaptest.NewLogger(t))
	require.NoError(t, err)
	assert.Equal(t, "720", cfg.AnalogFormat.Resolution)
}

func TestRunApplyPacket(t *testing.T) {
	dir := t.TempDir()
	packetFile := filepath.Join(dir, "in.osc")
	outFile := filepath.Join(dir, "out.yaml")

	b := osc.NewBundle(
		osc.NewMessage("/clock_offset", float32(0.5)),
		osc.NewMessage("/send/1/source", int32(4)),
	)
	data, err := b.MarshalBinary()
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(packetFile, data, 0o644))

	err = runApply(config.DefaultConfig(), applyOptions{packet: packetFile, out: outFile}, nil, zaptest.NewLogger(t))
	require.NoError(t, err)

	cfg, err := config.Load(outFile)
	require.NoError(t, err)
	assert.Equal(t, 0.5, cfg.ClockOffset)
	assert.Equal(t, 4, cfg.Send[1].Source)
}

func TestRunApplyErrors(t *testing.T) {
	logger := zaptest.NewLogger(t)
	dir := t.TempDir()
	var out bytes.Buffer

	assert.Error(t, runApply(config.DefaultConfig(), applyOptions{}, &out, logger))
	assert.ErrorIs(t, runApply(config.DefaultConfig(), applyOptions{address: "/nope"}, &out, logger), osc.ErrNoMethod)
	assert.ErrorIs(t, runApply(config.DefaultConfig(), applyOptions{address: "/send/0/lut/Y", values: []string{"1"}}, &out, logger), config.ErrLength)

	bad := filepath.Join(dir, "bad.osc")
	require.NoError(t, os.WriteFile(bad, []byte("not osc"), 0o644))
	assert.Error(t, runApply(config.DefaultConfig(), applyOptions{packet: bad}, &out, logger))
	assert.Empty(t, out.String())
}
