// Command oscconfig inspects the routing configuration through its OSC namespace: it lists
// the addresses, encodes every field as OSC messages, and applies incoming messages.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"

	"github.com/chabad360/oscconfig/config"
	"github.com/chabad360/oscconfig/internal/logging"
	"github.com/chabad360/oscconfig/osc"
)

func main() {
	app := kingpin.New("oscconfig", "Inspect and update the routing configuration over OSC")
	configFile := app.Flag("config", "YAML or JSON configuration file, defaults are used when empty").Short('c').Envar("OSCCONFIG_FILE").String()
	logLevel := app.Flag("log-level", "Log level").Default("info").Envar("OSCCONFIG_LOG_LEVEL").Enum("debug", "info", "warn", "error")

	addressesCmd := app.Command("addresses", "Print every OSC address with its type tags")

	dumpCmd := app.Command("dump", "Encode every field as an OSC message and print it")
	dumpBundle := dumpCmd.Flag("bundle", "Also write every message as one OSC bundle to this file").String()
	dumpBufferSize := dumpCmd.Flag("buffer-size", "Size of the encode buffer in bytes").Default(fmt.Sprint(osc.MaxPacketSize)).Int()

	applyCmd := app.Command("apply", "Apply an OSC message to the configuration and print the result as YAML")
	applyPacket := applyCmd.Flag("packet", "Binary OSC packet (message or bundle) to apply").ExistingFile()
	applyOut := applyCmd.Flag("out", "Write the resulting configuration to this file instead of stdout").String()
	applyAddress := applyCmd.Arg("address", "OSC address pattern, e.g. /send/*/brightness").String()
	applyValues := applyCmd.Arg("values", "Message arguments, typed by the addressed field").Strings()

	cmd := kingpin.MustParse(app.Parse(os.Args[1:]))

	logger, err := logging.New(*logLevel)
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer func() {
		_ = logger.Sync()
	}()

	cfg, err := config.Load(*configFile)
	if err != nil {
		logger.Fatal("failed to load configuration", zap.String("file", *configFile), zap.Error(err))
	}

	switch cmd {
	case addressesCmd.FullCommand():
		err = runAddresses(os.Stdout)
	case dumpCmd.FullCommand():
		err = runDump(cfg, dumpOptions{bundle: *dumpBundle, bufferSize: *dumpBufferSize}, os.Stdout, logger)
	case applyCmd.FullCommand():
		err = runApply(cfg, applyOptions{
			packet:  *applyPacket,
			out:     *applyOut,
			address: *applyAddress,
			values:  *applyValues,
		}, os.Stdout, logger)
	}
	if err != nil {
		logger.Fatal("command failed", zap.String("command", cmd), zap.Error(err))
	}
}
