// Command oscgen generates a Go configuration struct, its defaults and its OSC accessors
// from a JSON or YAML defaults document.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"

	"github.com/chabad360/oscconfig/internal/gen"
	"github.com/chabad360/oscconfig/internal/logging"
	"github.com/chabad360/oscconfig/internal/schema"
)

type options struct {
	in        string
	out       string
	pkg       string
	root      string
	types     map[string]string
	oscImport string
}

func main() {
	app := kingpin.New("oscgen", "Generate a configuration struct with OSC getters and setters from a defaults document")
	in := app.Flag("in", "Defaults document (JSON or YAML)").Required().ExistingFile()
	out := app.Flag("out", "Output Go file, - for stdout").Default("-").String()
	pkg := app.Flag("package", "Package name of the generated file").Default("config").String()
	root := app.Flag("root", "Type name of the document root").Default("Config").String()
	types := app.Flag("type", "Rename the struct found under a key, as key=Name (repeatable)").StringMap()
	oscImport := app.Flag("osc-import", "Import path of the osc package").Default(gen.DefaultOSCImport).String()
	logLevel := app.Flag("log-level", "Log level").Default("info").Envar("OSCGEN_LOG_LEVEL").Enum("debug", "info", "warn", "error")

	kingpin.MustParse(app.Parse(os.Args[1:]))

	logger, err := logging.New(*logLevel)
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer func() {
		_ = logger.Sync()
	}()

	opts := options{
		in:        *in,
		out:       *out,
		pkg:       *pkg,
		root:      *root,
		types:     *types,
		oscImport: *oscImport,
	}
	if err := run(opts, os.Stdout, logger); err != nil {
		logger.Fatal("generation failed", zap.String("in", opts.in), zap.Error(err))
	}
}

func run(opts options, stdout io.Writer, logger *zap.Logger) error {
	data, err := os.ReadFile(opts.in)
	if err != nil {
		return fmt.Errorf("read document: %w", err)
	}

	root, err := schema.Parse(data, schema.Options{RootName: opts.root, TypeNames: opts.types})
	if err != nil {
		return err
	}

	src, err := gen.Generate(root, gen.Options{
		Package:   opts.pkg,
		Source:    filepath.Base(opts.in),
		OSCImport: opts.oscImport,
	})
	if err != nil {
		return err
	}

	if opts.out == "-" {
		_, err = stdout.Write(src)
		return err
	}
	if err := os.WriteFile(opts.out, src, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", opts.out, err)
	}
	logger.Info("generated accessors",
		zap.String("in", opts.in),
		zap.String("out", opts.out),
		zap.String("type", root.TypeName),
		zap.Int("bytes", len(src)))
	return nil
}
