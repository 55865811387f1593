package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"reflect"
	"slices"

	"github.com/jessevdk/go-flags"
	"github.com/lestrrat-go/gdtf"
	"github.com/lestrrat-go/gdtf/deparse"
	"github.com/lestrrat-go/gdtf/internal/export"
	"github.com/pkg/errors"
)

type cmdopts struct {
	Config    string `long:"config" description:"read defaults from a YAML file"`
	Format    string `long:"format" description:"output format: summary, xml, yaml, json, cbor or dump"`
	Strict    bool   `long:"strict" description:"validate names and references"`
	RoundTrip bool   `long:"roundtrip" description:"check that the description survives marshal and re-parse"`
	Verbose   bool   `long:"verbose" description:"trace the parse on stderr"`
	Version   bool   `long:"version" description:"display the version of the GDTF library used"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func showVersion(w io.Writer) {
	fmt.Fprintf(w, "gdtf-lint: using gdtf version %s\n", gdtf.Version)
}

func showUsage(w io.Writer) {
	fmt.Fprintf(w, `Usage : gdtf-lint [options] FILES ...
	Parse GDTF archives or description.xml files and output the result
	--format FORMAT : summary (default), xml, yaml, json, cbor or dump
	--strict : validate names and references, falling back to lenient parsing
	--roundtrip : marshal and re-parse, reporting any difference
	--config FILE : read defaults from a YAML file
	--verbose : trace the parse on stderr
	--version : display the version of the GDTF library used
`)
}

// isTerminal reports whether r is an interactive terminal.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

type input struct {
	name string
	data []byte
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var opts cmdopts
	args, err := flags.NewParser(&opts, flags.None).ParseArgs(args)
	if err != nil {
		fmt.Fprintf(stderr, "gdtf-lint: %s\n", err)
		showUsage(stderr)
		return 1
	}

	if opts.Version {
		showVersion(stdout)
		return 0
	}

	cfg, err := resolveConfig(opts)
	if err != nil {
		fmt.Fprintf(stderr, "gdtf-lint: %s\n", err)
		return 1
	}

	var inputs []input
	switch {
	case len(args) > 0:
		for _, f := range args {
			data, err := os.ReadFile(f)
			if err != nil {
				fmt.Fprintf(stderr, "gdtf-lint: %s\n", err)
				return 1
			}
			inputs = append(inputs, input{name: f, data: data})
		}
	case !isTerminal(stdin):
		data, err := io.ReadAll(stdin)
		if err != nil {
			fmt.Fprintf(stderr, "gdtf-lint: %s\n", err)
			return 1
		}
		inputs = append(inputs, input{name: "-", data: data})
	default:
		showUsage(stderr)
		return 1
	}

	ctx := context.Background()
	if cfg.Verbose {
		logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		ctx = gdtf.WithTraceLogger(ctx, logger)
	}

	status := 0
	for _, in := range inputs {
		if err := lint(ctx, cfg, in, stdout, stderr); err != nil {
			fmt.Fprintf(stderr, "gdtf-lint: %s: %s\n", in.name, err)
			status = 1
		}
	}
	return status
}

func parse(ctx context.Context, data []byte, options ...gdtf.Option) (*gdtf.GDTF, error) {
	if bytes.HasPrefix(data, []byte("PK\x03\x04")) {
		return gdtf.ParseArchive(ctx, bytes.NewReader(data), int64(len(data)), options...)
	}
	return gdtf.Parse(ctx, data, options...)
}

func lint(ctx context.Context, cfg config, in input, stdout, stderr io.Writer) error {
	doc, err := parse(ctx, in.data, gdtf.WithStrictNames(cfg.Strict))
	if cfg.Strict && errors.Is(err, deparse.ErrInvalidIdentifier) {
		fmt.Fprintf(stderr, "gdtf-lint: %s: warning: %s; parsing without strict names\n", in.name, err)
		doc, err = parse(ctx, in.data)
	}
	if err != nil {
		return err
	}

	if cfg.RoundTrip {
		if err := checkRoundTrip(ctx, doc); err != nil {
			return err
		}
		fmt.Fprintf(stderr, "gdtf-lint: %s: round trip ok\n", in.name)
	}

	switch cfg.Format {
	case formatSummary:
		summarize(stdout, doc)
		return nil
	case formatXML:
		out, err := gdtf.Marshal(doc)
		if err != nil {
			return err
		}
		_, err = stdout.Write(out)
		return err
	}
	return export.Write(stdout, export.Format(cfg.Format), doc)
}

func checkRoundTrip(ctx context.Context, doc *gdtf.GDTF) error {
	out, err := gdtf.Marshal(doc)
	if err != nil {
		return errors.Wrap(err, `round trip: failed to marshal`)
	}
	again, err := gdtf.Parse(ctx, out)
	if err != nil {
		return errors.Wrap(err, `round trip: failed to re-parse`)
	}
	if !reflect.DeepEqual(doc, again) {
		return errors.New(`round trip: re-parsed description differs`)
	}
	return nil
}

func summarize(w io.Writer, doc *gdtf.GDTF) {
	ft := doc.FixtureType
	fmt.Fprintf(w, "%s (%s)\n", ft.Name, ft.Manufacturer)
	fmt.Fprintf(w, "  DataVersion: %s\n", doc.DataVersion)
	fmt.Fprintf(w, "  FixtureTypeID: %s\n", ft.FixtureTypeID)
	if ft.RefFT != nil {
		fmt.Fprintf(w, "  RefFT: %s\n", *ft.RefFT)
	}
	fmt.Fprintf(w, "  Attributes: %d\n", len(ft.AttributeDefinitions.Attributes))
	fmt.Fprintf(w, "  DMX modes: %d\n", len(ft.DmxModes))
	for _, name := range slices.Sorted(maps.Keys(ft.DmxModes)) {
		fmt.Fprintf(w, "    %s: %d channels\n", name, len(ft.DmxModes[name].DmxChannels))
	}
}
