// Copyright © 2021 Optable Technologies Inc. All rights reserved.
// See LICENSE for details.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"

	"github.com/optable/bytesize/batch"
	"github.com/optable/bytesize/cli"
	"github.com/optable/bytesize/unit"
)

type appContext struct {
	logger       zerolog.Logger
	defaults     cli.Defaults
	defaultsPath string
}

// targetUnit resolves the conversion target: the explicit flag first, then
// the persisted default, then plain bytes.
func (app *appContext) targetUnit(flag string) (unit.Unit, error) {
	token := flag
	if token == "" {
		token = app.defaults.TargetUnit
	}
	if token == "" {
		token = "B"
	}
	return unit.ParseUnit(token)
}

type bytesCmd struct {
	Sizes []string `arg:"" help:"Sizes to materialize, e.g. '1.5 GiB'."`
}

func (c *bytesCmd) Run(app *appContext) error {
	for _, text := range c.Sizes {
		size, err := unit.Parse(text)
		if err != nil {
			return err
		}
		fmt.Println(size.Bytes().String())
	}
	return nil
}

type convertCmd struct {
	To    string   `short:"t" help:"Target unit token, e.g. 'MiB'. Defaults to the persisted default unit."`
	Sizes []string `arg:"" help:"Sizes to convert, e.g. '500 MB'."`
}

func (c *convertCmd) Run(app *appContext) error {
	target, err := app.targetUnit(c.To)
	if err != nil {
		return err
	}

	for _, text := range c.Sizes {
		size, err := unit.Parse(text)
		if err != nil {
			return err
		}
		converted, err := size.Convert(target)
		if err != nil {
			return err
		}
		fmt.Println(converted)
	}
	return nil
}

type batchCmd struct {
	To      string `short:"t" help:"Target unit token, e.g. 'MiB'. Defaults to the persisted default unit."`
	Workers int    `default:"4" help:"Concurrent conversion workers."`
}

func (c *batchCmd) Run(app *appContext) error {
	target, err := app.targetUnit(c.To)
	if err != nil {
		return err
	}

	app.logger.Debug().Str("target", target.String()).Int("workers", c.Workers).
		Msg("Converting sizes from stdin")

	sizes, err := batch.ConvertAll(batch.NewLineEntryReader(os.Stdin), target, c.Workers)
	if err != nil {
		return err
	}
	for _, size := range sizes {
		fmt.Println(size)
	}
	return nil
}

type unitsCmd struct{}

func (c *unitsCmd) Run(app *appContext) error {
	for _, u := range unit.Units() {
		standard := "-"
		switch {
		case u.IsSI():
			standard = "SI"
		case u.IsIEC():
			standard = "IEC"
		}
		fmt.Printf("%-4s %-11s %-4s %s\n", u, u.LongForm(), standard, u.Factor())
	}
	return nil
}

type defaultUnitCmd struct {
	Unit string `arg:"" optional:"" help:"Unit token to persist as the conversion default. Prints the current default when omitted."`
}

func (c *defaultUnitCmd) Run(app *appContext) error {
	if c.Unit == "" {
		if app.defaults.TargetUnit == "" {
			fmt.Println("B")
			return nil
		}
		fmt.Println(app.defaults.TargetUnit)
		return nil
	}

	u, err := unit.ParseUnit(c.Unit)
	if err != nil {
		return err
	}

	app.defaults.TargetUnit = u.String()
	if err := cli.SaveDefaults(app.defaultsPath, app.defaults); err != nil {
		return err
	}

	app.logger.Info().Str("unit", u.String()).Str("path", app.defaultsPath).
		Msg("Saved default unit")
	return nil
}

type rootCLI struct {
	cli.Profiling

	Verbose bool `short:"v" help:"Enable debug logging."`

	Bytes       bytesCmd       `cmd:"" help:"Print the exact byte count of sizes."`
	Convert     convertCmd     `cmd:"" help:"Convert sizes to another unit."`
	Batch       batchCmd       `cmd:"" help:"Convert newline-delimited sizes read from stdin."`
	Units       unitsCmd       `cmd:"" help:"List the known units, their standard and factor."`
	DefaultUnit defaultUnitCmd `cmd:"" name:"default-unit" help:"Show or persist the default conversion unit."`
}

func main() {
	os.Exit(run())
}

func run() int {
	root := &rootCLI{}
	ctx := kong.Parse(root,
		kong.Name("bytesize"),
		kong.Description("Exact byte size conversions between SI and IEC units."),
		kong.UsageOnError(),
	)

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if !root.Verbose {
		logger = logger.Level(zerolog.WarnLevel)
	}

	stopProfiling := root.Profiling.Start()
	defer stopProfiling()

	defaultsPath, err := cli.DefaultsPath()
	if err != nil {
		logger.Warn().Err(err).Msg("Cannot resolve the defaults file, preferences are disabled")
	}

	var defaults cli.Defaults
	if defaultsPath != "" {
		if defaults, err = cli.LoadDefaults(defaultsPath); err != nil {
			logger.Warn().Err(err).Msg("Ignoring unreadable defaults file")
			defaults = cli.Defaults{}
		}
	}

	app := &appContext{
		logger:       logger,
		defaults:     defaults,
		defaultsPath: defaultsPath,
	}

	if err := ctx.Run(app); err != nil {
		logger.Error().Err(err).Msg("Command failed")
		return 1
	}
	return 0
}
