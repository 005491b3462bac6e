package main

import (
	"context"
	"fmt"
	"io"

	"github.com/amp-labs/amp-arrays/array"
	"github.com/amp-labs/amp-arrays/envutil"
	"github.com/amp-labs/amp-arrays/errors"
	"github.com/amp-labs/amp-arrays/sorting"
	"github.com/amp-labs/amp-arrays/xform"
	"github.com/spf13/pflag"
)

const (
	envAlgorithm   = "ARRAYSORT_ALGORITHM"
	envGrowth      = "ARRAYSORT_GROWTH"
	envMaxCapacity = "ARRAYSORT_MAX_CAPACITY"
	envElement     = "ARRAYSORT_ELEMENT"

	elementInt    = "int"
	elementFloat  = "float"
	elementChar   = "char"
	elementString = "string"
)

var elementTypes = []string{elementInt, elementFloat, elementChar, elementString} //nolint:gochecknoglobals

type config struct {
	Algorithm   string
	Element     string
	Growth      array.GrowthPolicy
	MaxCapacity int
	Interactive bool
	Natural     bool
	Reverse     bool
	Color       bool
	Values      []string
}

// arrayOptions returns the options every array built for this run gets.
func (c config) arrayOptions() []array.Option {
	return []array.Option{
		array.WithGrowthPolicy(c.Growth),
		array.WithMaxCapacity(c.MaxCapacity),
	}
}

// parseConfig reads flags from args and fills anything not given on the
// command line from the environment (including --env-file). It returns the
// context to use from then on, with any env file layered in. Every invalid
// setting is reported, not just the first.
func parseConfig(ctx context.Context, args []string, stderr io.Writer) (context.Context, config, error) {
	flags := pflag.NewFlagSet("arraysort", pflag.ContinueOnError)
	flags.SetOutput(stderr)

	var (
		cfg    config
		growth string
		file   string
	)

	flags.StringVarP(&cfg.Algorithm, "algorithm", "a", sorting.BubbleName, "Sort algorithm: bubble, selection or insertion")
	flags.StringVarP(&cfg.Element, "element", "e", elementInt, "Element type: int, float, char or string")
	flags.StringVarP(&growth, "growth", "g", array.GrowDouble.String(), "Growth policy: double or one")
	flags.IntVar(&cfg.MaxCapacity, "max-capacity", 0, "Largest capacity the array may reach, 0 for no limit")
	flags.BoolVarP(&cfg.Interactive, "interactive", "i", false, "Pick the algorithm (and values, if none are given) interactively")
	flags.BoolVar(&cfg.Natural, "natural", false, "Sort strings in natural order (item2 before item10)")
	flags.BoolVar(&cfg.Reverse, "reverse", false, "Sort in descending order")
	flags.StringVar(&file, "env-file", "", "Read settings from a .env, .json or .yaml file")
	flags.BoolVar(&cfg.Color, "color", false, "Color error reports")

	if err := flags.Parse(args); err != nil {
		return ctx, cfg, err
	}

	cfg.Values = flags.Args()

	if file != "" {
		var err error

		ctx, err = envutil.WithEnvFile(ctx, file)
		if err != nil {
			return ctx, cfg, fmt.Errorf("loading env file: %w", err)
		}
	}

	var errs errors.Collection

	if !flags.Changed("algorithm") {
		alg, err := envutil.Enum(ctx, envAlgorithm, sorting.Names(), envutil.Default(cfg.Algorithm)).Value()
		errs.Add(err)

		if err == nil {
			cfg.Algorithm = alg
		}
	} else if _, err := sorting.Lookup(cfg.Algorithm, sorting.Natural[int]()); err != nil {
		errs.Add(err)
	}

	if !flags.Changed("element") {
		elem, err := envutil.Enum(ctx, envElement, elementTypes, envutil.Default(cfg.Element)).Value()
		errs.Add(err)

		if err == nil {
			cfg.Element = elem
		}
	} else if _, err := xform.OneOf(elementTypes...)(cfg.Element); err != nil {
		errs.Add(err)
	}

	if !flags.Changed("growth") {
		growth = envutil.String(ctx, envGrowth, envutil.Default(growth)).ValueOrElse(growth)
	}

	if policy, err := array.ParseGrowthPolicy(growth); err != nil {
		errs.Add(err)
	} else {
		cfg.Growth = policy
	}

	if !flags.Changed("max-capacity") {
		limit, err := envutil.Int[int](ctx, envMaxCapacity, envutil.Default(0)).Value()
		errs.Add(err)

		cfg.MaxCapacity = limit
	}

	if _, err := xform.NonNegative(cfg.MaxCapacity); err != nil {
		errs.Add(fmt.Errorf("max capacity: %w", err))
	}

	return ctx, cfg, errs.GetError()
}
