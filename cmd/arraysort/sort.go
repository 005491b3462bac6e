package main

import (
	"context"
	"fmt"
	"io"

	"github.com/amp-labs/amp-arrays/array"
	"github.com/amp-labs/amp-arrays/errors"
	"github.com/amp-labs/amp-arrays/logger"
	"github.com/amp-labs/amp-arrays/sorting"
	"github.com/amp-labs/amp-arrays/xform"
)

// sortValues dispatches on the configured element type.
func sortValues(ctx context.Context, cfg config, out io.Writer) error {
	switch cfg.Element {
	case elementInt:
		return sortAndPrint(ctx, cfg, xform.Int, sorting.Natural[int](), plain[int], out)
	case elementFloat:
		return sortAndPrint(ctx, cfg, xform.Float32, sorting.Natural[float32](), plain[float32], out)
	case elementChar:
		return sortAndPrint(ctx, cfg, xform.Char, sorting.Natural[byte](), formatChar, out)
	case elementString:
		less := sorting.Natural[string]()
		if cfg.Natural {
			less = sorting.NaturalStrings()
		}

		return sortAndPrint(ctx, cfg, identity, less, plain[string], out)
	default:
		return fmt.Errorf("%w: element type %q", errors.ErrInvalidInput, cfg.Element)
	}
}

// sortAndPrint parses every value, pushes it onto a new array, sorts the
// array and prints one "(index): value" line per element.
func sortAndPrint[T any](
	ctx context.Context,
	cfg config,
	parse func(string) (T, error),
	less sorting.Less[T],
	format func(T) string,
	out io.Writer,
) error {
	arr, err := buildArray(cfg, parse)
	if err != nil {
		return err
	}

	defer arr.Release()

	if cfg.Reverse {
		less = sorting.Reverse(less)
	}

	algorithm, err := sorting.Lookup(cfg.Algorithm, less)
	if err != nil {
		return err
	}

	logger.Get(ctx).Debug("sorting",
		"algorithm", cfg.Algorithm, "element", cfg.Element,
		"elements", arr.Len(), "capacity", arr.Cap(), "growth", cfg.Growth.String())

	sorted, err := sorting.NewEngine(cfg.Algorithm, algorithm).Sort(ctx, arr)
	if err != nil {
		return err
	}

	defer sorted.Release()

	var writeErr error

	sorted.ForEach(func(v T, i int, _ *array.Array[T]) {
		if writeErr != nil {
			return
		}

		_, writeErr = fmt.Fprintf(out, "(%d): %s\n", i, format(v))
	})

	return writeErr
}

// buildArray pushes each parsed value onto an empty array. Values that
// don't parse are all collected before giving up.
func buildArray[T any](cfg config, parse func(string) (T, error)) (*array.Array[T], error) {
	arr, err := array.New[T](0, cfg.arrayOptions()...)
	if err != nil {
		return nil, err
	}

	var errs errors.Collection

	for _, raw := range cfg.Values {
		v, err := parse(raw)
		if err != nil {
			errs.Add(fmt.Errorf("%w: %q is not a valid %s: %v", errors.ErrInvalidInput, raw, cfg.Element, err))

			continue
		}

		if err := arr.Push(v); err != nil {
			return nil, err
		}
	}

	if errs.HasError() {
		return nil, errs.GetError()
	}

	return arr, nil
}

func identity(s string) (string, error) {
	return s, nil
}

func plain[T any](v T) string {
	return fmt.Sprint(v)
}

func formatChar(c byte) string {
	return string(rune(c))
}
