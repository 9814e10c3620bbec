package main

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"

	"github.com/born-ml/numpy/numpy"
)

// runSave stores arrays given as name=<json literal> pairs in a SafeTensors file.
func runSave(w io.Writer, path string, pairs []string) error {
	if len(pairs) == 0 {
		return errors.New("nothing to save")
	}
	arrays := make(map[string]*numpy.NDArray, len(pairs))
	for _, pair := range pairs {
		name, text, found := strings.Cut(pair, "=")
		if !found {
			return errors.Errorf("%q is not of the form name=<literal>", pair)
		}
		literal, err := parseLiteral(text)
		if err != nil {
			return errors.WithMessagef(err, "array %q", name)
		}
		a, err := numpy.Array(literal)
		if err != nil {
			return errors.WithMessagef(err, "array %q", name)
		}
		arrays[name] = a
	}
	if err := numpy.Save(path, arrays); err != nil {
		return err
	}
	fmt.Fprintf(w, "saved %d array(s) to %s\n", len(arrays), path)
	return nil
}

// runInspect lists the arrays of a SafeTensors file.
func runInspect(w io.Writer, path string, values bool) error {
	arrays, err := numpy.Load(path)
	if err != nil {
		return err
	}
	total := 0
	for _, name := range slices.Sorted(maps.Keys(arrays)) {
		a := arrays[name]
		total += a.Nbytes()
		fmt.Fprintf(w, "%-20s %-8s %-16s %s\n", name, a.DType(), fmt.Sprint(a.Shape()), humanize.Bytes(uint64(a.Nbytes())))
		if values {
			fmt.Fprintf(w, "%s\n", a)
		}
	}
	fmt.Fprintf(w, "%d array(s), %s\n", len(arrays), humanize.Bytes(uint64(total)))
	return nil
}
