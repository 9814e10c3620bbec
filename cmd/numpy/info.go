package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"

	"github.com/born-ml/numpy/numpy"
)

// parseLiteral decodes a JSON scalar or nested array. Integral numbers stay
// integers so that they infer an integer dtype.
func parseLiteral(text string) (any, error) {
	dec := json.NewDecoder(bytes.NewReader([]byte(text)))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, errors.Wrap(err, "parsing JSON literal")
	}
	return fromJSON(v)
}

func fromJSON(v any) (any, error) {
	switch x := v.(type) {
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return i, nil
		}
		f, err := x.Float64()
		if err != nil {
			return nil, errors.Wrapf(err, "number %q", x)
		}
		return f, nil
	case bool:
		return x, nil
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			var err error
			if out[i], err = fromJSON(e); err != nil {
				return nil, err
			}
		}
		return out, nil
	}
	return nil, errors.Errorf("unsupported JSON value of type %T", v)
}

func runInfo(w io.Writer, text string) error {
	literal, err := parseLiteral(text)
	if err != nil {
		return err
	}
	a, err := numpy.Array(literal)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "shape:   %v\n", a.Shape())
	fmt.Fprintf(w, "ndim:    %d\n", a.Ndim())
	fmt.Fprintf(w, "dtype:   %s\n", a.DType())
	fmt.Fprintf(w, "strides: %v\n", a.Strides())
	fmt.Fprintf(w, "size:    %d\n", a.Size())
	fmt.Fprintf(w, "nbytes:  %s\n", humanize.Bytes(uint64(a.Nbytes())))
	fmt.Fprintf(w, "%s\n", a)
	return nil
}
