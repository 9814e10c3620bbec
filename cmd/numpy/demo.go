package main

import (
	"fmt"
	"io"

	"github.com/janpfeifer/must"

	"github.com/born-ml/numpy/numpy"
)

type scenario struct {
	title string
	run   func() any
}

var scenarios = []scenario{
	{"zeros([2,2]) + 1 == ones([2,2])", func() any {
		sum := must.M1(numpy.Add(must.M1(numpy.Zeros(2, 2)), 1))
		return numpy.ArrayEqual(sum, must.M1(numpy.Ones(2, 2)))
	}},
	{"arange(1, 10, 2)", func() any {
		return must.M1(numpy.Arange(1, 10, 2))
	}},
	{"[[1,2],[3,4]] @ [[5,6],[7,8]]", func() any {
		a := must.M1(numpy.Array([][]int{{1, 2}, {3, 4}}))
		b := must.M1(numpy.Array([][]int{{5, 6}, {7, 8}}))
		return must.M1(numpy.MatMul(a, b))
	}},
	{"[3,1,2].argsort()", func() any {
		return must.M1(must.M1(numpy.Array([]int{3, 1, 2})).Argsort())
	}},
	{"[3,1,2].sort()", func() any {
		a := must.M1(numpy.Array([]int{3, 1, 2}))
		must.M(a.Sort())
		return a
	}},
	{"linspace(0, 1, 5)", func() any {
		return must.M1(numpy.Linspace(0, 1, 5, true))
	}},
	{"[1.5,2.5,3.5].std()", func() any {
		return must.M1(must.M1(numpy.Array([]float64{1.5, 2.5, 3.5})).Std())
	}},
}

func runDemo(w io.Writer) {
	for _, s := range scenarios {
		fmt.Fprintf(w, "%-36s %v\n", s.title, s.run())
	}
}
