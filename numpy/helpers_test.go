// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package numpy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/numpy/numpy"
)

// arr builds an array from a literal, failing the test on error.
func arr(t *testing.T, literal any) *numpy.NDArray {
	t.Helper()
	a, err := numpy.Array(literal)
	require.NoError(t, err)
	return a
}

// assertArray checks that got has the shape of want and equal elements.
func assertArray(t *testing.T, want any, got *numpy.NDArray) {
	t.Helper()
	w := arr(t, want)
	require.NotNil(t, got)
	if assert.Equal(t, w.Shape(), got.Shape(), "shape") {
		assert.True(t, numpy.ArrayEqual(w, got), "want\n%v\ngot\n%v", w, got)
	}
}

// assertClose is assertArray under the default Allclose tolerances.
func assertClose(t *testing.T, want any, got *numpy.NDArray) {
	t.Helper()
	w := arr(t, want)
	require.NotNil(t, got)
	if assert.Equal(t, w.Shape(), got.Shape(), "shape") {
		assert.True(t, numpy.Allclose(got, w), "want\n%v\ngot\n%v", w, got)
	}
}

// withConfig runs fn under cfg and restores the previous configuration.
func withConfig(t *testing.T, cfg numpy.Config, fn func()) {
	t.Helper()
	prev := numpy.CurrentConfig()
	require.NoError(t, numpy.Configure(cfg))
	defer func() { require.NoError(t, numpy.Configure(prev)) }()
	fn()
}
