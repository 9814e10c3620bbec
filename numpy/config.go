// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package numpy

import (
	"sync/atomic"

	"github.com/born-ml/numpy/backend/cpu"
	"github.com/born-ml/numpy/internal/tensor"
)

// Config holds engine-wide defaults: the dtypes of integer and float
// literals, and the number of worker goroutines kernels may use.
type Config = tensor.Config

// Environment variables overriding the defaults, read once on first use.
const (
	EnvDefaultInt   = tensor.EnvDefaultInt
	EnvDefaultFloat = tensor.EnvDefaultFloat
	EnvWorkers      = tensor.EnvWorkers
)

// DefaultConfig returns the built-in defaults: the host's native int width,
// float64 and a single worker.
func DefaultConfig() Config {
	return tensor.DefaultConfig()
}

// CurrentConfig returns the active configuration.
func CurrentConfig() Config {
	return tensor.CurrentConfig()
}

// Configure validates and installs cfg. An invalid configuration is rejected
// with ErrDtype (or a plain error for a bad worker count) and the active one is kept.
func Configure(cfg Config) error {
	return tensor.SetConfig(cfg)
}

type backendHolder struct{ tensor.Backend }

var activeBackend atomic.Pointer[backendHolder]

func init() {
	UseBackend(cpu.New())
}

// UseBackend selects the compute backend used by every operation.
func UseBackend(b tensor.Backend) {
	activeBackend.Store(&backendHolder{b})
}

// backend returns the active compute backend.
func backend() tensor.Backend {
	return activeBackend.Load().Backend
}
