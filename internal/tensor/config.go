package tensor

import (
	"os"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// Environment variables read once, the first time the configuration is needed.
const (
	EnvDefaultInt   = "NUMPY_DEFAULT_INT"
	EnvDefaultFloat = "NUMPY_DEFAULT_FLOAT"
	EnvWorkers      = "NUMPY_WORKERS"
)

// Config holds engine-wide defaults.
type Config struct {
	// DefaultInt is the dtype of integer literals and integer Arange results.
	DefaultInt DataType

	// DefaultFloat is the dtype of float literals and of Zeros, Ones, Full, Identity, Linspace.
	DefaultFloat DataType

	// Workers bounds the goroutines the reduction, sort and matmul kernels
	// split their lanes over. 1 keeps every operation on the calling goroutine.
	Workers int
}

// DefaultConfig returns the defaults: the host's native integer width,
// float64 and single-threaded execution.
func DefaultConfig() Config {
	defaultInt := Int64
	if strconv.IntSize == 32 {
		defaultInt = Int32
	}
	return Config{
		DefaultInt:   defaultInt,
		DefaultFloat: Float64,
		Workers:      1,
	}
}

// Validate checks that the defaults name an integer and a float dtype.
func (c Config) Validate() error {
	if !c.DefaultInt.IsInt() {
		return errors.Wrapf(ErrDtype, "default int must be an integer dtype, got %s", c.DefaultInt)
	}
	if !c.DefaultFloat.IsFloat() {
		return errors.Wrapf(ErrDtype, "default float must be a float dtype, got %s", c.DefaultFloat)
	}
	if c.Workers < 1 {
		return errors.Errorf("workers must be >= 1, got %d", c.Workers)
	}
	return nil
}

var (
	currentConfig atomic.Pointer[Config]
	loadEnvOnce   sync.Once
)

// CurrentConfig returns the active configuration.
func CurrentConfig() Config {
	loadEnvOnce.Do(func() {
		if currentConfig.Load() != nil {
			return
		}
		cfg, err := ConfigFromEnv(DefaultConfig())
		if err != nil {
			klog.Warningf("ignoring numpy environment configuration: %v", err)
			cfg = DefaultConfig()
		}
		currentConfig.Store(&cfg)
	})
	return *currentConfig.Load()
}

// SetConfig replaces the active configuration after validating it.
func SetConfig(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	loadEnvOnce.Do(func() {})
	currentConfig.Store(&cfg)
	klog.V(1).Infof("numpy config: default int %s, default float %s, %d worker(s)",
		cfg.DefaultInt, cfg.DefaultFloat, cfg.Workers)
	return nil
}

// ConfigFromEnv overlays the NUMPY_* environment variables on base.
func ConfigFromEnv(base Config) (Config, error) {
	cfg := base
	if v, found := os.LookupEnv(EnvDefaultInt); found {
		dt, err := ParseDataTypeStrict(v)
		if err != nil {
			return base, errors.WithMessage(err, EnvDefaultInt)
		}
		cfg.DefaultInt = dt
	}
	if v, found := os.LookupEnv(EnvDefaultFloat); found {
		dt, err := ParseDataTypeStrict(v)
		if err != nil {
			return base, errors.WithMessage(err, EnvDefaultFloat)
		}
		cfg.DefaultFloat = dt
	}
	if v, found := os.LookupEnv(EnvWorkers); found {
		n, err := strconv.Atoi(v)
		if err != nil {
			return base, errors.Wrapf(err, "%s=%q", EnvWorkers, v)
		}
		cfg.Workers = n
	}
	if err := cfg.Validate(); err != nil {
		return base, err
	}
	return cfg, nil
}

// ParseDataTypeStrict resolves a concrete dtype name; the int_/float_ aliases are rejected
// since they depend on the configuration being built.
func ParseDataTypeStrict(name string) (DataType, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "int", "int_", "float", "float_":
		return 0, errors.Wrapf(ErrDtype, "alias %q needs a concrete width", name)
	}
	return ParseDataType(name)
}
