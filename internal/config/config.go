// Package config loads the settings ringctl uses to build its buffers.
package config

import (
	"bytes"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	ringbuffer "github.com/luhtfiimanal/go-ringbuffer"
)

// Allocator names accepted in the allocator field.
const (
	AllocatorHeap = "heap"
	AllocatorPool = "pool"
	AllocatorMmap = "mmap"
)

// ErrInvalid is returned by Validate.
var ErrInvalid = errors.New("config: invalid")

// Config selects the allocator and limits of a ringctl buffer.
type Config struct {
	Allocator       string `yaml:"allocator" json:"allocator"`
	MaxSlots        int    `yaml:"max_slots" json:"max_slots"`
	InitialCapacity int    `yaml:"initial_capacity" json:"initial_capacity"`
	Debug           bool   `yaml:"debug" json:"debug"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{Allocator: AllocatorHeap}
}

// Load reads a YAML (or JSON) config file. Unknown keys are rejected and
// missing keys keep their Default values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "read config")
	}
	return Parse(data)
}

// Parse decodes and validates a config document.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data), yaml.DisallowUnknownField())
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "decode config")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadOrCreate loads path if it exists. Otherwise it writes the default
// configuration there and returns it.
func LoadOrCreate(path string) (Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg := Default()
		if err := Save(path, cfg); err != nil {
			return Config{}, err
		}
		return cfg, nil
	}
	return Load(path)
}

// Encode renders c as YAML.
func (c Config) Encode() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, errors.Wrap(err, "encode config")
	}
	return data, nil
}

// Save writes cfg as YAML.
func Save(path string, cfg Config) error {
	data, err := cfg.Encode()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(err, "write config")
	}
	return nil
}

// Validate checks field ranges.
func (c Config) Validate() error {
	switch c.Allocator {
	case AllocatorHeap, AllocatorPool, AllocatorMmap:
	default:
		return errors.Wrapf(ErrInvalid, "unknown allocator %q", c.Allocator)
	}
	if c.MaxSlots < 0 {
		return errors.Wrapf(ErrInvalid, "max_slots %d is negative", c.MaxSlots)
	}
	if c.InitialCapacity < 0 {
		return errors.Wrapf(ErrInvalid, "initial_capacity %d is negative", c.InitialCapacity)
	}
	if c.MaxSlots > 0 && c.InitialCapacity+1 > c.MaxSlots {
		return errors.Wrapf(ErrInvalid, "initial_capacity %d does not fit in max_slots %d",
			c.InitialCapacity, c.MaxSlots)
	}
	return nil
}

// Options builds buffer options from c. The returned closer releases
// allocator resources (the mmap allocator's regions) and is never nil.
func (c Config) Options(log *zap.Logger) (ringbuffer.Options[int64], func() error, error) {
	opts := ringbuffer.DefaultOptions[int64]()
	if log != nil {
		opts.Logger = log
	}
	closer := func() error { return nil }

	var alloc ringbuffer.Allocator[int64]
	switch c.Allocator {
	case AllocatorHeap, "":
		alloc = ringbuffer.HeapAllocator[int64]{}
	case AllocatorPool:
		alloc = ringbuffer.NewPoolAllocator[int64]()
	case AllocatorMmap:
		m, err := ringbuffer.NewMmapAllocator[int64]()
		if err != nil {
			return opts, closer, err
		}
		alloc, closer = m, m.Close
	default:
		return opts, closer, errors.Wrapf(ErrInvalid, "unknown allocator %q", c.Allocator)
	}
	if c.MaxSlots > 0 {
		alloc = ringbuffer.NewLimitAllocator(alloc, c.MaxSlots)
	}
	opts.Allocator = alloc
	return opts, closer, nil
}

// NewBuffer builds a buffer from c and reserves InitialCapacity.
func (c Config) NewBuffer(log *zap.Logger) (*ringbuffer.Buffer[int64], func() error, error) {
	opts, closer, err := c.Options(log)
	if err != nil {
		return nil, closer, err
	}
	b, err := ringbuffer.NewWithCapacity(c.InitialCapacity, opts)
	if err != nil {
		return nil, closer, err
	}
	return b, closer, nil
}
