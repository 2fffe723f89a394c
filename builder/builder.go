// SPDX-License-Identifier: MIT
//
// builder.go - Build orchestrator, functional options, ID schemes.

package builder

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/prestonraab/cs-575/core"
)

// Sentinel errors shared by all constructors.
var (
	// ErrTooFewVertices indicates a size parameter below the constructor minimum.
	ErrTooFewVertices = errors.New("builder: too few vertices")

	// ErrNilConstructor indicates Build received a nil Constructor.
	ErrNilConstructor = errors.New("builder: nil constructor")
)

// Constructor applies a deterministic graph mutation using the resolved
// config. Constructors validate parameters early, emit vertices and edges in
// a stable documented order, and return only sentinel errors.
type Constructor func(g *core.Graph, cfg config) error

// config is the immutable resolved option set handed to constructors.
type config struct {
	idFn func(i int) string
}

// Option configures the builder before constructors run.
type Option func(*config)

// WithIDFn replaces the vertex ID scheme with a custom function from index
// to ID. Nil functions are ignored.
func WithIDFn(fn func(i int) string) Option {
	return func(c *config) {
		if fn != nil {
			c.idFn = fn
		}
	}
}

// WithLetterIDs names vertices "A", "B", ..., "Z", "A1", "B1", ... instead of
// the numeric default.
func WithLetterIDs() Option {
	return func(c *config) {
		c.idFn = func(i int) string {
			letter := string(rune('A' + i%26))
			if i < 26 {
				return letter
			}
			return letter + strconv.Itoa(i/26)
		}
	}
}

// newConfig resolves options onto the numeric default scheme.
func newConfig(opts ...Option) config {
	c := config{idFn: strconv.Itoa}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// Build creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// The first constructor error is wrapped and returned; no partial cleanup is
// attempted.
func Build(gopts []core.GraphOption, bopts []Option, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("build: constructor %d: %w", i, ErrNilConstructor)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("build: %w", err)
		}
	}

	return g, nil
}
