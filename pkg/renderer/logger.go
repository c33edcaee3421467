package renderer

import (
	"fmt"

	"github.com/df07/go-minimal-raytracer/pkg/core"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// prefixLogger prepends a fixed tag to every message
type prefixLogger struct {
	prefix string
	next   core.Logger
}

func (pl *prefixLogger) Printf(format string, args ...interface{}) {
	pl.next.Printf(pl.prefix+format, args...)
}

// nopLogger discards everything
type nopLogger struct{}

func (nopLogger) Printf(string, ...interface{}) {}
