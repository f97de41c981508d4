// Package logger builds the zap logger shared by the game components.
package logger

import (
	"go.uber.org/zap"
)

// New returns a development logger when verbose is set. Otherwise logging is
// discarded so the desktop game stays quiet on the console.
func New(verbose bool) (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}
	return zap.NewDevelopment()
}

// NewFile is New for frontends that own the terminal: verbose output goes
// to path instead of stderr.
func NewFile(verbose bool, path string) (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	return cfg.Build()
}
