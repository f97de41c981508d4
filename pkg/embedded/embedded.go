// Package embedded gives other packages access to the files embedded by the
// root package.
//
// //go:embed can only reach files below the declaring package, so the
// embed.FS lives in the project root (embed.go) and is handed over here with
// Init before anything is loaded.
package embedded

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

// DefaultConfigPath is the embedded default configuration.
const DefaultConfigPath = "assets/config/game.yaml"

// ErrNotInitialized is returned by every accessor before Init is called.
var ErrNotInitialized = errors.New("embedded package not initialized, call Init() first")

var (
	assetsFS    fs.FS
	initialized bool
)

// Init sets the embedded asset tree. It must run at the start of main.
func Init(assets fs.FS) {
	assetsFS = assets
	initialized = true
}

// normalize converts path separators and strips a leading "./".
// Paths must start with "assets/".
func normalize(path string) (string, error) {
	path = filepath.ToSlash(path)
	path = strings.TrimPrefix(path, "./")
	if !strings.HasPrefix(path, "assets/") {
		return "", fmt.Errorf("unknown resource path prefix: %s (must start with 'assets/')", path)
	}
	return path, nil
}

// ReadFile returns the content of an embedded file.
func ReadFile(path string) ([]byte, error) {
	if !initialized {
		return nil, ErrNotInitialized
	}
	path, err := normalize(path)
	if err != nil {
		return nil, err
	}
	return fs.ReadFile(assetsFS, path)
}

// DefaultConfig returns the embedded default configuration, or nil when it is
// not available.
func DefaultConfig() []byte {
	data, err := ReadFile(DefaultConfigPath)
	if err != nil {
		return nil
	}
	return data
}
