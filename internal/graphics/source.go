package graphics

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrEmptyPath is returned when a shader stage has no source file configured.
var ErrEmptyPath = errors.New("shader source path is empty")

// ReadSource reads a shader source file and returns it NUL-terminated, ready to
// be handed to glShaderSource.
func ReadSource(path string) (string, error) {
	if path == "" {
		return "", ErrEmptyPath
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("could not read shader source %s: %w", path, err)
	}
	return terminate(string(data)), nil
}

func terminate(src string) string {
	if strings.HasSuffix(src, "\x00") {
		return src
	}
	return src + "\x00"
}

// infoLog trims the NUL padding GL leaves in info log buffers.
func infoLog(buf string) string {
	return strings.TrimRight(buf, "\x00\n ")
}
