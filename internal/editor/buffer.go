package editor

import (
	"os"
	"strings"
)

// LoadLines reads a file and splits it into lines. A final newline does not
// produce a trailing empty line, and CRLF endings lose their CR.
func LoadLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, nil
	}
	// Strip trailing newline to avoid a phantom empty line.
	text := strings.TrimSuffix(string(data), "\n")
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines, nil
}

// DisplayName returns the part of path after the last slash.
func DisplayName(path string) string {
	return path[strings.LastIndexByte(path, '/')+1:]
}
