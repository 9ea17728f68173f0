package logtail

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// chunkSize is how far Read steps back from the end of the file per read.
const chunkSize = 64 << 10

// Read returns at most maxLines from the end of the file at path. A maxLines
// of zero or less returns every line. A missing file yields no lines and no
// error.
func Read(path string, maxLines int) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	if maxLines <= 0 {
		data, err := io.ReadAll(file)
		if err != nil {
			return nil, fmt.Errorf("read log: %w", err)
		}
		return splitLines(data), nil
	}

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat log: %w", err)
	}
	data, err := readTail(file, info.Size(), maxLines)
	if err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}
	lines := splitLines(data)
	if len(lines) > maxLines {
		lines = lines[len(lines)-maxLines:]
	}
	return lines, nil
}

// readTail reads backwards from size until the buffer holds more than n
// newlines, which guarantees n complete lines after the first (possibly cut)
// one. Short files are returned whole.
func readTail(r io.ReaderAt, size int64, n int) ([]byte, error) {
	var buf []byte
	for offset := size; offset > 0; {
		step := min(int64(chunkSize), offset)
		offset -= step
		chunk := make([]byte, step, int(step)+len(buf))
		if _, err := r.ReadAt(chunk, offset); err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
		buf = append(chunk, buf...)
		if bytes.Count(buf, []byte{'\n'}) > n {
			break
		}
	}
	return buf, nil
}

func splitLines(data []byte) []string {
	text := strings.TrimSuffix(string(data), "\n")
	if text == "" {
		return []string{}
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
