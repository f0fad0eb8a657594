package dump

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"

	"github.com/WelcomerTeam/Sandwich-Ready/sandwichjson"
)

// Compression of a capture, detected from its first bytes.
type Compression string

const (
	CompressionNone Compression = "none"
	CompressionGzip Compression = "gzip"
	CompressionZlib Compression = "zlib"
)

// zlibFlushSuffix ends every message of a zlib-stream gateway connection.
var zlibFlushSuffix = []byte{0x00, 0x00, 0xff, 0xff}

// DetectCompression looks at the magic bytes of data.
func DetectCompression(data []byte) Compression {
	switch {
	case len(data) >= 2 && data[0] == 0x1f && data[1] == 0x8b:
		return CompressionGzip
	case len(data) >= 2 && data[0] == 0x78 && (uint16(data[0])<<8|uint16(data[1]))%31 == 0:
		return CompressionZlib
	default:
		return CompressionNone
	}
}

// Decompress inflates data according to its detected compression. Zlib
// captures taken from a zlib-stream connection lack the final block; the
// data inflated up to the flush marker is returned.
func Decompress(data []byte) ([]byte, Compression, error) {
	compression := DetectCompression(data)

	var (
		reader io.ReadCloser
		err    error
	)

	switch compression {
	case CompressionGzip:
		reader, err = gzip.NewReader(bytes.NewReader(data))
	case CompressionZlib:
		reader, err = zlib.NewReader(bytes.NewReader(data))
	default:
		return data, compression, nil
	}

	if err != nil {
		return nil, compression, fmt.Errorf("failed to decompress payload: %w", err)
	}

	defer reader.Close()

	inflated, err := io.ReadAll(reader)
	if err != nil {
		if compression == CompressionZlib && errors.Is(err, io.ErrUnexpectedEOF) && bytes.HasSuffix(data, zlibFlushSuffix) {
			return inflated, compression, nil
		}

		return nil, compression, fmt.Errorf("failed to decompress payload: %w", err)
	}

	return inflated, compression, nil
}

// ReadCapture reads and inflates the capture at path. A path of "-" reads
// standard input. The inflated capture must be a single JSON document.
func ReadCapture(path string, stdin io.Reader) ([]byte, Compression, error) {
	var (
		data []byte
		err  error
	)

	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}

	if err != nil {
		return nil, CompressionNone, fmt.Errorf("failed to read capture: %w", err)
	}

	data, compression, err := Decompress(data)
	if err != nil {
		return nil, compression, err
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return nil, compression, ErrEmptyCapture
	}

	if !sandwichjson.Valid(data) {
		return nil, compression, ErrInvalidCapture
	}

	return data, compression, nil
}
