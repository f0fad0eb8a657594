package dump_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/WelcomerTeam/Sandwich-Ready/internal/dump"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const payload = `{"op":0,"t":"READY","s":1,"d":{}}`

func gzipped(t *testing.T, data string) []byte {
	t.Helper()

	var buf bytes.Buffer

	w := gzip.NewWriter(&buf)
	_, err := w.Write([]byte(data))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	return buf.Bytes()
}

func zlibbed(t *testing.T, data string, stream bool) []byte {
	t.Helper()

	var buf bytes.Buffer

	w := zlib.NewWriter(&buf)
	_, err := w.Write([]byte(data))
	require.NoError(t, err)

	if stream {
		require.NoError(t, w.Flush())
	} else {
		require.NoError(t, w.Close())
	}

	return buf.Bytes()
}

func TestDecompress(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		data        []byte
		compression dump.Compression
	}{
		{"plain", []byte(payload), dump.CompressionNone},
		{"gzip", gzipped(t, payload), dump.CompressionGzip},
		{"zlib", zlibbed(t, payload, false), dump.CompressionZlib},
		{"zlib stream", zlibbed(t, payload, true), dump.CompressionZlib},
	}

	for _, test := range tests {
		data, compression, err := dump.Decompress(test.data)
		require.NoError(t, err, test.name)
		assert.Equal(t, test.compression, compression, test.name)
		assert.Equal(t, payload, string(data), test.name)
	}
}

func TestDecompressTruncated(t *testing.T) {
	t.Parallel()

	data := gzipped(t, payload)

	_, _, err := dump.Decompress(data[:len(data)/2])
	assert.Error(t, err)
}

func TestReadCaptureFromStdin(t *testing.T) {
	t.Parallel()

	data, compression, err := dump.ReadCapture("-", bytes.NewReader(gzipped(t, payload)))
	require.NoError(t, err)
	assert.Equal(t, dump.CompressionGzip, compression)
	assert.Equal(t, payload, string(data))

	_, _, err = dump.ReadCapture("-", strings.NewReader("  \n"))
	assert.True(t, errors.Is(err, dump.ErrEmptyCapture))
}

func TestReadCaptureInvalidJSON(t *testing.T) {
	t.Parallel()

	_, compression, err := dump.ReadCapture("-", bytes.NewReader(zlibbed(t, `{"op":0,"d":`, false)))
	assert.Equal(t, dump.CompressionZlib, compression)
	assert.True(t, errors.Is(err, dump.ErrInvalidCapture))
}
