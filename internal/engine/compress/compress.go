// Package compress gzip-compresses asset payloads.
package compress

import (
	"bytes"
	"io"
	"time"

	"github.com/klauspost/compress/gzip"
	"go.trai.ch/assetpack/internal/core/domain"
	"go.trai.ch/zerr"
)

// Gzip compresses data at the best compression level. The header carries no name or
// modification time, so equal input yields equal output.
func Gzip(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw, err := gzip.NewWriterLevel(&buf, gzip.BestCompression)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrCompressFailed.Error())
	}
	// The writer always stores ModTime; the Unix epoch encodes as an unset MTIME.
	zw.ModTime = time.Unix(0, 0)
	if _, err := zw.Write(data); err != nil {
		return nil, zerr.Wrap(err, domain.ErrCompressFailed.Error())
	}
	if err := zw.Close(); err != nil {
		return nil, zerr.Wrap(err, domain.ErrCompressFailed.Error())
	}
	return buf.Bytes(), nil
}

// Gunzip decompresses a payload produced by Gzip.
func Gunzip(data []byte) ([]byte, error) {
	zr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, zerr.Wrap(err, "failed to open gzip stream")
	}
	defer zr.Close() //nolint:errcheck // reader holds no resources

	out, err := io.ReadAll(zr)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to decompress gzip stream")
	}
	return out, nil
}
