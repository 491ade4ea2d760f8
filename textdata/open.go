package textdata

import (
	"bufio"
	"compress/gzip"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
)

//Suffixes of the compressed inputs we can read transparently.
const (
	GzipSuffix = ".gz"
	ZstdSuffix = ".zst"
)

//zstd.Decoder.Close returns nothing, so it can't be an io.ReadCloser by itself.
type zstdrc struct {
	*zstd.Decoder
}

func (z zstdrc) Close() error {
	z.Decoder.Close()
	return nil
}

//readCloser closes both the decompressor and the underlying file.
type readCloser struct {
	io.Reader
	closers []io.Closer
}

func (r *readCloser) Close() error {
	var err error
	for _, c := range r.closers {
		if e := c.Close(); e != nil && err == nil {
			err = e
		}
	}
	return err
}

//Open opens the file name for reading. Files ending in .gz or .zst
//are decompressed on the fly, anything else is read as plain text.
func Open(name string) (io.ReadCloser, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, Error{UnableToOpen, name, []string{"Open"}, true, err}
	}
	buf := bufio.NewReader(f)
	var dec io.ReadCloser
	switch {
	case strings.HasSuffix(name, GzipSuffix):
		dec, err = gzip.NewReader(buf)
	case strings.HasSuffix(name, ZstdSuffix):
		var z *zstd.Decoder
		z, err = zstd.NewReader(buf)
		if err == nil {
			dec = zstdrc{z}
		}
	default:
		return &readCloser{buf, []io.Closer{f}}, nil
	}
	if err != nil {
		f.Close()
		return nil, Error{UnableToOpen, name, []string{"Open"}, true, err}
	}
	return &readCloser{dec, []io.Closer{dec, f}}, nil
}

//TrimCompression returns name without a trailing .gz or .zst suffix.
func TrimCompression(name string) string {
	name = strings.TrimSuffix(name, GzipSuffix)
	return strings.TrimSuffix(name, ZstdSuffix)
}

//DropCompressedTwins returns the names that are unique once the compression suffix
//is removed, and the ones that repeat an earlier name (V_1.txt.gz after V_1.txt).
//With sorted names, the plain file is the one kept.
func DropCompressedTwins(names []string) (kept, dropped []string) {
	seen := make(map[string]bool, len(names))
	for _, v := range names {
		t := TrimCompression(v)
		if seen[t] {
			dropped = append(dropped, v)
			continue
		}
		seen[t] = true
		kept = append(kept, v)
	}
	return kept, dropped
}
