package ctjson

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/s2"
	"github.com/klauspost/compress/zstd"
)

// CompressMode selects the compressed sink a Serializer writes through,
// carrying over the teacher's own compressed-tape option (parsed_serialize.go
// picked between s2 and zstd for the serialized tape) applied instead to
// the emitted JSON text.
type CompressMode uint8

const (
	CompressNone CompressMode = iota
	CompressS2
	CompressZstd
)

// WriteCompressed serializes v with ToJSON and writes the result to w
// through the codec mode selects, matching spec §6's to_json(value) ->
// bytes entry point with an additional compressed sink.
func WriteCompressed(w io.Writer, v interface{}, mode CompressMode) error {
	raw, err := ToJSON(v)
	if err != nil {
		return err
	}
	switch mode {
	case CompressNone:
		_, err := w.Write(raw)
		return err
	case CompressS2:
		zw := s2.NewWriter(w)
		if _, err := zw.Write(raw); err != nil {
			zw.Close()
			return err
		}
		return zw.Close()
	case CompressZstd:
		zw, err := zstd.NewWriter(w)
		if err != nil {
			return err
		}
		if _, err := zw.Write(raw); err != nil {
			zw.Close()
			return err
		}
		return zw.Close()
	default:
		return newError(TypeMismatch, 0, "unknown CompressMode")
	}
}

// ReadCompressed decompresses src per mode and returns the JSON text, the
// inverse of WriteCompressed's compression step. It does not parse the
// result.
func ReadCompressed(src []byte, mode CompressMode) ([]byte, error) {
	switch mode {
	case CompressNone:
		return src, nil
	case CompressS2:
		zr := s2.NewReader(bytes.NewReader(src))
		return io.ReadAll(zr)
	case CompressZstd:
		zr, err := zstd.NewReader(bytes.NewReader(src))
		if err != nil {
			return nil, err
		}
		defer zr.Close()
		return io.ReadAll(zr)
	default:
		return nil, newError(TypeMismatch, 0, "unknown CompressMode")
	}
}
