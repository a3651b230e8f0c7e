package compress

import (
	"github.com/go-faster/city"
	"github.com/go-faster/errors"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Writer encodes compressed blocks.
type Writer struct {
	Data []byte

	lz4  *lz4.Compressor
	zstd *zstd.Encoder
}

// Compress buf into Data.
func (w *Writer) Compress(m Method, buf []byte) error {
	if len(buf) > maxBlockSize {
		return errors.Errorf("buf size %d > %d (multiple block encoding not implemented)", len(buf), maxBlockSize)
	}

	maxSize := lz4.CompressBlockBound(len(buf))
	w.Data = append(w.Data[:0], make([]byte, maxSize+headerSize)...)
	_ = w.Data[:headerSize]
	w.Data[hMethod] = byte(m)

	var n int
	switch m {
	case LZ4:
		compressed, err := w.lz4.CompressBlock(buf, w.Data[headerSize:])
		if err != nil {
			return errors.Wrap(err, "block")
		}
		n = compressed
	case ZSTD:
		compressed := w.zstd.EncodeAll(buf, w.Data[:headerSize])
		n = len(compressed) - headerSize
		w.Data = compressed[:n+headerSize]
	case None:
		n = copy(w.Data[headerSize:], buf)
	default:
		return errors.Errorf("compression 0x%02x not implemented", byte(m))
	}

	w.Data = w.Data[:n+headerSize]

	bin.PutUint32(w.Data[hDataSize:], uint32(n+dataSizeOffset))
	bin.PutUint32(w.Data[hRawSize:], uint32(len(buf)))
	hash := city.CH128(w.Data[hMethod:])
	bin.PutUint64(w.Data[0:8], hash.Low)
	bin.PutUint64(w.Data[8:16], hash.High)

	return nil
}

func NewWriter() *Writer {
	e, _ := zstd.NewWriter(nil,
		zstd.WithEncoderLevel(zstd.SpeedDefault),
		zstd.WithEncoderConcurrency(1),
	)
	return &Writer{
		lz4:  &lz4.Compressor{},
		zstd: e,
	}
}
