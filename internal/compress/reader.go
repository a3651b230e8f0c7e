package compress

import (
	"github.com/go-faster/city"
	"github.com/go-faster/errors"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Reader decodes compressed blocks.
type Reader struct {
	zstd *zstd.Decoder
}

func NewReader() *Reader {
	d, _ := zstd.NewReader(nil,
		zstd.WithDecoderConcurrency(1),
	)
	return &Reader{zstd: d}
}

// Decompress decodes a single block.
func (r *Reader) Decompress(block []byte) ([]byte, error) {
	if len(block) < headerSize {
		return nil, errors.Errorf("block of %d bytes is shorter than header", len(block))
	}

	hash := city.CH128(block[hMethod:])
	var ref city.U128
	ref.Low = bin.Uint64(block[0:8])
	ref.High = bin.Uint64(block[8:16])
	if hash != ref {
		return nil, errors.New("data corruption: checksum mismatch")
	}

	var (
		dataSize = int(bin.Uint32(block[hDataSize:])) - dataSizeOffset
		rawSize  = int(bin.Uint32(block[hRawSize:]))
	)
	if dataSize < 0 || dataSize > maxDataSize {
		return nil, errors.Errorf("data size should be %d < %d < %d", 0, dataSize, maxDataSize)
	}
	if rawSize < 0 || rawSize > maxBlockSize {
		return nil, errors.Errorf("raw size should be %d < %d < %d", 0, rawSize, maxBlockSize)
	}
	if len(block) < headerSize+dataSize {
		return nil, errors.Errorf("block of %d bytes is shorter than %d declared", len(block), headerSize+dataSize)
	}
	body := block[headerSize : headerSize+dataSize]

	switch m := Method(block[hMethod]); m {
	case None:
		return append([]byte(nil), body...), nil
	case LZ4:
		data := make([]byte, rawSize)
		n, err := lz4.UncompressBlock(body, data)
		if err != nil {
			return nil, errors.Wrap(err, "lz4")
		}
		return data[:n], nil
	case ZSTD:
		data, err := r.zstd.DecodeAll(body, make([]byte, 0, rawSize))
		if err != nil {
			return nil, errors.Wrap(err, "zstd")
		}
		return data, nil
	default:
		return nil, errors.Errorf("compression 0x%02x not implemented", byte(m))
	}
}
