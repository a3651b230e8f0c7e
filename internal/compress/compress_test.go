package compress

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	payload := bytes.Repeat([]byte("columnar bytes "), 1024)
	for _, m := range MethodValues() {
		m := m
		t.Run(m.String(), func(t *testing.T) {
			w := NewWriter()
			require.NoError(t, w.Compress(m, payload))

			got, err := NewReader().Decompress(w.Data)
			require.NoError(t, err)
			require.Equal(t, payload, got)
		})
	}
}

func TestDecompressErrors(t *testing.T) {
	w := NewWriter()
	require.NoError(t, w.Compress(LZ4, []byte("data")))

	t.Run("ShortBlock", func(t *testing.T) {
		_, err := NewReader().Decompress(w.Data[:headerSize-1])
		require.Error(t, err)
	})
	t.Run("Corrupted", func(t *testing.T) {
		block := append([]byte(nil), w.Data...)
		block[len(block)-1]++
		_, err := NewReader().Decompress(block)
		require.Error(t, err)
	})
	t.Run("BadMethod", func(t *testing.T) {
		block := append([]byte(nil), w.Data...)
		block[hMethod] = 0x01
		_, err := NewReader().Decompress(block)
		require.Error(t, err)
	})
}

func TestTooLarge(t *testing.T) {
	w := NewWriter()
	require.Error(t, w.Compress(LZ4, make([]byte, maxBlockSize+1)))
}
