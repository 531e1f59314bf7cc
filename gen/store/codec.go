package store

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/df-mc/biomegen/gen"
	"github.com/df-mc/biomegen/gen/biome"
	"github.com/klauspost/compress/zstd"
)

// Both are only used through EncodeAll and DecodeAll, which may be called
// concurrently.
var (
	encoder, _ = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	decoder, _ = zstd.NewReader(nil)
)

var errCorrupt = errors.New("store: corrupt snapshot")

// seedKey encodes a seed so that byte order matches numeric order.
func seedKey(seed int64) []byte {
	return binary.BigEndian.AppendUint64(nil, uint64(seed)^1<<63)
}

func parseSeedKey(b []byte) (int64, error) {
	if len(b) != 8 {
		return 0, fmt.Errorf("store: seed key of %d bytes", len(b))
	}
	return int64(binary.BigEndian.Uint64(b) ^ 1<<63), nil
}

// encodeGrid serialises g as varints and compresses the result.
func encodeGrid(g gen.Grid) []byte {
	buf := make([]byte, 0, 6*binary.MaxVarintLen64+len(g.Cells))
	for _, v := range [...]int{g.Scale, g.X, g.Z, g.W, g.H, g.Y} {
		buf = binary.AppendVarint(buf, int64(v))
	}
	for _, c := range g.Cells {
		buf = binary.AppendVarint(buf, int64(c))
	}
	return encoder.EncodeAll(buf, nil)
}

func decodeGrid(data []byte) (gen.Grid, error) {
	buf, err := decoder.DecodeAll(data, nil)
	if err != nil {
		return gen.Grid{}, fmt.Errorf("decompress snapshot: %w", err)
	}
	var header [6]int
	for i := range header {
		v, n := binary.Varint(buf)
		if n <= 0 {
			return gen.Grid{}, errCorrupt
		}
		header[i], buf = int(v), buf[n:]
	}
	g := gen.Grid{Range: gen.Range{Scale: header[0], X: header[1], Z: header[2], W: header[3], H: header[4], Y: header[5]}}
	if g.W < 0 || g.H < 0 || g.W*g.H > len(buf) {
		return gen.Grid{}, errCorrupt
	}
	g.Cells = make([]biome.ID, g.W*g.H)
	for i := range g.Cells {
		v, n := binary.Varint(buf)
		if n <= 0 {
			return gen.Grid{}, errCorrupt
		}
		g.Cells[i], buf = biome.ID(v), buf[n:]
	}
	if len(buf) != 0 {
		return gen.Grid{}, errCorrupt
	}
	return g, nil
}
