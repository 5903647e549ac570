package game

import (
	"crypto/rand"
	"math/big"
)

// GridSize is the number of addressable tiles (3x3 grid, indices 0-8).
const GridSize = 9

// TileSource produces the next random tile of a growing sequence.
// Injected so tests can script the exact tiles a session will see.
type TileSource interface {
	NextTile() int
}

// CryptoTileSource draws uniformly distributed tiles from crypto/rand.
type CryptoTileSource struct{}

func (CryptoTileSource) NextTile() int {
	n, err := rand.Int(rand.Reader, big.NewInt(GridSize))
	if err != nil {
		// Fallback - should never happen
		return 0
	}
	return int(n.Int64())
}
