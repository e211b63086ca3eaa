package params

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/maptile"

	"github.com/routebind/route-runtime/errors"
)

// Tile zoom bounds served by the engine's debug tile plugin.
const (
	MinTileZoom = 12
	MaxTileZoom = 22
)

// Tile addresses one vector tile in the slippy-map scheme.
type Tile struct {
	tile maptile.Tile
}

// NewTile creates a tile request for x/y at the given zoom. Coordinates
// outside the zoom's 2^z grid or zooms outside the served range are
// InvalidArgument.
func NewTile(x, y, zoom uint32) (*Tile, error) {
	if zoom < MinTileZoom || zoom > MaxTileZoom {
		return nil, errors.InvalidArgument("tile zoom %d outside served range [%d, %d]", zoom, MinTileZoom, MaxTileZoom)
	}
	if limit := uint32(1) << zoom; x >= limit || y >= limit {
		return nil, errors.InvalidArgument("tile (%d, %d) outside zoom %d grid", x, y, zoom)
	}
	return &Tile{tile: maptile.New(x, y, maptile.Zoom(zoom))}, nil
}

// X returns the tile column.
func (p *Tile) X() uint32 {
	if p == nil {
		return 0
	}
	return p.tile.X
}

// Y returns the tile row.
func (p *Tile) Y() uint32 {
	if p == nil {
		return 0
	}
	return p.tile.Y
}

// Z returns the tile zoom.
func (p *Tile) Z() uint32 {
	if p == nil {
		return 0
	}
	return uint32(p.tile.Z)
}

// Bound returns the geographic bounds covered by the tile.
func (p *Tile) Bound() orb.Bound {
	if p == nil {
		return orb.Bound{}
	}
	return p.tile.Bound()
}

// CoordinateCount implements the dispatch contract; tiles carry no
// coordinates.
func (p *Tile) CoordinateCount() int {
	return 0
}

// Valid checks the builder before dispatch.
func (p *Tile) Valid() error {
	if p == nil {
		return errors.InvalidArgument("nil parameters")
	}
	if limit := uint32(1) << p.tile.Z; p.tile.X >= limit || p.tile.Y >= limit {
		return errors.InvalidArgument("tile (%d, %d) outside zoom %d grid", p.tile.X, p.tile.Y, p.tile.Z)
	}
	if z := uint32(p.tile.Z); z < MinTileZoom || z > MaxTileZoom {
		return errors.InvalidArgument("tile zoom %d outside served range [%d, %d]", z, MinTileZoom, MaxTileZoom)
	}
	return nil
}
