package hexui

import "math"

// HexExRadius is the circumradius of a map cell in world units.
const HexExRadius = 1.4

// HexInRadius is the inradius (apothem) of a map cell: HexExRadius * cos(30°).
var HexInRadius = HexExRadius * math.Sqrt(3) / 2

// MapPos addresses a hex cell on the map.
type MapPos struct {
	X, Y int
}

// WorldPos is a position in world units.
type WorldPos struct {
	X, Y float64
}

// MapPosToWorldPos returns the world-space centre of the cell at pos.
//
// Cells are pointy-top and laid out in rows; even rows are shifted right by
// one inradius so neighbouring rows interlock.
func MapPosToWorldPos(pos MapPos) WorldPos {
	w := WorldPos{
		X: float64(pos.X) * HexInRadius * 2,
		Y: float64(pos.Y) * HexExRadius * 1.5,
	}
	if pos.Y%2 == 0 {
		w.X += HexInRadius
	}
	return w
}

// HexCorners returns the six corners of the cell centred at c, starting at
// the lower-right corner and going counter-clockwise.
func HexCorners(c WorldPos) [6]WorldPos {
	var out [6]WorldPos
	for i := range out {
		angle := (60*float64(i) - 30) * math.Pi / 180
		out[i] = WorldPos{
			X: c.X + HexExRadius*math.Cos(angle),
			Y: c.Y + HexExRadius*math.Sin(angle),
		}
	}
	return out
}
