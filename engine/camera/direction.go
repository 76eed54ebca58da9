package camera

// Direction identifies one of the six free-fly movement directions.
// FORWARD/BACKWARD follow the camera's front vector, LEFT/RIGHT its right vector,
// and UP/DOWN the world up vector.
type Direction uint8

const (
	DirectionForward Direction = iota
	DirectionBackward
	DirectionLeft
	DirectionRight
	DirectionUp
	DirectionDown

	directionCount
)

// Directions lists every movement direction in a fixed order.
// Input code iterates this slice so that simultaneous key presses are applied deterministically.
var Directions = [...]Direction{
	DirectionForward,
	DirectionBackward,
	DirectionLeft,
	DirectionRight,
	DirectionUp,
	DirectionDown,
}

var directionNames = [directionCount]string{
	DirectionForward:  "forward",
	DirectionBackward: "backward",
	DirectionLeft:     "left",
	DirectionRight:    "right",
	DirectionUp:       "up",
	DirectionDown:     "down",
}

// Valid reports whether d is one of the six declared directions.
//
// Returns:
//   - bool: true if d is a declared direction
func (d Direction) Valid() bool {
	return d < directionCount
}

func (d Direction) String() string {
	if !d.Valid() {
		return "unknown"
	}
	return directionNames[d]
}

// ParseDirection maps a lower-case direction name (as produced by String) back to a Direction.
//
// Parameters:
//   - name: the direction name, e.g. "forward"
//
// Returns:
//   - Direction: the matching direction
//   - bool: false if name does not name a direction
func ParseDirection(name string) (Direction, bool) {
	for d, n := range directionNames {
		if n == name {
			return Direction(d), true
		}
	}
	return 0, false
}
