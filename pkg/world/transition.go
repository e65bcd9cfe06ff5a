package world

// Transition is a one-way edge to another place, optionally gated by a
// condition and/or a key item.
type Transition struct {
	To        PlaceID
	Direction string
	Key       *Item
	Condition func(w *World) bool
}

// Accessible reports whether the player can use the transition right now.
// Both gates are evaluated fresh on every call.
func (t Transition) Accessible(w *World) bool {
	if t.Condition != nil && !t.Condition(w) {
		return false
	}
	if t.Key != nil && !w.Holds(t.Key) {
		return false
	}
	return true
}

var oppositeDirections = map[string]string{
	"north":     "south",
	"south":     "north",
	"east":      "west",
	"west":      "east",
	"up":        "down",
	"down":      "up",
	"in":        "out",
	"out":       "in",
	"northeast": "southwest",
	"southwest": "northeast",
	"northwest": "southeast",
	"southeast": "northwest",
}

// OppositeDirection returns the reverse of a direction label, or "" if it has none.
func OppositeDirection(direction string) string {
	return oppositeDirections[direction]
}
