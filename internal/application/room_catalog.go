package application

import "sort"

// Room describes one classroom available for booking.
type Room struct {
	ID       string
	Name     string
	Capacity int
	Features []string
	Type     string
}

// RoomCatalog holds the fixed set of classrooms the service knows about.
// Rooms are configured at startup and never change while the process runs.
type RoomCatalog struct {
	rooms []Room
	index map[string]Room
}

// NewRoomCatalog builds a catalog from the configured room list.
func NewRoomCatalog(rooms []Room) *RoomCatalog {
	sorted := make([]Room, len(rooms))
	copy(sorted, rooms)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	index := make(map[string]Room, len(sorted))
	for _, room := range sorted {
		index[room.ID] = room
	}
	return &RoomCatalog{rooms: sorted, index: index}
}

// Rooms returns the catalog ordered by room id.
func (c *RoomCatalog) Rooms() []Room {
	if c == nil {
		return nil
	}
	out := make([]Room, len(c.rooms))
	copy(out, c.rooms)
	return out
}

// Lookup returns the room with the given id.
func (c *RoomCatalog) Lookup(id string) (Room, bool) {
	if c == nil {
		return Room{}, false
	}
	room, ok := c.index[id]
	return room, ok
}
