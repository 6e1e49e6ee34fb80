package application

import "testing"

func TestRoomCatalog(t *testing.T) {
	t.Parallel()

	catalog := NewRoomCatalog([]Room{
		{ID: "808", Name: "808호"},
		{ID: "801", Name: "801호"},
	})

	rooms := catalog.Rooms()
	if len(rooms) != 2 || rooms[0].ID != "801" || rooms[1].ID != "808" {
		t.Fatalf("expected rooms sorted by id, got %+v", rooms)
	}

	if _, ok := catalog.Lookup("808"); !ok {
		t.Fatal("expected to find room 808")
	}
	if _, ok := catalog.Lookup("999"); ok {
		t.Fatal("did not expect to find room 999")
	}

	var nilCatalog *RoomCatalog
	if rooms := nilCatalog.Rooms(); rooms != nil {
		t.Fatalf("expected nil rooms from nil catalog, got %+v", rooms)
	}
}
