package sim

import "testing"

func testMaterialStore(wood, electronics int) *MaterialStore {
	return NewMaterialStore(DefaultConfig().Materials, wood, electronics)
}

func TestMaterialStore_TryReserve_BlocksAtZero(t *testing.T) {
	// GIVEN an empty wood stock
	s := testMaterialStore(0, 60)

	// WHEN a body-making task tries to reserve 2 wood
	ok := s.TryReserve(MaterialWood, 2)

	// THEN the reservation fails and the level stays at zero, never negative
	if ok {
		t.Fatal("TryReserve succeeded on empty stock")
	}
	if s.Level(MaterialWood) != 0 {
		t.Errorf("Level: got %d, want 0", s.Level(MaterialWood))
	}
}

func TestMaterialStore_TryReserve_DecrementsAtTaskStart(t *testing.T) {
	// GIVEN 10 wood in stock
	s := testMaterialStore(10, 60)

	// WHEN 2 are reserved
	if !s.TryReserve(MaterialWood, 2) {
		t.Fatal("TryReserve failed with stock available")
	}

	// THEN the level reflects the draw immediately
	if s.Level(MaterialWood) != 8 {
		t.Errorf("Level: got %d, want 8", s.Level(MaterialWood))
	}
}

func TestMaterialStore_Replenish_ClipsToCapacity(t *testing.T) {
	// GIVEN a wood stock near capacity (500)
	s := testMaterialStore(450, 60)
	s.MarkOrdered(MaterialWood)

	// WHEN a 300-unit delivery arrives
	added := s.Replenish(MaterialWood, 300)

	// THEN only the fitting units are booked and the order flag clears
	if added != 50 {
		t.Errorf("added: got %d, want 50", added)
	}
	if s.Level(MaterialWood) != 500 {
		t.Errorf("Level: got %d, want 500", s.Level(MaterialWood))
	}
	if s.OrderPending(MaterialWood) {
		t.Error("order still pending after delivery")
	}
}
