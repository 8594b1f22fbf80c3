package stats

import "testing"

func TestInventory_AddStacksExisting(t *testing.T) {
	var inv Inventory
	if !inv.Add("torch", 1) {
		t.Fatal("Expected add to succeed")
	}
	if !inv.Add("torch", 2) {
		t.Fatal("Expected stacking add to succeed")
	}
	if got := inv.Quantity("torch"); got != 3 {
		t.Errorf("Expected quantity 3, got %d", got)
	}
	if len(inv) != 1 {
		t.Errorf("Expected a single slot, got %d", len(inv))
	}
}

func TestInventory_CapacityLimitsDistinctSlots(t *testing.T) {
	var inv Inventory
	items := []string{"torch", "rope", "bandage", "key", "map"}
	for _, id := range items {
		if !inv.Add(id, 1) {
			t.Fatalf("Expected add of %s to succeed", id)
		}
	}

	if inv.Add("lantern", 1) {
		t.Error("Expected add beyond capacity to fail")
	}
	if len(inv) != InventoryCapacity {
		t.Errorf("Expected %d slots, got %d", InventoryCapacity, len(inv))
	}

	// Stacking an existing item still works at capacity.
	if !inv.Add("torch", 5) {
		t.Error("Expected stacking at capacity to succeed")
	}
	if got := inv.Quantity("torch"); got != 6 {
		t.Errorf("Expected 6 torches, got %d", got)
	}
}

func TestInventory_RemoveClampsToHeld(t *testing.T) {
	var inv Inventory
	inv.Add("bandage", 2)

	if removed := inv.Remove("bandage", 5); removed != 2 {
		t.Errorf("Expected 2 removed, got %d", removed)
	}
	if inv.Has("bandage") {
		t.Error("Expected empty slot to be dropped")
	}
	if removed := inv.Remove("bandage", 1); removed != 0 {
		t.Errorf("Expected 0 removed from empty inventory, got %d", removed)
	}
}

func TestInventory_RemovePartial(t *testing.T) {
	var inv Inventory
	inv.Add("ration", 4)

	if removed := inv.Remove("ration", 3); removed != 3 {
		t.Errorf("Expected 3 removed, got %d", removed)
	}
	if got := inv.Quantity("ration"); got != 1 {
		t.Errorf("Expected 1 remaining, got %d", got)
	}
}

func TestInventory_Clone(t *testing.T) {
	var inv Inventory
	inv.Add("torch", 2)

	clone := inv.Clone()
	clone.Add("torch", 3)

	if got := inv.Quantity("torch"); got != 2 {
		t.Errorf("Expected original untouched at 2, got %d", got)
	}
	if got := clone.Quantity("torch"); got != 5 {
		t.Errorf("Expected clone at 5, got %d", got)
	}
}
