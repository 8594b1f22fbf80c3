package stats

// InventoryCapacity is the maximum number of distinct item slots a player
// can carry.
const InventoryCapacity = 5

// ItemSlot is one inventory entry: an item id with a stacked quantity.
type ItemSlot struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
}

// Inventory is an ordered, capacity-bounded list of item slots. Quantities
// stack; removing the last unit of an item removes its slot.
type Inventory []ItemSlot

// Quantity returns how many units of an item are held.
func (inv Inventory) Quantity(itemID string) int {
	for _, slot := range inv {
		if slot.ItemID == itemID {
			return slot.Quantity
		}
	}
	return 0
}

// Has reports whether at least one unit of the item is held.
func (inv Inventory) Has(itemID string) bool {
	return inv.Quantity(itemID) > 0
}

// Add stacks n units of an item into the inventory. Returns false without
// modifying the inventory when a new slot would exceed capacity.
func (inv *Inventory) Add(itemID string, n int) bool {
	if n <= 0 {
		return true
	}
	for i := range *inv {
		if (*inv)[i].ItemID == itemID {
			(*inv)[i].Quantity += n
			return true
		}
	}
	if len(*inv) >= InventoryCapacity {
		return false
	}
	*inv = append(*inv, ItemSlot{ItemID: itemID, Quantity: n})
	return true
}

// Remove takes up to n units of an item out of the inventory and returns how
// many were actually removed. The slot is dropped when its quantity reaches
// zero.
func (inv *Inventory) Remove(itemID string, n int) int {
	if n <= 0 {
		return 0
	}
	for i := range *inv {
		if (*inv)[i].ItemID != itemID {
			continue
		}
		removed := n
		if removed > (*inv)[i].Quantity {
			removed = (*inv)[i].Quantity
		}
		(*inv)[i].Quantity -= removed
		if (*inv)[i].Quantity == 0 {
			*inv = append((*inv)[:i], (*inv)[i+1:]...)
		}
		return removed
	}
	return 0
}

// Clone returns an independent copy of the inventory.
func (inv Inventory) Clone() Inventory {
	if inv == nil {
		return nil
	}
	out := make(Inventory, len(inv))
	copy(out, inv)
	return out
}
