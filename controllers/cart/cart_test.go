package cartControllers

import (
	"testing"

	"github.com/Orekusandoru/online-store/models"
)

func TestMergeCartItemsSumsQuantities(t *testing.T) {
	server := []models.CartItem{
		{ProductID: 1, Name: "Phone", Price: 100, Quantity: 2},
		{ProductID: 2, Name: "Case", Price: 10, Quantity: 1},
	}
	guest := []models.CartItem{
		{ProductID: 1, Name: "Phone (stale)", Price: 95, Quantity: 3},
		{ProductID: 5, Name: "Charger", Price: 25, Quantity: 1},
	}

	merged := MergeCartItems(server, guest)

	if len(merged) != 3 {
		t.Fatalf("merged length: got %d want 3", len(merged))
	}

	byID := make(map[uint]models.CartItem)
	for _, item := range merged {
		byID[item.ProductID] = item
	}

	phone := byID[1]
	if phone.Quantity != 5 {
		t.Errorf("duplicate product quantity: got %d want 5", phone.Quantity)
	}
	// Server-side name and price win over the stale guest copy.
	if phone.Name != "Phone" || phone.Price != 100 {
		t.Errorf("server fields lost: %+v", phone)
	}

	if byID[2].Quantity != 1 {
		t.Errorf("untouched server item changed: %+v", byID[2])
	}
	if byID[5].Quantity != 1 || byID[5].Name != "Charger" {
		t.Errorf("guest-only item missing: %+v", byID[5])
	}
}

func TestMergeCartItemsEmptySides(t *testing.T) {
	guest := []models.CartItem{{ProductID: 3, Quantity: 2}}

	if merged := MergeCartItems(nil, guest); len(merged) != 1 || merged[0].ProductID != 3 {
		t.Errorf("merge into empty server cart: %+v", merged)
	}

	server := []models.CartItem{{ProductID: 4, Quantity: 1}}
	if merged := MergeCartItems(server, nil); len(merged) != 1 || merged[0].ProductID != 4 {
		t.Errorf("merge of empty guest cart: %+v", merged)
	}

	if merged := MergeCartItems(nil, nil); len(merged) != 0 {
		t.Errorf("merge of two empty carts: %+v", merged)
	}
}

func TestMergeCartItemsDoesNotMutateInput(t *testing.T) {
	server := []models.CartItem{{ProductID: 1, Quantity: 1}}
	guest := []models.CartItem{{ProductID: 1, Quantity: 4}}

	MergeCartItems(server, guest)

	if server[0].Quantity != 1 {
		t.Errorf("server slice mutated: %+v", server[0])
	}
	if guest[0].Quantity != 4 {
		t.Errorf("guest slice mutated: %+v", guest[0])
	}
}
