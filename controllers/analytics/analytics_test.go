package analyticsControllers

import "testing"

func TestBuildOrderFiltersDateOnly(t *testing.T) {
	where, args := BuildOrderFilters("orders", "2025-01-01", "2025-01-31", "", "")

	if where != "WHERE orders.created_at BETWEEN ? AND ?" {
		t.Fatalf("unexpected where clause: %s", where)
	}
	if len(args) != 2 || args[0] != "2025-01-01" || args[1] != "2025-01-31" {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestBuildOrderFiltersAllFilters(t *testing.T) {
	where, args := BuildOrderFilters("o", "2025-01-01", "2025-01-31", "3", "paid")

	want := "WHERE o.created_at BETWEEN ? AND ?" +
		" AND o.id IN (SELECT order_id FROM order_items WHERE product_id IN (SELECT id FROM products WHERE category_id = ?))" +
		" AND o.status = ?"
	if where != want {
		t.Fatalf("where clause:\ngot  %s\nwant %s", where, want)
	}

	if len(args) != 4 {
		t.Fatalf("args length: got %d want 4", len(args))
	}
	if args[2] != "3" || args[3] != "paid" {
		t.Fatalf("filter args: %v", args)
	}
}

func TestBuildOrderFiltersStatusOnly(t *testing.T) {
	where, args := BuildOrderFilters("orders", "2025-01-01", "2025-12-31", "", "cancelled")

	if where != "WHERE orders.created_at BETWEEN ? AND ? AND orders.status = ?" {
		t.Fatalf("unexpected where clause: %s", where)
	}
	if len(args) != 3 || args[2] != "cancelled" {
		t.Fatalf("unexpected args: %v", args)
	}
}
