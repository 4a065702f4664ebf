package repository

import "testing"

func TestOrderScopeCustomer(t *testing.T) {
	s := OrderScope{UserID: 5}
	crew := int64(9)

	if !s.allows(5, nil) {
		t.Error("Expected customer to see their own order")
	}
	if !s.allows(5, &crew) {
		t.Error("Expected customer to see their own assigned order")
	}
	if s.allows(6, nil) {
		t.Error("Expected customer not to see a foreign order")
	}
}

func TestOrderScopeDeliveryCrew(t *testing.T) {
	s := OrderScope{UserID: 9, IsDeliveryCrew: true}
	mine := int64(9)
	other := int64(10)

	if !s.allows(5, &mine) {
		t.Error("Expected crew to see an order assigned to them")
	}
	if s.allows(5, &other) {
		t.Error("Expected crew not to see an order assigned to another courier")
	}
	if s.allows(5, nil) {
		t.Error("Expected crew not to see an unassigned order")
	}
	// crew member's own purchases don't leak in through the crew scope
	if s.allows(9, nil) {
		t.Error("Expected crew scope to ignore order ownership")
	}
}

func TestOrderScopeManager(t *testing.T) {
	s := OrderScope{UserID: 2, IsManagerOrStaff: true}
	crew := int64(9)

	if !s.allows(5, nil) {
		t.Error("Expected manager to see any order")
	}
	if !s.allows(5, &crew) {
		t.Error("Expected manager to see assigned orders")
	}
}
