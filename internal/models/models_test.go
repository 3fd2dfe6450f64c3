package models

import "testing"

func ptr(v float64) *float64 {
	return &v
}

// TestValue проверяет чтение опциональных полей.
func TestValue(t *testing.T) {
	if got := Value(nil); got != 0 {
		t.Fatalf("expected 0 for nil, got %v", got)
	}

	if got := Value(ptr(7.5)); got != 7.5 {
		t.Fatalf("expected 7.5, got %v", got)
	}
}

// TestTotalSpending проверяет сумму расходов недели.
func TestTotalSpending(t *testing.T) {
	checkin := Checkin{
		GroceriesEstimate: ptr(120),
		DiningEstimate:    ptr(45.5),
		ShoppingEstimate:  ptr(30),
		ImpulseSpending:   ptr(12.5),
	}

	if got := checkin.TotalSpending(); got != 208 {
		t.Fatalf("expected 208, got %v", got)
	}
}

// TestTotalSpendingEmpty проверяет сумму для пустой недели.
func TestTotalSpendingEmpty(t *testing.T) {
	var checkin Checkin

	if got := checkin.TotalSpending(); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
}
