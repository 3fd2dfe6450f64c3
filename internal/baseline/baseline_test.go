package baseline

import (
	"testing"

	"example.com/mindful-money/insights/internal/models"
)

func ptr(v float64) *float64 {
	return &v
}

// TestCompute проверяет средние по категориям и итоговой сумме.
func TestCompute(t *testing.T) {
	history := []models.Checkin{
		{GroceriesEstimate: ptr(100), ImpulseSpending: ptr(20)},
		{GroceriesEstimate: ptr(140), ImpulseSpending: ptr(40)},
	}

	baselines := Compute(history)

	if got := baselines[models.BaselineGroceries]; got != 120 {
		t.Fatalf("expected avg groceries 120, got %v", got)
	}

	if got := baselines[models.BaselineImpulse]; got != 30 {
		t.Fatalf("expected avg impulse 30, got %v", got)
	}

	if got := baselines[models.BaselineTotalVariable]; got != 150 {
		t.Fatalf("expected avg total 150, got %v", got)
	}

	if got := baselines[models.BaselineTotal]; got != 150 {
		t.Fatalf("expected avg total 150, got %v", got)
	}
}

// TestComputeSkipsMissingMetrics проверяет отсутствие ключей без данных.
func TestComputeSkipsMissingMetrics(t *testing.T) {
	history := []models.Checkin{
		{GroceriesEstimate: ptr(100)},
		{GroceriesEstimate: ptr(140)},
	}

	baselines := Compute(history)

	if _, ok := baselines[models.BaselineShopping]; ok {
		t.Fatal("expected no shopping baseline without data")
	}

	if _, ok := baselines[models.BaselineGroceries]; !ok {
		t.Fatal("expected groceries baseline")
	}
}

// TestComputeSkipsEmptyWeeks проверяет, что недели без расходов не учитываются.
func TestComputeSkipsEmptyWeeks(t *testing.T) {
	history := []models.Checkin{
		{GroceriesEstimate: ptr(100)},
		{StressLevel: ptr(8)},
	}

	baselines := Compute(history)

	if got := baselines[models.BaselineTotal]; got != 100 {
		t.Fatalf("expected avg total 100, got %v", got)
	}
}

// TestComputeEmptyHistory проверяет пустой результат без истории.
func TestComputeEmptyHistory(t *testing.T) {
	if got := Compute(nil); len(got) != 0 {
		t.Fatalf("expected empty baselines, got %d entries", len(got))
	}
}

// TestCompareToBaseline проверяет пороги сравнения с базовой суммой.
func TestCompareToBaseline(t *testing.T) {
	cases := []struct {
		current  float64
		baseline float64
		want     models.SpendingLevel
	}{
		{30, 100, models.SpendingMuchLower},
		{60, 100, models.SpendingLower},
		{80, 100, models.SpendingNormal},
		{120, 100, models.SpendingNormal},
		{130, 100, models.SpendingHigher},
		{150, 100, models.SpendingHigher},
		{151, 100, models.SpendingMuchHigher},
		{50, 0, models.SpendingNormal},
		{50, -10, models.SpendingNormal},
	}

	for _, tc := range cases {
		if got := CompareToBaseline(tc.current, tc.baseline); got != tc.want {
			t.Fatalf("compare %v to %v: expected %v, got %v", tc.current, tc.baseline, tc.want, got)
		}
	}
}
