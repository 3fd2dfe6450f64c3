package insight

import (
	"testing"

	"example.com/mindful-money/insights/internal/models"
)

// TestRecommendationInsights проверяет рекомендацию паузы при высоком стрессе.
func TestRecommendationInsights(t *testing.T) {
	current := models.Checkin{StressLevel: ptr(6)}
	correlations := map[models.PairKey]models.CorrelationResult{
		models.PairStressImpulse: strongResult("Based on 8 weeks: stress levels and impulse purchases show a strong positive relationship."),
	}

	insights := recommendationInsights(current, correlations)

	if len(insights) != 1 {
		t.Fatalf("expected 1 insight, got %d", len(insights))
	}

	if insights[0].Title != "Spending Shield" {
		t.Fatalf("expected spending shield, got %s", insights[0].Title)
	}

	if insights[0].Priority != 1 {
		t.Fatalf("expected priority 1, got %d", insights[0].Priority)
	}
}

// TestRecommendationInsightsLegacyKey проверяет поиск пары по старому ключу.
func TestRecommendationInsightsLegacyKey(t *testing.T) {
	current := models.Checkin{StressLevel: ptr(8)}
	correlations := map[models.PairKey]models.CorrelationResult{
		models.LegacyPairStressImpulse: strongResult(""),
	}

	if got := recommendationInsights(current, correlations); len(got) != 1 {
		t.Fatalf("expected 1 insight via legacy key, got %d", len(got))
	}
}

// TestRecommendationInsightsLowStress проверяет молчание при умеренном стрессе.
func TestRecommendationInsightsLowStress(t *testing.T) {
	current := models.Checkin{StressLevel: ptr(5)}
	correlations := map[models.PairKey]models.CorrelationResult{
		models.PairStressImpulse: strongResult(""),
	}

	if got := recommendationInsights(current, correlations); got != nil {
		t.Fatalf("expected nil, got %d insights", len(got))
	}
}

// TestRecommendationInsightsWeakCorrelation проверяет отсев слабой связи.
func TestRecommendationInsightsWeakCorrelation(t *testing.T) {
	current := models.Checkin{StressLevel: ptr(9)}
	correlations := map[models.PairKey]models.CorrelationResult{
		models.PairStressImpulse: {
			Strength:   models.StrengthWeak,
			Confidence: models.ConfidenceHigh,
		},
	}

	if got := recommendationInsights(current, correlations); got != nil {
		t.Fatalf("expected nil, got %d insights", len(got))
	}
}
