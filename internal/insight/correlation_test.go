package insight

import (
	"strings"
	"testing"

	"example.com/mindful-money/insights/internal/models"
)

// TestCorrelationInsightsFiltersWeakResults проверяет отбор только надежных пар.
func TestCorrelationInsightsFiltersWeakResults(t *testing.T) {
	weak := models.CorrelationResult{
		Strength:   models.StrengthWeak,
		Confidence: models.ConfidenceHigh,
		DataPoints: 10,
	}
	lowConfidence := models.CorrelationResult{
		Strength:   models.StrengthStrong,
		Confidence: models.ConfidenceLow,
		DataPoints: 3,
	}

	correlations := map[models.PairKey]models.CorrelationResult{
		models.PairStressImpulse: weak,
		models.PairSleepDining:   lowConfidence,
	}

	if got := correlationInsights(correlations); len(got) != 0 {
		t.Fatalf("expected no insights, got %d", len(got))
	}
}

// TestCorrelationInsightsPriority проверяет приоритет по силе связи.
func TestCorrelationInsightsPriority(t *testing.T) {
	moderate := models.CorrelationResult{
		Strength:   models.StrengthModerate,
		Direction:  models.DirectionNegative,
		Confidence: models.ConfidenceMedium,
		DataPoints: 5,
		Insight:    "Based on 5 weeks: exercise days and spending control show a moderate negative relationship.",
	}

	correlations := map[models.PairKey]models.CorrelationResult{
		models.PairStressImpulse:   strongResult("Based on 8 weeks: stress levels and impulse purchases show a strong positive relationship."),
		models.PairExerciseControl: moderate,
	}

	insights := correlationInsights(correlations)

	if len(insights) != 2 {
		t.Fatalf("expected 2 insights, got %d", len(insights))
	}

	if insights[0].Priority != 2 {
		t.Fatalf("expected priority 2 for strong pair, got %d", insights[0].Priority)
	}

	if insights[1].Priority != 3 {
		t.Fatalf("expected priority 3 for moderate pair, got %d", insights[1].Priority)
	}

	if insights[0].Category != models.CategoryMental {
		t.Fatalf("expected mental category, got %v", insights[0].Category)
	}
}

// TestCorrelationInsightsFallbackMeta проверяет запасные категорию и заголовок.
func TestCorrelationInsightsFallbackMeta(t *testing.T) {
	correlations := map[models.PairKey]models.CorrelationResult{
		models.LegacyPairStressImpulse: strongResult(""),
	}

	insights := correlationInsights(correlations)

	if len(insights) != 1 {
		t.Fatalf("expected 1 insight, got %d", len(insights))
	}

	if insights[0].Title != "🔗 Pattern Found" {
		t.Fatalf("expected fallback title, got %s", insights[0].Title)
	}

	if insights[0].Category != models.CategoryFinancial {
		t.Fatalf("expected financial category, got %v", insights[0].Category)
	}

	if !strings.Contains(insights[0].Message, "strong positive") {
		t.Fatalf("expected generated message, got %q", insights[0].Message)
	}
}

// TestCorrelationAction проверяет совет о паузе для стрессовых пар.
func TestCorrelationAction(t *testing.T) {
	positive := models.CorrelationResult{Direction: models.DirectionPositive}
	negative := models.CorrelationResult{Direction: models.DirectionNegative}

	action := correlationAction(models.PairStressImpulse, positive)
	if !strings.Contains(action, "24 hours") {
		t.Fatalf("expected pause suggestion, got %q", action)
	}

	action = correlationAction(models.PairStressImpulse, negative)
	if !strings.Contains(action, "Keep tracking") {
		t.Fatalf("expected default action, got %q", action)
	}

	action = correlationAction(models.PairSleepDining, positive)
	if !strings.Contains(action, "Keep tracking") {
		t.Fatalf("expected default action, got %q", action)
	}
}
