package insight

import "example.com/mindful-money/insights/internal/models"

func recommendationInsights(current models.Checkin, correlations map[models.PairKey]models.CorrelationResult) []models.WellnessInsight {
	result, ok := correlations[models.PairStressImpulse]
	if !ok {
		result, ok = correlations[models.LegacyPairStressImpulse]
	}

	if !ok || !isActionable(result) {
		return nil
	}

	if models.Value(current.StressLevel) < 6 {
		return nil
	}

	return []models.WellnessInsight{{
		Type:        models.InsightTypeRecommendation,
		Title:       "Spending Shield",
		Message:     "Stress is high this week, and for you that usually shows up in impulse buys.",
		DataBacking: result.Insight,
		Action:      "Try a 24-hour wait on non-essential purchases this week.",
		Priority:    1,
		Category:    models.CategoryFinancial,
	}}
}
