package insight

import (
	"fmt"
	"strings"

	"example.com/mindful-money/insights/internal/models"
)

type pairMeta struct {
	category models.InsightCategory
	title    string
}

var pairMetas = map[models.PairKey]pairMeta{
	models.PairStressImpulse:     {category: models.CategoryMental, title: "💸 Stress & Impulse Buys"},
	models.PairStressTotal:       {category: models.CategoryMental, title: "📈 Stress & Total Spending"},
	models.PairExerciseControl:   {category: models.CategoryPhysical, title: "💪 Exercise & Spending Control"},
	models.PairSleepDining:       {category: models.CategoryPhysical, title: "😴 Sleep & Dining Out"},
	models.PairMoodEntertainment: {category: models.CategoryMental, title: "🎭 Mood & Entertainment"},
	models.PairMoodShopping:      {category: models.CategoryMental, title: "🛍️ Mood & Shopping"},
	models.PairMeditationImpulse: {category: models.CategoryMental, title: "🧘 Meditation & Impulse Buys"},
	models.PairRelationshipSpend: {category: models.CategoryRelational, title: "❤️ Relationships & Spending"},
}

// Порядок обхода фиксирован, чтобы результат не зависел от порядка ключей map.
var orderedPairKeys = []models.PairKey{
	models.PairStressImpulse,
	models.PairStressTotal,
	models.PairExerciseControl,
	models.PairSleepDining,
	models.PairMoodEntertainment,
	models.PairMoodShopping,
	models.PairMeditationImpulse,
	models.PairRelationshipSpend,
	models.LegacyPairStressImpulse,
}

func correlationInsights(correlations map[models.PairKey]models.CorrelationResult) []models.WellnessInsight {
	insights := make([]models.WellnessInsight, 0, len(correlations))

	for _, key := range orderedPairKeys {
		result, ok := correlations[key]
		if !ok || !isActionable(result) {
			continue
		}

		priority := 3
		if result.Strength == models.StrengthStrong {
			priority = 2
		}

		meta, ok := pairMetas[key]
		if !ok {
			meta = pairMeta{category: models.CategoryFinancial, title: "🔗 Pattern Found"}
		}

		message := result.Insight
		if message == "" {
			message = fmt.Sprintf("Your check-ins show a %s %s link between these habits.",
				result.Strength, result.Direction)
		}

		insights = append(insights, models.WellnessInsight{
			Type:        models.InsightTypeCorrelation,
			Title:       meta.title,
			Message:     message,
			DataBacking: fmt.Sprintf("%d weeks of check-ins, %s confidence", result.DataPoints, result.Confidence),
			Action:      correlationAction(key, result),
			Priority:    priority,
			Category:    meta.category,
		})
	}

	return insights
}

func correlationAction(key models.PairKey, result models.CorrelationResult) string {
	if result.Direction == models.DirectionPositive && strings.Contains(string(key), "stress") {
		return "Try waiting 24 hours before non-essential purchases when stress runs high."
	}

	return "Keep tracking your check-ins so we can confirm this pattern."
}

func isActionable(result models.CorrelationResult) bool {
	switch result.Strength {
	case models.StrengthModerate, models.StrengthStrong:
	default:
		return false
	}

	switch result.Confidence {
	case models.ConfidenceMedium, models.ConfidenceHigh:
		return true
	default:
		return false
	}
}
