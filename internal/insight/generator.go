package insight

import (
	"sort"

	"example.com/mindful-money/insights/internal/models"
)

const maxInsights = 5

type Generator struct{}

// NewGenerator создает генератор еженедельных инсайтов.
func NewGenerator() *Generator {
	return &Generator{}
}

// GenerateWeekly прогоняет шесть анализаторов, сортирует результаты по
// приоритету и заголовку и возвращает не более пяти инсайтов.
func (g *Generator) GenerateWeekly(
	current models.Checkin,
	previous []models.Checkin,
	correlations map[models.PairKey]models.CorrelationResult,
	baselines models.Baselines,
) []models.WellnessInsight {
	insights := make([]models.WellnessInsight, 0, 16)

	insights = append(insights, correlationInsights(correlations)...)
	insights = append(insights, trendInsights(current, previous)...)
	insights = append(insights, spendingInsights(current, baselines)...)
	insights = append(insights, anomalyInsights(current)...)
	insights = append(insights, achievementInsights(current, previous)...)
	insights = append(insights, recommendationInsights(current, correlations)...)

	sort.SliceStable(insights, func(i, j int) bool {
		if insights[i].Priority != insights[j].Priority {
			return insights[i].Priority < insights[j].Priority
		}

		return insights[i].Title < insights[j].Title
	})

	if len(insights) > maxInsights {
		insights = insights[:maxInsights]
	}

	return insights
}
