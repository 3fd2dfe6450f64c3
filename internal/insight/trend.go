package insight

import (
	"fmt"

	"example.com/mindful-money/insights/internal/models"
	"example.com/mindful-money/insights/internal/money"
)

func trendInsights(current models.Checkin, previous []models.Checkin) []models.WellnessInsight {
	if len(previous) < 2 {
		return nil
	}

	insights := make([]models.WellnessInsight, 0, 4)

	exercise := recentSeries(current, previous, func(c models.Checkin) float64 { return models.Value(c.ExerciseDays) })
	if isRising(exercise) {
		insights = append(insights, models.WellnessInsight{
			Type:        models.InsightTypeTrend,
			Title:       "Exercise Momentum",
			Message:     "Your exercise days have climbed for several weeks in a row.",
			DataBacking: fmt.Sprintf("%.0f days this week, up from %.0f", exercise[0], exercise[len(exercise)-1]),
			Action:      "Keep the routine going and notice how it steadies your spending.",
			Priority:    2,
			Category:    models.CategoryPhysical,
		})
	}

	stress := recentSeries(current, previous, func(c models.Checkin) float64 { return models.Value(c.StressLevel) })
	if isFalling(stress) {
		insights = append(insights, models.WellnessInsight{
			Type:        models.InsightTypeTrend,
			Title:       "Stress Trending Down",
			Message:     "Your stress level has eased week over week.",
			DataBacking: fmt.Sprintf("Stress %.0f this week, down from %.0f", stress[0], stress[len(stress)-1]),
			Action:      "Keep whatever is working. Your wallet tends to relax with you.",
			Priority:    2,
			Category:    models.CategoryMental,
		})
	}

	impulse := recentSeries(current, previous, func(c models.Checkin) float64 { return models.Value(c.ImpulseSpending) })
	if isRising(impulse) {
		amount := impulse[0]
		insights = append(insights, models.WellnessInsight{
			Type:  models.InsightTypeTrend,
			Title: "Impulse Trend",
			Message: fmt.Sprintf("Impulse purchases have been climbing, reaching %s this week from %s.",
				money.Format(impulse[0]), money.Format(impulse[len(impulse)-1])),
			DataBacking:  fmt.Sprintf("Impulse spending rose over the last %d weeks", len(impulse)),
			Action:       "Try a short pause before unplanned buys this week.",
			Priority:     3,
			Category:     models.CategorySpending,
			DollarAmount: &amount,
		})
	}

	stressSpending := recentSeries(current, previous, func(c models.Checkin) float64 { return models.Value(c.StressSpending) })
	if len(stressSpending) == 4 && allZero(stressSpending) {
		insights = append(insights, models.WellnessInsight{
			Type:        models.InsightTypeTrend,
			Title:       "Great Progress",
			Message:     "A full month without stress spending. That is real progress.",
			DataBacking: "No stress-tagged spending across the last 4 check-ins",
			Action:      "Celebrate the streak in a way that feels good and free.",
			Priority:    2,
			Category:    models.CategorySpending,
		})
	}

	return insights
}

// recentSeries строит ряд из текущей недели и до трех предыдущих, новые значения первыми.
func recentSeries(current models.Checkin, previous []models.Checkin, get func(models.Checkin) float64) []float64 {
	limit := len(previous)
	if limit > 3 {
		limit = 3
	}

	series := make([]float64, 0, limit+1)
	series = append(series, get(current))
	for _, checkin := range previous[:limit] {
		series = append(series, get(checkin))
	}

	return series
}

func isRising(series []float64) bool {
	if len(series) < 3 {
		return false
	}

	for i := 0; i < len(series)-1; i++ {
		if series[i] < series[i+1] {
			return false
		}
	}

	return series[0] > series[len(series)-1]
}

func isFalling(series []float64) bool {
	if len(series) < 3 {
		return false
	}

	for i := 0; i < len(series)-1; i++ {
		if series[i] > series[i+1] {
			return false
		}
	}

	return series[0] < series[len(series)-1]
}

func allZero(series []float64) bool {
	for _, value := range series {
		if value != 0 {
			return false
		}
	}

	return true
}
