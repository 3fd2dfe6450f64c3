package insight

import (
	"fmt"

	"example.com/mindful-money/insights/internal/models"
	"example.com/mindful-money/insights/internal/money"
)

func achievementInsights(current models.Checkin, previous []models.Checkin) []models.WellnessInsight {
	insights := make([]models.WellnessInsight, 0, 4)

	impulse := models.Value(current.ImpulseSpending)
	if impulse == 0 && hadImpulseSpending(previous) {
		insights = append(insights, models.WellnessInsight{
			Type:        models.InsightTypeAchievement,
			Title:       "Zero Impulse Week",
			Message:     "No impulse purchases this week. That takes real awareness.",
			DataBacking: "Impulse spending at $0.00 after spending in earlier weeks",
			Action:      "Keep the streak going with the same routine next week.",
			Priority:    2,
			Category:    models.CategorySpending,
		})
	}

	if len(previous) >= 2 {
		series := recentSeries(current, previous, func(c models.Checkin) float64 { return models.Value(c.StressSpending) })
		if allZero(series) {
			insights = append(insights, models.WellnessInsight{
				Type:        models.InsightTypeAchievement,
				Title:       "No Stress Spending Streak",
				Message:     "No stress-driven spending across your recent check-ins.",
				DataBacking: fmt.Sprintf("%d straight weeks at $0.00 stress spending", len(series)),
				Action:      "Notice what kept stress in check and keep it handy.",
				Priority:    2,
				Category:    models.CategorySpending,
			})
		}
	}

	exercise := models.Value(current.ExerciseDays)
	if best := maxExerciseDays(previous); exercise >= 5 && best < 5 {
		insights = append(insights, models.WellnessInsight{
			Type:        models.InsightTypeAchievement,
			Title:       "Fitness Five",
			Message:     fmt.Sprintf("You hit %.0f exercise days, a new personal mark.", exercise),
			DataBacking: fmt.Sprintf("%.0f days this week against a previous best of %.0f", exercise, best),
			Action:      "Consider rewarding the habit with something that is not a purchase.",
			Priority:    2,
			Category:    models.CategoryPhysical,
		})
	}

	total := current.TotalSpending()
	if lowest, ok := lowestPositiveTotal(previous); total > 0 && ok && total <= lowest {
		amount := total
		insights = append(insights, models.WellnessInsight{
			Type:         models.InsightTypeAchievement,
			Title:        "Lowest Spending Week",
			Message:      fmt.Sprintf("Your %s total is the lowest week on record.", money.Format(total)),
			DataBacking:  fmt.Sprintf("Weekly total %s, under every earlier week", money.Format(total)),
			Action:       "Take a moment to enjoy it, then set the bar for next week.",
			Priority:     2,
			Category:     models.CategorySpending,
			DollarAmount: &amount,
		})
	}

	return insights
}

func hadImpulseSpending(previous []models.Checkin) bool {
	for _, checkin := range previous {
		if models.Value(checkin.ImpulseSpending) > 0 {
			return true
		}
	}

	return false
}

func maxExerciseDays(previous []models.Checkin) float64 {
	best := 0.0
	for _, checkin := range previous {
		if days := models.Value(checkin.ExerciseDays); days > best {
			best = days
		}
	}

	return best
}

func lowestPositiveTotal(previous []models.Checkin) (float64, bool) {
	lowest := 0.0
	found := false

	for _, checkin := range previous {
		total := checkin.TotalSpending()
		if total <= 0 {
			continue
		}

		if !found || total < lowest {
			lowest = total
			found = true
		}
	}

	return lowest, found
}
