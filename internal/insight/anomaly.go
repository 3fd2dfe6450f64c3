package insight

import (
	"fmt"

	"example.com/mindful-money/insights/internal/models"
	"example.com/mindful-money/insights/internal/money"
)

func anomalyInsights(current models.Checkin) []models.WellnessInsight {
	insights := make([]models.WellnessInsight, 0, 3)

	stress := models.Value(current.StressLevel)
	impulse := models.Value(current.ImpulseSpending)
	if stress >= 7 && impulse > 0 {
		amount := impulse
		insights = append(insights, models.WellnessInsight{
			Type:         models.InsightTypeAnomaly,
			Title:        "Stress Spending Alert",
			Message:      fmt.Sprintf("High stress this week came with %s in impulse purchases.", money.Format(impulse)),
			DataBacking:  fmt.Sprintf("Stress %.0f of 10, impulse spending %s", stress, money.Format(impulse)),
			Action:       "Try a quick walk or a pause before the next unplanned buy.",
			Priority:     1,
			Category:     models.CategoryFinancial,
			DollarAmount: &amount,
		})
	}

	mood := models.Value(current.OverallMood)
	shopping := models.Value(current.ShoppingEstimate)
	entertainment := models.Value(current.EntertainmentEstimate)
	if mood <= 4 && (shopping > 50 || entertainment > 50) {
		amount := shopping + entertainment
		insights = append(insights, models.WellnessInsight{
			Type:         models.InsightTypeAnomaly,
			Title:        "Mood & Spending",
			Message:      fmt.Sprintf("A low-mood week came with %s in shopping and entertainment.", money.Format(amount)),
			DataBacking:  fmt.Sprintf("Mood %.0f of 10, %s spent", mood, money.Format(amount)),
			Action:       "Consider a free mood boost first, like a walk or a call with a friend.",
			Priority:     1,
			Category:     models.CategoryMental,
			DollarAmount: &amount,
		})
	}

	sleep := models.Value(current.SleepQuality)
	dining := models.Value(current.DiningEstimate)
	if sleep <= 4 && dining > 50 {
		insights = append(insights, models.WellnessInsight{
			Type:        models.InsightTypeAnomaly,
			Title:       "Sleep & Dining",
			Message:     fmt.Sprintf("Tired weeks tend to mean takeout. Dining reached %s.", money.Format(dining)),
			DataBacking: fmt.Sprintf("Sleep quality %.0f of 10, dining %s", sleep, money.Format(dining)),
			Action:      "Try prepping one easy meal for nights when energy is low.",
			Priority:    2,
			Category:    models.CategoryPhysical,
		})
	}

	return insights
}
