package insight

import (
	"fmt"

	"example.com/mindful-money/insights/internal/baseline"
	"example.com/mindful-money/insights/internal/models"
	"example.com/mindful-money/insights/internal/money"
)

func spendingInsights(current models.Checkin, baselines models.Baselines) []models.WellnessInsight {
	insights := make([]models.WellnessInsight, 0, 3)

	total := current.TotalSpending()
	avgTotal, ok := baselines[models.BaselineTotalVariable]
	if !ok {
		avgTotal = baselines[models.BaselineTotal]
	}

	switch baseline.CompareToBaseline(total, avgTotal) {
	case models.SpendingHigher, models.SpendingMuchHigher:
		amount := total
		insights = append(insights, models.WellnessInsight{
			Type:  models.InsightTypeSpendingPattern,
			Title: "Spending This Week",
			Message: fmt.Sprintf("You spent %s this week, above your usual %s.",
				money.Format(total), money.Format(avgTotal)),
			DataBacking:  fmt.Sprintf("Weekly total %s against a %s baseline", money.Format(total), money.Format(avgTotal)),
			Action:       "Check which category grew and decide if it was worth it.",
			Priority:     3,
			Category:     models.CategorySpending,
			DollarAmount: &amount,
		})
	case models.SpendingLower, models.SpendingMuchLower:
		insights = append(insights, models.WellnessInsight{
			Type:  models.InsightTypeSpendingPattern,
			Title: "Spending Win",
			Message: fmt.Sprintf("You spent %s this week, below your usual %s.",
				money.Format(total), money.Format(avgTotal)),
			DataBacking: fmt.Sprintf("Weekly total %s against a %s baseline", money.Format(total), money.Format(avgTotal)),
			Action:      "Celebrate the win, maybe move the difference into savings.",
			Priority:    2,
			Category:    models.CategorySpending,
		})
	}

	shopping := models.Value(current.ShoppingEstimate)
	if avgShopping := baselines[models.BaselineShopping]; shopping > 0 && avgShopping > 0 && shopping/avgShopping >= 1.5 {
		insights = append(insights, models.WellnessInsight{
			Type:  models.InsightTypeSpendingPattern,
			Title: "Shopping Spike",
			Message: fmt.Sprintf("Shopping came to %s this week, about %.1fx your usual.",
				money.Format(shopping), shopping/avgShopping),
			DataBacking: fmt.Sprintf("Shopping %s against a %s average", money.Format(shopping), money.Format(avgShopping)),
			Action:      "Consider a wish list and revisit it next week before buying.",
			Priority:    3,
			Category:    models.CategorySpending,
		})
	}

	impulse := models.Value(current.ImpulseSpending)
	if avgImpulse := baselines[models.BaselineImpulse]; avgImpulse > 0 && impulse > avgImpulse*1.5 {
		insights = append(insights, models.WellnessInsight{
			Type:  models.InsightTypeSpendingPattern,
			Title: "Impulse Above Usual",
			Message: fmt.Sprintf("Impulse purchases reached %s, above your typical %s.",
				money.Format(impulse), money.Format(avgImpulse)),
			DataBacking: fmt.Sprintf("Impulse %s against a %s average", money.Format(impulse), money.Format(avgImpulse)),
			Action:      "Try noting the trigger next time the urge shows up.",
			Priority:    3,
			Category:    models.CategorySpending,
		})
	}

	return insights
}
