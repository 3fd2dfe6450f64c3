package baseline

import (
	"example.com/mindful-money/insights/internal/models"
	"example.com/mindful-money/insights/internal/money"
)

type metricField struct {
	key models.BaselineKey
	get func(models.Checkin) *float64
}

var metricFields = []metricField{
	{key: models.BaselineGroceries, get: func(c models.Checkin) *float64 { return c.GroceriesEstimate }},
	{key: models.BaselineDining, get: func(c models.Checkin) *float64 { return c.DiningEstimate }},
	{key: models.BaselineEntertainment, get: func(c models.Checkin) *float64 { return c.EntertainmentEstimate }},
	{key: models.BaselineShopping, get: func(c models.Checkin) *float64 { return c.ShoppingEstimate }},
	{key: models.BaselineTransport, get: func(c models.Checkin) *float64 { return c.TransportEstimate }},
	{key: models.BaselineUtilities, get: func(c models.Checkin) *float64 { return c.UtilitiesEstimate }},
	{key: models.BaselineOther, get: func(c models.Checkin) *float64 { return c.OtherEstimate }},
	{key: models.BaselineImpulse, get: func(c models.Checkin) *float64 { return c.ImpulseSpending }},
	{key: models.BaselineStressSpending, get: func(c models.Checkin) *float64 { return c.StressSpending }},
	{key: models.BaselineCelebration, get: func(c models.Checkin) *float64 { return c.CelebrationSpending }},
}

// Compute считает средние расходы по истории чек-инов.
// Метрики без единого заполненного значения в результат не попадают.
func Compute(history []models.Checkin) models.Baselines {
	baselines := make(models.Baselines)

	for _, field := range metricFields {
		values := make([]float64, 0, len(history))
		for _, checkin := range history {
			if value := field.get(checkin); value != nil {
				values = append(values, *value)
			}
		}

		if mean, ok := money.Mean(values); ok {
			baselines[field.key] = mean
		}
	}

	totals := make([]float64, 0, len(history))
	for _, checkin := range history {
		if hasSpendingData(checkin) {
			totals = append(totals, checkin.TotalSpending())
		}
	}

	if mean, ok := money.Mean(totals); ok {
		baselines[models.BaselineTotalVariable] = mean
		baselines[models.BaselineTotal] = mean
	}

	return baselines
}

// CompareToBaseline относит сумму недели к диапазону вокруг среднего.
func CompareToBaseline(current, baseline float64) models.SpendingLevel {
	if baseline <= 0 {
		return models.SpendingNormal
	}

	switch ratio := current / baseline; {
	case ratio < 0.5:
		return models.SpendingMuchLower
	case ratio < 0.8:
		return models.SpendingLower
	case ratio <= 1.2:
		return models.SpendingNormal
	case ratio <= 1.5:
		return models.SpendingHigher
	default:
		return models.SpendingMuchHigher
	}
}

func hasSpendingData(c models.Checkin) bool {
	for _, field := range metricFields {
		if field.get(c) != nil {
			return true
		}
	}

	return false
}
