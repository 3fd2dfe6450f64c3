package correlation

import (
	"fmt"
	"math"

	"example.com/mindful-money/insights/internal/models"
	"example.com/mindful-money/insights/internal/money"
)

// DefaultMinWeeks задает минимальное число недель для расчета корреляций.
const DefaultMinWeeks = 4

type metricPair struct {
	key   models.PairKey
	label string
	x     accessor
	y     accessor
}

type accessor func(models.Checkin) (float64, bool)

var metricPairs = []metricPair{
	{
		key:   models.PairStressImpulse,
		label: "stress levels and impulse purchases",
		x:     optional(func(c models.Checkin) *float64 { return c.StressLevel }),
		y:     optional(func(c models.Checkin) *float64 { return c.ImpulseSpending }),
	},
	{
		key:   models.PairStressTotal,
		label: "stress levels and total spending",
		x:     optional(func(c models.Checkin) *float64 { return c.StressLevel }),
		y:     derivedTotal,
	},
	{
		key:   models.PairExerciseControl,
		label: "exercise days and spending control",
		x:     optional(func(c models.Checkin) *float64 { return c.ExerciseDays }),
		y:     optional(func(c models.Checkin) *float64 { return c.SpendingControl }),
	},
	{
		key:   models.PairSleepDining,
		label: "sleep quality and dining out",
		x:     optional(func(c models.Checkin) *float64 { return c.SleepQuality }),
		y:     optional(func(c models.Checkin) *float64 { return c.DiningEstimate }),
	},
	{
		key:   models.PairMoodEntertainment,
		label: "overall mood and entertainment spending",
		x:     optional(func(c models.Checkin) *float64 { return c.OverallMood }),
		y:     optional(func(c models.Checkin) *float64 { return c.EntertainmentEstimate }),
	},
	{
		key:   models.PairMoodShopping,
		label: "overall mood and shopping",
		x:     optional(func(c models.Checkin) *float64 { return c.OverallMood }),
		y:     optional(func(c models.Checkin) *float64 { return c.ShoppingEstimate }),
	},
	{
		key:   models.PairMeditationImpulse,
		label: "meditation minutes and impulse purchases",
		x:     optional(func(c models.Checkin) *float64 { return c.MeditationMinutes }),
		y:     optional(func(c models.Checkin) *float64 { return c.ImpulseSpending }),
	},
	{
		key:   models.PairRelationshipSpend,
		label: "relationship satisfaction and discretionary spending",
		x:     optional(func(c models.Checkin) *float64 { return c.RelationshipSatisfaction }),
		y:     derivedTotal,
	},
}

type Engine struct {
	minWeeks int
}

// NewEngine создает движок корреляций с заданным минимумом недель истории.
func NewEngine(minWeeks int) *Engine {
	if minWeeks <= 0 {
		minWeeks = DefaultMinWeeks
	}

	return &Engine{minWeeks: minWeeks}
}

// Compute считает корреляции Пирсона по фиксированным парам метрик.
// Недостаток данных не является ошибкой: пары без результата пропускаются.
func (e *Engine) Compute(checkins []models.Checkin) map[models.PairKey]models.CorrelationResult {
	results := make(map[models.PairKey]models.CorrelationResult)
	if len(checkins) < e.minWeeks {
		return results
	}

	for _, pair := range metricPairs {
		xs, ys := buildSeries(checkins, pair)
		if len(xs) < e.minWeeks || len(xs) != len(ys) {
			continue
		}

		r, ok := pearson(xs, ys)
		if !ok {
			continue
		}

		rounded := math.Round(r*10000) / 10000
		strength := classifyStrength(&rounded)
		direction := classifyDirection(&rounded)

		result := models.CorrelationResult{
			Correlation: &rounded,
			Strength:    strength,
			Direction:   direction,
			DataPoints:  len(xs),
			Confidence:  confidenceLevel(len(xs), strength),
			Insight: fmt.Sprintf("Based on %d weeks: %s show a %s %s relationship.",
				len(xs), pair.label, strength, direction),
		}

		if impact, ok := money.Mean(ys); ok {
			result.DollarImpact = &impact
		}

		results[pair.key] = result
	}

	return results
}

func buildSeries(checkins []models.Checkin, pair metricPair) ([]float64, []float64) {
	xs := make([]float64, 0, len(checkins))
	ys := make([]float64, 0, len(checkins))

	for _, checkin := range checkins {
		x, okX := pair.x(checkin)
		y, okY := pair.y(checkin)
		if !okX || !okY {
			continue
		}

		xs = append(xs, x)
		ys = append(ys, y)
	}

	return xs, ys
}

func pearson(xs, ys []float64) (float64, bool) {
	if len(xs) < 2 || len(xs) != len(ys) {
		return 0, false
	}

	var sumX, sumY, sumXY, sumXX, sumYY float64
	for i := range xs {
		sumX += xs[i]
		sumY += ys[i]
		sumXY += xs[i] * ys[i]
		sumXX += xs[i] * xs[i]
		sumYY += ys[i] * ys[i]
	}

	n := float64(len(xs))
	varX := n*sumXX - sumX*sumX
	varY := n*sumYY - sumY*sumY
	if varX <= 0 || varY <= 0 {
		return 0, false
	}

	denominator := math.Sqrt(varX * varY)
	if denominator == 0 {
		return 0, false
	}

	return (n*sumXY - sumX*sumY) / denominator, true
}

func classifyStrength(r *float64) models.Strength {
	if r == nil {
		return models.StrengthWeak
	}

	switch abs := math.Abs(*r); {
	case abs >= 0.6:
		return models.StrengthStrong
	case abs >= 0.3:
		return models.StrengthModerate
	default:
		return models.StrengthWeak
	}
}

func classifyDirection(r *float64) models.Direction {
	if r == nil {
		return models.DirectionNone
	}

	switch {
	case *r > 0.1:
		return models.DirectionPositive
	case *r < -0.1:
		return models.DirectionNegative
	default:
		return models.DirectionNone
	}
}

func confidenceLevel(dataPoints int, strength models.Strength) models.Confidence {
	if dataPoints >= 8 && (strength == models.StrengthModerate || strength == models.StrengthStrong) {
		return models.ConfidenceHigh
	}

	if dataPoints >= 4 {
		return models.ConfidenceMedium
	}

	return models.ConfidenceLow
}

func optional(get func(models.Checkin) *float64) accessor {
	return func(c models.Checkin) (float64, bool) {
		value := get(c)
		if value == nil {
			return 0, false
		}

		return *value, true
	}
}

func derivedTotal(c models.Checkin) (float64, bool) {
	return c.TotalSpending(), true
}
