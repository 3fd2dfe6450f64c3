package models

import (
	"time"

	"github.com/google/uuid"
)

type InsightType string

type InsightCategory string

type Strength string

type Direction string

type Confidence string

type SpendingLevel string

type PairKey string

type BaselineKey string

const (
	InsightTypeCorrelation     InsightType = "correlation"
	InsightTypeTrend           InsightType = "trend"
	InsightTypeAnomaly         InsightType = "anomaly"
	InsightTypeAchievement     InsightType = "achievement"
	InsightTypeRecommendation  InsightType = "recommendation"
	InsightTypeSpendingPattern InsightType = "spending_pattern"

	CategoryPhysical   InsightCategory = "physical"
	CategoryMental     InsightCategory = "mental"
	CategoryRelational InsightCategory = "relational"
	CategoryFinancial  InsightCategory = "financial"
	CategorySpending   InsightCategory = "spending"

	StrengthWeak     Strength = "weak"
	StrengthModerate Strength = "moderate"
	StrengthStrong   Strength = "strong"

	DirectionPositive Direction = "positive"
	DirectionNegative Direction = "negative"
	DirectionNone     Direction = "none"

	ConfidenceLow    Confidence = "low"
	ConfidenceMedium Confidence = "medium"
	ConfidenceHigh   Confidence = "high"

	SpendingMuchLower  SpendingLevel = "much_lower"
	SpendingLower      SpendingLevel = "lower"
	SpendingNormal     SpendingLevel = "normal"
	SpendingHigher     SpendingLevel = "higher"
	SpendingMuchHigher SpendingLevel = "much_higher"
)

const (
	PairStressImpulse       PairKey = "stress_impulse"
	PairStressTotal         PairKey = "stress_total"
	PairExerciseControl     PairKey = "exercise_control"
	PairSleepDining         PairKey = "sleep_dining"
	PairMoodEntertainment   PairKey = "mood_entertainment"
	PairMoodShopping        PairKey = "mood_shopping"
	PairMeditationImpulse   PairKey = "meditation_impulse"
	PairRelationshipSpend   PairKey = "relationship_discretionary"
	LegacyPairStressImpulse PairKey = "stress_impulse_spending"
)

const (
	BaselineTotalVariable  BaselineKey = "avg_total_variable"
	BaselineTotal          BaselineKey = "avg_total"
	BaselineGroceries      BaselineKey = "avg_groceries"
	BaselineDining         BaselineKey = "avg_dining"
	BaselineEntertainment  BaselineKey = "avg_entertainment"
	BaselineShopping       BaselineKey = "avg_shopping"
	BaselineTransport      BaselineKey = "avg_transport"
	BaselineUtilities      BaselineKey = "avg_utilities"
	BaselineOther          BaselineKey = "avg_other"
	BaselineImpulse        BaselineKey = "avg_impulse"
	BaselineStressSpending BaselineKey = "avg_stress_spending"
	BaselineCelebration    BaselineKey = "avg_celebration"
)

type Baselines map[BaselineKey]float64

type Checkin struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	WeekStart time.Time `json:"week_start"`

	StressLevel              *float64 `json:"stress_level,omitempty"`
	ExerciseDays             *float64 `json:"exercise_days,omitempty"`
	SleepQuality             *float64 `json:"sleep_quality,omitempty"`
	OverallMood              *float64 `json:"overall_mood,omitempty"`
	MeditationMinutes        *float64 `json:"meditation_minutes,omitempty"`
	RelationshipSatisfaction *float64 `json:"relationship_satisfaction,omitempty"`
	SpendingControl          *float64 `json:"spending_control,omitempty"`

	GroceriesEstimate     *float64 `json:"groceries_estimate,omitempty"`
	DiningEstimate        *float64 `json:"dining_estimate,omitempty"`
	EntertainmentEstimate *float64 `json:"entertainment_estimate,omitempty"`
	ShoppingEstimate      *float64 `json:"shopping_estimate,omitempty"`
	TransportEstimate     *float64 `json:"transport_estimate,omitempty"`
	UtilitiesEstimate     *float64 `json:"utilities_estimate,omitempty"`
	OtherEstimate         *float64 `json:"other_estimate,omitempty"`

	ImpulseSpending     *float64 `json:"impulse_spending,omitempty"`
	StressSpending      *float64 `json:"stress_spending,omitempty"`
	CelebrationSpending *float64 `json:"celebration_spending,omitempty"`
}

type CorrelationResult struct {
	Correlation  *float64   `json:"correlation,omitempty"`
	Strength     Strength   `json:"strength"`
	Direction    Direction  `json:"direction"`
	DataPoints   int        `json:"data_points"`
	Confidence   Confidence `json:"confidence"`
	Insight      string     `json:"insight"`
	DollarImpact *float64   `json:"dollar_impact,omitempty"`
}

type WellnessInsight struct {
	Type         InsightType     `json:"type"`
	Title        string          `json:"title"`
	Message      string          `json:"message"`
	DataBacking  string          `json:"data_backing"`
	Action       string          `json:"action"`
	Priority     int             `json:"priority"`
	Category     InsightCategory `json:"category"`
	DollarAmount *float64        `json:"dollar_amount,omitempty"`
}

// Value возвращает значение опционального поля, отсутствующее считается нулём.
func Value(v *float64) float64 {
	if v == nil {
		return 0
	}

	return *v
}

// TotalSpending суммирует все категории расходов и помеченные траты недели.
func (c Checkin) TotalSpending() float64 {
	return Value(c.GroceriesEstimate) +
		Value(c.DiningEstimate) +
		Value(c.EntertainmentEstimate) +
		Value(c.ShoppingEstimate) +
		Value(c.TransportEstimate) +
		Value(c.UtilitiesEstimate) +
		Value(c.OtherEstimate) +
		Value(c.ImpulseSpending) +
		Value(c.StressSpending) +
		Value(c.CelebrationSpending)
}
