package report

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/uuid"

	"example.com/mindful-money/insights/internal/models"
)

func sampleCorrelations() map[models.PairKey]models.CorrelationResult {
	r := 0.92

	return map[models.PairKey]models.CorrelationResult{
		models.PairStressTotal: {
			Correlation: &r,
			Strength:    models.StrengthStrong,
			Direction:   models.DirectionPositive,
			DataPoints:  6,
			Confidence:  models.ConfidenceMedium,
			Insight:     "Based on 6 weeks: stress levels and total spending show a strong positive relationship.",
		},
		models.PairExerciseControl: {
			Strength:   models.StrengthModerate,
			Direction:  models.DirectionNegative,
			DataPoints: 6,
			Confidence: models.ConfidenceMedium,
		},
	}
}

// TestBuild проверяет сборку отчета и порядок корреляций.
func TestBuild(t *testing.T) {
	insights := []models.WellnessInsight{{Title: "Spending Win", Priority: 2}}

	weekly := Build(6, insights, sampleCorrelations())

	if weekly.ID == uuid.Nil {
		t.Fatal("expected generated report id")
	}

	if weekly.WeeksAnalyzed != 6 {
		t.Fatalf("expected 6 weeks, got %d", weekly.WeeksAnalyzed)
	}

	if len(weekly.Correlations) != 2 {
		t.Fatalf("expected 2 correlation rows, got %d", len(weekly.Correlations))
	}

	if weekly.Correlations[0].Pair != models.PairExerciseControl {
		t.Fatalf("expected pairs sorted by key, got %v first", weekly.Correlations[0].Pair)
	}

	if len(weekly.Insights) != 1 || weekly.Insights[0].Title != "Spending Win" {
		t.Fatalf("expected insights preserved, got %v", weekly.Insights)
	}
}

// TestText проверяет текстовое представление отчета.
func TestText(t *testing.T) {
	insights := []models.WellnessInsight{{
		Title:       "Stress Spending Alert",
		Message:     "High stress this week came with $120.00 in impulse purchases.",
		DataBacking: "Stress 8 of 10, impulse spending $120.00",
		Action:      "Try a quick walk or a pause before the next unplanned buy.",
		Priority:    1,
	}}

	text := Build(4, insights, sampleCorrelations()).Text()

	if !strings.Contains(text, "Weeks analyzed: 4") {
		t.Fatalf("expected weeks line, got %q", text)
	}

	if !strings.Contains(text, "[P1] Stress Spending Alert") {
		t.Fatalf("expected insight title, got %q", text)
	}

	if !strings.Contains(text, "r=+0.9200") {
		t.Fatalf("expected correlation value, got %q", text)
	}
}

// TestTextEmpty проверяет отчет без инсайтов.
func TestTextEmpty(t *testing.T) {
	text := Build(2, nil, nil).Text()

	if !strings.Contains(text, "Nothing stands out this week") {
		t.Fatalf("expected quiet week line, got %q", text)
	}
}

// TestJSON проверяет сериализацию отчета.
func TestJSON(t *testing.T) {
	payload, err := Build(6, nil, sampleCorrelations()).JSON()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(payload, &decoded); err != nil {
		t.Fatalf("expected valid json, got %v", err)
	}

	if _, ok := decoded["weeks_analyzed"]; !ok {
		t.Fatal("expected weeks_analyzed field")
	}

	if !strings.Contains(string(payload), `"pair": "exercise_control"`) {
		t.Fatalf("expected pair key in payload, got %s", payload)
	}
}
