package report

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"example.com/mindful-money/insights/internal/models"
)

type CorrelationRow struct {
	Pair models.PairKey `json:"pair"`
	models.CorrelationResult
}

type WeeklyReport struct {
	ID            uuid.UUID                `json:"id"`
	GeneratedAt   time.Time                `json:"generated_at"`
	WeeksAnalyzed int                      `json:"weeks_analyzed"`
	Insights      []models.WellnessInsight `json:"insights"`
	Correlations  []CorrelationRow         `json:"correlations"`
}

// Build собирает недельный отчет. Корреляции сортируются по ключу пары,
// чтобы вывод был стабилен между запусками.
func Build(weeks int, insights []models.WellnessInsight, correlations map[models.PairKey]models.CorrelationResult) WeeklyReport {
	rows := make([]CorrelationRow, 0, len(correlations))
	for key, result := range correlations {
		rows = append(rows, CorrelationRow{Pair: key, CorrelationResult: result})
	}

	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Pair < rows[j].Pair
	})

	return WeeklyReport{
		ID:            uuid.New(),
		GeneratedAt:   time.Now().UTC(),
		WeeksAnalyzed: weeks,
		Insights:      insights,
		Correlations:  rows,
	}
}

// JSON возвращает отчет в формате JSON с отступами.
func (r WeeklyReport) JSON() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

// Text возвращает отчет в текстовом виде для терминала.
func (r WeeklyReport) Text() string {
	var b strings.Builder

	b.WriteString("Weekly Insights Report\n")
	fmt.Fprintf(&b, "Generated: %s\n", r.GeneratedAt.Format("2006-01-02 15:04 MST"))
	fmt.Fprintf(&b, "Weeks analyzed: %d\n", r.WeeksAnalyzed)

	b.WriteString("\nInsights\n")
	if len(r.Insights) == 0 {
		b.WriteString("  Nothing stands out this week. Keep logging your check-ins.\n")
	}

	for i, insight := range r.Insights {
		fmt.Fprintf(&b, "  %d. [P%d] %s\n", i+1, insight.Priority, insight.Title)
		fmt.Fprintf(&b, "     %s\n", insight.Message)

		if insight.DataBacking != "" {
			fmt.Fprintf(&b, "     Data: %s\n", insight.DataBacking)
		}

		if insight.Action != "" {
			fmt.Fprintf(&b, "     Next step: %s\n", insight.Action)
		}
	}

	if len(r.Correlations) > 0 {
		b.WriteString("\nCorrelations\n")
		for _, row := range r.Correlations {
			value := "n/a"
			if row.Correlation != nil {
				value = fmt.Sprintf("%+.4f", *row.Correlation)
			}

			fmt.Fprintf(&b, "  %-28s r=%s  %s %s  (%d weeks, %s confidence)\n",
				row.Pair, value, row.Strength, row.Direction, row.DataPoints, row.Confidence)
		}
	}

	return b.String()
}
