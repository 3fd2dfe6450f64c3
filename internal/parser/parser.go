package parser

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"example.com/mindful-money/insights/internal/models"
)

const dateLayout = "2006-01-02"

type checkinRow struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	WeekStart string `json:"week_start"`

	StressLevel              *float64 `json:"stress_level" validate:"omitempty,gte=0,lte=10"`
	ExerciseDays             *float64 `json:"exercise_days" validate:"omitempty,gte=0,lte=7"`
	SleepQuality             *float64 `json:"sleep_quality" validate:"omitempty,gte=0,lte=10"`
	OverallMood              *float64 `json:"overall_mood" validate:"omitempty,gte=0,lte=10"`
	MeditationMinutes        *float64 `json:"meditation_minutes" validate:"omitempty,gte=0"`
	RelationshipSatisfaction *float64 `json:"relationship_satisfaction" validate:"omitempty,gte=0,lte=10"`
	SpendingControl          *float64 `json:"spending_control" validate:"omitempty,gte=0,lte=10"`

	GroceriesEstimate     *float64 `json:"groceries_estimate" validate:"omitempty,gte=0"`
	DiningEstimate        *float64 `json:"dining_estimate" validate:"omitempty,gte=0"`
	EntertainmentEstimate *float64 `json:"entertainment_estimate" validate:"omitempty,gte=0"`
	ShoppingEstimate      *float64 `json:"shopping_estimate" validate:"omitempty,gte=0"`
	TransportEstimate     *float64 `json:"transport_estimate" validate:"omitempty,gte=0"`
	UtilitiesEstimate     *float64 `json:"utilities_estimate" validate:"omitempty,gte=0"`
	OtherEstimate         *float64 `json:"other_estimate" validate:"omitempty,gte=0"`

	ImpulseSpending     *float64 `json:"impulse_spending" validate:"omitempty,gte=0"`
	StressSpending      *float64 `json:"stress_spending" validate:"omitempty,gte=0"`
	CelebrationSpending *float64 `json:"celebration_spending" validate:"omitempty,gte=0"`
}

type Parser struct {
	validate *validator.Validate
}

// New создает парсер истории чек-инов.
func New() *Parser {
	return &Parser{validate: validator.New()}
}

// LoadHistory читает историю чек-инов из JSON-файла.
func (p *Parser) LoadHistory(path string) ([]models.Checkin, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read history: %w", err)
	}

	return p.ParseHistory(data)
}

// ParseHistory разбирает и валидирует массив чек-инов. Если у всех записей
// заполнена дата недели, история сортируется от новых недель к старым.
func (p *Parser) ParseHistory(data []byte) ([]models.Checkin, error) {
	var rows []checkinRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("decode history: %w", err)
	}

	checkins := make([]models.Checkin, 0, len(rows))
	dated := true

	for i, row := range rows {
		checkin, err := p.buildCheckin(row)
		if err != nil {
			return nil, fmt.Errorf("check-in %d: %w", i, err)
		}

		if checkin.WeekStart.IsZero() {
			dated = false
		}

		checkins = append(checkins, checkin)
	}

	if dated {
		sort.SliceStable(checkins, func(i, j int) bool {
			return checkins[i].WeekStart.After(checkins[j].WeekStart)
		})
	}

	return checkins, nil
}

func (p *Parser) buildCheckin(row checkinRow) (models.Checkin, error) {
	if err := p.validate.Struct(row); err != nil {
		return models.Checkin{}, err
	}

	checkin := models.Checkin{
		StressLevel:              row.StressLevel,
		ExerciseDays:             row.ExerciseDays,
		SleepQuality:             row.SleepQuality,
		OverallMood:              row.OverallMood,
		MeditationMinutes:        row.MeditationMinutes,
		RelationshipSatisfaction: row.RelationshipSatisfaction,
		SpendingControl:          row.SpendingControl,
		GroceriesEstimate:        row.GroceriesEstimate,
		DiningEstimate:           row.DiningEstimate,
		EntertainmentEstimate:    row.EntertainmentEstimate,
		ShoppingEstimate:         row.ShoppingEstimate,
		TransportEstimate:        row.TransportEstimate,
		UtilitiesEstimate:        row.UtilitiesEstimate,
		OtherEstimate:            row.OtherEstimate,
		ImpulseSpending:          row.ImpulseSpending,
		StressSpending:           row.StressSpending,
		CelebrationSpending:      row.CelebrationSpending,
	}

	if row.ID != "" {
		id, err := uuid.Parse(row.ID)
		if err != nil {
			return models.Checkin{}, fmt.Errorf("parse id: %w", err)
		}

		checkin.ID = id
	}

	if row.UserID != "" {
		userID, err := uuid.Parse(row.UserID)
		if err != nil {
			return models.Checkin{}, fmt.Errorf("parse user_id: %w", err)
		}

		checkin.UserID = userID
	}

	if row.WeekStart != "" {
		weekStart, err := time.Parse(dateLayout, row.WeekStart)
		if err != nil {
			return models.Checkin{}, fmt.Errorf("parse week_start: %w", err)
		}

		checkin.WeekStart = weekStart
	}

	return checkin, nil
}
