package money

import "github.com/shopspring/decimal"

// Format возвращает сумму в виде строки с долларовым знаком и двумя знаками после запятой.
func Format(amount float64) string {
	value := decimal.NewFromFloat(amount)
	if value.IsNegative() {
		return "-$" + value.Neg().StringFixed(2)
	}

	return "$" + value.StringFixed(2)
}

// Round округляет сумму до центов.
func Round(amount float64) float64 {
	rounded, _ := decimal.NewFromFloat(amount).Round(2).Float64()

	return rounded
}

// Mean считает среднее значение с точностью до цента.
func Mean(amounts []float64) (float64, bool) {
	if len(amounts) == 0 {
		return 0, false
	}

	sum := decimal.Zero
	for _, amount := range amounts {
		sum = sum.Add(decimal.NewFromFloat(amount))
	}

	mean, _ := sum.DivRound(decimal.NewFromInt(int64(len(amounts))), 2).Float64()

	return mean, true
}
