package utils

import (
	"errors"

	"nutrialarm/internal/models"
)

// CalculateBMI expects height in centimeters and weight in kilograms.
func CalculateBMI(weightKg, heightCm float64) (float64, error) {
	if heightCm <= 0 || weightKg <= 0 {
		return 0, errors.New("height and weight must be positive")
	}
	if heightCm < 50 || heightCm > 250 || weightKg < 10 || weightKg > 400 {
		return 0, errors.New("height/weight out of plausible range")
	}

	h := heightCm / 100.0
	return weightKg / (h * h), nil
}

// BMICategory bands are inclusive at the lower bound: exactly 18.5 is Normal,
// exactly 25 is Overweight, exactly 30 is Obese.
func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25.0:
		return "Normal"
	case bmi < 30.0:
		return "Overweight"
	default:
		return "Obese"
	}
}

// RecommendedIron is a fixed lookup by anemia risk, in mg/day.
func RecommendedIron(risk models.AnemiaRisk) float64 {
	switch risk {
	case models.RiskHigh:
		return 18.0
	case models.RiskMedium:
		return 12.0
	default:
		return 8.0
	}
}

// RecommendedCalories is a coarse banded estimate per activity level, not a
// clinical computation. Treat it as a guideline value only.
func RecommendedCalories(level models.ActivityLevel) float64 {
	switch level {
	case models.ActivitySedentary:
		return 1800
	case models.ActivityLight:
		return 2000
	case models.ActivityModerate:
		return 2200
	case models.ActivityActive:
		return 2400
	case models.ActivityVeryActive:
		return 2600
	default:
		return 2000
	}
}
