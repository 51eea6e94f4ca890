package stats

import "github.com/misterclayt0n/glowup/internal/models"

type Category string

const (
	Underweight Category = "Underweight"
	Normal      Category = "Normal"
	Overweight  Category = "Overweight"
	Obese       Category = "Obese"
)

// BMI uses the profile weight, not the latest logged weight. Returns 0 when
// the height is not positive.
func BMI(p models.UserProfile) float64 {
	if p.Height <= 0 {
		return 0
	}
	m := p.Height / 100
	return p.Weight / (m * m)
}

func CategoryFor(bmi float64) Category {
	switch {
	case bmi < 18.5:
		return Underweight
	case bmi < 25:
		return Normal
	case bmi < 30:
		return Overweight
	default:
		return Obese
	}
}
