package game

import "math"

// Length bonus breakpoints: longer sequences earn a higher multiplier.
const (
	lengthBonus2 = 5
	lengthBonus3 = 10
	lengthBonus4 = 13
	lengthBonus5 = 16
	lengthBonus6 = 20
)

// LengthMultiplier returns the sequence-length bonus factor.
func LengthMultiplier(sequenceLength int) int {
	switch {
	case sequenceLength >= lengthBonus6:
		return 6
	case sequenceLength >= lengthBonus5:
		return 5
	case sequenceLength >= lengthBonus4:
		return 4
	case sequenceLength >= lengthBonus3:
		return 3
	case sequenceLength >= lengthBonus2:
		return 2
	default:
		return 1
	}
}

// ComputeMultiplier combines the difficulty base rate with the length bonus.
func ComputeMultiplier(baseMultiplier, sequenceLength int) int {
	return baseMultiplier * LengthMultiplier(sequenceLength)
}

// ComputeRoundScore adds one base point per completed round, scaled by the
// multiplier. Rounds half-up; in practice the multiplier is always integer.
func ComputeRoundScore(currentScore, multiplier int) int {
	return currentScore + int(math.Round(1*float64(multiplier)))
}
