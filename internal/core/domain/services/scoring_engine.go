package services

// Score weights. They sum to 1.0.
const (
	UrgencyWeight        = 0.4
	ProductionTimeWeight = 0.3
	CostWeight           = 0.3

	// ScaleCeiling is the top of the rating scale that production hours and
	// cost are subtracted from.
	ScaleCeiling = 10
)

// ScoringEngine ranks orders for scheduling attention. Higher urgency raises
// the score, while longer production time and higher cost lower it.
//
// Example:
//
//	engine := services.NewScoringEngine()
//	engine.Score(8, 3, 2) // 0.4*8 + 0.3*(10-2) + 0.3*(10-3) = 7.7
type ScoringEngine struct{}

func NewScoringEngine() ScoringEngine {
	return ScoringEngine{}
}

// Score implements order.Scorer. The production term is not clamped: more than
// ScaleCeiling hours makes it negative.
func (ScoringEngine) Score(urgency int, cost int, productionHours float64) float64 {
	return UrgencyWeight*float64(urgency) +
		ProductionTimeWeight*(ScaleCeiling-productionHours) +
		CostWeight*float64(ScaleCeiling-cost)
}
