package services

import "math"

// EntailmentThreshold is the pass/fail gate a response's entailment score
// must clear to be worth anything.
const EntailmentThreshold = 0.2

type ScoringService struct{}

func NewScoringService() *ScoringService {
	return &ScoringService{}
}

// ResponseScore is 0 for any response that is invalid or fails the
// entailment gate; otherwise it is 1/(similarCount+1). Entailment beyond the
// gate does not scale the score — only uniqueness does.
func (s *ScoringService) ResponseScore(isValid bool, entailment float64, similarCount int) float64 {
	if !isValid || entailment <= EntailmentThreshold {
		return 0
	}
	return 1.0 / float64(similarCount+1)
}

// RoundTotal rounds a player total to two decimal places, half away from
// zero on the scaled value.
func (s *ScoringService) RoundTotal(total float64) float64 {
	return math.Round(total*100) / 100
}
