package tracking

import "restaurant-client/internal/domain"

// Pure helpers over a fetched progress payload. None of them touch the
// tracker's history or network.

// Fixed score weights; renormalized when a component is unavailable.
const (
	weightProgress = 0.5
	weightPace     = 0.3
	weightPoints   = 0.2

	// A rate of 5 points/min maps to a full pace score.
	fullPaceRate = 5.0
	// 1000 gamification points map to a full points score.
	fullScorePoints = 1000.0
)

type OrderStats struct {
	ItemsTotal          int
	ItemsReady          int
	CategoriesDone      int
	MeanCategoryPercent float64
}

// SlowestCategory returns the category with the lowest progress, false when
// the payload carries no category breakdown.
func SlowestCategory(p domain.OrderProgress) (domain.CategoryProgress, bool) {
	if len(p.Categories) == 0 {
		return domain.CategoryProgress{}, false
	}
	slowest := p.Categories[0]
	for _, c := range p.Categories[1:] {
		if c.Progress < slowest.Progress {
			slowest = c
		}
	}
	return slowest, true
}

// ComputeOrderStats aggregates the per-category breakdown with one linear scan.
func ComputeOrderStats(p domain.OrderProgress) OrderStats {
	var s OrderStats
	if len(p.Categories) == 0 {
		return s
	}
	var sum float64
	for _, c := range p.Categories {
		s.ItemsTotal += c.ItemsTotal
		s.ItemsReady += c.ItemsReady
		if c.Progress >= 100 {
			s.CategoriesDone++
		}
		sum += c.Progress
	}
	s.MeanCategoryPercent = sum / float64(len(p.Categories))
	return s
}

// OverallScore blends global progress, observed pace, and gamification points
// into a 0..100 score. Missing components drop out and the remaining weights
// are renormalized so a payload without gamification still scores fairly.
func OverallScore(p domain.OrderProgress, rate float64, rateOK bool) float64 {
	score := weightProgress * clamp(p.GlobalProgress, 0, 100)
	weight := weightProgress

	if rateOK {
		score += weightPace * clamp(rate/fullPaceRate*100, 0, 100)
		weight += weightPace
	}
	if p.Gamification != nil {
		score += weightPoints * clamp(float64(p.Gamification.Points)/fullScorePoints*100, 0, 100)
		weight += weightPoints
	}
	if weight == 0 {
		return 0
	}
	return score / weight
}

// BadgesByTier groups earned badges by tier for display.
func BadgesByTier(p domain.OrderProgress) map[string][]domain.Badge {
	out := make(map[string][]domain.Badge)
	if p.Gamification == nil {
		return out
	}
	for _, b := range p.Gamification.Badges {
		out[b.Tier] = append(out[b.Tier], b)
	}
	return out
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
