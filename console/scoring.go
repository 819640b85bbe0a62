package console

import "math"

// Derived-score formulas used by the analytics handlers. All bucket
// comparisons are inclusive at the stated thresholds.

// portalRiskScore weighs severe events triple and adds a flat 5 while the
// portal is still active.
func portalRiskScore(eventCount, severeCount int, active bool) int {
	score := eventCount + severeCount*3
	if active {
		score += 5
	}
	return score
}

func portalRiskLevel(score int) string {
	switch {
	case score >= 10:
		return "CRITICAL"
	case score >= 5:
		return "HIGH"
	default:
		return "LOW"
	}
}

func entityThreatScore(sightings int, critical bool) int {
	score := sightings * 3
	if critical {
		score += 10
	}
	return score
}

func threatRecommendation(score int) string {
	if score >= 10 {
		return "Dispatch Full Response"
	}
	return "Hold Containment"
}

// compositeThreatScore is the DTS formula: severe events, critical entities
// and active portals weighted 5/10/4.
func compositeThreatScore(severe, critical, active int) int {
	return severe*5 + critical*10 + active*4
}

func compositeThreatLevel(score int) string {
	switch {
	case score >= 50:
		return "EXTREME"
	case score >= 20:
		return "ELEVATED"
	default:
		return "NORMAL"
	}
}

// disturbanceScore transforms a raw location indicator so population-density
// magnitudes stay comparable with 1-10 distortion scales: non-positive values
// pin to 1.0, values up to 10 stay linear, larger values compress to
// log10(raw)*10.
func disturbanceScore(raw float64) float64 {
	switch {
	case raw <= 0:
		return 1.0
	case raw <= 10:
		return raw
	default:
		return math.Log10(raw) * 10.0
	}
}

// normalizeScores min-max normalizes into [0,1]. When every score is equal
// the span is defined as 1.0 so each value lands on the 0.5 midpoint.
func normalizeScores(scores []float64) []float64 {
	if len(scores) == 0 {
		return nil
	}
	minScore, maxScore := scores[0], scores[0]
	for _, s := range scores[1:] {
		if s < minScore {
			minScore = s
		}
		if s > maxScore {
			maxScore = s
		}
	}
	span := maxScore - minScore
	norms := make([]float64, len(scores))
	for i, s := range scores {
		if span == 0 {
			norms[i] = 0.5
			continue
		}
		norms[i] = (s - minScore) / span
	}
	return norms
}

// barLength maps a normalized score onto a 1-20 character bar. Truncation,
// not rounding: 0.5 yields 10.
func barLength(norm float64) int {
	return 1 + int(norm*19)
}

func disturbanceSeverity(norm float64) string {
	switch {
	case norm >= 0.75:
		return "🟥 CRITICAL"
	case norm >= 0.5:
		return "🟧 HIGH"
	case norm >= 0.25:
		return "🟨 MEDIUM"
	default:
		return "🟩 NORMAL"
	}
}
