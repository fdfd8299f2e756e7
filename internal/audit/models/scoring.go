package models

import "math"

// AggregateRisk maps a multiset of finding severities to the audit risk level.
// Rules are evaluated top to bottom and the first match wins:
//
//	any critical              -> critical
//	three or more major       -> critical
//	at least one major        -> high
//	worst severity moderate   -> medium
//	otherwise                 -> low
//
// The result depends only on counts, never on order.
func AggregateRisk(severities []FindingSeverity) RiskLevel {
	var critical, major int
	var worst FindingSeverity
	for _, s := range severities {
		switch s {
		case SeverityCritical:
			critical++
		case SeverityMajor:
			major++
		}
		if worst == "" || s.Compare(worst) > 0 {
			worst = s
		}
	}

	switch {
	case critical > 0:
		return RiskLevelCritical
	case major >= 3:
		return RiskLevelCritical
	case major >= 1 && worst == SeverityMajor:
		return RiskLevelHigh
	case major == 0 && worst == SeverityModerate:
		return RiskLevelMedium
	}
	return RiskLevelLow
}

// Score is the outcome of rolling up completed item points.
type Score struct {
	Band       ScoreBand
	Percentage float64
	Achieved   int
	Possible   int
}

// ScoreItems rolls up the points of items whose status is Completed.
// Unset max points count as 1 and unset actual points as 0. It returns false
// when there is nothing to score.
func ScoreItems(items []*Item) (Score, bool) {
	var possible, achieved, scored int
	for _, item := range items {
		if item.status != ItemStatusCompleted {
			continue
		}
		scored++
		if item.maxPoints != nil {
			possible += *item.maxPoints
		} else {
			possible++
		}
		if item.actualPoints != nil {
			achieved += *item.actualPoints
		}
	}
	if scored == 0 || possible == 0 {
		return Score{}, false
	}
	pct := round2(float64(achieved) / float64(possible) * 100)
	return Score{
		Band:       BandFor(pct),
		Percentage: pct,
		Achieved:   achieved,
		Possible:   possible,
	}, true
}

// BandFor classifies a percentage into a qualitative band.
func BandFor(percentage float64) ScoreBand {
	switch {
	case percentage >= 90:
		return ScoreExcellent
	case percentage >= 80:
		return ScoreGood
	case percentage >= 70:
		return ScoreSatisfactory
	case percentage >= 60:
		return ScoreNeedsImprovement
	}
	return ScoreUnsatisfactory
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
