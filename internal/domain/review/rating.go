package review

import "math"

// Subscore weights. GoalsAchieved is already on a 0-100 scale; the five 0-5
// dimensions are lifted to the same scale before weighting.
const (
	weightGoals         = 0.4
	weightCommunication = 0.1
	weightTechnical     = 0.2
	weightTeamwork      = 0.1
	weightLeadership    = 0.1
	weightPunctuality   = 0.1
)

// OverallRating computes the weighted 0-5 rating from the six subscores.
// If any subscore is absent the rating collapses to exactly 0.00.
func OverallRating(goals, communication, technical, teamwork, leadership, punctuality *int) float64 {
	if goals == nil || communication == nil || technical == nil ||
		teamwork == nil || leadership == nil || punctuality == nil {
		return 0
	}
	weighted := float64(*goals)*weightGoals +
		float64(*communication)*20*weightCommunication +
		float64(*technical)*20*weightTechnical +
		float64(*teamwork)*20*weightTeamwork +
		float64(*leadership)*20*weightLeadership +
		float64(*punctuality)*20*weightPunctuality
	return roundHalfUp(weighted / 20)
}

// roundHalfUp rounds to two decimals with ties going up.
func roundHalfUp(v float64) float64 {
	return math.Floor(v*100+0.5) / 100
}
