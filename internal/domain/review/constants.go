package review

const (
	StatusPending      = "PENDING"
	StatusSubmitted    = "SUBMITTED"
	StatusAcknowledged = "ACKNOWLEDGED"
)

var Statuses = []string{StatusPending, StatusSubmitted, StatusAcknowledged}
