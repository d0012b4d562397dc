package studentaward

// Status is the lifecycle state of an award application
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Rank is the applicant's board examination rank
type Rank string

const (
	RankFirst  Rank = "first"
	RankSecond Rank = "second"
	RankThird  Rank = "third"
	RankNone   Rank = "none"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	default:
		return false
	}
}

func (r Rank) IsValid() bool {
	switch r {
	case RankFirst, RankSecond, RankThird, RankNone:
		return true
	default:
		return false
	}
}

// IsRanked returns true for a placing rank
func (r Rank) IsRanked() bool {
	return r == RankFirst || r == RankSecond || r == RankThird
}

// Rules is the student-award transition table consumed by the workflow
// engine. Approval is terminal: approving an approved application is a
// conflict, not a repeat.
func Rules() map[string][]string {
	return map[string][]string{
		string(StatusPending): {
			string(StatusApproved),
			string(StatusRejected),
		},
	}
}
