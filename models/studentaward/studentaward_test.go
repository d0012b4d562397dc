package studentaward

import "testing"

func TestIsEligible(t *testing.T) {
	tests := []struct {
		name       string
		percentage float64
		rank       Rank
		want       bool
	}{
		{"high percentage no rank", 92.5, RankNone, true},
		{"exactly at threshold", 85, RankNone, true},
		{"just below threshold", 84.99, RankNone, false},
		{"low percentage with rank", 60, RankFirst, true},
		{"low percentage second rank", 60, RankSecond, true},
		{"low percentage third rank", 60, RankThird, true},
		{"low percentage no rank", 60, RankNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := StudentAward{TotalPercentage: tt.percentage, Rank: tt.rank}
			if got := a.IsEligible(); got != tt.want {
				t.Errorf("IsEligible() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRankIsRanked(t *testing.T) {
	for _, rank := range []Rank{RankFirst, RankSecond, RankThird} {
		if !rank.IsRanked() {
			t.Errorf("%s should count as ranked", rank)
		}
	}
	if RankNone.IsRanked() {
		t.Error("none should not count as ranked")
	}
}

func TestRulesPendingOnly(t *testing.T) {
	rules := Rules()

	if len(rules[string(StatusPending)]) != 2 {
		t.Errorf("pending should allow exactly 2 transitions, got %d", len(rules[string(StatusPending)]))
	}
	if len(rules[string(StatusApproved)]) != 0 {
		t.Error("approved should be terminal")
	}
	if len(rules[string(StatusRejected)]) != 0 {
		t.Error("rejected should be terminal")
	}
}
