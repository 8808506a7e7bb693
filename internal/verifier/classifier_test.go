package verifier

import (
	"testing"

	"github.com/shenikar/coastal_verification_system/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestClassify_Boundaries(t *testing.T) {
	bands := DefaultBands()

	cases := []struct {
		name     string
		score    float64
		expected models.Decision
	}{
		{"well_below_review", 0, models.DecisionAutoRejected},
		{"just_below_review", 39.999, models.DecisionAutoRejected},
		{"review_boundary_inclusive", 40.0, models.DecisionNeedsReview},
		{"mid_review_band", 60, models.DecisionNeedsReview},
		{"just_below_approve", 74.999, models.DecisionNeedsReview},
		{"approve_boundary_inclusive", 75.0, models.DecisionAutoApproved},
		{"max_score", 100, models.DecisionAutoApproved},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, bands.Classify(tc.score))
		})
	}
}

func TestClassify_CustomBands(t *testing.T) {
	bands := Bands{ApproveAt: 90, ReviewAt: 50}

	assert.Equal(t, models.DecisionNeedsReview, bands.Classify(75))
	assert.Equal(t, models.DecisionAutoApproved, bands.Classify(90))
	assert.Equal(t, models.DecisionAutoRejected, bands.Classify(49.9))
}
