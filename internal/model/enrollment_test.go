package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnrollmentFilterMatches(t *testing.T) {
	pending := Enrollment{ID: 1}
	verifiedNoKills := Enrollment{ID: 2, PaymentVerified: true}
	verifiedWithKills := Enrollment{ID: 3, PaymentVerified: true, Kills: 4}

	tests := []struct {
		name   string
		filter EnrollmentFilter
		want   []bool
	}{
		{"empty filter matches everything", EnrollmentFilter{}, []bool{true, true, true}},
		{"pending", PendingPayment(), []bool{true, false, false}},
		{"verified", VerifiedPayment(), []bool{false, true, true}},
		{"verified with kills", EnrollmentFilter{Verified: VerifiedPayment().Verified, WithKills: true}, []bool{false, false, true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := []bool{
				tt.filter.Matches(pending),
				tt.filter.Matches(verifiedNoKills),
				tt.filter.Matches(verifiedWithKills),
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
