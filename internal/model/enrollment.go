package model

import "time"

// Enrollment links a player to a tournament and tracks payment and kills
type Enrollment struct {
	ID              int64
	PlayerID        int64
	TournamentID    int64
	PaymentVerified bool // only ever transitions false -> true
	Kills           int
	CreatedAt       time.Time
}

// EnrollmentDetail is an enrollment with its player and tournament embedded
type EnrollmentDetail struct {
	Enrollment
	Player     Player
	Tournament Tournament
}

// EnrollmentFilter narrows enrollment listings.
// A nil Verified matches both states.
type EnrollmentFilter struct {
	Verified  *bool
	WithKills bool // only rows with kills > 0
}

// Matches reports whether the enrollment passes the filter
func (f EnrollmentFilter) Matches(e Enrollment) bool {
	if f.Verified != nil && e.PaymentVerified != *f.Verified {
		return false
	}
	if f.WithKills && e.Kills <= 0 {
		return false
	}
	return true
}

// PendingPayment matches enrollments whose payment has not been verified
func PendingPayment() EnrollmentFilter {
	verified := false
	return EnrollmentFilter{Verified: &verified}
}

// VerifiedPayment matches enrollments whose payment has been verified
func VerifiedPayment() EnrollmentFilter {
	verified := true
	return EnrollmentFilter{Verified: &verified}
}
