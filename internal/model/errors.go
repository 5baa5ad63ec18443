package model

import "errors"

// Common errors used across the application
var (
	ErrTournamentNotFound = errors.New("tournament not found")
	ErrPlayerNotFound     = errors.New("player not found")
	ErrEnrollmentNotFound = errors.New("enrollment not found")

	ErrInvalidKills = errors.New("kills must be a non-negative integer")
)
