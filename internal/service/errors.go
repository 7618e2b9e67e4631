package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	// ErrPolicyViolation wraps the specific password-policy sentinel that
	// fired (see the validators package), so callers can match either the
	// broad class or the exact rule.
	ErrPolicyViolation = errors.New("password policy violation")
)
