package domain

import "errors"

var (
	ErrInvalidEventDate      = errors.New("invalid event date")
	ErrInvalidTicketOpenDate = errors.New("invalid ticket open date")
	ErrUnknownTimezone       = errors.New("unknown timezone")
	ErrEmptyPlanID           = errors.New("plan id is empty")
)
