package constants

import "time"

// User role
const (
	RoleUser    = 0
	RoleAdmin   = 1
	RoleManager = 2
	RoleSystem  = 3
)

// Calendar day status
const (
	CalendarStatusAvailable = 0
	CalendarStatusBlocked   = 1
	CalendarStatusReserved  = 2
)

// Calendar source
const (
	CalendarSourceSystem       = "SYSTEM"
	CalendarSourceManualPrefix = "MANUAL: "
)

// Hold
const (
	HoldTTL           = 15 * time.Minute
	HoldSweepSchedule = "@every 1m"
)

// DateLayout định dạng ngày dùng trên API
const DateLayout = "2006-01-02"
