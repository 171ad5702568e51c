package utils

import "time"

const (
	Day = 24 * time.Hour

	// Telegram allows roughly 30 messages per second per bot, sweeping faster
	// than this with many verified users will run into 429s.
	MinSweepInterval = 200 * time.Millisecond
)
