package cmd

import "time"

// Config carries everything the process needs from its environment.
type Config struct {
	HTTPPort       string
	DBPath         string
	BackupDir      string
	GateTimeout    time.Duration
	SessionTTL     time.Duration
	MaxUploadBytes int64

	// AdminUsername and AdminPassword seed the first administrative account
	// when the users table is empty.
	AdminUsername string
	AdminPassword string
}
