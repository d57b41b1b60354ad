package service

import "time"

// Config carries the deployment settings the services need
type Config struct {
	ChannelID string
	// RoleID is optional; empty disables birthday role management
	RoleID   string
	Location *time.Location
}

type clock func() time.Time
