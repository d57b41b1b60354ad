package entity

import "time"

// Channel is the resolved announcement channel. GuildID is the server the
// channel belongs to and scopes every role operation.
type Channel struct {
	ID      string
	GuildID string
	Name    string
}

type Role struct {
	ID   string
	Name string
}

// RoleDelta is what has to change for the birthday role to match today's
// birthdays.
type RoleDelta struct {
	ToAdd    []string
	ToRemove []string
}

func (d RoleDelta) Empty() bool {
	return len(d.ToAdd) == 0 && len(d.ToRemove) == 0
}

type RoleSyncResult struct {
	Added   int
	Removed int
	Missing int
	Failed  int
}

type PlatformStatus struct {
	Connected bool
	User      string
	Guilds    int
	Ping      time.Duration
}
