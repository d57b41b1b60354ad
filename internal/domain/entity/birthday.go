package entity

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/diegoclair/birthday-bot/internal/domain"
)

type Birthday struct {
	UserID    string
	Username  string
	Day       int
	Month     int
	Year      *int
	CreatedAt time.Time
}

// Age returns how old the user turns in localYear. ok is false when no birth
// year was registered.
func (b *Birthday) Age(localYear int) (age int, ok bool) {
	if b.Year == nil {
		return 0, false
	}
	return localYear - *b.Year, true
}

// DateString formats the birthday as "June 15, 1990", or "June 15" without a year.
func (b *Birthday) DateString() string {
	if b.Year != nil {
		return fmt.Sprintf("%s %d, %d", domain.MonthNames[b.Month], b.Day, *b.Year)
	}
	return b.ShortDateString()
}

// ShortDateString formats the birthday as "June 15", ignoring the year.
func (b *Birthday) ShortDateString() string {
	return fmt.Sprintf("%s %d", domain.MonthNames[b.Month], b.Day)
}

// Announcement is one birthday message to post in the announcement channel.
type Announcement struct {
	UserID   string
	Username string
	Age      *int
	Test     bool
}

// NewAnnouncement builds the announcement for b as seen in localYear.
func NewAnnouncement(b *Birthday, localYear int) Announcement {
	a := Announcement{
		UserID:   b.UserID,
		Username: b.Username,
	}
	if age, ok := b.Age(localYear); ok {
		a.Age = &age
	}
	return a
}

// Message renders the announcement text. bold wraps text in the platform's
// emphasis markup.
func (a Announcement) Message(bold func(string) string) string {
	var sb strings.Builder
	sb.WriteString("🎉\n\n🎂 " + bold("Happy Birthday "+a.Username+"!") + " 🎂\n\n")
	if a.Age != nil {
		sb.WriteString("🎈 You're turning " + bold(strconv.Itoa(*a.Age)) + " today! 🎈\n\n")
	}
	sb.WriteString("Hope you have a wonderful day! 🎊")
	return sb.String()
}
