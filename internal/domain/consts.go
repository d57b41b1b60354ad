package domain

import "time"

// MonthNames maps month numbers (1-12) to their English names
var MonthNames = map[int]string{
	1:  "January",
	2:  "February",
	3:  "March",
	4:  "April",
	5:  "May",
	6:  "June",
	7:  "July",
	8:  "August",
	9:  "September",
	10: "October",
	11: "November",
	12: "December",
}

// DaysInMonth holds the maximum day for each month. February allows 29 so
// leap-day birthdays can always be registered.
var DaysInMonth = [12]int{31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

const (
	MinBirthYear = 1900

	DefaultTimezone         = "America/New_York"
	DefaultNotificationHour = 10
	DefaultHealthInterval   = time.Minute

	// HealthStaleAfter is how old a health record may get before supervisors
	// must treat it as unhealthy.
	HealthStaleAfter = 2 * time.Minute
)

// Synthetic user for /testbirthday.
const (
	TestUsername  = "Ben Franklin"
	TestBirthYear = 1706
)

const (
	PlatformDiscord = "discord"
	PlatformSlack   = "slack"
)

// BotActivity is what the bot shows as "Listening to ..." on Discord
const BotActivity = "Happy Birthday"

const AnnouncementImageURL = "https://slamanna.com/rehero/hbd.png"

// AnnouncementColor is the embed/attachment accent color
const AnnouncementColor = 0xac1cfe

// Command names shared by every command surface
const (
	CommandSetBirthday   = "setbirthday"
	CommandMyBirthday    = "mybirthday"
	CommandListBirthdays = "listbirthdays"
	CommandTestBirthday  = "testbirthday"
	CommandHelp          = "help"
)

const AnnouncementTitle = "🎂 Birthday Celebration! 🎂"

// TestAnnouncementFooter marks announcements sent by the test command
const TestAnnouncementFooter = "This is a test message"
