package slack

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/diegoclair/birthday-bot/internal/domain"
)

type CommandType string

const (
	CmdSet  CommandType = "set"
	CmdMe   CommandType = "me"
	CmdList CommandType = "list"
	CmdTest CommandType = "test"
	CmdHelp CommandType = "help"
)

// SlashCommand is the slash command the app is installed under
const SlashCommand = "/birthday"

type Command struct {
	Type  CommandType
	Day   int
	Month int
	Year  *int
	Raw   string
}

// Name maps the sub command to the shared command name
func (c *Command) Name() string {
	switch c.Type {
	case CmdSet:
		return domain.CommandSetBirthday
	case CmdMe:
		return domain.CommandMyBirthday
	case CmdList:
		return domain.CommandListBirthdays
	case CmdTest:
		return domain.CommandTestBirthday
	default:
		return domain.CommandHelp
	}
}

func ParseCommand(text string) (*Command, error) {
	parts := strings.Fields(strings.TrimSpace(text))
	if len(parts) == 0 {
		return &Command{Type: CmdHelp}, nil
	}

	cmd := &Command{
		Raw: text,
	}

	switch strings.ToLower(parts[0]) {
	case "set":
		cmd.Type = CmdSet
		if err := cmd.parseDate(parts[1:]); err != nil {
			return nil, err
		}
	case "me", "mine":
		cmd.Type = CmdMe
	case "list", "ls":
		cmd.Type = CmdList
	case "test":
		cmd.Type = CmdTest
	case "help":
		cmd.Type = CmdHelp
	default:
		return nil, fmt.Errorf("unknown command: %s", parts[0])
	}

	return cmd, nil
}

// parseDate reads "DAY MONTH [YEAR]". Range checks happen in the service.
func (c *Command) parseDate(args []string) error {
	if len(args) < 2 || len(args) > 3 {
		return fmt.Errorf("usage: `%s set DAY MONTH [YEAR]` (ex: `%s set 15 6 1990`)", SlashCommand, SlashCommand)
	}

	values := make([]int, len(args))
	for i, arg := range args {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("%q is not a number. Usage: `%s set DAY MONTH [YEAR]`", arg, SlashCommand)
		}
		values[i] = v
	}

	c.Day, c.Month = values[0], values[1]
	if len(values) == 3 {
		c.Year = &values[2]
	}
	return nil
}

func GetHelpText() string {
	return `*Available Commands:*

• ` + "`/birthday set DAY MONTH [YEAR]`" + ` - Set your birthday (ex: ` + "`/birthday set 15 6 1990`" + `)
• ` + "`/birthday me`" + ` - Show your birthday
• ` + "`/birthday list`" + ` - List all birthdays (admins only)
• ` + "`/birthday test`" + ` - Send a test announcement (admins only)
• ` + "`/birthday help`" + ` - Show this message`
}
