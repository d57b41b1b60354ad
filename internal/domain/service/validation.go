package service

import (
	"fmt"

	"github.com/diegoclair/birthday-bot/internal/domain"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	msgDayRange   = "Day must be between 1 and 31."
	msgMonthRange = "Month must be between 1 and 12."
	msgYearRange  = "Year must be between 1900 and the current year."
)

// validateBirthday checks the rules in a fixed order and reports the first
// one that fails. Required is there because ozzo skips zero values.
func validateBirthday(day, month int, year *int, currentYear int) error {
	err := validation.Validate(day,
		validation.Required.Error(msgDayRange),
		validation.Min(1).Error(msgDayRange),
		validation.Max(31).Error(msgDayRange),
	)
	if err != nil {
		return &domain.ValidationError{Rule: domain.RuleDayRange, Message: msgDayRange}
	}

	err = validation.Validate(month,
		validation.Required.Error(msgMonthRange),
		validation.Min(1).Error(msgMonthRange),
		validation.Max(12).Error(msgMonthRange),
	)
	if err != nil {
		return &domain.ValidationError{Rule: domain.RuleMonthRange, Message: msgMonthRange}
	}

	maxDay := domain.DaysInMonth[month-1]
	if err := validation.Validate(day, validation.Max(maxDay)); err != nil {
		return &domain.ValidationError{
			Rule:    domain.RuleMonthLength,
			Message: fmt.Sprintf("Invalid day for month %d. This month has a maximum of %d days.", month, maxDay),
		}
	}

	if year != nil {
		err := validation.Validate(*year,
			validation.Required.Error(msgYearRange),
			validation.Min(domain.MinBirthYear).Error(msgYearRange),
			validation.Max(currentYear).Error(msgYearRange),
		)
		if err != nil {
			return &domain.ValidationError{Rule: domain.RuleYearRange, Message: msgYearRange}
		}
	}

	return nil
}
