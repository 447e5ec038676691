package model

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type Group struct {
	Name  string   `validate:"required"`
	Quota []uint64 `validate:"required"` // Lessons per subject over the whole cycle, indexed like TimetableSpec.Subjects
}

// Wish asks for Subject to be taught to Group at the given day and slot. It is honoured only when compatible with the quotas
type Wish struct {
	Subject uint64
	Group   uint64
	Day     Day
	Slot    uint64
}

type TimetableSpec struct {
	Groups        []Group  `validate:"required,min=1,dive"`
	Subjects      []string `validate:"required,min=1"`
	LessonsPerDay uint64   `validate:"gt=0"` // Capacity of every day
	Wishes        []Wish
}

func (spec TimetableSpec) CountGroups() uint64 {
	return uint64(len(spec.Groups))
}

func (spec TimetableSpec) CountSubjects() uint64 {
	return uint64(len(spec.Subjects))
}

// Validate checks the spec before any model is built and returns a *ConfigurationError on the first violation found
func (spec TimetableSpec) Validate() error {
	if err := validate.Struct(spec); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
			return fieldError(validationErrors[0])
		}
		return &ConfigurationError{Field: "TimetableSpec", Reason: err.Error()}
	}

	subjects := spec.CountSubjects()
	for i, group := range spec.Groups {
		if strings.TrimSpace(group.Name) == "" {
			return configurationError(fmt.Sprintf("Groups[%d].Name", i), "is blank")
		} else if uint64(len(group.Quota)) != subjects {
			return configurationError(fmt.Sprintf("Groups[%d].Quota", i), "has %d entries for %d subjects", len(group.Quota), subjects)
		}
	}

	for i, wish := range spec.Wishes {
		field := fmt.Sprintf("Wishes[%d]", i)
		switch {
		case wish.Subject >= subjects:
			return configurationError(field+".Subject", "subject %d out of range [0, %d)", wish.Subject, subjects)
		case wish.Group >= spec.CountGroups():
			return configurationError(field+".Group", "group %d out of range [0, %d)", wish.Group, spec.CountGroups())
		case !wish.Day.Valid():
			return configurationError(field+".Day", "day %d out of range [0, %d)", uint64(wish.Day), DaysInCycle)
		case wish.Slot >= spec.LessonsPerDay:
			return configurationError(field+".Slot", "slot %d out of range [0, %d)", wish.Slot, spec.LessonsPerDay)
		}
	}

	return nil
}

func fieldError(fieldError validator.FieldError) *ConfigurationError {
	field := strings.TrimPrefix(fieldError.Namespace(), "TimetableSpec.")

	var reason string
	switch fieldError.Tag() {
	case "required":
		reason = "is required"
	case "min":
		reason = fmt.Sprintf("must have at least %v entries", fieldError.Param())
	case "gt":
		reason = fmt.Sprintf("must be greater than %v", fieldError.Param())
	default:
		reason = fmt.Sprintf("fails the %q rule", fieldError.Tag())
	}
	return &ConfigurationError{Field: field, Reason: reason}
}

// NestedWishes flattens wishes given as subject -> group -> day -> slots, dropping duplicate slots
func NestedWishes(table map[uint64]map[uint64]map[Day][]uint64) []Wish {
	seen := make(map[Wish]bool)
	wishes := make([]Wish, 0)
	for subject, groups := range table {
		for group, days := range groups {
			for day, slots := range days {
				for _, slot := range slots {
					wish := Wish{Subject: subject, Group: group, Day: day, Slot: slot}
					if !seen[wish] {
						seen[wish] = true
						wishes = append(wishes, wish)
					}
				}
			}
		}
	}
	return wishes
}
