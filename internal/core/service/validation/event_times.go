package validation

import (
	"fmt"
	"photodrop/internal/core/domain"
	"time"
)

const (
	dateLayout     = "2006-01-02"
	timeLayout     = "15:04"
	dateTimeLayout = "2006-01-02 15:04"
)

// EventTimeValidator validates a proposed event time range against the
// calendar and the current clock at event-creation time.
type EventTimeValidator struct {
	now func() time.Time
}

// NewEventTimeValidator creates an EventTimeValidator using the wall clock
func NewEventTimeValidator() *EventTimeValidator {
	return &EventTimeValidator{now: time.Now}
}

// Validate checks that the proposed range is internally consistent and not
// already in the past. Dates are "2006-01-02", times are "15:04", both in
// the event's local wall-clock frame. Malformed strings are an input error;
// every failed check appends its own finding, nothing short-circuits.
func (v *EventTimeValidator) Validate(startDate, endDate, startTime, endTime string) (domain.EventTimeValidationResult, error) {
	start, err := time.ParseInLocation(dateLayout, startDate, time.Local)
	if err != nil {
		return domain.EventTimeValidationResult{}, fmt.Errorf("%w: invalid start date %q", domain.ErrInvalidInput, startDate)
	}
	end, err := time.ParseInLocation(dateLayout, endDate, time.Local)
	if err != nil {
		return domain.EventTimeValidationResult{}, fmt.Errorf("%w: invalid end date %q", domain.ErrInvalidInput, endDate)
	}
	startAt, err := time.ParseInLocation(dateTimeLayout, startDate+" "+startTime, time.Local)
	if err != nil {
		return domain.EventTimeValidationResult{}, fmt.Errorf("%w: invalid start time %q", domain.ErrInvalidInput, startTime)
	}
	endAt, err := time.ParseInLocation(dateTimeLayout, endDate+" "+endTime, time.Local)
	if err != nil {
		return domain.EventTimeValidationResult{}, fmt.Errorf("%w: invalid end time %q", domain.ErrInvalidInput, endTime)
	}

	now := v.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var findings []string
	if start.Before(today) {
		findings = append(findings, "start date cannot be in the past")
	}
	if end.Before(start) {
		findings = append(findings, "end date cannot be before start date")
	}
	// A same-day event tolerates start date == today but still rejects a
	// start time that already passed. Cross-day starts skip this check.
	if start.Equal(today) && startAt.Before(now) {
		findings = append(findings, "start time cannot be in the past")
	}
	if start.Equal(end) && endAt.Before(startAt) {
		findings = append(findings, "end time cannot be before start time on the same day")
	}

	return domain.EventTimeValidationResult{
		IsValid: len(findings) == 0,
		Errors:  findings,
	}, nil
}

// EventWindow composes the validated date and time strings into the concrete
// [start, end] window an event is persisted with.
func EventWindow(startDate, startTime, endDate, endTime string) (time.Time, time.Time, error) {
	startAt, err := time.ParseInLocation(dateTimeLayout, startDate+" "+startTime, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: invalid start %q %q", domain.ErrInvalidInput, startDate, startTime)
	}
	endAt, err := time.ParseInLocation(dateTimeLayout, endDate+" "+endTime, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: invalid end %q %q", domain.ErrInvalidInput, endDate, endTime)
	}
	return startAt, endAt, nil
}
