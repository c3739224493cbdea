package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Shift identifies one of the two daily coverage blocks.
type Shift string

const (
	ShiftAM Shift = "AM"
	ShiftPM Shift = "PM"
)

// ShiftOrder is the fixed per-day assignment order. AM runs first because an
// AM assignment changes the hour totals used to break ties for the PM pick.
var ShiftOrder = []Shift{ShiftAM, ShiftPM}

// ShiftHours is the fixed length of every shift.
const ShiftHours = 6.0

// AvailabilityStatus is a caregiver's preference signal for one (date, shift).
type AvailabilityStatus string

const (
	Preferred   AvailabilityStatus = "preferred"
	Available   AvailabilityStatus = "available"
	Unavailable AvailabilityStatus = "unavailable"
)

// DefaultPayRate is the hourly rate applied when none is given.
var DefaultPayRate = decimal.NewFromInt(20)

// Slot keys a caregiver's availability by date ("YYYY-MM-DD") and shift.
type Slot struct {
	Date  string
	Shift Shift
}

// Caregiver represents a person available for care shifts.
type Caregiver struct {
	ID           string                      `json:"id"`
	Name         string                      `json:"name"`
	Phone        string                      `json:"phone"`
	Email        string                      `json:"email"`
	PayRate      decimal.Decimal             `json:"pay_rate"`
	Hours        float64                     `json:"hours"`
	Availability map[Slot]AvailabilityStatus `json:"-"`
}

// NewCaregiver validates the identity fields and returns a caregiver with a
// fresh ID, zero hours, and an empty availability map.
func NewCaregiver(name, phone, email string, payRate decimal.Decimal) (*Caregiver, error) {
	if strings.TrimSpace(name) == "" {
		return nil, invalid("name", "must not be empty")
	}
	if strings.TrimSpace(phone) == "" {
		return nil, invalid("phone", "must not be empty")
	}
	if strings.Count(email, "@") != 1 || strings.TrimSpace(email) == "" {
		return nil, invalid("email", "must contain exactly one @")
	}
	if payRate.IsNegative() {
		return nil, invalid("pay_rate", "must not be negative")
	}

	return &Caregiver{
		ID:           uuid.NewString(),
		Name:         name,
		Phone:        phone,
		Email:        email,
		PayRate:      payRate,
		Availability: make(map[Slot]AvailabilityStatus),
	}, nil
}

// SetAvailability records the caregiver's status for one (date, shift),
// overwriting any prior entry.
func (c *Caregiver) SetAvailability(date string, shift Shift, status AvailabilityStatus) error {
	switch status {
	case Preferred, Available, Unavailable:
	default:
		return invalid("status", "must be preferred, available or unavailable")
	}
	switch shift {
	case ShiftAM, ShiftPM:
	default:
		return invalid("shift", "must be AM or PM")
	}

	if c.Availability == nil {
		c.Availability = make(map[Slot]AvailabilityStatus)
	}
	c.Availability[Slot{Date: date, Shift: shift}] = status
	return nil
}

// AvailabilityFor is a total lookup: slots never set read as Available.
func (c *Caregiver) AvailabilityFor(date string, shift Shift) AvailabilityStatus {
	if st, ok := c.Availability[Slot{Date: date, Shift: shift}]; ok {
		return st
	}
	return Available
}

// AddHours increments the cumulative hour total. Negative deltas are
// rejected and leave the total unchanged.
func (c *Caregiver) AddHours(h float64) error {
	if h < 0 {
		return invalid("hours", "delta must not be negative")
	}
	c.Hours += h
	return nil
}

// Clone returns a deep copy, including the availability map. Schedulers work
// on clones so a build never mutates the caller's records.
func (c *Caregiver) Clone() *Caregiver {
	dup := *c
	dup.Availability = make(map[Slot]AvailabilityStatus, len(c.Availability))
	for k, v := range c.Availability {
		dup.Availability[k] = v
	}
	return &dup
}
