package model

import (
	"errors"
	"strings"
	"time"
)

// HackathonMode says whether an event is held online or on premises.
type HackathonMode string

const (
	HackathonModeOnline  HackathonMode = "ONLINE"
	HackathonModeOffline HackathonMode = "OFFLINE"
)

// Valid reports whether the mode is supported.
func (m HackathonMode) Valid() bool {
	return m == HackathonModeOnline || m == HackathonModeOffline
}

// ParseHackathonMode normalizes a mode string and reports whether it is supported.
func ParseHackathonMode(value string) (HackathonMode, bool) {
	mode := HackathonMode(strings.ToUpper(strings.TrimSpace(value)))
	if mode.Valid() {
		return mode, true
	}
	return "", false
}

// HackathonStatus is the lifecycle state of a listing.
type HackathonStatus string

const (
	HackathonStatusUpcoming HackathonStatus = "UPCOMING"
	HackathonStatusOngoing  HackathonStatus = "ONGOING"
	HackathonStatusClosed   HackathonStatus = "CLOSED"
)

// Valid reports whether the status is supported.
func (s HackathonStatus) Valid() bool {
	switch s {
	case HackathonStatusUpcoming, HackathonStatusOngoing, HackathonStatusClosed:
		return true
	default:
		return false
	}
}

// ParseHackathonStatus normalizes a status string and reports whether it is supported.
func ParseHackathonStatus(value string) (HackathonStatus, bool) {
	status := HackathonStatus(strings.ToUpper(strings.TrimSpace(value)))
	if status.Valid() {
		return status, true
	}
	return "", false
}

// Hackathon is a tracked hackathon listing.
type Hackathon struct {
	ID                       string          `json:"id"                        db:"id"`
	Name                     string          `json:"name"                      db:"name"`
	Organizer                string          `json:"organizer"                 db:"organizer"`
	Description              string          `json:"description"               db:"description"`
	Mode                     HackathonMode   `json:"mode"                      db:"mode"`
	Location                 *string         `json:"location,omitempty"        db:"location"`
	StartDate                time.Time       `json:"start_date"                db:"start_date"`
	EndDate                  time.Time       `json:"end_date"                  db:"end_date"`
	RegistrationDeadline     time.Time       `json:"registration_deadline"     db:"registration_deadline"`
	OfficialRegistrationLink string          `json:"official_registration_link" db:"official_registration_link"`
	Eligibility              string          `json:"eligibility"               db:"eligibility"`
	Status                   HackathonStatus `json:"status"                    db:"status"`
	Semester                 string          `json:"semester"                  db:"semester"`
	CreatedAt                time.Time       `json:"created_at"                db:"created_at"`
	UpdatedAt                time.Time       `json:"updated_at"                db:"updated_at"`
	CreatedBy                string          `json:"created_by"                db:"created_by"`
}

// CreateHackathonRequest represents parameters to create a Hackathon.
type CreateHackathonRequest struct {
	Name                     string     `json:"name"`
	Organizer                string     `json:"organizer"`
	Description              string     `json:"description"`
	Mode                     string     `json:"mode"`
	Location                 *string    `json:"location,omitempty"`
	StartDate                time.Time  `json:"start_date"`
	EndDate                  time.Time  `json:"end_date"`
	RegistrationDeadline     time.Time  `json:"registration_deadline"`
	OfficialRegistrationLink string     `json:"official_registration_link"`
	Eligibility              string     `json:"eligibility"`
	Semester                 string     `json:"semester"`
	Status                   *string    `json:"status,omitempty"`
}

// Validate validates CreateHackathonRequest.
func (r *CreateHackathonRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return errors.New("name is required")
	}
	if strings.TrimSpace(r.Organizer) == "" {
		return errors.New("organizer is required")
	}
	if _, ok := ParseHackathonMode(r.Mode); !ok {
		return errors.New("mode must be ONLINE or OFFLINE")
	}
	if r.EndDate.Before(r.StartDate) {
		return errors.New("end date cannot be before start date")
	}
	if strings.TrimSpace(r.Semester) == "" {
		return errors.New("semester is required")
	}
	if r.Status != nil {
		if _, ok := ParseHackathonStatus(*r.Status); !ok {
			return errors.New("status must be UPCOMING, ONGOING, or CLOSED")
		}
	}
	return nil
}

// UpdateHackathonRequest represents partial updates to a Hackathon.
type UpdateHackathonRequest struct {
	Name                     *string    `json:"name,omitempty"`
	Organizer                *string    `json:"organizer,omitempty"`
	Description              *string    `json:"description,omitempty"`
	Mode                     *string    `json:"mode,omitempty"`
	Location                 *string    `json:"location,omitempty"`
	StartDate                *time.Time `json:"start_date,omitempty"`
	EndDate                  *time.Time `json:"end_date,omitempty"`
	RegistrationDeadline     *time.Time `json:"registration_deadline,omitempty"`
	OfficialRegistrationLink *string    `json:"official_registration_link,omitempty"`
	Eligibility              *string    `json:"eligibility,omitempty"`
	Semester                 *string    `json:"semester,omitempty"`
}

// Validate validates UpdateHackathonRequest.
func (r *UpdateHackathonRequest) Validate() error {
	if r.Name != nil && strings.TrimSpace(*r.Name) == "" {
		return errors.New("name cannot be empty")
	}
	if r.Mode != nil {
		if _, ok := ParseHackathonMode(*r.Mode); !ok {
			return errors.New("mode must be ONLINE or OFFLINE")
		}
	}
	return nil
}

// UpdateStatusRequest carries a status transition for hackathons or submissions.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}
