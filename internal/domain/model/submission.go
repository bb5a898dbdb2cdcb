package model

import (
	"errors"
	"strings"
	"time"
)

// SubmissionStatus tracks review state of a team participation entry.
type SubmissionStatus string

const (
	SubmissionStatusSubmitted SubmissionStatus = "submitted"
	SubmissionStatusVerified  SubmissionStatus = "verified"
	SubmissionStatusArchived  SubmissionStatus = "archived"
)

// Valid reports whether the status is supported.
func (s SubmissionStatus) Valid() bool {
	switch s {
	case SubmissionStatusSubmitted, SubmissionStatusVerified, SubmissionStatusArchived:
		return true
	default:
		return false
	}
}

// ParseSubmissionStatus normalizes a status string and reports whether it is supported.
func ParseSubmissionStatus(value string) (SubmissionStatus, bool) {
	status := SubmissionStatus(strings.ToLower(strings.TrimSpace(value)))
	if status.Valid() {
		return status, true
	}
	return "", false
}

// Submission is a team's participation record for a hackathon.
type Submission struct {
	ID                           string           `json:"id"                             db:"id"`
	HackathonID                  string           `json:"hackathon_id"                   db:"hackathon_id"`
	TeamName                     string           `json:"team_name"                      db:"team_name"`
	ParticipantCount             int              `json:"participant_count"              db:"participant_count"`
	MentorCount                  int              `json:"mentor_count"                   db:"mentor_count"`
	ExternalRegistrationConfirmed bool            `json:"external_registration_confirmed" db:"external_registration_confirmed"`
	Status                       SubmissionStatus `json:"status"                         db:"status"`
	CreatedAt                    time.Time        `json:"created_at"                     db:"created_at"`
}

// Participant is a team member on a submission.
type Participant struct {
	ID           string `json:"id"            db:"id"`
	SubmissionID string `json:"submission_id" db:"submission_id"`
	Name         string `json:"name"          db:"name"`
	Email        string `json:"email"         db:"email"`
	Department   string `json:"department"    db:"department"`
	AcademicYear string `json:"academic_year" db:"academic_year"`
}

// Mentor is a faculty mentor on a submission.
type Mentor struct {
	ID           string `json:"id"            db:"id"`
	SubmissionID string `json:"submission_id" db:"submission_id"`
	Name         string `json:"name"          db:"name"`
	Department   string `json:"department"    db:"department"`
}

// SubmissionDetail is a submission joined with its team members and mentors.
type SubmissionDetail struct {
	Submission   Submission    `json:"submission"`
	Participants []Participant `json:"participants"`
	Mentors      []Mentor      `json:"mentors"`
}

// ParticipantInput is a participant entry in a submission request.
type ParticipantInput struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Department   string `json:"department"`
	AcademicYear string `json:"academic_year"`
}

// MentorInput is a mentor entry in a submission request.
type MentorInput struct {
	Name       string `json:"name"`
	Department string `json:"department"`
}

// SubmitParticipationRequest is the public team-participation submission.
type SubmitParticipationRequest struct {
	HackathonID                   string             `json:"hackathon_id"`
	TeamName                      string             `json:"team_name"`
	ExternalRegistrationConfirmed bool               `json:"external_registration_confirmed"`
	Participants                  []ParticipantInput `json:"participants"`
	Mentors                       []MentorInput      `json:"mentors"`
}

// Validate validates SubmitParticipationRequest. Participants must carry
// distinct institutional email addresses, and the team must confirm it has
// registered with the organizer directly before the portal records anything.
func (r *SubmitParticipationRequest) Validate() error {
	if strings.TrimSpace(r.HackathonID) == "" {
		return errors.New("hackathon_id is required")
	}
	if strings.TrimSpace(r.TeamName) == "" {
		return errors.New("team_name is required")
	}
	if !r.ExternalRegistrationConfirmed {
		return errors.New("External registration must be confirmed")
	}
	if len(r.Participants) == 0 {
		return errors.New("at least one participant is required")
	}
	seen := make(map[string]struct{}, len(r.Participants))
	for _, p := range r.Participants {
		if strings.TrimSpace(p.Name) == "" {
			return errors.New("every participant needs a name and email")
		}
		if err := ValidateCollegeEmail(p.Email); err != nil {
			return err
		}
		if _, dup := seen[p.Email]; dup {
			return errors.New("Duplicate participant emails")
		}
		seen[p.Email] = struct{}{}
	}
	for _, m := range r.Mentors {
		if strings.TrimSpace(m.Name) == "" {
			return errors.New("every mentor needs a name")
		}
	}
	return nil
}
