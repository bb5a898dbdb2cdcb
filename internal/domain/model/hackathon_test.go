package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseHackathonMode(t *testing.T) {
	mode, ok := ParseHackathonMode(" online ")
	assert.True(t, ok)
	assert.Equal(t, HackathonModeOnline, mode)

	_, ok = ParseHackathonMode("hybrid")
	assert.False(t, ok)
}

func TestParseHackathonStatus(t *testing.T) {
	status, ok := ParseHackathonStatus("closed")
	assert.True(t, ok)
	assert.Equal(t, HackathonStatusClosed, status)

	_, ok = ParseHackathonStatus("cancelled")
	assert.False(t, ok)
}

func TestCreateHackathonRequest_Validate(t *testing.T) {
	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	valid := func() CreateHackathonRequest {
		return CreateHackathonRequest{
			Name:      "Smart India Hackathon",
			Organizer: "AICTE",
			Mode:      "ONLINE",
			StartDate: start,
			EndDate:   start.Add(48 * time.Hour),
			Semester:  "2026-odd",
		}
	}

	req := valid()
	assert.NoError(t, req.Validate())

	req = valid()
	req.EndDate = start.Add(-time.Hour)
	assert.EqualError(t, req.Validate(), "end date cannot be before start date")

	req = valid()
	req.Mode = "hybrid"
	assert.EqualError(t, req.Validate(), "mode must be ONLINE or OFFLINE")

	req = valid()
	req.Semester = ""
	assert.EqualError(t, req.Validate(), "semester is required")
}
