package model

// Metrics are the portal-wide aggregates shown on the admin dashboard.
// TotalStudents counts distinct participant emails, not student accounts.
type Metrics struct {
	TotalHackathons  int64 `json:"total_hackathons"`
	TotalSubmissions int64 `json:"total_submissions"`
	TotalStudents    int64 `json:"total_students"`
	TotalMentors     int64 `json:"total_mentors"`
}
