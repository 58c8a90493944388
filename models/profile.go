package models

// UserProfile is the static descriptive record rendered on the landing
// page. It is read-only at runtime; only the development save endpoint
// may replace it when regenerating the seed artifact.
type UserProfile struct {
	Name            string   `json:"name"`
	Title           string   `json:"title"`
	ExperienceYears int      `json:"experienceYears"`
	About           string   `json:"about"`
	Skills          []string `json:"skills"`
}
