package models

// Category classifies the platform a project shipped on.
type Category string

const (
	CategoryMobile  Category = "Mobile"
	CategoryPC      Category = "PC"
	CategoryVR      Category = "VR"
	CategoryConsole Category = "Console"
)

// Status marks whether a project is playable yet.
type Status string

const (
	StatusAvailable  Status = "available"
	StatusComingSoon Status = "coming-soon"
)

// PlaceholderImageURL is substituted when a project is saved without artwork.
const PlaceholderImageURL = "https://picsum.photos/800/600"

// Project is one showcased portfolio entry. The image can be a remote URL,
// a relative path under the public directory, or an inline data URI.
// Technologies keeps insertion order because it is also display order.
type Project struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	ImageURL     string   `json:"imageUrl"`
	Technologies []string `json:"technologies"`
	Category     Category `json:"category"`
	Link         string   `json:"link,omitempty"`
	Status       Status   `json:"status,omitempty"`
}

// ProjectDraft is the payload for creating a project.
// Title and description are required for save; everything else defaults.
type ProjectDraft struct {
	Title        string   `json:"title" binding:"required"`
	Description  string   `json:"description" binding:"required"`
	ImageURL     string   `json:"imageUrl"`
	Technologies []string `json:"technologies"`
	Category     Category `json:"category" binding:"required,oneof=Mobile PC VR Console"`
	Link         string   `json:"link"`
	Status       Status   `json:"status" binding:"omitempty,oneof=available coming-soon"`
}

// ProjectPatch updates an existing project. Only fields present in the
// JSON body are applied; absent fields keep their prior values.
type ProjectPatch struct {
	Title        *string   `json:"title"`
	Description  *string   `json:"description"`
	ImageURL     *string   `json:"imageUrl"`
	Technologies *[]string `json:"technologies"`
	Category     *Category `json:"category" binding:"omitempty,oneof=Mobile PC VR Console"`
	Link         *string   `json:"link"`
	Status       *Status   `json:"status" binding:"omitempty,oneof=available coming-soon"`
}

// ProjectsResponse is the standard response format for project listings.
type ProjectsResponse struct {
	Projects []Project `json:"projects"`
	Total    int       `json:"total"`
}
