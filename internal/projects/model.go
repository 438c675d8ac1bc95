package projects

// Project is a portfolio entry. Media fields are optional: a project may
// carry an image, a video or nothing at all.
type Project struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Technology  string   `json:"technology"`
	Description string   `json:"description"`
	MediaURL    string   `json:"mediaUrl,omitempty"`
	MediaType   string   `json:"mediaType,omitempty"`
	GithubURL   string   `json:"githubUrl,omitempty"`
	LiveURL     string   `json:"liveUrl,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	CreatedAt   string   `json:"createdAt"`
	UpdatedAt   string   `json:"updatedAt"`
}

// Input carries the writable fields of a project.
type Input struct {
	Name        string   `json:"name"`
	Technology  string   `json:"technology"`
	Description string   `json:"description"`
	MediaURL    string   `json:"mediaUrl"`
	MediaType   string   `json:"mediaType"`
	GithubURL   string   `json:"githubUrl"`
	LiveURL     string   `json:"liveUrl"`
	Tags        []string `json:"tags"`
}
