package domain

// ProfileImage is one entry of a profile's image set, largest first.
type ProfileImage struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// UserProfile holds the minimal account profile fields kept in process
// memory. Profiles are never persisted across runs.
type UserProfile struct {
	DisplayName string
	ID          string
	Images      []ProfileImage
}

// Valid reports whether the profile carries the required fields: a display
// name, an id, and, when images are present, a URL on the first one.
func (p *UserProfile) Valid() bool {
	if p.DisplayName == "" || p.ID == "" {
		return false
	}
	if len(p.Images) > 0 && p.Images[0].URL == "" {
		return false
	}
	return true
}
