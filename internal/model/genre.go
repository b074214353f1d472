package model

// Genre is a tag that movies reference by Name.  Names are intended to be
// unique but nothing enforces it.
type Genre struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// GenreInput is the payload for creating a genre.
type GenreInput struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}
