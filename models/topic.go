package models

// Video is one entry of the instructional video catalog
type Video struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Duration string `json:"duration"`
}

// EmbedURL is the player URL for the video
func (v Video) EmbedURL() string {
	return "https://www.youtube.com/embed/" + v.ID
}

// PracticeTopic is a writing prompt produced by practice mode
type PracticeTopic struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Context      string   `json:"context,omitempty"`
	Requirements []string `json:"requirements,omitempty"`
	VideoTitle   string   `json:"videoTitle,omitempty"`
	Video        *Video   `json:"video,omitempty"`
}
