package domain

// Baseline tags attached to every submission.
const (
	TagAutoImport = "auto-import"
	TagYouTube    = "youtube"
)

// CollectionMeta describes the group the submitted items belong to.
// Title becomes a name:<title> tag; Author and Location are forwarded
// as-is when present.
type CollectionMeta struct {
	Title    string
	Author   string
	Location string
}

// Reader API document locations.
var validLocations = map[string]bool{
	"new":     true,
	"later":   true,
	"archive": true,
	"feed":    true,
}

// ValidLocation reports whether s is an accepted location value.
// The empty string is valid and means "let the API decide".
func ValidLocation(s string) bool {
	return s == "" || validLocations[s]
}

// SubmissionRequest is the wire body of one save call. Field names and
// literals match the Reader API exactly.
type SubmissionRequest struct {
	URL        string   `json:"url"`
	Tags       []string `json:"tags"`
	SavedUsing string   `json:"saved_using"`
	Category   string   `json:"category"`
	Author     string   `json:"author,omitempty"`
	Location   string   `json:"location,omitempty"`
}

// NewSubmissionRequest builds the request body for one item. The tag set
// always contains the two baseline tags; the collection-title tag is
// added only when the title is non-empty.
func NewSubmissionRequest(item Item, meta CollectionMeta) SubmissionRequest {
	tags := []string{TagAutoImport, TagYouTube}
	if meta.Title != "" {
		tags = append(tags, "name:"+meta.Title)
	}

	return SubmissionRequest{
		URL:        item.URL,
		Tags:       tags,
		SavedUsing: TagAutoImport,
		Category:   "video",
		Author:     meta.Author,
		Location:   meta.Location,
	}
}
