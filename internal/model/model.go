package model

// IconTypeFile asks the launcher to render the icon of the file at Icon.Path.
// It is the launcher's own "file" marker, spelled the way Alfred expects it.
const IconTypeFile = "fileicon"

const (
	NoResultsUID      = "no-results"
	NoResultsTitle    = "No results found"
	NoResultsSubtitle = "Try a different search term"
	// NoResultsIcon is bundled next to the binary in the launcher workflow.
	NoResultsIcon = "icon.png"
)

type Icon struct {
	Path string `json:"path"`
	Type string `json:"type"`
}

func NewFileIcon(path string) Icon {
	return Icon{Path: path, Type: IconTypeFile}
}

// Item is one selectable result row.
//
// UID must be stable per underlying entity (workspace id or absolute path):
// the launcher uses it to learn selection frequency across invocations.
// Valid is nil for every real item; omission means "valid" to the launcher.
type Item struct {
	UID      string `json:"uid"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Icon     Icon   `json:"icon"`
	Arg      string `json:"arg"`
	Valid    *bool  `json:"valid,omitempty"`
}

// NewPathItem builds the common item shape used by both sources: the path is
// the subtitle, the action argument and the icon source.
func NewPathItem(uid, title, path string) Item {
	return Item{
		UID:      uid,
		Title:    title,
		Subtitle: path,
		Icon:     NewFileIcon(path),
		Arg:      path,
	}
}

func NoResultsItem() Item {
	invalid := false
	return Item{
		UID:      NoResultsUID,
		Title:    NoResultsTitle,
		Subtitle: NoResultsSubtitle,
		Icon:     Icon{Path: NoResultsIcon, Type: ""},
		Arg:      "",
		Valid:    &invalid,
	}
}

type Response struct {
	Items []Item `json:"items"`
}

// NewResponse wraps items for output. An empty list becomes a single
// placeholder item, so a response always carries at least one item.
func NewResponse(items []Item) Response {
	if len(items) == 0 {
		return Response{Items: []Item{NoResultsItem()}}
	}
	return Response{Items: items}
}
