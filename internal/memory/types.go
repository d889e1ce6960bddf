package memory

// Filename markers, matched case-insensitively as substrings.
const (
	OverlayMarker   = "-overlay.png"
	BaseImageMarker = "-main.jpg"
	BaseVideoMarker = "-main.mp4"
)

// Output naming.
const (
	OutputSuffix   = "_combined"
	ImageExtension = ".jpg"
	VideoExtension = ".mp4"
)

// Kind classifies an item by which base file is present.
type Kind int

const (
	KindUnclassified Kind = iota // Overlay but no base; counted, never combined.
	KindImage                    // Base image present (wins over a base video).
	KindVideo                    // Base video present, no base image.
)

func (k Kind) String() string {
	switch k {
	case KindImage:
		return "image"
	case KindVideo:
		return "video"
	default:
		return "unclassified"
	}
}

// OverlayItem is one memory folder that has an overlay.
type OverlayItem struct {
	Name       string   // Folder name; drives the output filename.
	SourcePath string   // Folder path.
	Overlays   []string // Overlay paths in listing order; never empty.
	BaseImage  string   // First "-main.jpg", or "".
	BaseVideo  string   // First "-main.mp4", or "".
}

// Kind derives the item's classification. A folder holding both a base
// image and a base video resolves to KindImage.
func (it OverlayItem) Kind() Kind {
	switch {
	case it.BaseImage != "":
		return KindImage
	case it.BaseVideo != "":
		return KindVideo
	default:
		return KindUnclassified
	}
}

// Overlay returns the overlay that is composited. Only the first one found
// is used even when a folder holds several.
func (it OverlayItem) Overlay() string {
	if len(it.Overlays) == 0 {
		return ""
	}
	return it.Overlays[0]
}

// Base returns the base file matching Kind, or "" when unclassified.
func (it OverlayItem) Base() string {
	switch it.Kind() {
	case KindImage:
		return it.BaseImage
	case KindVideo:
		return it.BaseVideo
	default:
		return ""
	}
}

// OutputName returns "<name>_combined.jpg" or "<name>_combined.mp4", or ""
// for unclassified items.
func (it OverlayItem) OutputName() string {
	switch it.Kind() {
	case KindImage:
		return it.Name + OutputSuffix + ImageExtension
	case KindVideo:
		return it.Name + OutputSuffix + VideoExtension
	default:
		return ""
	}
}
