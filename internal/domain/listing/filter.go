package listing

import "strings"

// Subtyped is the minimal shape the secondary filter needs; the read-side
// list items satisfy it.
type Subtyped interface {
	Subtype() string
}

// FilterBySubtype is the second stage of the two-stage filter: the store
// already narrowed by primary category, this narrows the in-memory result by
// the selected subtype tag. The subtype column is not indexed remotely, so
// this stage stays local. An empty or "all" tag selects everything.
func FilterBySubtype[T Subtyped](items []T, tag string) []T {
	tag = strings.ToLower(strings.TrimSpace(tag))
	if tag == "" || tag == "all" {
		return items
	}
	out := make([]T, 0, len(items))
	for _, it := range items {
		if strings.ToLower(it.Subtype()) == tag {
			out = append(out, it)
		}
	}
	return out
}

// Gallery splits an ordered image list into the primary image and up to four
// secondary images, as rendered by the detail pages.
type Gallery struct {
	Primary   string
	Secondary []string
}

const maxSecondaryImages = 4

func NewGallery(images []string) Gallery {
	var g Gallery
	if len(images) == 0 {
		return g
	}
	g.Primary = images[0]
	rest := images[1:]
	if len(rest) > maxSecondaryImages {
		rest = rest[:maxSecondaryImages]
	}
	g.Secondary = append(g.Secondary, rest...)
	return g
}
