// Package video provides the Video domain entity.
package video

import "strings"

// Video represents a catalog video. Values are immutable after construction.
type Video struct {
	id    string
	title string
	tags  []string
}

// New creates a video. The tag slice is copied.
func New(id, title string, tags []string) Video {
	return Video{
		id:    id,
		title: title,
		tags:  append([]string(nil), tags...),
	}
}

// ID returns the catalog-assigned identifier.
func (v Video) ID() string { return v.id }

// Title returns the video title.
func (v Video) Title() string { return v.title }

// Tags returns a copy of the tags in their original order.
func (v Video) Tags() []string {
	return append([]string(nil), v.tags...)
}

// String renders the video as "Title (ID) [tag1 tag2]".
func (v Video) String() string {
	var b strings.Builder
	b.WriteString(v.title)
	b.WriteString(" (")
	b.WriteString(v.id)
	b.WriteString(") [")
	b.WriteString(strings.Join(v.tags, " "))
	b.WriteString("]")
	return b.String()
}
