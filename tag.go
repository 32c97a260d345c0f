// tag.go defines the metadata tag representation and its mapping onto
// container-native comment fields.

package govorbis

import "strings"

// TagType identifies one metadata field.
type TagType int

// The fixed enumeration of tag field types.
const (
	TagArtist TagType = iota
	TagAlbum
	TagAlbumArtist
	TagTitle
	TagTrack
	TagGenre
	TagDate
	TagComposer
	TagPerformer
	TagComment
	TagDisc
)

// tagItemNames maps a field type to its canonical comment-field name.
// Names are applied upper-cased when written into the comment header.
var tagItemNames = map[TagType]string{
	TagArtist:      "artist",
	TagAlbum:       "album",
	TagAlbumArtist: "albumartist",
	TagTitle:       "title",
	TagTrack:       "tracknumber",
	TagGenre:       "genre",
	TagDate:        "date",
	TagComposer:    "composer",
	TagPerformer:   "performer",
	TagComment:     "comment",
	TagDisc:        "discnumber",
}

// Name returns the canonical comment-field name for the type, or "" for
// an unknown type.
func (t TagType) Name() string {
	return tagItemNames[t]
}

// TagItem is one (field-type, text-value) pair.
type TagItem struct {
	Type  TagType
	Value string
}

// Tag is an ordered sequence of metadata items, supplied atomically by
// the caller. Order is preserved in the emitted comment header.
type Tag struct {
	Items []TagItem
}

// AddItem appends one field to the tag.
func (t *Tag) AddItem(typ TagType, value string) {
	t.Items = append(t.Items, TagItem{Type: typ, Value: value})
}

// comments renders the tag as container-native "NAME=value" comment
// fields with upper-cased names, skipping unknown field types.
func (t *Tag) comments() []string {
	if t == nil || len(t.Items) == 0 {
		return nil
	}
	out := make([]string, 0, len(t.Items))
	for _, item := range t.Items {
		name := item.Type.Name()
		if name == "" {
			continue
		}
		out = append(out, strings.ToUpper(name)+"="+item.Value)
	}
	return out
}
