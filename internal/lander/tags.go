package lander

import "github.com/vovakirdan/tui-lander/internal/levels"

// Tag classifies what the vehicle touched.
type Tag int

const (
	TagObstacle Tag = iota // Anything not friendly and not a landing pad
	TagFriendly            // Launch pads and other safe surfaces
	TagFinish              // The landing pad
)

// ParseTag maps a level collider tag to a Tag.
// Unknown or empty tags are obstacles.
func ParseTag(s string) Tag {
	switch levels.NormalizeTag(s) {
	case levels.TagFriendly:
		return TagFriendly
	case levels.TagFinish:
		return TagFinish
	default:
		return TagObstacle
	}
}

// String returns a human-readable name for the tag.
func (t Tag) String() string {
	switch t {
	case TagFriendly:
		return levels.TagFriendly
	case TagFinish:
		return levels.TagFinish
	default:
		return levels.TagObstacle
	}
}
