package levels

import "strings"

// Tag names understood by the game. Any other tag is an obstacle.
const (
	TagFriendly = "Friendly"
	TagFinish   = "Finish"
	TagObstacle = "Obstacle"
)

// NormalizeTag returns the canonical name for a collider tag. Matching
// ignores case and surrounding space; unknown and empty tags are obstacles.
func NormalizeTag(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "friendly":
		return TagFriendly
	case "finish":
		return TagFinish
	default:
		return TagObstacle
	}
}
