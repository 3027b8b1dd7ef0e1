package lander

import "github.com/vovakirdan/tui-lander/internal/core"

// RigidBody is the part of the physics integrator that Movement drives.
type RigidBody interface {
	// AddRelativeForce accumulates an impulse in body space; (0,-1) is up.
	AddRelativeForce(f core.Vec2)
	// Rotate turns the body by degrees, positive to the left.
	Rotate(degrees float64)
	SetFreezeRotation(frozen bool)
}

// Voice is an audio source that plays one clip at a time.
type Voice interface {
	PlayLoop(c core.Clip)
	PlayOnce(c core.Clip)
	Stop()
	IsPlaying() bool
}

// mutedVoice tracks playback without making sound. One-shots end at once.
type mutedVoice struct {
	playing bool
}

func (v *mutedVoice) PlayLoop(core.Clip) { v.playing = true }
func (v *mutedVoice) PlayOnce(core.Clip) { v.playing = false }
func (v *mutedVoice) Stop() { v.playing = false }
func (v *mutedVoice) IsPlaying() bool { return v.playing }

// Effect is a visual effect such as a booster flame.
type Effect interface {
	Play()
	Stop()
	IsPlaying() bool
}

// SceneLoader loads scenes by build index.
type SceneLoader interface {
	LoadScene(i int)
	CurrentIndex() int
	SceneCount() int
}

// nextScene returns the index after the current one, wrapping to 0.
func nextScene(s SceneLoader) int {
	next := s.CurrentIndex() + 1
	if next >= s.SceneCount() {
		return 0
	}
	return next
}
