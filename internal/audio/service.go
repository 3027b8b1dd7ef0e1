package audio

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
	noteLength = 350 * time.Millisecond
)

// Config controls audio output.
type Config struct {
	Enabled      bool
	MasterVolume float64 // Base-2 exponent; 0 is unchanged, -1 is half
	EngineVolume float64
	MusicVolume  float64
}

// Service owns the speaker and the mixer that every channel plays into.
type Service struct {
	cfg   Config
	mixer *beep.Mixer
	live  bool
	now   func() time.Time

	mu     sync.Mutex
	closed bool
}

// NewService initializes the speaker when cfg.Enabled is set.
// A disabled config yields a silent service and no error.
func NewService(cfg Config) (*Service, error) {
	s := &Service{
		cfg:   cfg,
		mixer: &beep.Mixer{},
		now:   time.Now,
	}
	if !cfg.Enabled {
		return s, nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return Silent(), fmt.Errorf("audio: cannot init speaker: %w", err)
	}
	speaker.Play(&effects.Volume{
		Streamer: s.mixer,
		Base:     2,
		Volume:   cfg.MasterVolume,
	})
	s.live = true
	return s, nil
}

// Silent returns a service that tracks playback state without output.
func Silent() *Service {
	return &Service{mixer: &beep.Mixer{}, now: time.Now}
}

// Live reports whether sound actually reaches a device.
func (s *Service) Live() bool {
	return s.live
}

// NewChannel creates an independent voice, comparable to one audio source
// attached to a game object.
func (s *Service) NewChannel() *Channel {
	return &Channel{svc: s}
}

// Close stops all sound and releases the speaker.
func (s *Service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || !s.live {
		s.closed = true
		return
	}
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	s.closed = true
}

// streamerFor builds the beep pipeline for a clip.
func (s *Service) streamerFor(c Clip, once bool) beep.Streamer {
	var src beep.Streamer
	volume := 0.0
	switch c {
	case ClipEngine:
		src = newRumble(sampleRate)
		volume = s.cfg.EngineVolume
	case ClipCrash:
		src = newExplosion(sampleRate, sampleRate.N(c.Duration()))
	default:
		src = newMelody(sampleRate)
		volume = s.cfg.MusicVolume
	}
	if once && c != ClipCrash {
		src = beep.Take(sampleRate.N(c.Duration()), src)
	}
	return &effects.Volume{Streamer: src, Base: 2, Volume: volume}
}

// playback is one started sound. finished is written from the speaker
// goroutine, so it is atomic rather than mutex-guarded.
type playback struct {
	clip     Clip
	looping  bool
	ctrl     *beep.Ctrl
	until    time.Time
	finished atomic.Bool
}

// Channel plays at most one clip at a time.
type Channel struct {
	svc *Service

	mu      sync.Mutex
	current *playback
}

// PlayLoop starts clip looping. Playing the clip that already loops is a no-op.
func (c *Channel) PlayLoop(clip Clip) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if p := c.current; p != nil && p.looping && p.clip == clip && !p.finished.Load() {
		return
	}
	c.stopLocked()
	c.current = c.start(clip, false)
}

// PlayOnce plays clip a single time, replacing whatever the channel played.
func (c *Channel) PlayOnce(clip Clip) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stopLocked()
	c.current = c.start(clip, true)
}

// Stop silences the channel. Stopping a silent channel is a no-op.
func (c *Channel) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stopLocked()
}

// IsPlaying reports whether the channel is producing sound.
func (c *Channel) IsPlaying() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.current
	if p == nil || p.finished.Load() {
		return false
	}
	if p.looping {
		return true
	}
	if c.svc.live {
		return true
	}
	return c.svc.now().Before(p.until)
}

// Clip returns the clip currently assigned to the channel and whether one is.
func (c *Channel) Clip() (Clip, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.current == nil {
		return 0, false
	}
	return c.current.clip, true
}

func (c *Channel) start(clip Clip, once bool) *playback {
	p := &playback{
		clip:    clip,
		looping: !once,
		until:   c.svc.now().Add(clip.Duration()),
	}
	if !c.svc.live {
		return p
	}

	stream := c.svc.streamerFor(clip, once)
	if once {
		stream = beep.Seq(stream, beep.Callback(func() {
			p.finished.Store(true)
		}))
	}
	p.ctrl = &beep.Ctrl{Streamer: stream}

	speaker.Lock()
	c.svc.mixer.Add(p.ctrl)
	speaker.Unlock()
	return p
}

func (c *Channel) stopLocked() {
	p := c.current
	if p == nil {
		return
	}
	p.finished.Store(true)
	if p.ctrl != nil {
		speaker.Lock()
		// A Ctrl without a streamer reports drained, so the mixer drops it.
		p.ctrl.Streamer = nil
		speaker.Unlock()
	}
	c.current = nil
}
