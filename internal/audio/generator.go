package audio

import (
	"math"
	"math/rand"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
)

// rumble is an endless low engine hum: a detuned pair of sines under
// low-passed noise.
type rumble struct {
	sr    beep.SampleRate
	pos   int
	noise float64
	rng   *rand.Rand
}

func newRumble(sr beep.SampleRate) *rumble {
	return &rumble{sr: sr, rng: rand.New(rand.NewSource(1))}
}

func (g *rumble) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		g.noise = 0.92*g.noise + 0.08*(g.rng.Float64()*2-1)
		tone := 0.5*math.Sin(2*math.Pi*55*t) + 0.3*math.Sin(2*math.Pi*57.5*t)
		sample := 0.25*tone + 0.6*g.noise

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *rumble) Err() error {
	return nil
}

// explosion is a noise burst with a falling rumble and exponential decay.
// It ends by itself after dur samples.
type explosion struct {
	sr    beep.SampleRate
	pos   int
	total int
	rng   *rand.Rand
}

func newExplosion(sr beep.SampleRate, total int) *explosion {
	return &explosion{sr: sr, total: total, rng: rand.New(rand.NewSource(7))}
}

func (g *explosion) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.total {
			return i, i > 0
		}
		t := float64(g.pos) / float64(g.sr)

		envelope := math.Exp(-t * 5)
		noise := g.rng.Float64()*2 - 1
		rumble := math.Sin(2 * math.Pi * (90 - 40*t) * t)
		sample := envelope * (0.6*noise + 0.4*rumble)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *explosion) Err() error {
	return nil
}

// melody loops a short arpeggio forever, building each note from a beep
// sine tone.
type melody struct {
	sr    beep.SampleRate
	notes []float64
	step  int
	note  beep.Streamer
	err   error
}

// theme is a slow minor arpeggio in Hz.
var theme = []float64{220.00, 261.63, 329.63, 392.00, 329.63, 261.63, 196.00, 246.94}

func newMelody(sr beep.SampleRate) *melody {
	return &melody{sr: sr, notes: theme}
}

func (m *melody) next() {
	freq := m.notes[m.step%len(m.notes)]
	m.step++
	tone, err := generators.SineTone(m.sr, freq)
	if err != nil {
		m.err = err
		m.note = nil
		return
	}
	m.note = beep.Take(m.sr.N(noteLength), tone)
}

func (m *melody) Stream(samples [][2]float64) (n int, ok bool) {
	for n < len(samples) {
		if m.note == nil {
			m.next()
			if m.note == nil {
				return n, n > 0
			}
		}
		k, more := m.note.Stream(samples[n:])
		for i := n; i < n+k; i++ {
			samples[i][0] *= 0.3
			samples[i][1] *= 0.3
		}
		n += k
		if !more {
			m.note = nil
		}
	}
	return n, true
}

func (m *melody) Err() error {
	return m.err
}
