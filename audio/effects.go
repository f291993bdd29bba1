package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// SoundID names a game sound
type SoundID uint8

const (
	SoundWall SoundID = iota
	SoundPaddle
	SoundGoal
	SoundGameOver
	soundCount
)

// note is one sine segment of a sound
type note struct {
	freq float64
	dur  time.Duration
	vol  float64
}

var sounds = [soundCount][]note{
	SoundWall:   {{freq: 440, dur: 30 * time.Millisecond, vol: 0.25}},
	SoundPaddle: {{freq: 880, dur: 50 * time.Millisecond, vol: 0.35}},
	SoundGoal: {
		{freq: 660, dur: 90 * time.Millisecond, vol: 0.35},
		{freq: 440, dur: 90 * time.Millisecond, vol: 0.35},
		{freq: 330, dur: 160 * time.Millisecond, vol: 0.35},
	},
	SoundGameOver: {
		{freq: 523.25, dur: 150 * time.Millisecond, vol: 0.3},
		{freq: 392.00, dur: 150 * time.Millisecond, vol: 0.3},
		{freq: 329.63, dur: 150 * time.Millisecond, vol: 0.3},
		{freq: 261.63, dur: 400 * time.Millisecond, vol: 0.3},
	},
}

// Bank holds every sound rendered once into memory
type Bank struct {
	buffers [soundCount]*beep.Buffer
}

// NewBank renders all sounds at rate
func NewBank(rate beep.SampleRate) *Bank {
	b := &Bank{}
	format := beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2}
	for id := SoundID(0); id < soundCount; id++ {
		buf := beep.NewBuffer(format)
		buf.Append(sequence(rate, sounds[id]))
		b.buffers[id] = buf
	}
	return b
}

// Streamer returns a fresh reader over the sound, nil for an unknown id
func (b *Bank) Streamer(id SoundID) beep.StreamSeeker {
	if id >= soundCount {
		return nil
	}
	buf := b.buffers[id]
	return buf.Streamer(0, buf.Len())
}

// Len returns the sound length in samples
func (b *Bank) Len(id SoundID) int {
	if id >= soundCount {
		return 0
	}
	return b.buffers[id].Len()
}

func sequence(rate beep.SampleRate, notes []note) beep.Streamer {
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		parts = append(parts, tone(rate, n))
	}
	return beep.Seq(parts...)
}

// tone is a faded sine of fixed length; an unplayable frequency yields silence of the same length
func tone(rate beep.SampleRate, n note) beep.Streamer {
	samples := rate.N(n.dur)
	sine, err := generators.SineTone(rate, n.freq)
	if err != nil {
		return beep.Silence(samples)
	}
	faded := newFade(beep.Take(samples, sine), samples, rate.N(3*time.Millisecond), samples/3)
	return newVolume(faded, n.vol)
}

// fade applies a linear attack and release to avoid clicks at note edges
type fade struct {
	streamer beep.Streamer
	position int
	total    int
	attack   int
	release  int
}

func newFade(s beep.Streamer, total, attack, release int) *fade {
	return &fade{streamer: s, total: total, attack: attack, release: release}
}

func (f *fade) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		gain := 1.0
		if f.attack > 0 && f.position < f.attack {
			gain = float64(f.position) / float64(f.attack)
		}
		if left := f.total - f.position; f.release > 0 && left < f.release {
			gain = math.Min(gain, float64(left)/float64(f.release))
		}
		samples[i][0] *= gain
		samples[i][1] *= gain
		f.position++
	}
	return n, ok
}

func (f *fade) Err() error { return f.streamer.Err() }

// newVolume scales linearly; math.Log2(0) is -Inf so zero maps to silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
