package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
)

// SoundManager plays the game's short event tones through the speaker
// All methods are safe to call before Initialize, or after it failed; they become no-ops
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	bank        *Bank
	initialized bool
	muted       bool
}

// NewSoundManager creates a new sound manager with pre-rendered tones
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
		bank:  NewBank(sampleRate),
	}
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	// Initialize speaker with sample rate and buffer size
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// SetMuted toggles output without tearing down the speaker
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	sm.muted = muted
	sm.mu.Unlock()
}

// Muted reports the mute state
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// Wall plays the wall bounce tick
func (sm *SoundManager) Wall() { sm.play(SoundWall) }

// Paddle plays the paddle hit
func (sm *SoundManager) Paddle() { sm.play(SoundPaddle) }

// Goal plays the falling goal tone
func (sm *SoundManager) Goal() { sm.play(SoundGoal) }

// GameOver plays the match end jingle
func (sm *SoundManager) GameOver() { sm.play(SoundGameOver) }

func (sm *SoundManager) play(id SoundID) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}

	s := sm.bank.Streamer(id)
	if s == nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// Silent discards every sound, used with -mute or when no audio device is present
type Silent struct{}

func (Silent) Wall()     {}
func (Silent) Paddle()   {}
func (Silent) Goal()     {}
func (Silent) GameOver() {}
