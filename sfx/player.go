package sfx

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// SampleRate is the output rate the speaker is opened with.
const SampleRate = beep.SampleRate(44100)

// maxVoices caps overlapping pops; extra pops are dropped.
const maxVoices = 8

// Player mixes pops into the system speaker.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewPlayer returns a Player at the given volume (0 to 1). Call Init before
// Play.
func NewPlayer(volume float64) *Player {
	return &Player{mixer: &beep.Mixer{}, volume: volume}
}

// Init opens the speaker and starts the mixer. Calling it again is a no-op.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.initialized {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("sfx: init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Play queues one pop for a particle of the given size. It does nothing
// before Init or when maxVoices pops are already sounding.
func (p *Player) Play(size float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}
	pop := NewPop(SampleRate, size, p.volume)
	speaker.Lock()
	if p.mixer.Len() < maxVoices {
		p.mixer.Add(pop)
	}
	speaker.Unlock()
}

// Close silences every sounding pop and closes the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.initialized = false
}
