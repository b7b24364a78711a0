package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// tone is a sine oscillator with an exponential decay envelope. Streams
// until its sample budget runs out.
type tone struct {
	freq  float64
	vol   float64
	phase float64

	remaining int
	total     int
}

func newTone(freq float64, dur time.Duration, vol float64) *tone {
	n := sampleRate.N(dur)
	return &tone{freq: freq, vol: vol, remaining: n, total: n}
}

// Stream implements beep.Streamer.
func (t *tone) Stream(samples [][2]float64) (int, bool) {
	if t.remaining <= 0 {
		return 0, false
	}

	n := len(samples)
	if n > t.remaining {
		n = t.remaining
	}

	for i := 0; i < n; i++ {
		progress := 1 - float64(t.remaining-i)/float64(t.total)
		envelope := math.Exp(-4 * progress)
		v := math.Sin(2*math.Pi*t.phase) * t.vol * envelope
		samples[i][0] = v
		samples[i][1] = v
		t.phase += t.freq / float64(sampleRate)
		if t.phase >= 1 {
			t.phase -= 1
		}
	}

	t.remaining -= n
	return n, true
}

// Err implements beep.Streamer.
func (t *tone) Err() error {
	return nil
}

// BeepPlayer synthesizes cues through the system speaker.
type BeepPlayer struct{}

// NewBeepPlayer opens the audio device. Callers should fall back to Noop
// when this fails.
func NewBeepPlayer() (*BeepPlayer, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return nil, err
	}
	return &BeepPlayer{}, nil
}

// WindUp implements Player.
func (p *BeepPlayer) WindUp() {
	speaker.Play(newTone(440, 200*time.Millisecond, 0.3))
}

// Fire implements Player.
func (p *BeepPlayer) Fire() {
	speaker.Play(newTone(220, 150*time.Millisecond, 0.4))
}

// Hit implements Player.
func (p *BeepPlayer) Hit() {
	speaker.Play(newTone(110, 300*time.Millisecond, 0.6))
}

// Win implements Player.
func (p *BeepPlayer) Win() {
	speaker.Play(beep.Seq(
		newTone(523.25, 150*time.Millisecond, 0.4),
		newTone(659.25, 150*time.Millisecond, 0.4),
		newTone(783.99, 300*time.Millisecond, 0.4),
	))
}

// Lose implements Player.
func (p *BeepPlayer) Lose() {
	speaker.Play(beep.Seq(
		newTone(196, 200*time.Millisecond, 0.5),
		newTone(155.56, 200*time.Millisecond, 0.5),
		newTone(130.81, 400*time.Millisecond, 0.5),
	))
}

// Close implements Player.
func (p *BeepPlayer) Close() {
	speaker.Close()
}
