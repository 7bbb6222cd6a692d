package desktop

import (
	"encoding/binary"
	"io"
	"math"
	"math/rand"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/vovakirdan/plastic-tetris/internal/core"
)

const (
	sampleRate     = 44100
	audioChannels  = 2
	bytesPerSample = 2
	frameBytes     = audioChannels * bytesPerSample

	surfVolume  = 0.35
	swellPeriod = 7.5 // Seconds per wave swell
	cueVolume   = 0.25

	noteGap = sampleRate / 8 // Samples between chime notes
)

// tone is a short sine cue with a linear fade out. A negative pos delays
// the start by that many samples.
type tone struct {
	freq   float64
	length int // Audible samples
	pos    int
}

// SurfStream generates endless ocean surf: brown noise shaped by a slow
// swell, with optional tone cues mixed on top. It implements io.ReadSeeker
// for the ebiten audio player and never returns EOF.
type SurfStream struct {
	mu    sync.Mutex
	rng   *rand.Rand
	brown float64
	t     int // Samples generated
	cues  []tone
}

// NewSurfStream creates a surf generator seeded for reproducible noise.
func NewSurfStream(seed int64) *SurfStream {
	return &SurfStream{rng: rand.New(rand.NewSource(seed))}
}

// Read fills p with 16-bit little endian stereo frames.
func (s *SurfStream) Read(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	frames := len(p) / frameBytes
	for i := 0; i < frames; i++ {
		v := s.next()
		sample := int16(core.ClampF(v, -1, 1) * math.MaxInt16)
		for ch := 0; ch < audioChannels; ch++ {
			binary.LittleEndian.PutUint16(p[i*frameBytes+ch*bytesPerSample:], uint16(sample))
		}
	}
	return frames * frameBytes, nil
}

// next produces one mono sample in [-1, 1].
func (s *SurfStream) next() float64 {
	// Leaky integrator over white noise
	s.brown = (s.brown + 0.02*(s.rng.Float64()*2-1)) / 1.02
	secs := float64(s.t) / sampleRate
	swell := 0.55 + 0.45*math.Sin(2*math.Pi*secs/swellPeriod)
	s.t++

	v := s.brown * 3.5 * swell * surfVolume

	live := s.cues[:0]
	for _, c := range s.cues {
		if c.pos >= 0 {
			fade := 1 - float64(c.pos)/float64(c.length)
			v += math.Sin(2*math.Pi*c.freq*float64(c.pos)/sampleRate) * fade * cueVolume
		}
		c.pos++
		if c.pos < c.length {
			live = append(live, c)
		}
	}
	s.cues = live
	return v
}

// Seek accepts the no-op probes the audio player makes.
func (s *SurfStream) Seek(offset int64, whence int) (int64, error) {
	if offset == 0 {
		switch whence {
		case io.SeekStart, io.SeekCurrent, io.SeekEnd:
			return 0, nil
		}
	}
	return 0, io.ErrUnexpectedEOF
}

// Cue queues the sound for a gameplay event. Events without a sound are
// ignored.
func (s *SurfStream) Cue(e core.Event) {
	var tones []tone
	switch e.Kind {
	case core.EventLinesCleared:
		// Rising chime, one note per cleared line
		for i := 0; i < max(e.Value, 1); i++ {
			tones = append(tones, tone{
				freq:   523.25 * math.Pow(1.25, float64(i)),
				length: sampleRate / 4,
				pos:    -i * noteGap,
			})
		}
	case core.EventLevelUp:
		tones = append(tones, tone{freq: 880, length: sampleRate / 3})
	case core.EventGameOver:
		tones = append(tones, tone{freq: 196, length: sampleRate}, tone{freq: 147, length: sampleRate})
	case core.EventGameWon:
		tones = append(tones, tone{freq: 659.25, length: sampleRate / 2}, tone{freq: 987.77, length: sampleRate / 2})
	default:
		return
	}

	s.mu.Lock()
	s.cues = append(s.cues, tones...)
	s.mu.Unlock()
}

// pending returns the number of cues still sounding.
func (s *SurfStream) pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.cues)
}

// newSurfPlayer starts the surf on a new audio context.
func newSurfPlayer(stream *SurfStream) (*audio.Player, error) {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(sampleRate)
	}
	player, err := ctx.NewPlayer(stream)
	if err != nil {
		return nil, err
	}
	player.Play()
	return player, nil
}
