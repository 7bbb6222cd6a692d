package desktop

import (
	"encoding/binary"
	"image/color"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/plastic-tetris/internal/config"
	"github.com/vovakirdan/plastic-tetris/internal/core"
)

func TestRepeaterDelayAndRate(t *testing.T) {
	// 170 ms DAS and 50 ms ARR at 60 ticks/s: 11 and 3 ticks
	rep := newRepeater(config.TimingConfig{DASMS: 170, ARRMS: 50}, 60)
	require.Equal(t, repeater{delay: 11, interval: 3}, rep)

	var fired []int
	for held := 0; held <= 20; held++ {
		if rep.fire(held) {
			fired = append(fired, held)
		}
	}
	assert.Equal(t, []int{1, 12, 15, 18}, fired)
}

func TestRepeaterZeroInterval(t *testing.T) {
	rep := repeater{delay: 2, interval: 0}
	assert.True(t, rep.fire(1))
	assert.False(t, rep.fire(2))
	assert.True(t, rep.fire(3))
	assert.True(t, rep.fire(4))
}

func TestRepeaterNotHeld(t *testing.T) {
	assert.False(t, repeater{}.fire(0))
}

func TestEveryColorHasRGBA(t *testing.T) {
	for _, c := range core.Colors() {
		_, ok := palette[c]
		assert.True(t, ok, "color %d has no RGBA", c)
	}
	assert.Equal(t, palette[core.ColorDefault], colorFor(core.Color(200)))
}

func TestWithAlphaPremultiplies(t *testing.T) {
	c := withAlpha(color.RGBA{R: 200, G: 100, B: 50, A: 255}, 0.5)
	assert.Equal(t, color.RGBA{R: 100, G: 50, B: 25, A: 127}, c)
	assert.Equal(t, color.RGBA{}, withAlpha(c, -1))
}

func TestLerpEnds(t *testing.T) {
	assert.Equal(t, surfaceColor, lerp(surfaceColor, abyssColor, 0))
	assert.Equal(t, abyssColor, lerp(surfaceColor, abyssColor, 1))
	assert.Equal(t, abyssColor, lerp(surfaceColor, abyssColor, 3))
}

func TestBlockAlphaAndFallback(t *testing.T) {
	a, ok := blockAlpha('█')
	assert.True(t, ok)
	assert.Equal(t, 1.0, a)

	_, ok = blockAlpha('~')
	assert.False(t, ok)

	assert.Equal(t, '~', glyphFallback('≈'))
	assert.Equal(t, '<', glyphFallback('←'))
	assert.Equal(t, 'Q', glyphFallback('Q'))
}

func TestSurfStreamReadsWholeFrames(t *testing.T) {
	s := NewSurfStream(1)
	buf := make([]byte, 4*100+3)
	n, err := s.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, 400, n)

	// Both channels carry the same sample
	for i := 0; i < 100; i++ {
		l := binary.LittleEndian.Uint16(buf[i*4:])
		r := binary.LittleEndian.Uint16(buf[i*4+2:])
		assert.Equal(t, l, r)
	}
}

func TestSurfStreamDeterministic(t *testing.T) {
	a := make([]byte, 4096)
	b := make([]byte, 4096)
	_, err := NewSurfStream(7).Read(a)
	require.NoError(t, err)
	_, err = NewSurfStream(7).Read(b)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestSurfStreamCues(t *testing.T) {
	s := NewSurfStream(1)
	s.Cue(core.Event{Kind: core.EventHardDrop, Value: 3})
	assert.Equal(t, 0, s.pending())

	s.Cue(core.Event{Kind: core.EventLinesCleared, Value: 4})
	assert.Equal(t, 4, s.pending())

	s.Cue(core.Event{Kind: core.EventGameOver})
	assert.Equal(t, 6, s.pending())

	// Cues last at most a second
	buf := make([]byte, frameBytes*sampleRate)
	_, err := s.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, 0, s.pending())
}

func TestLineClearChimeIsStaggered(t *testing.T) {
	s := NewSurfStream(1)
	s.Cue(core.Event{Kind: core.EventLinesCleared, Value: 4})
	for i, c := range s.cues {
		assert.Equal(t, -i*noteGap, c.pos, "note %d start", i)
	}

	// After the first note has rung out the later ones are still playing
	// or waiting
	buf := make([]byte, frameBytes*sampleRate/4)
	_, err := s.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, 3, s.pending())
}

func TestSurfStreamSeek(t *testing.T) {
	s := NewSurfStream(1)
	pos, err := s.Seek(0, io.SeekStart)
	require.NoError(t, err)
	assert.Zero(t, pos)

	_, err = s.Seek(10, io.SeekStart)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}
