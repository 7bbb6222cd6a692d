package desktop

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/plastic-tetris/internal/config"
	"github.com/vovakirdan/plastic-tetris/internal/core"
)

// repeater decides whether a held key fires on a given frame.
// delay is the auto-shift delay in ticks, interval the auto-repeat rate
// (0 repeats every tick once the delay has passed).
type repeater struct {
	delay    int
	interval int
}

func newRepeater(timing config.TimingConfig, tickRate int) repeater {
	return repeater{
		delay:    config.MsToTicks(timing.DASMS, tickRate),
		interval: config.MsToTicks(timing.ARRMS, tickRate),
	}
}

// fire reports whether a key held for held frames triggers. held follows
// inpututil.KeyPressDuration: 1 on the frame the key went down.
func (r repeater) fire(held int) bool {
	switch {
	case held <= 0:
		return false
	case held == 1:
		return true
	case held <= r.delay:
		return false
	case r.interval <= 1:
		return true
	default:
		return (held-r.delay-1)%r.interval == 0
	}
}

type keyBinding struct {
	keys   []ebiten.Key
	action core.Action
	repeat bool // Left, Right and SoftDrop auto-repeat
}

var bindings = []keyBinding{
	{keys: []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA, ebiten.KeyH}, action: core.ActionLeft, repeat: true},
	{keys: []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD, ebiten.KeyL}, action: core.ActionRight, repeat: true},
	{keys: []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS, ebiten.KeyJ}, action: core.ActionSoftDrop, repeat: true},
	{keys: []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyX, ebiten.KeyW, ebiten.KeyK}, action: core.ActionRotateCW},
	{keys: []ebiten.Key{ebiten.KeyZ}, action: core.ActionRotateCCW},
	{keys: []ebiten.Key{ebiten.KeySpace}, action: core.ActionHardDrop},
	{keys: []ebiten.Key{ebiten.KeyC, ebiten.KeyShiftLeft, ebiten.KeyShiftRight}, action: core.ActionHold},
	{keys: []ebiten.Key{ebiten.KeyP, ebiten.KeyEscape}, action: core.ActionPause},
	{keys: []ebiten.Key{ebiten.KeyEnter, ebiten.KeyNumpadEnter}, action: core.ActionConfirm},
	{keys: []ebiten.Key{ebiten.KeyR}, action: core.ActionRestart},
	{keys: []ebiten.Key{ebiten.KeyB}, action: core.ActionBack},
}

// readInput fills frame from the keyboard. It reports whether quit was
// requested.
func readInput(rep repeater, frame *core.InputFrame) (quit bool) {
	for _, b := range bindings {
		for _, k := range b.keys {
			if b.repeat && rep.fire(inpututil.KeyPressDuration(k)) {
				frame.Set(b.action)
				break
			}
			if !b.repeat && inpututil.IsKeyJustPressed(k) {
				frame.Set(b.action)
				break
			}
		}
	}
	return inpututil.IsKeyJustPressed(ebiten.KeyQ)
}
