package event

import "github.com/ratel-online/uno/uno/card/color"

// ColorPickedPayload carries the color a wild now stands for.
type ColorPickedPayload struct {
	PlayerName string
	Color      color.Color
}

// ColorPickedListener is notified when a wild resolves, after any draw-four penalty is owed.
type ColorPickedListener interface {
	OnColorPicked(ColorPickedPayload)
}

type colorPickedEmitter struct {
	listeners []ColorPickedListener
}

func (e *colorPickedEmitter) AddListener(listener ColorPickedListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *colorPickedEmitter) Emit(payload ColorPickedPayload) {
	for _, listener := range e.listeners {
		listener.OnColorPicked(payload)
	}
}
