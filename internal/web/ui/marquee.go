package ui

import (
	"fmt"
	"time"
)

// Marquee timing: the track moves MarqueeDistance px left over
// MarqueeDuration, linearly, and loops.
const (
	MarqueeCopies   = 3
	MarqueeDistance = 2400
	MarqueeDuration = 60 * time.Second
)

type Keyed interface {
	Key() int
}

// TrackItem is one card in the repeated marquee track.
type TrackItem[T any] struct {
	Key  string
	Item T
}

// MarqueeTrack repeats items MarqueeCopies times so the loop is seamless.
// Keys are "<id>-<index>" with index counted across the whole track.
func MarqueeTrack[T Keyed](items []T) []TrackItem[T] {
	track := make([]TrackItem[T], 0, len(items)*MarqueeCopies)
	for c := 0; c < MarqueeCopies; c++ {
		for _, it := range items {
			track = append(track, TrackItem[T]{
				Key:  fmt.Sprintf("%d-%d", it.Key(), len(track)),
				Item: it,
			})
		}
	}
	return track
}
