package main

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

// keySource yields key events forever, like a terminal with a held key.
type keySource struct{}

func (keySource) PollEvent() tcell.Event {
	return tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone)
}

type finishedSource struct{}

func (finishedSource) PollEvent() tcell.Event { return nil }

func TestPollEventsStopsWhenDone(t *testing.T) {
	tests := []struct {
		name string
		src  eventSource
		read int
	}{
		{name: "reader gone", src: keySource{}, read: 2},
		{name: "screen finalised", src: finishedSource{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out := make(chan tcell.Event) // unbuffered: every send waits for a reader
			done := make(chan struct{})
			exited := make(chan struct{})
			go func() {
				pollEvents(tc.src, out, done)
				close(exited)
			}()

			for i := 0; i < tc.read; i++ {
				select {
				case <-out:
				case <-time.After(2 * time.Second):
					t.Fatalf("event %d not forwarded", i)
				}
			}
			close(done)

			select {
			case <-exited:
			case <-time.After(2 * time.Second):
				t.Fatal("poller still blocked after done was closed")
			}
		})
	}
}
