package main

import (
	"errors"
	"fmt"
	"sync"

	"github.com/milk9111/memorylane/prefabs"
	"golang.design/x/clipboard"
)

var errClipboardUnavailable = errors.New("clipboard unavailable")

// memoryClipboard copies a memory's text to the system clipboard. The
// clipboard is initialised on first use; on hosts without one, copying
// reports errClipboardUnavailable.
type memoryClipboard struct {
	once sync.Once
	err  error
}

func (c *memoryClipboard) Copy(m prefabs.Memory) error {
	c.once.Do(func() {
		if err := clipboard.Init(); err != nil {
			c.err = fmt.Errorf("%w: %v", errClipboardUnavailable, err)
		}
	})
	if c.err != nil {
		return c.err
	}
	clipboard.Write(clipboard.FmtText, []byte(formatMemory(m)))
	return nil
}

func formatMemory(m prefabs.Memory) string {
	if m.Title == "" {
		return m.Text
	}
	if m.Text == "" {
		return m.Title
	}
	return m.Title + "\n\n" + m.Text
}
