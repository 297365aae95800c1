package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
	"unicode/utf8"

	"github.com/poulpybifle/buslog/pkg/store"
	"github.com/poulpybifle/buslog/pkg/style"
)

// openStore locates the documentation root by walking up from the current
// directory until a .business-logic directory is found. Falls back to the
// current directory so commands surface NotInitialized themselves.
func openStore() (*store.Store, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("getting working directory: %w", err)
	}

	dir := wd
	for {
		if info, err := os.Stat(filepath.Join(dir, store.DirName)); err == nil && info.IsDir() {
			return store.New(dir), nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return store.New(wd), nil
		}
		dir = parent
	}
}

// truncate cuts s to max runes for table alignment.
func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max-1]) + "…"
}

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// withSpinner runs fn while drawing a spinner on stderr.
func withSpinner(message string, fn func() error) error {
	done := make(chan bool)
	go func() {
		i := 0
		for {
			select {
			case <-done:
				fmt.Fprintf(os.Stderr, "\r\033[K")
				return
			default:
				fmt.Fprintf(os.Stderr, "\r%s %s", style.C(style.Cyan, spinnerFrames[i%len(spinnerFrames)]), message)
				time.Sleep(80 * time.Millisecond)
				i++
			}
		}
	}()

	err := fn()

	done <- true
	close(done)

	return err
}
