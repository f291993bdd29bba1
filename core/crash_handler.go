package core

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"

	"github.com/gdamore/tcell/v2"
)

var (
	crashMu     sync.Mutex
	crashScreen tcell.Screen
	crashOut    io.Writer = os.Stderr
	crashExit             = os.Exit
)

// SetScreen registers the screen restored before a crash report is printed
func SetScreen(s tcell.Screen) {
	crashMu.Lock()
	crashScreen = s
	crashMu.Unlock()
}

// HandleCrash is the unified panic handler that resets the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	s := crashScreen
	crashScreen = nil
	crashMu.Unlock()

	// Leave the alternate screen before writing, the report is unreadable otherwise
	if s != nil {
		s.Fini()
	}

	fmt.Fprintf(crashOut, "\n\x1b[31mCRASH DETECTED: %v\x1b[0m\n", r)
	fmt.Fprintf(crashOut, "Stack Trace:\n%s\n", debug.Stack())

	crashExit(1)
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash.
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}

// Guard wraps an errgroup task with the same recovery as Go
func Guard(name string, fn func() error) func() error {
	return func() error {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(fmt.Sprintf("%s: %v", name, r))
			}
		}()
		return fn()
	}
}
