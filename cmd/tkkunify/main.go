package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/lili041/tkkunify/internal/cli"
	"github.com/lili041/tkkunify/pkg/tkkunify"
)

func main() {
	// Recover from panics to ensure graceful exits with stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(tkkunify.ExitPanic)
		}
	}()

	if os.Getenv("TKKUNIFY_TEST_PANIC") == "1" {
		panic("intentional test panic")
	}

	if err := cli.Execute(); err != nil {
		os.Exit(tkkunify.ExitCodeForError(err))
	}
}
