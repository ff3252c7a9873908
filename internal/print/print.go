// Package print writes the console lines the scaffolder emits: one
// confirmation per written file plus general INFO/WARN/ERROR messages.
package print

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/fatih/color"
)

var (
	mu         sync.Mutex
	out        io.Writer = os.Stdout
	isVerbose            = false
	isColoured           = false
	infoStyle            = color.New(color.FgBlack).Add(color.BgYellow)
	warnStyle            = color.New(color.FgBlack).Add(color.BgHiRed)
	erroStyle            = color.New(color.FgRed).Add(color.BgBlack)
	doneStyle            = color.New(color.FgGreen)
)

// SetOutput redirects all output, tests use it to capture lines.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	out = w
}

// SetVerbose activates all the Verb calls
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	isVerbose = v
}

// SetColoured toggles ANSI colour codes
func SetColoured(c bool) {
	mu.Lock()
	defer mu.Unlock()
	isColoured = c
}

// Verb prints a message only if verbose output is on - controlled via the -v flag
func Verb(a ...interface{}) {
	mu.Lock()
	verbose := isVerbose
	mu.Unlock()
	if verbose {
		Info(a...)
	}
}

// Info is for general purpose messages that are always shown
func Info(a ...interface{}) {
	line("INFO:", infoStyle, color.WhiteString, a...)
}

// Warn is for warnings that do not prevent the command from finishing
func Warn(a ...interface{}) {
	line("WARN:", warnStyle, color.YellowString, a...)
}

// Erro is for errors that stop the command
func Erro(a ...interface{}) {
	line("ERROR:", erroStyle, color.RedString, a...)
}

// Created confirms a file was written.
func Created(path string) {
	mu.Lock()
	defer mu.Unlock()
	if isColoured {
		fmt.Fprintln(out, doneStyle.Sprint("Created:"), path)
	} else {
		fmt.Fprintln(out, "Created:", path)
	}
}

// Plain prints a line with no prefix.
func Plain(a ...interface{}) {
	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintln(out, a...)
}

func line(prefix string, style *color.Color, body func(string, ...interface{}) string, a ...interface{}) {
	mu.Lock()
	defer mu.Unlock()
	if isColoured {
		fmt.Fprint(out, style.Sprint(prefix), " ", body("%s", fmt.Sprintln(a...)))
	} else {
		fmt.Fprint(out, prefix, " ", fmt.Sprintln(a...))
	}
}
