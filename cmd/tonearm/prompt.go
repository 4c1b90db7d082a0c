package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
)

func stdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// The ask helpers share one buffered reader per command invocation so input
// read ahead by one prompt stays available to the next.

// askConfirmation prompts with "[y/N]" until it reads a recognizable answer.
// Empty input and "n" decline; end of input declines.
func askConfirmation(in *bufio.Reader, out io.Writer, prompt string) bool {
	for {
		fmt.Fprintf(out, "%s [y/N]? ", prompt)
		line, err := in.ReadString('\n')
		if err != nil && line == "" {
			return false
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "", "n", "no":
			return false
		case "y", "yes":
			return true
		default:
			fmt.Fprintln(out, "invalid input")
		}
		if err != nil {
			return false
		}
	}
}

// askOption prompts with a numbered option list until it reads a valid index.
// End of input selects option 0.
func askOption(in *bufio.Reader, out io.Writer, options []string) int {
	for {
		for i, option := range options {
			fmt.Fprintf(out, "[%d] %s\n", i, option)
		}
		line, err := in.ReadString('\n')
		choice, parseErr := strconv.Atoi(strings.TrimSpace(line))
		if parseErr == nil && choice >= 0 && choice < len(options) {
			return choice
		}
		if err != nil {
			return 0
		}
		fmt.Fprintln(out, "invalid input")
	}
}

// askLine prompts for a free-form value.
func askLine(in *bufio.Reader, out io.Writer, prompt string) string {
	fmt.Fprintf(out, "%s: ", prompt)
	line, _ := in.ReadString('\n')
	return strings.TrimSpace(line)
}
