// Package input reads line-oriented input from stdin for the interactive
// pauses in the demo driver.
package input

import (
	"bufio"
	"log"
	"os"
	"strings"
)

var stdinReader *bufio.Reader

// GetInput reads one line from stdin, without the trailing newline.
func GetInput() string {
	if stdinReader == nil {
		stdinReader = bufio.NewReader(os.Stdin)
	}

	line, err := stdinReader.ReadString('\n')
	if err != nil {
		log.Fatalf("Cannot read stdin: %v", err)
		return ""
	}

	return strings.TrimRight(line, "\r\n")
}

// WaitForEnter blocks until the user presses Enter.
func WaitForEnter() {
	GetInput()
}
