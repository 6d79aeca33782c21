package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

var (
	// ErrNotInteractive is returned when a question is asked but stdin is not a terminal.
	ErrNotInteractive = errors.New("stdin is not a terminal")
	// ErrNoAnswer is returned for an empty answer to a required question.
	ErrNoAnswer = errors.New("no answer given")
)

// Prompter asks line-oriented questions.
type Prompter struct {
	in          *bufio.Reader
	out         io.Writer
	interactive bool
}

// New returns a Prompter reading from in and writing questions to out.
// When in is an *os.File it must be a terminal; any other reader is treated as
// scripted input.
func New(in io.Reader, out io.Writer) *Prompter {
	interactive := true
	if f, ok := in.(*os.File); ok {
		interactive = term.IsTerminal(int(f.Fd()))
	}
	return &Prompter{in: bufio.NewReader(in), out: out, interactive: interactive}
}

// Interactive reports whether questions can be asked.
func (p *Prompter) Interactive() bool {
	return p.interactive
}

// Ask prints question and returns the trimmed answer, which may be empty.
func (p *Prompter) Ask(question string) (string, error) {
	if !p.interactive {
		return "", ErrNotInteractive
	}

	fmt.Fprintf(p.out, "%s: ", question)
	line, err := p.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("failed to read answer: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// Required is Ask failing with ErrNoAnswer on an empty answer.
func (p *Prompter) Required(question string) (string, error) {
	answer, err := p.Ask(question)
	if err != nil {
		return "", err
	}
	if answer == "" {
		return "", ErrNoAnswer
	}
	return answer, nil
}

// Confirm asks for the literal word "yes".
func (p *Prompter) Confirm(question string) (bool, error) {
	answer, err := p.Ask(question + " Type 'yes' to continue")
	if err != nil {
		return false, err
	}
	return strings.EqualFold(answer, "yes"), nil
}
