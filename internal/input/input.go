package input

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// Prompts shown in interactive mode, in the order they are asked.
const (
	NamePrompt     = "Enter the project name: "
	PackagesPrompt = "Enter additional packages (space-separated): "
)

// Mode selects where input comes from.
type Mode int

const (
	// ModeArgs reads positional command-line arguments.
	ModeArgs Mode = iota
	// ModeInteractive asks on the terminal.
	ModeInteractive
)

// String returns the flag spelling of the mode.
func (m Mode) String() string {
	switch m {
	case ModeArgs:
		return "args"
	case ModeInteractive:
		return "interactive"
	default:
		return "unknown"
	}
}

// ParseMode maps "args" or "interactive" to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "args":
		return ModeArgs, nil
	case "interactive":
		return ModeInteractive, nil
	default:
		return ModeArgs, fmt.Errorf("unknown input mode %q: expected \"args\" or \"interactive\"", s)
	}
}

// Request is the raw, unsanitized user input.
type Request struct {
	Name     string // may be empty; sanitized later
	Packages string // space-separated, may be empty
}

// FromArgs takes the name from args[0] and joins the rest with spaces.
// Missing values degrade to empty strings.
func FromArgs(args []string) Request {
	var req Request
	if len(args) > 0 {
		req.Name = args[0]
	}
	if len(args) > 1 {
		req.Packages = strings.Join(args[1:], " ")
	}
	return req
}

// Interactive asks for the project name, waits for the answer, then asks for
// the package list. An unanswered prompt (EOF) yields an empty answer. Bytes
// after the second answer are left unread for the generator.
func Interactive(r io.Reader, w io.Writer) (Request, error) {
	name, err := ask(r, w, NamePrompt)
	if err != nil {
		return Request{}, fmt.Errorf("reading project name: %w", err)
	}

	packages, err := ask(r, w, PackagesPrompt)
	if err != nil {
		return Request{}, fmt.Errorf("reading additional packages: %w", err)
	}

	return Request{Name: name, Packages: packages}, nil
}

// Resolve dispatches to FromArgs or Interactive according to mode.
func Resolve(mode Mode, args []string, r io.Reader, w io.Writer) (Request, error) {
	switch mode {
	case ModeArgs:
		return FromArgs(args), nil
	case ModeInteractive:
		return Interactive(r, w)
	default:
		return Request{}, fmt.Errorf("unsupported input mode %d", mode)
	}
}

func ask(r io.Reader, w io.Writer, prompt string) (string, error) {
	fmt.Fprint(w, prompt)
	line, err := readLine(r)
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// readLine reads up to and including the next newline one byte at a time,
// so nothing past it is consumed from r.
func readLine(r io.Reader) (string, error) {
	var line []byte
	b := make([]byte, 1)
	for {
		n, err := r.Read(b)
		if n > 0 {
			if b[0] == '\n' {
				return string(line), nil
			}
			line = append(line, b[0])
		}
		if err != nil {
			return string(line), err
		}
	}
}
