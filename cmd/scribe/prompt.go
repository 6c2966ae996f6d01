package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// errNoInput is returned when input ends before a valid answer.
var errNoInput = errors.New("no input")

// prompter asks questions on a terminal, re-asking until the answer is valid.
type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewReader(in), out: out}
}

func (p *prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	switch {
	case err == nil:
	case errors.Is(err, io.EOF) && line != "":
	case errors.Is(err, io.EOF):
		return "", errNoInput
	default:
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// ask prints question and returns the trimmed answer.
func (p *prompter) ask(question string) (string, error) {
	fmt.Fprint(p.out, question)
	return p.readLine()
}

// askRequired re-asks until the answer is non-empty.
func (p *prompter) askRequired(question string) (string, error) {
	for {
		answer, err := p.ask(question)
		if err != nil {
			return "", err
		}
		if answer != "" {
			return answer, nil
		}
		fmt.Fprintln(p.out, "A value is required.")
	}
}

// choose shows a numbered menu and returns the zero-based index chosen.
func (p *prompter) choose(title string, options []string, question string) (int, error) {
	fmt.Fprintln(p.out, title)
	for i, opt := range options {
		fmt.Fprintf(p.out, "%d) %s\n", i+1, opt)
	}
	for {
		answer, err := p.ask(question)
		if err != nil {
			return 0, err
		}
		n, convErr := strconv.Atoi(answer)
		if convErr == nil && n >= 1 && n <= len(options) {
			return n - 1, nil
		}
		fmt.Fprintf(p.out, "Invalid choice. Please enter a number between 1 and %d.\n", len(options))
	}
}

// confirm asks a y/n question. Anything but y or yes is no.
func (p *prompter) confirm(question string) (bool, error) {
	answer, err := p.ask(question + " (y/n): ")
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

func printHeader(w io.Writer, title string) {
	const width = 60
	pad := (width - len(title)) / 2
	if pad < 0 {
		pad = 0
	}
	rule := strings.Repeat("=", width)
	fmt.Fprintf(w, "\n%s\n%s%s\n%s\n\n", rule, strings.Repeat(" ", pad), title, rule)
}
