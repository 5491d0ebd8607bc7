package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/heartmarshall/myburmese-backend/internal/domain"
)

// errQuit ends an interactive loop without failing the command.
var errQuit = errors.New("quit")

// prompter reads one answer per line.
type prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewScanner(in), out: out}
}

// ask prints label and returns the trimmed reply. EOF and "q" yield errQuit.
func (p *prompter) ask(label string) (string, error) {
	fmt.Fprint(p.out, label)
	if !p.in.Scan() {
		fmt.Fprintln(p.out)
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", errQuit
	}
	line := strings.TrimSpace(p.in.Text())
	if line == "q" {
		return "", errQuit
	}
	return line, nil
}

func printMessage(w io.Writer, m domain.Message) {
	fmt.Fprintf(w, "[%s] %s\n", m.Role, m.BurmeseText)
	if m.DevanagariText != "" {
		fmt.Fprintf(w, "      %s\n", m.DevanagariText)
	}
	if m.EnglishText != "" {
		fmt.Fprintf(w, "      %s\n", m.EnglishText)
	}
}

func printRatingMenu(w io.Writer) {
	for _, r := range domain.RatingLevels() {
		fmt.Fprintf(w, "  %d %s %s\n", int(r), r.Emoji(), r.Label())
	}
}

// parseChoice turns a 1-based menu answer into an index.
func parseChoice(s string, n int) (int, bool) {
	i, err := strconv.Atoi(s)
	if err != nil || i < 1 || i > n {
		return 0, false
	}
	return i - 1, true
}
