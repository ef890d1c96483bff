package terminal

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/doeshing/procsh/internal/domain"
	"github.com/doeshing/procsh/internal/ports"
)

// Color modes accepted by NewPrompter.
const (
	ColorAuto   = domain.ColorAuto
	ColorAlways = "always"
	ColorNever  = "never"
)

// Prompter prints the prompt and error messages, colored when the output
// is a terminal.
type Prompter struct {
	prompt  string
	profile termenv.Profile
}

// NewPrompter builds a prompter. In auto mode color is used only when out
// is a terminal.
func NewPrompter(prompt, mode string, out io.Writer) *Prompter {
	if prompt == "" {
		prompt = domain.DefaultPrompt
	}
	p := &Prompter{prompt: prompt, profile: termenv.Ascii}
	switch strings.ToLower(mode) {
	case ColorAlways:
		p.profile = termenv.ANSI256
	case ColorNever:
	default:
		if isTerminal(out) {
			p.profile = termenv.ColorProfile()
		}
	}
	return p
}

// Prompt implements ports.Prompter.
func (p *Prompter) Prompt(out io.Writer) {
	fmt.Fprint(out, p.style(p.prompt, "#818cf8"))
}

// Error implements ports.Prompter.
func (p *Prompter) Error(errOut io.Writer, msg string) {
	fmt.Fprintln(errOut, p.style(msg, "#fb7185"))
}

func (p *Prompter) style(s, hex string) string {
	if p.profile == termenv.Ascii {
		return s
	}
	return p.profile.String(s).Foreground(p.profile.Color(hex)).String()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

var _ ports.Prompter = (*Prompter)(nil)
