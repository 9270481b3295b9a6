package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/avc/smsrent/internal/credential"
	"github.com/avc/smsrent/internal/domain"
	"github.com/avc/smsrent/internal/service"
	"github.com/briandowns/spinner"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Colors - ANSI 4-bit, lipgloss сам понижает профиль для терминала
var (
	colorGreen  = lipgloss.Color("2")
	colorYellow = lipgloss.Color("3")
	colorRed    = lipgloss.Color("1")
	colorCyan   = lipgloss.Color("6")

	styleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleError   = lipgloss.NewStyle().Bold(true).Foreground(colorRed)
	styleValue   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleHint    = lipgloss.NewStyle().Faint(true)
)

const (
	symbolCheck = "✓"
	symbolCross = "✗"
)

// colorEnabled сообщает, что w - терминал с поддержкой цвета. Учитывает NO_COLOR.
func colorEnabled(w io.Writer) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func render(style lipgloss.Style, text string, color bool) string {
	if !color {
		return text
	}
	return style.Render(text)
}

// printJSON печатает значение с отступами, порядок ключей Payload сохраняется
func printJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// printSuccess печатает строку статуса с зеленой галочкой
func printSuccess(w io.Writer, format string, args ...any) {
	color := colorEnabled(w)
	fmt.Fprintf(w, "%s %s\n", render(styleSuccess, symbolCheck, color), fmt.Sprintf(format, args...))
}

var kindLabels = map[domain.Kind]string{
	domain.KindInvalidInput: "invalid input",
	domain.KindAuth:         "authentication failed",
	domain.KindTransport:    "network error",
	domain.KindRemote:       "rejected by provider",
	domain.KindProtocol:     "unexpected response",
}

// FormatError форматирует ошибку для вывода пользователю
func FormatError(err error, color bool) string {
	label, ok := kindLabels[domain.KindOf(err)]
	if !ok {
		label = "error"
	}

	msg := fmt.Sprintf("%s %s: %s",
		render(styleError, symbolCross, color),
		render(styleError, label, color),
		domain.MessageOf(err),
	)

	var hint string
	switch {
	case errors.Is(err, credential.ErrAbsent):
		hint = "set a key with: smsrent key set <key>"
	case errors.Is(err, domain.ErrAuth):
		hint = "check the key with: smsrent key show"
	}
	if rateLimitErr, ok := service.IsRateLimited(err); ok {
		hint = fmt.Sprintf("retry after %s", rateLimitErr.RetryAfter)
	}
	if hint != "" {
		msg += "\n  " + render(styleHint, hint, color)
	}
	return msg
}

// progress показывает спиннер в терминале и статичный текст в остальных случаях
type progress struct {
	w      io.Writer
	s      *spinner.Spinner
	msg    string
	noSpin bool
}

func newProgress(w io.Writer) *progress {
	return &progress{w: w, noSpin: !colorEnabled(w)}
}

func (p *progress) Start(msg string) {
	p.msg = msg
	if p.noSpin {
		fmt.Fprintf(p.w, "%s...\n", msg)
		return
	}
	p.s = spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(p.w))
	p.s.Suffix = " " + msg
	p.s.Start()
}

func (p *progress) Stop(ok bool) {
	if p.s != nil {
		p.s.Stop()
		p.s = nil
	}
	if p.noSpin {
		return
	}
	symbol := render(styleSuccess, symbolCheck, true)
	if !ok {
		symbol = render(styleWarning, symbolCross, true)
	}
	fmt.Fprintf(p.w, "\r%s %s\n", symbol, p.msg)
}
