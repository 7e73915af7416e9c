package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/muesli/termenv"
)

type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

const HeaderColor = "#87CEEB"

// ErrNotNumber is returned by PromptInt when the line is not an integer.
var ErrNotNumber = errors.New("not a number")

type UI struct {
	In           *bufio.Reader
	Out          io.Writer
	Err          io.Writer
	Output       *termenv.Output
	ErrOutput    *termenv.Output
	ColorEnabled bool
}

func New(in io.Reader, out io.Writer, err io.Writer, mode ColorMode, disableColor bool) *UI {
	output := termenv.NewOutput(out)
	errOutput := termenv.NewOutput(err)

	colorEnabled := shouldEnableColor(output, mode, disableColor)
	u := &UI{
		Out:          out,
		Err:          err,
		Output:       output,
		ErrOutput:    errOutput,
		ColorEnabled: colorEnabled,
	}
	if in != nil {
		u.In = bufio.NewReader(in)
	}
	return u
}

func shouldEnableColor(output *termenv.Output, mode ColorMode, disableColor bool) bool {
	if disableColor {
		return false
	}

	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}

	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return output.ColorProfile() != termenv.Ascii
	}
}

func (u *UI) Errorf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	msg = strings.TrimRight(msg, "\n")
	if u.ColorEnabled {
		msg = u.ErrOutput.String(msg).Foreground(u.ErrOutput.Color("1")).String()
	}
	fmt.Fprintln(u.Err, msg)
}

func (u *UI) Warnf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	msg = strings.TrimRight(msg, "\n")
	if u.ColorEnabled {
		msg = u.Output.String(msg).Foreground(u.Output.Color("3")).String()
	}
	fmt.Fprintln(u.Out, msg)
}

func (u *UI) Infof(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	msg = strings.TrimRight(msg, "\n")
	if u.ColorEnabled {
		msg = u.Output.String(msg).Foreground(u.Output.Color("4")).String()
	}
	fmt.Fprintln(u.Out, msg)
}

func (u *UI) Successf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	msg = strings.TrimRight(msg, "\n")
	if u.ColorEnabled {
		msg = u.Output.String(msg).Foreground(u.Output.Color("2")).String()
	}
	fmt.Fprintln(u.Out, msg)
}

// Headerf prints a section header such as the menu title.
func (u *UI) Headerf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(u.Out, ColorizeHeader(u.Output, u.ColorEnabled, msg))
}

func ColorizeHeader(output *termenv.Output, enabled bool, text string) string {
	if !enabled || output == nil {
		return text
	}
	return output.String(text).Foreground(output.Color(HeaderColor)).Bold().String()
}

// Prompt prints label and reads one line, without its line ending. A final
// line without a newline is returned before io.EOF.
func (u *UI) Prompt(label string) (string, error) {
	fmt.Fprint(u.Out, label)
	return u.readLine()
}

// PromptWord returns the first whitespace-separated word of the next line
// that has one. Blank lines are skipped and the label is printed once.
func (u *UI) PromptWord(label string) (string, error) {
	fmt.Fprint(u.Out, label)
	for {
		line, err := u.readLine()
		if err != nil {
			return "", err
		}
		if fields := strings.Fields(line); len(fields) > 0 {
			return fields[0], nil
		}
	}
}

func (u *UI) readLine() (string, error) {
	if u.In == nil {
		return "", io.EOF
	}
	line, err := u.In.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// PromptInt reads the next word and parses it as an integer.
func (u *UI) PromptInt(label string) (int, error) {
	word, err := u.PromptWord(label)
	if err != nil {
		return 0, err
	}
	value, err := strconv.Atoi(word)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotNumber, word)
	}
	return value, nil
}

func NormalizeColorMode(value string) ColorMode {
	value = strings.ToLower(strings.TrimSpace(value))
	switch value {
	case string(ColorAlways):
		return ColorAlways
	case string(ColorNever):
		return ColorNever
	default:
		return ColorAuto
	}
}
