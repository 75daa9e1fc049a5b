package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	greenStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	yellowStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	redStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	grayStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	boldStyle   = lipgloss.NewStyle().Bold(true)
)

type Output struct {
	out          io.Writer
	errOut       io.Writer
	enableColors bool
}

func NewOutput() *Output {
	return &Output{
		out:          os.Stdout,
		errOut:       os.Stderr,
		enableColors: isTerminal() && os.Getenv("NO_COLOR") == "",
	}
}

// NewOutputTo writes plain text to out and errOut.
func NewOutputTo(out, errOut io.Writer) *Output {
	return &Output{out: out, errOut: errOut}
}

func (o *Output) DisableColors() {
	o.enableColors = false
}

func (o *Output) paint(style lipgloss.Style, text string) string {
	if !o.enableColors {
		return text
	}
	return style.Render(text)
}

func (o *Output) Green(text string) string {
	return o.paint(greenStyle, text)
}

func (o *Output) Yellow(text string) string {
	return o.paint(yellowStyle, text)
}

func (o *Output) Red(text string) string {
	return o.paint(redStyle, text)
}

func (o *Output) Gray(text string) string {
	return o.paint(grayStyle, text)
}

func (o *Output) Bold(text string) string {
	return o.paint(boldStyle, text)
}

func (o *Output) PrintHeader(msg string) {
	fmt.Fprintln(o.out, o.Bold(msg))
	fmt.Fprintln(o.out)
}

func (o *Output) PrintStep(emoji, msg string, args ...any) {
	fmt.Fprintf(o.out, "  "+msg+"\n", args...)
}

func (o *Output) PrintSuccess(msg string, args ...any) {
	formatted := fmt.Sprintf(msg, args...)
	fmt.Fprintf(o.out, "  %s%s\n", o.Green("✓ "), formatted)
}

func (o *Output) PrintWarning(msg string, args ...any) {
	formatted := fmt.Sprintf(msg, args...)
	fmt.Fprintf(o.out, "  %s%s\n", o.Yellow("⚠ "), formatted)
}

func (o *Output) PrintError(msg string, args ...any) {
	formatted := fmt.Sprintf(msg, args...)
	fmt.Fprintf(o.errOut, "  %s%s\n", o.Red("✗ "), formatted)
}

func (o *Output) PrintFile(path string) {
	fmt.Fprintf(o.out, "    %s\n", o.Gray(path))
}

func (o *Output) PrintDone(msg string) {
	fmt.Fprintln(o.out, msg)
}

func isTerminal() bool {
	stat, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) == os.ModeCharDevice
}
