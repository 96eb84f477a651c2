// Package output prints styled status lines for the kls commands. Everything
// goes to stderr so stdout only carries collected values.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	HeaderStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	SuccessStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	InfoStyle    = lipgloss.NewStyle()
	WarningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	ErrorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	DimStyle     = lipgloss.NewStyle().Faint(true)
)

// Writer receives all status lines. Tests may replace it.
var Writer io.Writer = os.Stderr

func printStyled(style lipgloss.Style, format string, args ...interface{}) {
	_, _ = fmt.Fprintln(Writer, style.Render(fmt.Sprintf(format, args...)))
}

func PrintHeader(format string, args ...interface{}) {
	printStyled(HeaderStyle, format, args...)
}

func PrintSuccess(format string, args ...interface{}) {
	printStyled(SuccessStyle, "✓ "+format, args...)
}

func PrintInfo(format string, args ...interface{}) {
	printStyled(InfoStyle, format, args...)
}

func PrintWarning(format string, args ...interface{}) {
	printStyled(WarningStyle, "! "+format, args...)
}

func PrintError(format string, args ...interface{}) {
	printStyled(ErrorStyle, "✗ "+format, args...)
}

// LogInfo shows userMsg and records logMsg with key/value pairs at info level.
func LogInfo(userMsg, logMsg string, keyvals ...interface{}) {
	PrintInfo("%s", userMsg)
	withKeyvals(log.Info(), keyvals).Msg(logMsg)
}

// LogWarn shows userMsg as a warning and records logMsg at warn level.
func LogWarn(userMsg, logMsg string, keyvals ...interface{}) {
	PrintWarning("%s", userMsg)
	withKeyvals(log.Warn(), keyvals).Msg(logMsg)
}

func withKeyvals(event *zerolog.Event, keyvals []interface{}) *zerolog.Event {
	for i := 0; i+1 < len(keyvals); i += 2 {
		key, ok := keyvals[i].(string)
		if !ok {
			key = fmt.Sprint(keyvals[i])
		}
		event = event.Interface(key, keyvals[i+1])
	}
	return event
}
