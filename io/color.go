package snapio

// Color is an ANSI SGR foreground code
type Color string

const (
	ColorRed     Color = "31"
	ColorGreen   Color = "32"
	ColorYellow  Color = "33"
	ColorBlue    Color = "34"
	ColorMagenta Color = "35"
	ColorCyan    Color = "36"
	ColorGray    Color = "90"
)

// Theme assigns a colour to each log level
type Theme struct {
	Debug   Color
	Info    Color
	Success Color
	Warning Color
	Error   Color
}

// DefaultTheme uses the basic 16-colour palette understood by every ANSI terminal
func DefaultTheme() Theme {
	return Theme{
		Debug:   ColorMagenta,
		Info:    ColorBlue,
		Success: ColorGreen,
		Warning: ColorYellow,
		Error:   ColorRed,
	}
}

func (t Theme) forLevel(level LogLevel) Color {
	switch level {
	case LevelDebug:
		return t.Debug
	case LevelInfo:
		return t.Info
	case LevelSuccess:
		return t.Success
	case LevelWarning:
		return t.Warning
	case LevelError:
		return t.Error
	default:
		return ""
	}
}
