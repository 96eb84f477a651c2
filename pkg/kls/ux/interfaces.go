package ux

// Terminal is the line-oriented I/O the prompt engines are written against.
type Terminal interface {
	// Print writes text without a trailing newline.
	Print(text string)
	// Println writes text followed by a newline.
	Println(text string)
	// ReadLine returns the next input line without its line terminator.
	ReadLine() (string, error)
}

// Prompter abstracts widget-style interaction (huh) for the TUI code paths.
type Prompter interface {
	Select(message string, options []string) (string, error)
	Confirm(message string) (bool, error)
	// Input asks for a single value. validate may be nil.
	Input(message string, validate func(string) error) (string, error)
}

// Logger abstracts logging for structured output and testing
type Logger interface {
	Info(msg string, fields ...LogField)
	Warn(msg string, fields ...LogField)
	Error(msg string, fields ...LogField)
	Debug(msg string, fields ...LogField)
}

// LogField represents a structured log field
type LogField struct {
	Key   string
	Value interface{}
}

func Field(key string, value interface{}) LogField {
	return LogField{Key: key, Value: value}
}
