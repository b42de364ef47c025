package cmd

// CommandArgs contains parsed command arguments
type CommandArgs struct {
	// Positional arguments (command-specific)
	Args []string

	// Parsed flags
	Flags map[string]any

	// Raw unparsed arguments (for custom parsing)
	Raw []string
}

// Bool returns a parsed boolean flag.
func (ca *CommandArgs) Bool(name string) bool {
	value, ok := ca.Flags[name].(bool)
	return ok && value
}

// String returns a parsed string flag, or "" when absent.
func (ca *CommandArgs) String(name string) string {
	value, _ := ca.Flags[name].(string)
	return value
}

// Int returns a parsed integer flag, or 0 when absent.
func (ca *CommandArgs) Int(name string) int64 {
	value, _ := ca.Flags[name].(int64)
	return value
}

// CommandFlagSet defines the expected flags for a command
type CommandFlagSet struct {
	Flags map[string]*CommandFlag
}

// CommandFlag represents a single command-line flag
type CommandFlag struct {
	Name        string `json:"name"`              // e.g., "type" or "t"
	Short       string `json:"short"`             // Single-char shorthand (e.g., "t")
	Type        string `json:"type"`              // "string", "bool", "int"
	Default     any    `json:"default,omitempty"` // Default value
	Required    bool   `json:"required"`          // Must be provided
	Description string `json:"description"`       // Help text
}
