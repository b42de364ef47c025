package cmd

import (
	"fmt"
	"strconv"
	"strings"
)

// Parser parses raw shell-style arguments against a flag set.
// Long flags accept "--name value" and "--name=value"; short flags
// combine ("-lf") and take the rest of the token as value ("-mtext").
// A bare "--" stops flag parsing.
type Parser struct {
	flagSet *CommandFlagSet

	long  map[string]string
	short map[string]string
}

func NewParser(flagSet *CommandFlagSet) *Parser {
	p := &Parser{
		flagSet: flagSet,
		long:    make(map[string]string),
		short:   make(map[string]string),
	}

	for flagName, flag := range flagSet.Flags {
		p.long[flag.Name] = flagName
		if flag.Short != "" {
			p.short[flag.Short] = flagName
		}
	}

	return p
}

func (cp *Parser) Parse(raw []string) (*CommandArgs, error) {
	args := &CommandArgs{
		Flags: make(map[string]any),
		Raw:   raw,
	}

	for flagName, flag := range cp.flagSet.Flags {
		if flag.Default != nil {
			args.Flags[flagName] = flag.Default
		}
	}

	for i := 0; i < len(raw); i++ {
		arg := raw[i]

		switch {
		case arg == "--":
			args.Args = append(args.Args, raw[i+1:]...)
			if err := cp.checkRequired(args); err != nil {
				return nil, err
			}
			return args, nil

		case strings.HasPrefix(arg, "--"):
			consumed, err := cp.parseLong(arg, raw[i+1:], args)
			if err != nil {
				return nil, err
			}
			i += consumed

		case strings.HasPrefix(arg, "-") && len(arg) > 1:
			consumed, err := cp.parseShort(arg[1:], raw[i+1:], args)
			if err != nil {
				return nil, err
			}
			i += consumed

		default:
			args.Args = append(args.Args, arg)
		}
	}

	if err := cp.checkRequired(args); err != nil {
		return nil, err
	}

	return args, nil
}

// parseLong handles one "--name[=value]" token. Returns how many
// following tokens were consumed as the flag value.
func (cp *Parser) parseLong(arg string, rest []string, args *CommandArgs) (int, error) {
	key := strings.TrimPrefix(arg, "--")
	value, hasValue := "", false
	if idx := strings.IndexByte(key, '='); idx >= 0 {
		key, value, hasValue = key[:idx], key[idx+1:], true
	}

	flagName, exists := cp.long[key]
	if !exists {
		return 0, fmt.Errorf("unknown flag: --%s", key)
	}

	flag := cp.flagSet.Flags[flagName]
	switch {
	case flag.Type == "bool":
		args.Flags[flagName] = true
	case hasValue:
		args.Flags[flagName] = coerce(value, flag.Type)
	case len(rest) > 0 && !strings.HasPrefix(rest[0], "-"):
		args.Flags[flagName] = coerce(rest[0], flag.Type)
		return 1, nil
	default:
		return 0, fmt.Errorf("flag --%s requires a value", key)
	}

	return 0, nil
}

// parseShort handles a combined short-flag token such as "lf" or
// "mimage/png". Returns how many following tokens were consumed.
func (cp *Parser) parseShort(token string, rest []string, args *CommandArgs) (int, error) {
	for j := 0; j < len(token); j++ {
		key := string(token[j])
		flagName, exists := cp.short[key]
		if !exists {
			return 0, fmt.Errorf("unknown flag: -%s", key)
		}

		flag := cp.flagSet.Flags[flagName]
		if flag.Type == "bool" {
			args.Flags[flagName] = true
			continue
		}

		// A value-carrying short flag eats the rest of the token,
		// or the next one.
		if j+1 < len(token) {
			args.Flags[flagName] = coerce(token[j+1:], flag.Type)
			return 0, nil
		}
		if len(rest) > 0 && !strings.HasPrefix(rest[0], "-") {
			args.Flags[flagName] = coerce(rest[0], flag.Type)
			return 1, nil
		}
		return 0, fmt.Errorf("flag -%s requires a value", key)
	}

	return 0, nil
}

func (cp *Parser) checkRequired(args *CommandArgs) error {
	for flagName, flag := range cp.flagSet.Flags {
		if !flag.Required {
			continue
		}
		if _, ok := args.Flags[flagName]; ok {
			continue
		}
		if flag.Short != "" {
			return fmt.Errorf("required flag: -%s / --%s", flag.Short, flag.Name)
		}
		return fmt.Errorf("required flag: --%s", flag.Name)
	}
	return nil
}

func coerce(value, typeStr string) any {
	switch typeStr {
	case "int":
		v, _ := strconv.ParseInt(value, 10, 64)
		return v
	case "bool":
		return value == "true" || value == "1" || value == "yes"
	default:
		return value
	}
}
