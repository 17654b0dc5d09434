package config

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

type argKind uint8

const (
	argBool argKind = iota
	argInt
	argString
)

type argToken struct {
	name  string
	value string
}

// parseArgs turns free-form long options into a parsed flag set.
//
// Accepted forms: --key=value, --key value, --key (true) and --no-key
// (false). In the --key value form a value starting with "-" is only taken
// when it is an integer, so --id -5 works. "true"/"false" values become bool flags, integers become int
// flags and everything else is a string. Tokens that are not long options
// are returned as positional arguments; "--" ends option parsing.
func parseArgs(args []string) (*pflag.FlagSet, []string, error) {
	var (
		tokens     []argToken
		positional []string
	)

	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			positional = append(positional, args[i+1:]...)
			break
		}
		if !strings.HasPrefix(arg, "--") || len(arg) == 2 {
			positional = append(positional, arg)
			continue
		}

		name, value, hasValue := strings.Cut(arg[2:], "=")
		if name == "" {
			return nil, nil, fmt.Errorf("empty option name in %q", arg)
		}
		if !hasValue && i+1 < len(args) && isValue(args[i+1]) {
			value, hasValue = args[i+1], true
			i++
		}
		if !hasValue {
			value = "true"
			if rest, ok := strings.CutPrefix(name, "no-"); ok && rest != "" {
				name, value = rest, "false"
			}
		}
		tokens = append(tokens, argToken{name: name, value: value})
	}

	kinds := make(map[string]argKind, len(tokens))
	var order []string
	for _, tok := range tokens {
		kind := kindOf(tok.value)
		prev, seen := kinds[tok.name]
		switch {
		case !seen:
			order = append(order, tok.name)
			kinds[tok.name] = kind
		case prev != kind:
			kinds[tok.name] = argString
		}
	}

	fs := pflag.NewFlagSet("argv", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	for _, name := range order {
		switch kinds[name] {
		case argBool:
			fs.Bool(name, false, "")
		case argInt:
			fs.Int(name, 0, "")
		default:
			fs.String(name, "", "")
		}
	}

	normalized := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		normalized = append(normalized, "--"+tok.name+"="+tok.value)
	}
	if err := fs.Parse(normalized); err != nil {
		return nil, nil, err
	}
	return fs, positional, nil
}

func isValue(token string) bool {
	if !strings.HasPrefix(token, "-") {
		return true
	}
	_, err := strconv.Atoi(token)
	return err == nil
}

// typedValue converts "true", "false" and integer strings to bool and int.
// Anything else is returned unchanged.
func typedValue(value string) any {
	switch kindOf(value) {
	case argBool:
		return value == "true"
	case argInt:
		n, _ := strconv.Atoi(value)
		return n
	default:
		return value
	}
}

func kindOf(value string) argKind {
	if value == "true" || value == "false" {
		return argBool
	}
	if _, err := strconv.Atoi(value); err == nil {
		return argInt
	}
	return argString
}
