package shell

import (
	"os"
	"os/signal"
	"regexp"
	"strings"
	"syscall"
)

// QuoteSplit splits command line by spaces, single and double quotes group args
func QuoteSplit(s string) []string {
	var a []string

	for len(s) > 0 {
		switch c := s[0]; c {
		case '\t', '\n', '\r', ' ': // unicode.IsSpace
			s = s[1:]
		case '"', '\'': // quote chars
			i := strings.IndexByte(s[1:], c)
			if i < 0 {
				return nil // error
			}
			a = append(a, s[1:i+1])
			s = s[i+2:]
		default:
			if i := strings.IndexAny(s, "\t\n\r "); i > 0 {
				a = append(a, s[:i])
				s = s[i:]
			} else {
				a = append(a, s)
				s = ""
			}
		}
	}

	return a
}

var reEnvVar = regexp.MustCompile(`\${([^}{]+)}`)

// ReplaceEnvVars support:
// - ${NAME}         => value or unchanged if not set
// - ${NAME:default} => value or default
func ReplaceEnvVars(text string) string {
	return reEnvVar.ReplaceAllStringFunc(text, func(match string) string {
		key := match[2 : len(match)-1]

		key, def, hasDef := strings.Cut(key, ":")

		if value, ok := os.LookupEnv(key); ok {
			return value
		}

		if hasDef {
			return def
		}

		return match
	})
}

// WaitSignal blocks until SIGINT or SIGTERM
func WaitSignal() os.Signal {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	return <-sigs
}
