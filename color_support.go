package prompter

import (
	"os"
	"strings"
)

// DetectColorSupport returns false when the environment asks for plain
// output: NO_COLOR is set, TERM is dumb or unset, or PROMPTER_COLOR is 0.
func DetectColorSupport() bool {
	if v, ok := os.LookupEnv("PROMPTER_COLOR"); ok {
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "0", "off", "false", "no":
			return false
		case "1", "on", "true", "yes":
			return true
		}
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	term := strings.ToLower(os.Getenv("TERM"))
	if term == "" || term == "dumb" {
		return false
	}
	return true
}
