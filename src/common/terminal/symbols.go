package terminal

import (
	"os"
	"strings"
)

// Symbols provides terminal symbols with Unicode/ASCII fallback
type Symbols struct {
	Error   string
	Stop    string
	Pointer string
}

// UnicodeSymbols is used on terminals that render UTF-8
var UnicodeSymbols = Symbols{
	Error:   "✗",
	Stop:    "🤚",
	Pointer: "›",
}

// ASCIISymbols is the fallback for limited terminals
var ASCIISymbols = Symbols{
	Error:   "[ERR]",
	Stop:    "[!]",
	Pointer: ">",
}

// GetSymbols returns the appropriate symbol set based on terminal capabilities
func GetSymbols() Symbols {
	if supportsUnicode() {
		return UnicodeSymbols
	}
	return ASCIISymbols
}

// supportsUnicode checks if the terminal likely supports Unicode
func supportsUnicode() bool {
	for _, env := range []string{"LC_ALL", "LC_CTYPE", "LANG"} {
		val := strings.ToLower(os.Getenv(env))
		if strings.Contains(val, "utf-8") || strings.Contains(val, "utf8") {
			return true
		}
	}

	term := os.Getenv("TERM")
	unicodeTerms := []string{
		"xterm", "rxvt", "screen", "tmux",
		"linux", "konsole", "gnome", "alacritty", "kitty",
	}
	for _, t := range unicodeTerms {
		if strings.Contains(term, t) {
			return true
		}
	}

	// Default to ASCII for safety
	return false
}
