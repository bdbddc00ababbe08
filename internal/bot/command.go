package bot

import (
	"strings"
	"unicode"
)

// Message is an inbound chat message.
type Message struct {
	ChatID string
	From   string
	Text   string
}

// Command is a parsed "/name args" message.
type Command struct {
	Name string
	Args string
}

// ParseCommand splits "/name[@bot] args". The name is lower-cased and the
// argument text trimmed, including leading "-" separators as in
// "/weather - Sao Paulo". ok is false for text that is not a command.
func ParseCommand(text string) (cmd Command, ok bool) {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "/") {
		return Command{}, false
	}
	head, rest := text[1:], ""
	if i := strings.IndexFunc(head, unicode.IsSpace); i >= 0 {
		head, rest = head[:i], head[i:]
	}
	if at := strings.IndexByte(head, '@'); at >= 0 {
		head = head[:at]
	}
	if head == "" {
		return Command{}, false
	}
	rest = strings.TrimSpace(rest)
	rest = strings.TrimSpace(strings.TrimLeft(rest, "-"))
	return Command{Name: strings.ToLower(head), Args: rest}, true
}
