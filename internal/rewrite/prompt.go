package rewrite

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultSystemPrompt accompanies inline instructions.
const DefaultSystemPrompt = "Modify the following text according to the user's request. Return only the modified text, no explanations or additional content."

// TextPlaceholder marks where a prompt file's user section takes the text.
const TextPlaceholder = "{{TEXT}}"

// PromptExt is the extension of prompt files.
const PromptExt = ".prompt"

// Prompt is a system and user message pair.
type Prompt struct {
	System string
	User   string

	// Template reports whether User embeds the text through
	// TextPlaceholder rather than receiving it appended.
	Template bool
}

// Inline returns a prompt for a free-form instruction.
func Inline(instruction string) Prompt {
	return Prompt{System: DefaultSystemPrompt, User: instruction}
}

// ParsePrompt reads [system] and [user] sections. Lines before the first
// section header are ignored.
func ParsePrompt(content string) (Prompt, error) {
	var system, user []string
	var section *[]string

	sc := bufio.NewScanner(strings.NewReader(content))
	for sc.Scan() {
		line := strings.TrimSuffix(sc.Text(), "\r")
		switch strings.TrimSpace(line) {
		case "[system]":
			section = &system
			continue
		case "[user]":
			section = &user
			continue
		}
		if section != nil {
			*section = append(*section, line)
		}
	}
	if err := sc.Err(); err != nil {
		return Prompt{}, err
	}

	p := Prompt{
		System:   strings.Join(system, "\n"),
		User:     strings.Join(user, "\n"),
		Template: true,
	}
	if p.System == "" {
		return Prompt{}, ErrNoSystemSection
	}
	return p, nil
}

// LoadPrompt reads dir/name.prompt.
func LoadPrompt(dir, name string) (Prompt, error) {
	path := filepath.Join(dir, name+PromptExt)
	data, err := os.ReadFile(path)
	if err != nil {
		return Prompt{}, fmt.Errorf("reading prompt %s: %w", path, err)
	}
	p, err := ParsePrompt(string(data))
	if err != nil {
		return Prompt{}, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// ParseArg interprets the argument of the prompt command: a double-quoted
// instruction, or the name of a prompt file in dir.
func ParseArg(dir, arg string) (Prompt, error) {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return Prompt{}, ErrEmptyInstruction
	}
	if len(arg) >= 2 && strings.HasPrefix(arg, `"`) && strings.HasSuffix(arg, `"`) {
		instruction := arg[1 : len(arg)-1]
		if strings.TrimSpace(instruction) == "" {
			return Prompt{}, ErrEmptyInstruction
		}
		return Inline(instruction), nil
	}
	return LoadPrompt(dir, arg)
}

// Messages returns the system and user messages for text.
func (p Prompt) Messages(text string) (system, user string) {
	switch {
	case p.Template:
		user = strings.ReplaceAll(p.User, TextPlaceholder, text)
	case text != "":
		user = "User request: " + p.User + "\n\nText:\n" + text
	default:
		user = p.User
	}
	return p.System, user
}

// Flatten joins system and user into the single message sent to plain
// chat endpoints.
func Flatten(system, user string) string {
	return system + "\n\n" + user
}
