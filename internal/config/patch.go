package config

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	// toml v1 is used for syntax validation only; the edit itself is
	// line-based so user comments and formatting survive.
	toml "github.com/pelletier/go-toml"

	"github.com/fenwick-labs/agentup/internal/messages"
)

type valueKind int

const (
	kindString valueKind = iota
	kindInt
)

type knownKey struct {
	section string
	key     string
	kind    valueKind
}

// knownKeys maps the dotted keys `config set` accepts onto the schema.
var knownKeys = map[string]knownKey{
	"repo.url":               {"repo", "url", kindString},
	"runtime.min_node_major": {"runtime", "min_node_major", kindInt},
	"cli.package":            {"cli", "package", kindString},
	"cli.command":            {"cli", "command", kindString},
	"workspace.prefix":       {"workspace", "prefix", kindString},
}

// KnownKeys returns the sorted dotted keys `config set` accepts.
func KnownKeys() []string {
	keys := make([]string, 0, len(knownKeys))
	for k := range knownKeys {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Set returns content with dottedKey set to value. Lines outside the edited
// key keep their exact text, so comments and formatting are preserved. The
// result is re-validated against the schema before being returned.
func Set(content string, dottedKey string, value string) (string, error) {
	spec, ok := knownKeys[dottedKey]
	if !ok {
		return "", fmt.Errorf(messages.ConfigPatchUnknownKeyFmt, dottedKey, strings.Join(KnownKeys(), ", "))
	}

	encoded, err := encodeValue(spec.kind, value)
	if err != nil {
		return "", err
	}

	if content != "" {
		if _, err := toml.LoadBytes([]byte(content)); err != nil {
			return "", fmt.Errorf(messages.ConfigPatchParseFailedFmt, err)
		}
	}

	updated := applyLineEdit(content, spec, encoded)

	if _, err := Parse([]byte(updated), "config set result"); err != nil {
		return "", err
	}
	return updated, nil
}

// encodeValue renders the TOML representation for the key's kind.
func encodeValue(kind valueKind, value string) (string, error) {
	if kind == kindInt {
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return "", fmt.Errorf(messages.ConfigPatchParseFailedFmt, err)
		}
		return strconv.Itoa(n), nil
	}
	return strconv.Quote(value), nil
}

// applyLineEdit rewrites the one line holding spec.key inside spec's section,
// inserting the key or the whole section when absent.
func applyLineEdit(content string, spec knownKey, encoded string) string {
	newLine := fmt.Sprintf("%s = %s", spec.key, encoded)

	var lines []string
	if content != "" {
		lines = strings.Split(content, "\n")
	}

	sectionStart := -1
	sectionEnd := len(lines)
	current := ""
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
			if sectionStart >= 0 {
				sectionEnd = i
				break
			}
			current = strings.Trim(trimmed, "[]")
			if current == spec.section {
				sectionStart = i
			}
			continue
		}
		if sectionStart < 0 || current != spec.section {
			continue
		}
		key, _, found := strings.Cut(trimmed, "=")
		if found && strings.TrimSpace(key) == spec.key {
			lines[i] = newLine
			return strings.Join(lines, "\n")
		}
	}

	if sectionStart < 0 {
		// Section absent: append it.
		if len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) != "" {
			lines = append(lines, "")
		}
		lines = append(lines, fmt.Sprintf("[%s]", spec.section), newLine, "")
		return strings.Join(lines, "\n")
	}

	// Section present but key absent: insert after its last non-blank line.
	insertAt := sectionStart + 1
	for i := sectionStart + 1; i < sectionEnd; i++ {
		if strings.TrimSpace(lines[i]) != "" {
			insertAt = i + 1
		}
	}
	lines = append(lines[:insertAt], append([]string{newLine}, lines[insertAt:]...)...)
	return strings.Join(lines, "\n")
}
