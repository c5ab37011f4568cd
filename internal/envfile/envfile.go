// Package envfile parses dotenv-style files for launch env passthrough.
package envfile

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/fenwick-labs/agentup/internal/messages"
)

// Parse reads .env content into a key-value map. Blank lines and #-comments
// are ignored; an optional `export ` prefix is stripped; values may be bare,
// single-quoted, or double-quoted (with \\, \", \n, \r escapes).
func Parse(content string) (map[string]string, error) {
	env := make(map[string]string)
	if content == "" {
		return env, nil
	}

	scanner := bufio.NewScanner(strings.NewReader(content))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		key, value, ok, err := parseLine(scanner.Text())
		if err != nil {
			return nil, fmt.Errorf(messages.EnvfileLineErrorFmt, lineNo, err)
		}
		if !ok {
			continue
		}
		env[key] = value
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf(messages.EnvfileReadFailedFmt, err)
	}
	return env, nil
}

// parseLine parses a single .env line and returns key/value when present.
func parseLine(line string) (string, string, bool, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return "", "", false, nil
	}
	if rest, ok := strings.CutPrefix(trimmed, "export "); ok {
		trimmed = strings.TrimSpace(rest)
	}
	key, rawValue, found := strings.Cut(trimmed, "=")
	key = strings.TrimSpace(key)
	if !found || key == "" {
		return "", "", false, fmt.Errorf(messages.EnvfileExpectedKeyValue)
	}
	value := strings.TrimSpace(rawValue)
	switch {
	case strings.HasPrefix(value, `"`):
		parsed, err := parseDoubleQuoted(value)
		if err != nil {
			return "", "", false, err
		}
		value = parsed
	case strings.HasPrefix(value, `'`):
		parsed, err := parseSingleQuoted(value)
		if err != nil {
			return "", "", false, err
		}
		value = parsed
	}
	return key, value, true, nil
}

func parseDoubleQuoted(value string) (string, error) {
	closing := -1
	escaped := false
	for i := 1; i < len(value); i++ {
		if escaped {
			escaped = false
			continue
		}
		switch value[i] {
		case '\\':
			escaped = true
		case '"':
			closing = i
		}
		if closing >= 0 {
			break
		}
	}
	if closing < 0 {
		return "", fmt.Errorf(messages.EnvfileUnterminatedQuotedValue)
	}
	if err := validateSuffix(value[closing+1:]); err != nil {
		return "", err
	}
	return unescape(value[1:closing]), nil
}

func parseSingleQuoted(value string) (string, error) {
	if len(value) < 2 {
		return "", fmt.Errorf(messages.EnvfileUnterminatedQuotedValue)
	}
	offset := strings.IndexByte(value[1:], '\'')
	if offset < 0 {
		return "", fmt.Errorf(messages.EnvfileUnterminatedQuotedValue)
	}
	closing := 1 + offset
	if err := validateSuffix(value[closing+1:]); err != nil {
		return "", err
	}
	return value[1:closing], nil
}

// validateSuffix permits only whitespace and a trailing comment after a
// quoted value.
func validateSuffix(suffix string) error {
	trimmed := strings.TrimSpace(suffix)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return nil
	}
	return fmt.Errorf(messages.EnvfileInvalidQuotedSuffix)
}

func unescape(escaped string) string {
	var b strings.Builder
	b.Grow(len(escaped))
	for i := 0; i < len(escaped); i++ {
		if escaped[i] == '\\' && i+1 < len(escaped) {
			switch escaped[i+1] {
			case '\\', '"':
				b.WriteByte(escaped[i+1])
				i++
				continue
			case 'n':
				b.WriteByte('\n')
				i++
				continue
			case 'r':
				b.WriteByte('\r')
				i++
				continue
			}
		}
		b.WriteByte(escaped[i])
	}
	return b.String()
}
