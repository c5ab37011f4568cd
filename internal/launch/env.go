package launch

import (
	"fmt"
	"os"
	"strings"

	"github.com/fenwick-labs/agentup/internal/envfile"
	"github.com/fenwick-labs/agentup/internal/messages"
)

// BuildEnv merges the process environment with values from an optional env
// file. Existing process values win: the file only fills in missing keys, so
// an exported GEMINI_API_KEY is never clobbered by a stale file entry.
func BuildEnv(base []string, envFilePath string) ([]string, error) {
	data, err := os.ReadFile(envFilePath)
	if os.IsNotExist(err) {
		return base, nil
	}
	if err != nil {
		return nil, fmt.Errorf(messages.LaunchReadEnvFileFmt, envFilePath, err)
	}
	fileEnv, err := envfile.Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf(messages.LaunchReadEnvFileFmt, envFilePath, err)
	}
	return mergeFillMissing(base, fileEnv), nil
}

// GetEnv returns the value for the key from an env slice.
func GetEnv(env []string, key string) (string, bool) {
	prefix := key + "="
	for _, entry := range env {
		if strings.HasPrefix(entry, prefix) {
			return entry[len(prefix):], true
		}
	}
	return "", false
}

// SetEnv sets or appends a key=value entry in an env slice.
func SetEnv(env []string, key string, value string) []string {
	entry := key + "=" + value
	for i, existing := range env {
		if strings.HasPrefix(existing, key+"=") {
			env[i] = entry
			return env
		}
	}
	return append(env, entry)
}

func mergeFillMissing(base []string, additions map[string]string) []string {
	if len(additions) == 0 {
		return base
	}
	for key, value := range additions {
		if value == "" {
			continue
		}
		if _, ok := GetEnv(base, key); ok {
			continue
		}
		base = SetEnv(base, key, value)
	}
	return base
}
