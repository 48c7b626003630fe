package config

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/joho/godotenv"
)

// envVarPattern matches ${VAR_NAME} patterns in TOML values
var envVarPattern = regexp.MustCompile(`^\$\{([A-Za-z_][A-Za-z0-9_]*)\}$`)

// DetectEnvVar checks if a raw TOML value is a simple ${VAR_NAME} reference.
// Returns the variable name and true if the value is a pure env var reference.
func DetectEnvVar(rawValue string) (string, bool) {
	matches := envVarPattern.FindStringSubmatch(rawValue)
	if len(matches) == 2 {
		return matches[1], true
	}
	return "", false
}

// expandValue expands ${VAR} references and reports a pure reference to an unset variable.
func expandValue(raw string) (value string, unset string) {
	if name, ok := DetectEnvVar(raw); ok {
		if _, set := os.LookupEnv(name); !set {
			return "", name
		}
	}
	return os.ExpandEnv(raw), ""
}

// loadEnvFiles loads .env and .env.local from the project root without
// overriding variables already present in the process environment.
func loadEnvFiles(projectRoot string) {
	for _, name := range []string{".env", ".env.local"} {
		envFile := filepath.Join(projectRoot, name)
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				// Log warning but don't fail
				fmt.Fprintf(os.Stderr, "Warning: Failed to load %s: %v\n", envFile, err)
			}
		}
	}
}

// UpsertEnvFile sets the given keys in a dotenv file. Existing assignments are
// rewritten in place, new keys are appended, and every other line is kept.
func UpsertEnvFile(path string, values map[string]string) error {
	existing, err := os.ReadFile(path) //nolint:gosec // internal path
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	if len(existing) > 0 {
		if _, err := godotenv.Unmarshal(string(existing)); err != nil {
			return fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}

	written := make(map[string]bool, len(values))
	var out bytes.Buffer

	scanner := bufio.NewScanner(bytes.NewReader(existing))
	for scanner.Scan() {
		line := scanner.Text()
		key, _, isAssign := strings.Cut(strings.TrimPrefix(strings.TrimSpace(line), "export "), "=")
		key = strings.TrimSpace(key)
		if v, ok := values[key]; ok && isAssign && !strings.HasPrefix(key, "#") {
			fmt.Fprintf(&out, "%s=%s\n", key, v)
			written[key] = true
			continue
		}
		out.WriteString(line)
		out.WriteByte('\n')
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to scan %s: %w", path, err)
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		if !written[k] {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&out, "%s=%s\n", k, values[k])
	}

	if err := os.WriteFile(path, out.Bytes(), 0644); err != nil { //nolint:gosec // internal path
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
