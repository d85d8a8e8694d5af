package dotenv

import (
	"bufio"
	"io"
	"os"
	"regexp"
	"strings"
)

var refPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// Parse reads .env-formatted text and returns the resolved key-value
// pairs. Later entries override earlier ones on duplicate keys.
func Parse(r io.Reader) (map[string]string, error) {
	values := make(map[string]string)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, raw, found := strings.Cut(line, "=")
		if !found {
			continue
		}

		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}

		val := strings.TrimSpace(raw)
		val = stripQuotes(val)
		values[key] = expand(val, values)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return values, nil
}

// ParseString parses .env-formatted text from a string.
func ParseString(s string) (map[string]string, error) {
	return Parse(strings.NewReader(s))
}

// ParseFile parses the .env file at path. A missing file yields a
// *NotFoundError.
func ParseFile(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &NotFoundError{Path: path}
		}
		return nil, err
	}
	defer func() { _ = f.Close() }()

	return Parse(f)
}

// stripQuotes removes one pair of matching surrounding quotes.
func stripQuotes(s string) string {
	if len(s) < 2 {
		return s
	}
	first, last := s[0], s[len(s)-1]
	if first == last && (first == '"' || first == '\'') {
		return s[1 : len(s)-1]
	}
	return s
}

// expand substitutes ${NAME} references: keys defined earlier in the
// same file win, then the OS environment, else the empty string.
func expand(s string, prior map[string]string) string {
	return refPattern.ReplaceAllStringFunc(s, func(match string) string {
		name := match[2 : len(match)-1]
		if v, ok := prior[name]; ok {
			return v
		}
		if v, ok := os.LookupEnv(name); ok {
			return v
		}
		return ""
	})
}
