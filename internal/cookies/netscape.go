// Package cookies handles Netscape cookie files and browser cookie extraction
package cookies

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// NetscapeCookie represents a single cookie from a Netscape format file
type NetscapeCookie struct {
	Domain     string
	Flag       string
	Path       string
	Secure     bool
	Expiration int64 // Unix timestamp
	Name       string
	Value      string
}

// ParseFile parses a Netscape format cookie file.
// Format: domain	flag	path	secure	expiration	name	value
func ParseFile(path string) ([]NetscapeCookie, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open cookie file: %w", err)
	}
	defer file.Close()

	var cookies []NetscapeCookie
	scanner := bufio.NewScanner(file)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := scanner.Text()

		if strings.HasPrefix(line, "#") || strings.TrimSpace(line) == "" {
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) < 7 {
			fields = strings.Fields(line)
			if len(fields) < 7 {
				return nil, fmt.Errorf("line %d: invalid format (expected 7 fields, got %d)", lineNum, len(fields))
			}
		}

		expiration, err := strconv.ParseInt(fields[4], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid expiration timestamp: %w", lineNum, err)
		}

		value := fields[6]
		if strings.HasPrefix(value, `"`) && strings.HasSuffix(value, `"`) {
			value = strings.Trim(value, `"`)
		}

		cookies = append(cookies, NetscapeCookie{
			Domain:     fields[0],
			Flag:       fields[1],
			Path:       fields[2],
			Secure:     strings.ToUpper(fields[3]) == "TRUE",
			Expiration: expiration,
			Name:       fields[5],
			Value:      value,
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read cookie file: %w", err)
	}

	if len(cookies) == 0 {
		return nil, fmt.Errorf("no valid cookies found in file")
	}

	return cookies, nil
}

// LoadJar parses a Netscape cookie file into a name -> value map suitable
// for the API client
func LoadJar(path string) (map[string]string, error) {
	cookies, err := ParseFile(path)
	if err != nil {
		return nil, err
	}

	jar := make(map[string]string, len(cookies))
	for _, c := range cookies {
		jar[c.Name] = c.Value
	}
	return jar, nil
}

// WriteFile writes cookies to a Netscape format file with owner-only
// permissions (session cookies are credentials)
func WriteFile(path string, cookies []NetscapeCookie) error {
	var sb strings.Builder
	sb.WriteString("# Netscape HTTP Cookie File\n")
	sb.WriteString("# This file was generated by beacon-dl. Do not edit.\n\n")

	for _, c := range cookies {
		secure := "FALSE"
		if c.Secure {
			secure = "TRUE"
		}
		fmt.Fprintf(&sb, "%s\t%s\t%s\t%s\t%d\t%s\t%s\n",
			c.Domain, c.Flag, c.Path, secure, c.Expiration, c.Name, c.Value)
	}

	if err := os.WriteFile(path, []byte(sb.String()), 0o600); err != nil {
		return fmt.Errorf("failed to write cookie file: %w", err)
	}
	return nil
}

// EarliestExpiration returns the earliest expiration time among the cookies
func EarliestExpiration(cookies []NetscapeCookie) time.Time {
	if len(cookies) == 0 {
		return time.Time{}
	}

	earliest := cookies[0].Expiration
	for _, c := range cookies[1:] {
		if c.Expiration < earliest {
			earliest = c.Expiration
		}
	}
	return time.Unix(earliest, 0)
}
