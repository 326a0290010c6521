package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

const configHeader = "# webdeck configuration. See config.schema.json for every key.\n\n"

var sectionRegex = regexp.MustCompile(`^(\s*)\[([^\]]+)\]\s*$`)

// WriteConfigOrdered writes the configuration to disk with consistent ordering.
// Keys keep struct order and sections are sorted alphabetically. The file is
// replaced atomically so the watcher never sees a partial write.
func WriteConfigOrdered(cfg *Config, path string) error {
	if cfg == nil {
		return errors.New("config is nil")
	}

	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)

	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	content := configHeader + sortTOMLSections(buf.String())

	tmp, err := os.CreateTemp(filepath.Dir(path), ".config-*.toml")
	if err != nil {
		return fmt.Errorf("failed to create temp config file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath) // no-op after a successful rename

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write config file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	if err := os.Chmod(tmpPath, filePerm); err != nil {
		return fmt.Errorf("failed to set config permissions: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to replace config file: %w", err)
	}
	return nil
}

// sortTOMLSections sorts TOML content so sections are in alphabetical order.
func sortTOMLSections(content string) string {
	type section struct {
		header string
		lines  []string
	}

	var sections []section
	var current *section
	var preamble []string

	for _, line := range strings.Split(content, "\n") {
		if match := sectionRegex.FindStringSubmatch(line); match != nil {
			if current != nil {
				sections = append(sections, *current)
			}
			current = &section{header: match[2], lines: []string{line}}
			continue
		}
		if current != nil {
			current.lines = append(current.lines, line)
		} else {
			preamble = append(preamble, line)
		}
	}
	if current != nil {
		sections = append(sections, *current)
	}

	sort.SliceStable(sections, func(i, j int) bool {
		return sections[i].header < sections[j].header
	})

	var result strings.Builder
	for _, line := range preamble {
		if strings.TrimSpace(line) == "" {
			continue
		}
		result.WriteString(line)
		result.WriteString("\n")
	}

	for i, sec := range sections {
		if i > 0 || result.Len() > 0 {
			if !strings.HasSuffix(result.String(), "\n\n") {
				result.WriteString("\n")
			}
		}
		for _, line := range trimTrailingBlank(sec.lines) {
			result.WriteString(line)
			result.WriteString("\n")
		}
	}

	output := strings.TrimRight(result.String(), "\n")
	if output != "" {
		output += "\n"
	}
	return output
}

func trimTrailingBlank(lines []string) []string {
	end := len(lines)
	for end > 0 && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	return lines[:end]
}
