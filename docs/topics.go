// Package docs embeds the help topics shown by `sfo topic`.
package docs

import (
	"embed"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

//go:embed *.md
var topics embed.FS

// Topic returns the content of one help topic, or of all of them for "*".
func Topic(name string) (string, error) {
	if name == "*" {
		all, err := Topics()
		if err != nil {
			return "", err
		}
		var b strings.Builder
		for _, t := range all {
			content, err := Topic(t)
			if err != nil {
				return "", err
			}
			b.WriteString(content)
			b.WriteString("\n")
		}
		return b.String(), nil
	}

	content, err := topics.ReadFile(name + ".md")
	if err != nil {
		return "", fmt.Errorf("topic %q not found: %w", name, err)
	}
	return string(content), nil
}

// Topics lists the available topic names, sorted. The index file itself
// is not a topic.
func Topics() ([]string, error) {
	entries, err := fs.Glob(topics, "*.md")
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		name := strings.TrimSuffix(filepath.Base(e), ".md")
		if name == "readme" {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}
