package docs

import (
	"bufio"
	"os"
	"regexp"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

func TestTopics(t *testing.T) {
	// The topic index and the topic files must stay in sync:
	// 1. Every topic listed in readme.md loads.
	// 2. Every topic file is listed in readme.md.

	file, err := os.Open("readme.md")
	if err != nil {
		t.Fatalf("failed to open readme.md: %v", err)
	}
	defer file.Close()

	var listed []string
	topicRegex := regexp.MustCompile(`^\*\s+([^:]+):.*$`)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if m := topicRegex.FindStringSubmatch(scanner.Text()); len(m) > 1 {
			listed = append(listed, strings.TrimSpace(m[1]))
		}
	}
	if err := scanner.Err(); err != nil {
		t.Fatal(err)
	}

	for _, topic := range listed {
		t.Run("load_"+topic, func(t *testing.T) {
			if _, err := Topic(topic); err != nil {
				t.Errorf("failed to get topic %q: %v", topic, err)
			}
		})
	}

	all, err := Topics()
	if err != nil {
		t.Fatal(err)
	}
	for _, topic := range all {
		found := false
		for _, l := range listed {
			if l == topic {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("topic %q is not listed in readme.md", topic)
		}
	}
}

func TestTopicStar(t *testing.T) {
	content, err := Topic("*")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"# Transactions", "# Reports", "# Independence", "# Configuration"} {
		if !strings.Contains(content, want) {
			t.Errorf("Topic(*) missing section %q", want)
		}
	}
}

func TestTopicUnknown(t *testing.T) {
	if _, err := Topic("nope"); err == nil {
		t.Error("unknown topic loaded")
	}
}

// subcommands mentioned in documentation code blocks must exist.
var knownSubcommands = map[string]bool{
	"buy": true, "sell": true, "tx": true, "rm": true, "fmt": true,
	"portfolios": true, "holding": true, "actual": true, "targets": true,
	"weights": true, "trends": true, "tendencies": true, "earnings": true,
	"independence": true, "topic": true,
}

func TestReadmeCommands(t *testing.T) {
	for _, file := range []string{"../README.md"} {
		content, err := os.ReadFile(file)
		if err != nil {
			t.Fatalf("failed to read %s: %v", file, err)
		}

		root := goldmark.DefaultParser().Parse(text.NewReader(content))
		ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
			if !entering {
				return ast.WalkContinue, nil
			}
			fcb, ok := n.(*ast.FencedCodeBlock)
			if !ok || fcb.Info == nil {
				return ast.WalkContinue, nil
			}
			if lang := string(fcb.Info.Segment.Value(content)); lang != "bash" {
				return ast.WalkContinue, nil
			}
			for i := 0; i < fcb.Lines().Len(); i++ {
				seg := fcb.Lines().At(i)
			line := strings.TrimSpace(string(seg.Value(content)))
				if !strings.HasPrefix(line, "sfo ") {
					continue
				}
				fields := strings.Fields(line)
				if len(fields) < 2 {
					continue
				}
				if sub := fields[1]; !knownSubcommands[sub] {
					t.Errorf("%s: unknown subcommand in %q", file, line)
				}
			}
			return ast.WalkContinue, nil
		})
	}
}
