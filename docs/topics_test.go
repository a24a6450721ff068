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

func TestTopicsMatchReadme(t *testing.T) {
	// The readme is the index: every topic it lists must load, and every
	// embedded topic must be listed.
	file, err := os.Open("readme.md")
	if err != nil {
		t.Fatalf("failed to open readme.md: %v", err)
	}
	defer file.Close()

	var listed []string
	scanner := bufio.NewScanner(file)
	topicRegex := regexp.MustCompile(`^\*\s+\*{0,2}([^:*]+)\*{0,2}:.*$`)
	for scanner.Scan() {
		if matches := topicRegex.FindStringSubmatch(scanner.Text()); len(matches) > 1 {
			listed = append(listed, strings.TrimSpace(matches[1]))
		}
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("error scanning readme.md: %v", err)
	}

	for _, topic := range listed {
		if _, err := Topic(topic); err != nil {
			t.Errorf("failed to get topic %q: %v", topic, err)
		}
	}

	embedded, err := List()
	if err != nil {
		t.Fatalf("List() failed: %v", err)
	}
	for _, name := range embedded {
		found := false
		for _, topic := range listed {
			if topic == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("topic %q is not listed in readme.md", name)
		}
	}
}

func TestTopicStar(t *testing.T) {
	all, err := Topic("*")
	if err != nil {
		t.Fatalf("Topic(*) failed: %v", err)
	}
	names, err := List()
	if err != nil {
		t.Fatalf("List() failed: %v", err)
	}
	for _, name := range names {
		content, err := Topic(name)
		if err != nil {
			t.Fatalf("Topic(%q) failed: %v", name, err)
		}
		if !strings.Contains(all, content) {
			t.Errorf("Topic(*) does not contain topic %q", name)
		}
	}
}

func TestUnknownTopic(t *testing.T) {
	if _, err := Topic("no-such-topic"); err == nil {
		t.Fatal("expected an error for an unknown topic")
	}
}

func TestTopicsAreValidMarkdown(t *testing.T) {
	// Every topic must parse and start with a level-1 heading, so the
	// rendered output has a title.
	names, err := List()
	if err != nil {
		t.Fatalf("List() failed: %v", err)
	}
	names = append(names, "readme")

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			content, err := topics.ReadFile(name + ".md")
			if err != nil {
				t.Fatalf("failed to read %s.md: %v", name, err)
			}
			root := goldmark.DefaultParser().Parse(text.NewReader(content))

			var hasTitle bool
			ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
				if !entering {
					return ast.WalkContinue, nil
				}
				if h, ok := n.(*ast.Heading); ok && h.Level == 1 {
					hasTitle = true
					return ast.WalkStop, nil
				}
				return ast.WalkContinue, nil
			})
			if !hasTitle {
				t.Errorf("%s.md has no level-1 heading", name)
			}
		})
	}
}
