package docs

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Fenced code blocks executed by TestExamples, by info string.
const (
	bashSetup    = "bash setup"    // runs in a fresh directory
	bashRun      = "bash run"      // its output is checked by the next console check
	consoleCheck = "console check" // expected output of the previous bash run
	bashCheck    = "bash check"    // must exit successfully
)

var topicLine = regexp.MustCompile(`^\*\s+([^:]+):`)

func TestTopics(t *testing.T) {
	readme, err := GetTopic("readme")
	if err != nil {
		t.Fatal(err)
	}
	var listed []string
	for _, line := range strings.Split(readme, "\n") {
		if m := topicLine.FindStringSubmatch(line); m != nil {
			listed = append(listed, strings.TrimSpace(m[1]))
		}
	}
	slices.Sort(listed)

	all, err := GetAllTopics()
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(listed, all) {
		t.Errorf("readme lists topics %q, want %q", listed, all)
	}

	for _, topic := range all {
		content, err := GetTopic(topic)
		if err != nil {
			t.Errorf("GetTopic(%q): %v", topic, err)
			continue
		}
		root := goldmark.DefaultParser().Parse(text.NewReader([]byte(content)))
		if h, ok := root.FirstChild().(*ast.Heading); !ok || h.Level != 1 {
			t.Errorf("topic %q does not start with a title", topic)
		}
	}

	if _, err := GetTopic("missing"); err == nil {
		t.Errorf("GetTopic(missing) succeeded")
	}
	everything, err := GetTopics("*")
	if err != nil {
		t.Fatal(err)
	}
	for _, topic := range all {
		content, _ := GetTopic(topic)
		if !strings.Contains(everything, content) {
			t.Errorf("topic %q is missing from \"*\"", topic)
		}
	}
}

func TestExamples(t *testing.T) {
	if testing.Short() {
		t.Skip("builds and runs sgs")
	}
	files, err := filepath.Glob("*.md")
	if err != nil {
		t.Fatal(err)
	}
	files = append(files, "../README.md")

	bin := t.TempDir()
	build := exec.Command("go", "build", "-o", filepath.Join(bin, "sgs"), "../sgs/")
	if out, err := build.CombinedOutput(); err != nil {
		t.Fatalf("cannot build sgs: %v\n%s", err, out)
	}

	// stable time and ids, no settings from the developer environment.
	env := []string{
		fmt.Sprintf("PATH=%s%c%s", bin, os.PathListSeparator, os.Getenv("PATH")),
		"HOME=" + t.TempDir(),
		"SGS_TESTING_NOW=2025-03-01 09:30:00",
		"SGS_TESTING_IDS=g",
	}

	for _, file := range files {
		t.Run(filepath.Base(file), func(t *testing.T) {
			content, err := os.ReadFile(file)
			if err != nil {
				t.Fatal(err)
			}
			dir := t.TempDir()
			var output string
			for _, b := range blocks(content) {
				where := fmt.Sprintf("%s:%d", file, b.line)
				if b.kind == consoleCheck {
					want := strings.TrimSpace(b.content)
					if got := strings.TrimSpace(output); got != want {
						t.Errorf("%s: got output\n%s\nwant\n%s", where, got, want)
					}
					continue
				}
				if b.kind == bashSetup {
					dir = t.TempDir()
				}
				cmd := exec.Command("bash", "-c", "set -e; "+b.content)
				cmd.Dir = dir
				cmd.Env = env
				out, err := cmd.CombinedOutput()
				if b.kind == bashRun {
					output = string(out)
				}
				if err != nil {
					t.Errorf("%s: %s failed: %v\n%s", where, b.kind, err, out)
					if b.kind != bashCheck {
						return
					}
				}
			}
		})
	}
}

// block is a fenced code block of a markdown file.
type block struct {
	kind    string
	content string
	line    int
}

// blocks returns the executable code blocks of a markdown source.
func blocks(source []byte) []block {
	root := goldmark.DefaultParser().Parse(text.NewReader(source))
	var res []block
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		fcb, ok := n.(*ast.FencedCodeBlock)
		if !entering || !ok || fcb.Info == nil {
			return ast.WalkContinue, nil
		}
		kind := string(fcb.Info.Segment.Value(source))
		switch kind {
		case bashSetup, bashRun, consoleCheck, bashCheck:
		default:
			return ast.WalkContinue, nil
		}
		var b strings.Builder
		for i := 0; i < fcb.Lines().Len(); i++ {
			line := fcb.Lines().At(i)
			b.Write(line.Value(source))
		}
		res = append(res, block{
			kind:    kind,
			content: b.String(),
			line:    bytes.Count(source[:fcb.Info.Segment.Start], []byte("\n")) + 1,
		})
		return ast.WalkContinue, nil
	})
	return res
}
