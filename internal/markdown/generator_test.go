package markdown

import (
	"strings"
	"testing"

	"github.com/mithrel/readmekit/pkg/api"
)

func TestGenerateHeaderLevels(t *testing.T) {
	cases := []struct {
		level int
		want  string
	}{
		{0, "# Title\n\n"},
		{1, "# Title\n\n"},
		{3, "### Title\n\n"},
		{6, "###### Title\n\n"},
		{9, "###### Title\n\n"},
	}
	for _, tc := range cases {
		got := Generate([]api.Element{{Kind: api.KindHeader, Text: "Title", Level: tc.level}})
		if got != tc.want {
			t.Errorf("level %d: got %q, want %q", tc.level, got, tc.want)
		}
	}
}

func TestGenerateDividerStyles(t *testing.T) {
	cases := []struct {
		style string
		want  string
	}{
		{"", "---\n\n"},
		{"line", "---\n\n"},
		{"dots", "<div align=\"center\">• • •</div>\n\n"},
		{"asterisks", "***\n\n"},
	}
	for _, tc := range cases {
		got := Generate([]api.Element{{Kind: api.KindDivider, Style: tc.style}})
		if got != tc.want {
			t.Errorf("style %q: got %q, want %q", tc.style, got, tc.want)
		}
	}
}

func TestGenerateTableShape(t *testing.T) {
	got := Generate([]api.Element{{
		Kind:    api.KindTable,
		Columns: []string{"Feature", "Status"},
		Rows: [][]string{
			{"Tables", "done"},
			{"Short row"},
			{"Long", "row", "extra"},
		},
	}})

	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	want := []string{
		"| Feature | Status |",
		"| --- | --- |",
		"| Tables | done |",
		"| Short row |  |",
		"| Long | row |",
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d:\n%s", len(lines), len(want), got)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d: got %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestGenerateUnknownKindYieldsNothing(t *testing.T) {
	got := Generate([]api.Element{
		{Kind: api.KindText, Text: "before"},
		{Kind: api.Kind("hologram")},
		{Kind: api.KindText, Text: "after"},
	})
	if got != "before\n\nafter\n\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	elements := []api.Element{
		{Kind: api.KindBanner, Title: "readmekit", Subtitle: "README builder"},
		{Kind: api.KindTechStack, Items: []string{"Go", "SQLite"}},
		{Kind: api.KindCodeBlock, Language: "go", Code: "fmt.Println(\"hi\")"},
		{Kind: api.KindDivider, Style: "dots"},
	}
	first := Generate(elements)
	for i := 0; i < 5; i++ {
		if again := Generate(elements); again != first {
			t.Fatalf("run %d differs:\n%q\nvs\n%q", i, again, first)
		}
	}
}

func TestGenerateBadgeEscaping(t *testing.T) {
	got := Generate([]api.Element{{
		Kind:    api.KindBadge,
		Label:   "build status",
		Message: "passing-now",
		Color:   "green",
	}})
	want := "![build status](https://img.shields.io/badge/build_status-passing--now-green)\n\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestGenerateQuoteMultiline(t *testing.T) {
	got := Generate([]api.Element{{Kind: api.KindQuote, Text: "first\nsecond"}})
	if got != "> first\n> second\n\n" {
		t.Fatalf("got %q", got)
	}
}

func TestGenerateListOrdering(t *testing.T) {
	items := []string{"clone", "build", "run"}
	unordered := Generate([]api.Element{{Kind: api.KindList, Items: items}})
	if unordered != "- clone\n- build\n- run\n\n" {
		t.Fatalf("unordered: got %q", unordered)
	}
	ordered := Generate([]api.Element{{Kind: api.KindList, Items: items, Ordered: true}})
	if ordered != "1. clone\n2. build\n3. run\n\n" {
		t.Fatalf("ordered: got %q", ordered)
	}
}

func TestGenerateInstallationBlock(t *testing.T) {
	got := Generate([]api.Element{{
		Kind:  api.KindInstallation,
		Items: []string{"git clone https://example.com/x.git", "make install"},
	}})
	want := "## Installation\n\n```bash\ngit clone https://example.com/x.git\nmake install\n```\n\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestGenerateImageWidthSwitchesToHTML(t *testing.T) {
	plain := Generate([]api.Element{{Kind: api.KindImage, URL: "https://x/y.png", Alt: "demo"}})
	if plain != "![demo](https://x/y.png)\n\n" {
		t.Fatalf("plain: got %q", plain)
	}
	sized := Generate([]api.Element{{Kind: api.KindImage, URL: "https://x/y.png", Alt: "demo", Width: 400}})
	if sized != "<img src=\"https://x/y.png\" alt=\"demo\" width=\"400\">\n\n" {
		t.Fatalf("sized: got %q", sized)
	}
}
