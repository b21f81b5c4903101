package markdown

import (
	"reflect"
	"regexp"
	"strings"
	"testing"
)

func TestHeadingID(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"simple", "Hello World", "hello-world"},
		{"already lowercase", "install", "install"},
		{"punctuation stripped", "What's New?", "whats-new"},
		{"parens and dots", "v1.2 (beta)", "v12-beta"},
		{"whitespace runs collapse", "a \t  b", "a-b"},
		{"hyphen runs collapse", "a -- b", "a-b"},
		{"leading and trailing hyphens stripped", "- dash -", "dash"},
		{"underscores survive", "snake_case name", "snake_case-name"},
		{"only punctuation", "?!.,", ""},
		{"whitespace only", "   ", ""},
		{"mixed case with digits", "Step 2 Of 3", "step-2-of-3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HeadingID(tt.text); got != tt.want {
				t.Errorf("HeadingID(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

// Derived ids contain only lowercase word characters and hyphens and never
// start or end with a hyphen.
func TestHeadingIDShape(t *testing.T) {
	shape := regexp.MustCompile(`^[a-z0-9_]+(-[a-z0-9_]+)*$`)

	inputs := []string{
		"Hello World",
		"  Trim me  ",
		"CAPS AND 123",
		"hy-phen-ated",
		"symbols #$%& here",
	}

	for _, text := range inputs {
		id := HeadingID(text)
		if id == "" {
			t.Errorf("HeadingID(%q) unexpectedly empty", text)
			continue
		}
		if !shape.MatchString(id) {
			t.Errorf("HeadingID(%q) = %q, violates id shape", text, id)
		}
	}
}

func TestExtractHeadings(t *testing.T) {
	doc := strings.Join([]string{
		"# Getting Started",
		"",
		"intro text",
		"## Install",
		"### From Source",
		"#### Too Deep",
		"body",
	}, "\n")

	want := []HeadingEntry{
		{Text: "Getting Started", Level: 1, ID: "getting-started"},
		{Text: "Install", Level: 2, ID: "install"},
		{Text: "From Source", Level: 3, ID: "from-source"},
	}

	if got := ExtractHeadings(doc); !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractHeadings = %#v, want %#v", got, want)
	}
}

func TestExtractHeadingsDuplicateIDs(t *testing.T) {
	got := ExtractHeadings("# Hello World\n# Hello World\n")

	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d: %#v", len(got), got)
	}
	if got[0].ID != "hello-world" || got[1].ID != "hello-world" {
		t.Errorf("ids = %q, %q; want duplicates preserved", got[0].ID, got[1].ID)
	}
}

func TestExtractHeadingsSkipsFencedCode(t *testing.T) {
	doc := strings.Join([]string{
		"# Real",
		"```sh",
		"# not a heading, a shell comment",
		"```",
		"## Also Real",
	}, "\n")

	got := ExtractHeadings(doc)
	want := []HeadingEntry{
		{Text: "Real", Level: 1, ID: "real"},
		{Text: "Also Real", Level: 2, ID: "also-real"},
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractHeadings = %#v, want %#v", got, want)
	}
}

func TestExtractHeadingsIgnoresMalformed(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"no space after hashes", "#Title\n"},
		{"hashes only", "##\n"},
		{"hashes then spaces", "##   \n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractHeadings(tt.doc); len(got) != 0 {
				t.Errorf("ExtractHeadings(%q) = %#v, want none", tt.doc, got)
			}
		})
	}
}
