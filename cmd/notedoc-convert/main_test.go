package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestRun(t *testing.T) {
	tests := []struct {
		command  string
		input    string
		expected string
		wantErr  bool
	}{
		{
			command:  "to-doc",
			input:    "# Title\n",
			expected: `{"type":"doc","content":[{"type":"heading","attrs":{"level":1},"content":[{"type":"text","text":"Title"}]}]}` + "\n",
		},
		{
			command:  "to-markup",
			input:    `{"type":"doc","content":[{"type":"heading","attrs":{"level":1},"content":[{"type":"text","text":"Title"}]}]}`,
			expected: "# Title\n",
		},
		{
			command:  "to-text",
			input:    `{"type":"doc","content":[{"type":"paragraph","content":[{"type":"text","text":"a"}]},{"type":"paragraph","content":[{"type":"text","text":"b"}]}]}`,
			expected: "a b\n",
		},
		{command: "classify", input: "- item", expected: "legacy\n"},
		{command: "c", input: `{"type":"doc","content":[]}`, expected: "doc\n"},
		{command: "stats", input: "abc def", expected: "chars=6 minutes=1\n"},
		{command: "to-doc", input: `{"type":"doc","content":[1]}`, wantErr: true},
		{command: "bogus", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.command, func(t *testing.T) {
			var out bytes.Buffer
			err := run(tt.command, strings.NewReader(tt.input), &out)
			if (err != nil) != tt.wantErr {
				t.Fatalf("run() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if out.String() != tt.expected {
				t.Errorf("run(%s) mismatch.\nExpected:\n%s\n\nGot:\n%s", tt.command, tt.expected, out.String())
			}
		})
	}
}

func TestRunPipeline(t *testing.T) {
	var tree bytes.Buffer
	if err := run("to-doc", strings.NewReader("- a\n- **b**"), &tree); err != nil {
		t.Fatalf("to-doc failed: %v", err)
	}

	var markup bytes.Buffer
	if err := run("to-markup", strings.NewReader(tree.String()), &markup); err != nil {
		t.Fatalf("to-markup failed: %v", err)
	}

	if expected := "- a\n- **b**\n"; markup.String() != expected {
		t.Errorf("Pipeline mismatch.\nExpected:\n%s\n\nGot:\n%s", expected, markup.String())
	}
}
