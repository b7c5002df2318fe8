package query

import (
	"reflect"
	"testing"
)

func TestSplitTerms(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"whitespace only", "   \t ", nil},
		{"single word", "login", []string{"login"}},
		{"multiple words", "login page", []string{"login", "page"}},
		{"quoted phrase stays whole", `Title:contains:"login page"`, []string{`Title:contains:"login page"`}},
		{"quoted phrase plus word", `"login page" done`, []string{`"login page"`, "done"}},
		{"clause and bare word", "status:equals:done auth", []string{"status:equals:done", "auth"}},
		{"collapsed whitespace", "a \t b\n c", []string{"a", "b", "c"}},
		{"quoted list with spaces", `status:in:"In Progress",Done`, []string{`status:in:"In Progress",Done`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitTerms(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitTerms(%q) = %#v, want %#v", tt.input, got, tt.want)
			}
		})
	}
}

func TestSplitValueList(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"single item", "Todo", []string{"Todo"}},
		{"two items", "Todo,Done", []string{"Todo", "Done"}},
		{"trims spaces", " Todo , Done ", []string{"Todo", "Done"}},
		{"quoted comma protected", `"In Progress",(empty)`, []string{"In Progress", "(empty)"}},
		{"quoted item with comma inside", `"a,b",c`, []string{"a,b", "c"}},
		{"trailing comma", "a,b,", []string{"a", "b"}},
		{"sentinel kept verbatim", "A,(empty)", []string{"A", "(empty)"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitValueList(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitValueList(%q) = %#v, want %#v", tt.input, got, tt.want)
			}
		})
	}
}

func TestUnquote(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{`"login page"`, "login page"},
		{"plain", "plain"},
		{`"unbalanced`, `"unbalanced`},
		{`""`, ""},
		{`"`, `"`},
	}

	for _, tt := range tests {
		if got := Unquote(tt.input); got != tt.want {
			t.Errorf("Unquote(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
