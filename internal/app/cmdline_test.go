package app

import (
	"slices"
	"testing"
)

func TestCommandLineEditing(t *testing.T) {
	c := NewCommandLine()
	for _, r := range "sve" {
		c.Insert(r, false)
	}
	c.Left()
	c.Left()
	c.Insert('a', false)
	if got := c.Text(); got != "save" {
		t.Fatalf("Text() = %q", got)
	}

	c.Insert('X', true)
	if got := c.Text(); got != "saXe" {
		t.Errorf("overwrite Text() = %q", got)
	}

	c.Backspace()
	c.Delete()
	if got := c.Text(); got != "sa" {
		t.Errorf("after delete Text() = %q", got)
	}
	if c.Cursor() != 2 {
		t.Errorf("Cursor() = %d, want 2", c.Cursor())
	}

	c.Clear()
	c.Backspace()
	c.Left()
	if c.Text() != "" || c.Cursor() != 0 {
		t.Errorf("after Clear: %q at %d", c.Text(), c.Cursor())
	}
}

func TestCommandLineHistory(t *testing.T) {
	c := NewCommandLine()
	c.Up()
	c.Down()
	if c.Text() != "" {
		t.Fatal("browsing empty history should do nothing")
	}

	c.Commit("first")
	c.Commit("")
	c.Commit("second")
	if !slices.Equal(c.History(), []string{"first", "second"}) {
		t.Fatalf("History() = %q", c.History())
	}

	c.Set("draft")
	steps := []struct {
		up   bool
		want string
	}{
		{true, "second"},
		{true, "first"},
		{true, "first"},
		{false, "second"},
		{false, "draft"},
		{false, "draft"},
	}
	for i, s := range steps {
		if s.up {
			c.Up()
		} else {
			c.Down()
		}
		if got := c.Text(); got != s.want {
			t.Errorf("step %d: Text() = %q, want %q", i, got, s.want)
		}
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		in      string
		want    []string
		wantErr bool
	}{
		{in: "", want: nil},
		{in: "a b", want: []string{"a", "b"}},
		{in: "  a\t b  ", want: []string{"a", "b"}},
		{in: `"a b" c`, want: []string{"a b", "c"}},
		{in: `""`, want: []string{""}},
		{in: `x"y z"`, want: []string{"xy z"}},
		{in: `"say \"hi\""`, want: []string{`say "hi"`}},
		{in: `"open`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := tokenize(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("tokenize(%q) error = %v", tt.in, err)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("tokenize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
