package commands

import (
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		line   string
		want   []string
		wantOK bool
	}{
		{"cmd set amplitude 12", []string{"set", "amplitude", "12"}, true},
		{"cmd   guides --hide ", []string{"guides", "--hide"}, true},
		{"cmd ", nil, true},
		{"hello", nil, false},
		{"Cmd set x 1", nil, false},
	}
	for _, tt := range tests {
		got, ok := Parse(tt.line)
		if ok != tt.wantOK {
			t.Errorf("Parse(%q): expected ok=%v, got %v", tt.line, tt.wantOK, ok)
			continue
		}
		if strings.Join(got, "|") != strings.Join(tt.want, "|") {
			t.Errorf("Parse(%q): expected %v, got %v", tt.line, tt.want, got)
		}
	}
}

func TestExecute(t *testing.T) {
	r := NewRegistry()
	fs := NewFlagSet("echo")
	loud := fs.Bool("loud", false, "")
	var got []string
	r.Register("echo", "repeat args", fs, func() error {
		got = fs.Args()
		if *loud {
			got = append(got, "!")
		}
		return nil
	})

	if err := r.Execute([]string{"echo", "--loud", "a", "-3"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Join(got, " ") != "a -3 !" {
		t.Errorf("expected [a -3 !], got %v", got)
	}
	if err := r.Execute(nil); err == nil {
		t.Error("expected error for missing subcommand")
	}
	if err := r.Execute([]string{"nope"}); err == nil {
		t.Error("expected error for unknown command")
	}
	if err := r.Execute([]string{"echo", "--bogus"}); err == nil {
		t.Error("expected flag parse error")
	}
}

func TestToggle(t *testing.T) {
	r := NewRegistry()
	state := true
	r.Toggle("guides", "orbit guides", func(v bool) { state = v })

	if err := r.Execute([]string{"guides", "--hide"}); err != nil || state {
		t.Fatalf("expected hidden, err=%v state=%v", err, state)
	}
	if err := r.Execute([]string{"guides", "--show"}); err != nil || !state {
		t.Fatalf("expected shown, err=%v state=%v", err, state)
	}
	if err := r.Execute([]string{"guides"}); err == nil {
		t.Error("expected error without a flag")
	}
	if err := r.Execute([]string{"guides", "--show", "--hide"}); err == nil {
		t.Error("expected error with both flags")
	}
}

func TestNamesAndHelp(t *testing.T) {
	r := NewRegistry()
	r.Register("b", "second", NewFlagSet("b"), func() error { return nil })
	r.Register("a", "first", NewFlagSet("a"), func() error { return nil })
	if got := strings.Join(r.Names(), ","); got != "a,b" {
		t.Errorf("expected a,b got %s", got)
	}
	help := r.Help()
	if len(help) != 2 || help[0] != "a: first" {
		t.Errorf("unexpected help %v", help)
	}
}
