package ui

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

func newPlainUI(input string) (*UI, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return New(strings.NewReader(input), &out, &errOut, ColorNever, true), &out, &errOut
}

func TestPromptReadsLinesAndEchoesLabel(t *testing.T) {
	u, out, _ := newPlainUI("Senior Go Dev\r\nlast line")

	got, err := u.Prompt("Title: ")
	if err != nil {
		t.Fatalf("Prompt() error = %v", err)
	}
	if got != "Senior Go Dev" {
		t.Fatalf("Prompt() = %q", got)
	}

	got, err = u.Prompt("Location: ")
	if err != nil {
		t.Fatalf("Prompt() final line error = %v", err)
	}
	if got != "last line" {
		t.Fatalf("Prompt() final line = %q", got)
	}

	if _, err := u.Prompt("More: "); !errors.Is(err, io.EOF) {
		t.Fatalf("Prompt() at end = %v, want io.EOF", err)
	}
	if out.String() != "Title: Location: More: " {
		t.Fatalf("prompts written = %q", out.String())
	}
}

func TestPromptWordAndInt(t *testing.T) {
	u, _, _ := newPlainUI("  alice extra\n 7 \nabc\n")

	word, err := u.PromptWord("Username: ")
	if err != nil || word != "alice" {
		t.Fatalf("PromptWord() = %q, %v", word, err)
	}

	n, err := u.PromptInt("Choice: ")
	if err != nil || n != 7 {
		t.Fatalf("PromptInt() = %d, %v", n, err)
	}

	if _, err := u.PromptInt("Choice: "); !errors.Is(err, ErrNotNumber) {
		t.Fatalf("PromptInt(abc) error = %v, want ErrNotNumber", err)
	}
}

func TestMessagesGoToStreams(t *testing.T) {
	u, out, errOut := newPlainUI("")

	u.Successf("Registered successfully!")
	u.Infof("Logged out.")
	u.Errorf("Registration failed: %s\n", "boom")

	if out.String() != "Registered successfully!\nLogged out.\n" {
		t.Fatalf("stdout = %q", out.String())
	}
	if errOut.String() != "Registration failed: boom\n" {
		t.Fatalf("stderr = %q", errOut.String())
	}
}

func TestNormalizeColorMode(t *testing.T) {
	cases := map[string]ColorMode{
		"always": ColorAlways,
		" NEVER": ColorNever,
		"":       ColorAuto,
		"bogus":  ColorAuto,
	}
	for input, want := range cases {
		if got := NormalizeColorMode(input); got != want {
			t.Fatalf("NormalizeColorMode(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestPromptWordSkipsBlankLines(t *testing.T) {
	u, out, _ := newPlainUI("1\n\n   \nalice\n\n2\n")

	n, err := u.PromptInt("Choice: ")
	if err != nil || n != 1 {
		t.Fatalf("PromptInt() = %d, %v", n, err)
	}
	word, err := u.PromptWord("Username: ")
	if err != nil || word != "alice" {
		t.Fatalf("PromptWord() = %q, %v", word, err)
	}
	n, err = u.PromptInt("User Type: ")
	if err != nil || n != 2 {
		t.Fatalf("PromptInt() after blank line = %d, %v", n, err)
	}
	if out.String() != "Choice: Username: User Type: " {
		t.Fatalf("prompts written = %q", out.String())
	}

	if _, err := u.PromptWord("Password: "); !errors.Is(err, io.EOF) {
		t.Fatalf("PromptWord() at end = %v, want io.EOF", err)
	}
}
