package thread

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"
)

func intp(n int) *int { return &n }

func strp(s string) *string { return &s }

func timep(t time.Time) *time.Time { return &t }

func TestReplyString(t *testing.T) {
	r := &Reply{
		ForumID:        8,
		TopicID:        14073,
		MessageID:      intp(12),
		MessageTitle:   strp("RE: Season Opener"),
		MessageText:    strings.Repeat("long body ", 20),
		MessageNum:     intp(1),
		MessageParent:  intp(0),
		AuthorName:     strp("hoopfan"),
		AuthorNumPosts: 120,
	}
	s := r.String()

	if !strings.Contains(s, "message_id          : 12") {
		t.Errorf("String() missing message id row:\n%s", s)
	}
	if !strings.Contains(s, "author_name         : hoopfan") {
		t.Errorf("String() missing author row:\n%s", s)
	}
	// Unset optionals render as a dash, never as a pointer value.
	if !strings.Contains(s, "author_id           : -") {
		t.Errorf("String() should render unset author_id as -:\n%s", s)
	}
	if strings.Contains(s, "0x") {
		t.Errorf("String() leaked a pointer:\n%s", s)
	}
	// Long values are truncated to 40 characters.
	for _, line := range strings.Split(s, "\n") {
		if _, value, ok := strings.Cut(line, ": "); ok && len(value) > 40 {
			t.Errorf("line not truncated: %q", line)
		}
	}
}

// TestReplyStringRuneTruncation: truncation must cut on rune boundaries;
// chopping bytes would leave a torn UTF-8 sequence in the output.
func TestReplyStringRuneTruncation(t *testing.T) {
	// The 40th rune is multi-byte and sits across the 40-byte mark.
	r := &Reply{MessageText: strings.Repeat("x", 39) + "é and more"}
	s := r.String()

	want := "message_text        : " + strings.Repeat("x", 39) + "é\n"
	if !strings.Contains(s, want) {
		t.Errorf("String() = %q, want it to contain %q", s, want)
	}
	if !utf8.ValidString(s) {
		t.Errorf("String() produced invalid UTF-8: %q", s)
	}
}

func TestReplyStringDate(t *testing.T) {
	r := &Reply{
		MessageDate: timep(time.Date(2005, time.October, 16, 10, 44, 37, 0, time.UTC)),
	}
	if s := r.String(); !strings.Contains(s, "2005-10-16 10:44") {
		t.Errorf("String() missing formatted date:\n%s", s)
	}
}

func TestReplyPlainText(t *testing.T) {
	r := &Reply{MessageText: "Tip-off at <b>7:30</b>,<br>be there."}
	want := "Tip-off at 7:30,\nbe there."
	if got := r.PlainText(); got != want {
		t.Errorf("PlainText() = %q, want %q", got, want)
	}
}
