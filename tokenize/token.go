// Package tokenize scans raw thread-page HTML into a flat stream of typed
// field tokens.
//
// The backend that renders these pages emits markup that is non-standard,
// inconsistent, and frequently missing fields, so no structural parse can
// be trusted. Instead every registered pattern runs independently over the
// whole document: a missing field yields zero matches for that kind and
// nothing else breaks. The patterns are fast but brittle; changing one can
// break extraction in a hurry.
package tokenize

import (
	"fmt"
	"regexp"
)

// Kind identifies which field a token carries.
type Kind int

const (
	MessageID Kind = iota
	MessageTitle
	MessageNum
	MessageText
	MessageDate
	MessageParent
	AuthorAvatar
	AuthorCharter
	AuthorJoinDate
	AuthorPosts
	AuthorID
	AuthorName
	Boundary
)

var kindNames = map[Kind]string{
	MessageID:      "message_id",
	MessageTitle:   "message_title",
	MessageNum:     "message_num",
	MessageText:    "message_text",
	MessageDate:    "message_date",
	MessageParent:  "message_parent",
	AuthorAvatar:   "author_avatar",
	AuthorCharter:  "author_charter",
	AuthorJoinDate: "author_join_date",
	AuthorPosts:    "author_posts",
	AuthorID:       "author_id",
	AuthorName:     "author_name",
	Boundary:       "boundary",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Token is one extracted datum: which field it is, the captured text, and
// where in the document the match began. Tokens are immutable and are
// produced, and must be consumed, in ascending Offset order.
type Token struct {
	Kind    Kind
	Payload string // Captured substring; empty for Boundary
	Offset  int    // Byte position of the match in the source document
}

// String renders the token for diagnostics, payload truncated to 60 runes.
func (t Token) String() string {
	payload := t.Payload
	if r := []rune(payload); len(r) > 60 {
		payload = string(r[:60])
	}
	return fmt.Sprintf("KIND: %s\nDATA: %s\nPOS:  %d\n", t.Kind, payload, t.Offset)
}

// rule pairs a token kind with the pattern that extracts it. Each pattern
// captures at most one group; Boundary captures nothing.
type rule struct {
	kind    Kind
	pattern *regexp.Regexp
}

// catalogue holds every extraction rule, in registration order. Offset ties
// during sorting are broken by this order. It is data, not control flow:
// adding a field means adding a row here and a case to the reassembler.
var catalogue = []rule{
	{MessageID, regexp.MustCompile(`a name="(\d+)"`)},
	{MessageTitle, regexp.MustCompile(`<strong>.*?"(.*?)"</strong>`)},
	{MessageNum, regexp.MustCompile(`<strong>(\d+).*?".*?"</strong>`)},
	{MessageText, regexp.MustCompile(`(?s)<p class="dcmessage">(.*?)</p>`)},
	{MessageDate, regexp.MustCompile(`class="dcdate">(.*?)<`)},
	{MessageParent, regexp.MustCompile(`Reply # (\d+)`)},
	{AuthorAvatar, regexp.MustCompile(`src="(.*?)" height="60"`)},
	{AuthorCharter, regexp.MustCompile(`class="dcauthorinfo">(Charter member)<`)},
	{AuthorJoinDate, regexp.MustCompile(`class="dcauthorinfo">Member since (.*?)<`)},
	{AuthorPosts, regexp.MustCompile(`class="dcauthorinfo">.*?(\d+) post`)},
	{AuthorID, regexp.MustCompile(`user_profiles&u_id=(.*?)"\s*?class`)},
	{AuthorName, regexp.MustCompile(`class="dcauthorlink">(.*?)<`)},
	{Boundary, regexp.MustCompile(`Printer-friendly copy`)},
}
