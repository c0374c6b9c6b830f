// Package thread contains the core domain types for parsed Okayplayer board threads.
package thread

import (
	"fmt"
	"strings"
	"time"

	"okayplayer-parser/htmltext"
)

// Thread represents one parsed thread page.
type Thread struct {
	Title   string   `json:"title"`    // Thread title from the page header
	ForumID int      `json:"forum_id"` // Forum the thread lives in
	TopicID int      `json:"topic_id"` // Topic id within the forum
	Replies []*Reply `json:"replies"`  // Replies in page order; Replies[0] is the root post
}

// Reply represents a single reply in a thread. Optional fields are pointers:
// nil means the corresponding datum never appeared in the source markup,
// which happens routinely on this backend.
type Reply struct {
	ForumID         int        `json:"forum_id"`
	TopicID         int        `json:"topic_id"`
	MessageID       *int       `json:"message_id,omitempty"`
	MessageTitle    *string    `json:"message_title,omitempty"`
	MessageParent   *int       `json:"message_parent,omitempty"` // -1 marks the root reply
	MessageText     string     `json:"message_text"`             // Raw HTML fragments, concatenated
	MessageDate     *time.Time `json:"message_date,omitempty"`   // Offset-corrected
	MessageNum      *int       `json:"message_num,omitempty"`    // Sequence position; root is forced to 0
	AuthorName      *string    `json:"author_name,omitempty"`
	AuthorAvatar    *string    `json:"author_avatar,omitempty"` // Absolute image URL, lower-cased
	AuthorID        *int       `json:"author_id,omitempty"`
	AuthorIsCharter bool       `json:"author_is_charter"` // Mutually exclusive with AuthorJoinDate
	AuthorJoinDate  *time.Time `json:"author_join_date,omitempty"`
	AuthorNumPosts  int        `json:"author_num_posts"`
	URL             string     `json:"url"` // Deep link to this reply
}

// PlainText returns the message body with markup stripped and entities
// decoded, suitable for terminal display.
func (r *Reply) PlainText() string {
	return htmltext.Flatten(r.MessageText)
}

// String renders a fixed subset of fields for diagnostics and logging.
// Values are truncated to 40 characters; this is not a data contract.
func (r *Reply) String() string {
	var b strings.Builder
	row := func(name string, value any) {
		fmt.Fprintf(&b, "%-20s: %s\n", name, truncate(renderValue(value), 40))
	}
	row("forum_id", r.ForumID)
	row("topic_id", r.TopicID)
	row("message_id", r.MessageID)
	row("message_date", r.MessageDate)
	row("message_num", r.MessageNum)
	row("message_parent", r.MessageParent)
	row("message_title", r.MessageTitle)
	row("message_text", r.MessageText)
	row("author_name", r.AuthorName)
	row("author_id", r.AuthorID)
	row("author_join_date", r.AuthorJoinDate)
	row("author_num_posts", r.AuthorNumPosts)
	row("author_is_charter", r.AuthorIsCharter)
	return b.String()
}

func renderValue(v any) string {
	switch t := v.(type) {
	case *int:
		if t == nil {
			return "-"
		}
		return fmt.Sprint(*t)
	case *string:
		if t == nil {
			return "-"
		}
		return *t
	case *time.Time:
		if t == nil {
			return "-"
		}
		return t.Format("2006-01-02 15:04")
	default:
		return fmt.Sprint(v)
	}
}

// truncate limits s to n runes; cutting on bytes could split a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
