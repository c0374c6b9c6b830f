package parser

import "time"

// DuplicatePolicy decides what happens when the same simple field shows up
// more than once within a single post group. The backend should emit each
// field once per post, but it cannot be trusted to.
type DuplicatePolicy int

const (
	// LastWins lets a later token overwrite an earlier value.
	LastWins DuplicatePolicy = iota
	// FirstWins keeps the first value and ignores repeats.
	FirstWins
)

const (
	// defaultTimeOffset corrects the board's rendered timestamps, which are
	// skewed by a constant amount. Empirically 1h2m37s.
	defaultTimeOffset = 3757 * time.Second

	// defaultReplyURLTemplate formats a deep link from forum id, topic id,
	// and message id, in that order.
	defaultReplyURLTemplate = "http://board.okayplayer.com/okp.php?az=show_topic&forum=%d&topic_id=%d#%d"
)

// Config carries the parser's external collaborators. Passed by value at
// construction; there is no process-wide state.
type Config struct {
	// ReplyURLTemplate builds each reply's deep link. Must contain three
	// integer verbs: forum id, topic id, message id. Empty means the
	// default template.
	ReplyURLTemplate string

	// TimeOffset is added to every parsed message date.
	TimeOffset time.Duration

	// Duplicates selects the repeated-field policy.
	Duplicates DuplicatePolicy

	// SkipMalformed drops a post whose captured values fail to parse
	// instead of aborting the whole parse.
	SkipMalformed bool
}

// DefaultConfig returns the configuration matching the live board.
func DefaultConfig() Config {
	return Config{
		ReplyURLTemplate: defaultReplyURLTemplate,
		TimeOffset:       defaultTimeOffset,
		Duplicates:       LastWins,
		SkipMalformed:    false,
	}
}
