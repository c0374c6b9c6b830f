package tokenize

import "sort"

// Tokenize runs every catalogue pattern over the document and returns all
// matches as a single stream sorted by ascending source offset. Ties keep
// catalogue order. It never fails: hopelessly malformed input just yields
// fewer tokens, or none.
func Tokenize(document string) []Token {
	var tokens []Token
	for _, r := range catalogue {
		for _, m := range r.pattern.FindAllStringSubmatchIndex(document, -1) {
			var payload string
			// m[2], m[3] bound the first capture group when the pattern
			// has one; Boundary has none.
			if len(m) >= 4 && m[2] >= 0 {
				payload = document[m[2]:m[3]]
			}
			tokens = append(tokens, Token{
				Kind:    r.kind,
				Payload: payload,
				Offset:  m[0],
			})
		}
	}

	// Back to HTML source order, so the reassembler can chunk the stream
	// into posts.
	sort.SliceStable(tokens, func(i, j int) bool {
		return tokens[i].Offset < tokens[j].Offset
	})
	return tokens
}
