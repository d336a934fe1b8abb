package model

// Role is the author of a conversation turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one message in a conversation.
type Turn struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Query is the read-only input of one pipeline run.
type Query struct {
	Text string
	// History holds the turns that precede Text.
	History []Turn
}

// CloneTurns returns a copy of turns that shares no backing array.
func CloneTurns(turns []Turn) []Turn {
	if turns == nil {
		return []Turn{}
	}
	out := make([]Turn, len(turns))
	copy(out, turns)
	return out
}

// LastTurns returns at most n trailing turns. n <= 0 means all.
func LastTurns(turns []Turn, n int) []Turn {
	if n <= 0 || len(turns) <= n {
		return turns
	}
	return turns[len(turns)-n:]
}
