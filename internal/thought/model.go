package thought

import "time"

type Thought struct {
	ID          string
	ThoughtText string
	Username    string
	UserID      string
	Reactions   []Reaction
	CreatedAt   time.Time
}

func (t *Thought) ReactionCount() int {
	return len(t.Reactions)
}

// Reaction is stored as an element of the thought's reactions document.
type Reaction struct {
	ID           string    `json:"_id"`
	ReactionBody string    `json:"reactionBody"`
	Username     string    `json:"username"`
	CreatedAt    time.Time `json:"createdAt"`
}

type CreateParams struct {
	ThoughtText string `json:"thoughtText" validate:"required,max=280"`
	Username    string `json:"username" validate:"required"`
	UserID      string `json:"userId" validate:"required"`
}

type ReactionParams struct {
	ThoughtID    string `json:"thoughtId" validate:"required"`
	ReactionBody string `json:"reactionBody" validate:"required,max=280"`
	Username     string `json:"username" validate:"required"`
}
