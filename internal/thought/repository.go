package thought

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ferdiebergado/deepthoughts/internal/platform/db"
)

var (
	ErrNotFound    = errors.New("thought not found")
	ErrQueryFailed = errors.New("thought repository: query failed")
)

type Repository interface {
	Create(ctx context.Context, params CreateParams) (*Thought, error)
	List(ctx context.Context, username string) ([]Thought, error)
	Find(ctx context.Context, thoughtID string) (*Thought, error)
	AddReaction(ctx context.Context, thoughtID string, reaction Reaction) (*Thought, error)
}

type repository struct {
	db db.Executor
}

var _ Repository = (*repository)(nil)

func NewRepository(dbExec db.Executor) Repository {
	return &repository{db: dbExec}
}

func (r *repository) exec(ctx context.Context) db.Executor {
	return db.ExecutorFromContext(ctx, r.db)
}

const QueryThoughtCreate = `
INSERT INTO thoughts (thought_text, username, user_id)
VALUES ($1, $2, $3)
RETURNING id, thought_text, username, user_id, reactions, created_at`

func (r *repository) Create(ctx context.Context, params CreateParams) (*Thought, error) {
	row := r.exec(ctx).QueryRowContext(ctx, QueryThoughtCreate, params.ThoughtText, params.Username, params.UserID)
	t, err := scanThought(row)
	if err != nil {
		return nil, fmt.Errorf("%w: create thought for %s: %w", ErrQueryFailed, params.Username, err)
	}
	return t, nil
}

const QueryThoughtList = `
SELECT id, thought_text, username, user_id, reactions, created_at
FROM thoughts
ORDER BY created_at DESC, id`

const QueryThoughtListByUsername = `
SELECT id, thought_text, username, user_id, reactions, created_at
FROM thoughts
WHERE username = $1
ORDER BY created_at DESC, id`

// List returns the thoughts of username, or of everyone when username is
// empty, newest first.
func (r *repository) List(ctx context.Context, username string) ([]Thought, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if username == "" {
		rows, err = r.exec(ctx).QueryContext(ctx, QueryThoughtList)
	} else {
		rows, err = r.exec(ctx).QueryContext(ctx, QueryThoughtListByUsername, username)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: list thoughts: %w", ErrQueryFailed, err)
	}
	defer rows.Close()

	thoughts := make([]Thought, 0)
	for rows.Next() {
		t, err := scanThought(rows)
		if err != nil {
			return nil, fmt.Errorf("thought repository: scan row: %w", err)
		}
		thoughts = append(thoughts, *t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("thought repository: iterate over thought rows: %w", err)
	}

	return thoughts, nil
}

const QueryThoughtFind = `
SELECT id, thought_text, username, user_id, reactions, created_at
FROM thoughts
WHERE id = $1`

func (r *repository) Find(ctx context.Context, thoughtID string) (*Thought, error) {
	t, err := scanThought(r.exec(ctx).QueryRowContext(ctx, QueryThoughtFind, thoughtID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || db.IsInvalidText(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: find thought %s: %w", ErrQueryFailed, thoughtID, err)
	}
	return t, nil
}

// Appends to the reactions array in a single statement.
const QueryReactionAdd = `
UPDATE thoughts
SET reactions = reactions || $2::jsonb
WHERE id = $1
RETURNING id, thought_text, username, user_id, reactions, created_at`

func (r *repository) AddReaction(ctx context.Context, thoughtID string, reaction Reaction) (*Thought, error) {
	doc, err := json.Marshal([]Reaction{reaction})
	if err != nil {
		return nil, fmt.Errorf("encode reaction: %w", err)
	}

	t, err := scanThought(r.exec(ctx).QueryRowContext(ctx, QueryReactionAdd, thoughtID, string(doc)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || db.IsInvalidText(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: add reaction to %s: %w", ErrQueryFailed, thoughtID, err)
	}
	return t, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanThought(row scanner) (*Thought, error) {
	var (
		t         Thought
		reactions []byte
	)
	if err := row.Scan(&t.ID, &t.ThoughtText, &t.Username, &t.UserID, &reactions, &t.CreatedAt); err != nil {
		return nil, err
	}

	t.Reactions = make([]Reaction, 0)
	if len(reactions) > 0 {
		if err := json.Unmarshal(reactions, &t.Reactions); err != nil {
			return nil, fmt.Errorf("decode reactions of %s: %w", t.ID, err)
		}
	}

	return &t, nil
}
