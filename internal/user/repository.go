package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ferdiebergado/deepthoughts/internal/platform/db"
)

var (
	ErrNotFound    = errors.New("user not found")
	ErrDuplicate   = errors.New("user already exists")
	ErrQueryFailed = errors.New("user repository: query failed")
)

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

const QueryUserCreate = `
INSERT INTO users (username, email, password_hash)
VALUES ($1, $2, $3)
RETURNING id, username, email, password_hash, created_at, updated_at`

func (r *repository) Create(ctx context.Context, params CreateParams) (*User, error) {
	row := r.exec(ctx).QueryRowContext(ctx, QueryUserCreate, params.Username, params.Email, params.PasswordHash)
	u, err := scanUser(row)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return nil, fmt.Errorf("%w: %s", ErrDuplicate, db.ConstraintName(err))
		}
		return nil, fmt.Errorf("%w: create user %s: %w", ErrQueryFailed, params.Username, err)
	}
	return u, nil
}

const QueryUserList = `
SELECT id, username, email, password_hash, created_at, updated_at
FROM users
ORDER BY created_at, id`

func (r *repository) List(ctx context.Context) ([]User, error) {
	rows, err := r.exec(ctx).QueryContext(ctx, QueryUserList)
	if err != nil {
		return nil, fmt.Errorf("%w: list users: %w", ErrQueryFailed, err)
	}
	return collectUsers(rows)
}

const QueryUserFind = `
SELECT id, username, email, password_hash, created_at, updated_at
FROM users
WHERE id = $1`

func (r *repository) Find(ctx context.Context, userID string) (*User, error) {
	return r.findOne(ctx, QueryUserFind, userID)
}

const QueryUserFindByUsername = `
SELECT id, username, email, password_hash, created_at, updated_at
FROM users
WHERE username = $1`

func (r *repository) FindByUsername(ctx context.Context, username string) (*User, error) {
	return r.findOne(ctx, QueryUserFindByUsername, username)
}

const QueryUserFindByEmail = `
SELECT id, username, email, password_hash, created_at, updated_at
FROM users
WHERE email = $1`

func (r *repository) FindByEmail(ctx context.Context, email string) (*User, error) {
	return r.findOne(ctx, QueryUserFindByEmail, email)
}

func (r *repository) findOne(ctx context.Context, query, arg string) (*User, error) {
	u, err := scanUser(r.exec(ctx).QueryRowContext(ctx, query, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || db.IsInvalidText(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: find user %s: %w", ErrQueryFailed, arg, err)
	}
	return u, nil
}

const QueryFriendList = `
SELECT u.id, u.username, u.email, u.password_hash, u.created_at, u.updated_at
FROM friendships f
JOIN users u ON u.id = f.friend_id
WHERE f.user_id = $1
ORDER BY f.created_at, u.id`

func (r *repository) ListFriends(ctx context.Context, userID string) ([]User, error) {
	rows, err := r.exec(ctx).QueryContext(ctx, QueryFriendList, userID)
	if err != nil {
		if db.IsInvalidText(err) {
			return []User{}, nil
		}
		return nil, fmt.Errorf("%w: list friends of %s: %w", ErrQueryFailed, userID, err)
	}
	return collectUsers(rows)
}

const QueryFriendCount = "SELECT COUNT(*) FROM friendships WHERE user_id = $1"

func (r *repository) CountFriends(ctx context.Context, userID string) (int, error) {
	var count int
	if err := r.exec(ctx).QueryRowContext(ctx, QueryFriendCount, userID).Scan(&count); err != nil {
		if db.IsInvalidText(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("%w: count friends of %s: %w", ErrQueryFailed, userID, err)
	}
	return count, nil
}

// Adding an existing friend is a no-op.
const QueryFriendAdd = `
INSERT INTO friendships (user_id, friend_id)
VALUES ($1, $2)
ON CONFLICT (user_id, friend_id) DO NOTHING`

func (r *repository) AddFriend(ctx context.Context, userID, friendID string) error {
	if _, err := r.exec(ctx).ExecContext(ctx, QueryFriendAdd, userID, friendID); err != nil {
		if db.IsForeignKeyViolation(err) || db.IsInvalidText(err) {
			return ErrNotFound
		}
		return fmt.Errorf("%w: add friend %s to %s: %w", ErrQueryFailed, friendID, userID, err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanUser(row scanner) (*User, error) {
	var u User
	if err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}

func collectUsers(rows *sql.Rows) ([]User, error) {
	defer rows.Close()

	users := make([]User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("user repository: scan row: %w", err)
		}
		users = append(users, *u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("user repository: iterate over user rows: %w", err)
	}

	return users, nil
}
