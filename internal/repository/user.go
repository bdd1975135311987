package repository

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"

	"github.com/bookhive/bookreview-service/internal/errs"
	"github.com/bookhive/bookreview-service/internal/model"
)

// CreateUser inserts the profile and the credential row in one transaction;
// profiles.id doubles as the user id.
func (r *repository) CreateUser(ctx context.Context, name, email, passwordHash string) (model.User, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return model.User{}, err
	}
	defer tx.Rollback() //nolint:errcheck

	id := uuid.New().String()

	q, args, err := qb.Insert(profilesTableName).
		Columns("id", "name").
		Values(id, name).
		ToSql()
	if err != nil {
		return model.User{}, err
	}
	if _, err := tx.ExecContext(ctx, q, args...); err != nil {
		return model.User{}, err
	}

	q, args, err = qb.Insert(usersTableName).
		Columns("id", "email", "password_hash").
		Values(id, email, passwordHash).
		ToSql()
	if err != nil {
		return model.User{}, err
	}
	if _, err := tx.ExecContext(ctx, q, args...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return model.User{}, errs.ErrUserExists
		}
		return model.User{}, err
	}

	if err := tx.Commit(); err != nil {
		return model.User{}, err
	}

	return model.User{ID: id, Email: email, Name: name, PasswordHash: passwordHash}, nil
}

func (r *repository) GetUserByEmail(ctx context.Context, email string) (model.User, error) {
	q, args, err := qb.Select("u.id", "u.email", "u.password_hash", "p.name").
		From(usersTableName + " u").
		Join(fmt.Sprintf("%s p on p.id = u.id", profilesTableName)).
		Where(sq.Eq{"u.email": email}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.User{}, err
	}

	var user model.User
	if err := r.db.GetContext(ctx, &user, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, errs.ErrNotFound
		}
		return model.User{}, err
	}
	return user, nil
}

func (r *repository) GetProfile(ctx context.Context, userID string) (model.Profile, error) {
	q, args, err := qb.Select("id", "name", "created_at").
		From(profilesTableName).
		Where(sq.Eq{"id": userID}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Profile{}, err
	}

	var profile model.Profile
	if err := r.db.GetContext(ctx, &profile, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Profile{}, errs.ErrNotFound
		}
		return model.Profile{}, err
	}
	return profile, nil
}

func (r *repository) ListUserBooks(ctx context.Context, userID string) ([]model.BookSummary, error) {
	q, args, err := qb.Select(
		bookColumns,
		"p.name as added_by_name",
		"coalesce(avg(r.rating), 0)::float8 as avg_rating",
		"count(r.id) as review_count",
	).
		From(booksTableName + " b").
		Join(fmt.Sprintf("%s p on p.id = b.added_by", profilesTableName)).
		LeftJoin(fmt.Sprintf("%s r on r.book_id = b.id", reviewsTableName)).
		Where(sq.Eq{"b.added_by": userID}).
		GroupBy("b.id", "p.name").
		OrderBy("b.created_at desc").
		ToSql()
	if err != nil {
		return nil, err
	}

	books := make([]model.BookSummary, 0)
	if err := r.db.SelectContext(ctx, &books, q, args...); err != nil {
		return nil, err
	}
	return books, nil
}
