package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/bookhive/bookreview-service/internal/model"
	"github.com/bookhive/bookreview-service/pkg/kafka"
)

type Repository interface {
	ListBooks(ctx context.Context, page, size int, search string) (model.ListBooks, error)
	GetBook(ctx context.Context, bookID string) (model.BookSummary, error)
	CreateBook(ctx context.Context, ownerID string, req model.BookRequest) (model.Book, error)
	UpdateBook(ctx context.Context, bookID, callerID string, req model.BookRequest) (model.Book, error)
	DeleteBook(ctx context.Context, bookID, callerID string) error

	ListReviews(ctx context.Context, bookID string) ([]model.BookReview, error)
	CreateReview(ctx context.Context, bookID, authorID string, req model.CreateReviewRequest) (model.Review, error)

	GetProfile(ctx context.Context, userID string) (model.Profile, error)
	ListUserBooks(ctx context.Context, userID string) ([]model.BookSummary, error)
	ListUserReviews(ctx context.Context, userID string) ([]model.UserReview, error)

	CreateUser(ctx context.Context, name, email, passwordHash string) (model.User, error)
	GetUserByEmail(ctx context.Context, email string) (model.User, error)

	RecordEvent(ctx context.Context, event kafka.Event) error
}

type repository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	booksTableName    = `books`
	reviewsTableName  = `reviews`
	profilesTableName = `profiles`
	usersTableName    = `users`
	eventsTableName   = `events`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func (r *repository) RecordEvent(ctx context.Context, event kafka.Event) error {
	q, args, err := qb.Insert(eventsTableName).
		Columns("action", "entity_id", "actor_id", "occurred_at").
		Values(event.Action, event.EntityID, event.ActorID, event.OccurredAt).
		ToSql()
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, q, args...)
	return err
}
