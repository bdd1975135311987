package repository

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/bookhive/bookreview-service/internal/errs"
	"github.com/bookhive/bookreview-service/internal/model"
)

const reviewColumns = `r.id, r.book_id, r.user_id, r.rating, coalesce(r.review_text, '') as review_text, r.created_at`

func (r *repository) ListReviews(ctx context.Context, bookID string) ([]model.BookReview, error) {
	q, args, err := qb.Select(reviewColumns, "p.name as reviewer_name").
		From(reviewsTableName + " r").
		Join(fmt.Sprintf("%s p on p.id = r.user_id", profilesTableName)).
		Where(sq.Eq{"r.book_id": bookID}).
		OrderBy("r.created_at desc").
		ToSql()
	if err != nil {
		return nil, err
	}

	reviews := make([]model.BookReview, 0)
	if err := r.db.SelectContext(ctx, &reviews, q, args...); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *repository) CreateReview(ctx context.Context, bookID, authorID string, req model.CreateReviewRequest) (model.Review, error) {
	var text interface{}
	if req.ReviewText != "" {
		text = req.ReviewText
	}

	q, args, err := qb.Insert(reviewsTableName).
		Columns("book_id", "user_id", "rating", "review_text").
		Values(bookID, authorID, req.Rating, text).
		Suffix("returning id, book_id, user_id, rating, coalesce(review_text, '') as review_text, created_at").
		ToSql()
	if err != nil {
		return model.Review{}, err
	}

	var review model.Review
	if err := r.db.GetContext(ctx, &review, q, args...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgerrcode.UniqueViolation:
				return model.Review{}, errs.ErrDuplicateReview
			case pgerrcode.ForeignKeyViolation:
				return model.Review{}, errs.ErrNotFound
			}
		}
		r.log.Error("CreateReview", zap.String("q", q), zap.Any("args", args))
		return model.Review{}, err
	}
	return review, nil
}

func (r *repository) ListUserReviews(ctx context.Context, userID string) ([]model.UserReview, error) {
	q, args, err := qb.Select(reviewColumns, "b.title as book_title", "b.author as book_author").
		From(reviewsTableName + " r").
		Join(fmt.Sprintf("%s b on b.id = r.book_id", booksTableName)).
		Where(sq.Eq{"r.user_id": userID}).
		OrderBy("r.created_at desc").
		ToSql()
	if err != nil {
		return nil, err
	}

	reviews := make([]model.UserReview, 0)
	if err := r.db.SelectContext(ctx, &reviews, q, args...); err != nil {
		return nil, err
	}
	return reviews, nil
}
