package repository

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/bookhive/bookreview-service/internal/errs"
	"github.com/bookhive/bookreview-service/internal/model"
)

const bookColumns = `b.id, b.title, b.author, b.description, b.genre, b.published_year, b.added_by, b.created_at`

func (r *repository) ListBooks(ctx context.Context, page, size int, search string) (model.ListBooks, error) {
	q := qb.Select(
		bookColumns,
		"p.name as added_by_name",
		"coalesce(avg(r.rating), 0)::float8 as avg_rating",
		"count(r.id) as review_count",
	).
		From(booksTableName + " b").
		Join(fmt.Sprintf("%s p on p.id = b.added_by", profilesTableName)).
		LeftJoin(fmt.Sprintf("%s r on r.book_id = b.id", reviewsTableName)).
		GroupBy("b.id", "p.name").
		OrderBy("b.created_at desc").
		Limit(uint64(size)).
		Offset(uint64((page - 1) * size))

	countQ := qb.Select("count(*)").From(booksTableName + " b")

	if search != "" {
		pattern := "%" + search + "%"
		filter := sq.Or{
			sq.ILike{"b.title": pattern},
			sq.ILike{"b.author": pattern},
		}
		q = q.Where(filter)
		countQ = countQ.Where(filter)
	}

	query, args, err := q.ToSql()
	if err != nil {
		return model.ListBooks{}, err
	}
	r.log.Debug("ListBooks", zap.String("query", query), zap.Any("args", args))

	books := make([]model.BookSummary, 0)
	if err := r.db.SelectContext(ctx, &books, query, args...); err != nil {
		return model.ListBooks{}, err
	}

	query, args, err = countQ.ToSql()
	if err != nil {
		return model.ListBooks{}, err
	}
	var total int
	if err := r.db.GetContext(ctx, &total, query, args...); err != nil {
		return model.ListBooks{}, err
	}

	return model.ListBooks{
		Paging: model.Paging{
			Page:          page,
			PageSize:      size,
			TotalElements: total,
		},
		Items: books,
	}, nil
}

func (r *repository) GetBook(ctx context.Context, bookID string) (model.BookSummary, error) {
	query, args, err := qb.Select(
		bookColumns,
		"p.name as added_by_name",
		"coalesce(avg(r.rating), 0)::float8 as avg_rating",
		"count(r.id) as review_count",
	).
		From(booksTableName + " b").
		Join(fmt.Sprintf("%s p on p.id = b.added_by", profilesTableName)).
		LeftJoin(fmt.Sprintf("%s r on r.book_id = b.id", reviewsTableName)).
		Where(sq.Eq{"b.id": bookID}).
		GroupBy("b.id", "p.name").
		ToSql()
	if err != nil {
		return model.BookSummary{}, err
	}

	var book model.BookSummary
	if err := r.db.GetContext(ctx, &book, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.BookSummary{}, errs.ErrNotFound
		}
		r.log.Error("GetBook", zap.String("q", query), zap.Any("args", args))
		return model.BookSummary{}, err
	}

	return book, nil
}

func (r *repository) CreateBook(ctx context.Context, ownerID string, req model.BookRequest) (model.Book, error) {
	q, args, err := qb.Insert(booksTableName).
		Columns("title", "author", "description", "genre", "published_year", "added_by").
		Values(req.Title, req.Author, req.Description, req.Genre, req.PublishedYear, ownerID).
		Suffix("returning id, title, author, description, genre, published_year, added_by, created_at").
		ToSql()
	if err != nil {
		return model.Book{}, err
	}

	var book model.Book
	if err := r.db.GetContext(ctx, &book, q, args...); err != nil {
		r.log.Error("CreateBook", zap.String("q", q), zap.Any("args", args))
		return model.Book{}, err
	}
	return book, nil
}

// UpdateBook applies the owner check inside the statement: the row is touched
// only when added_by matches the caller.
func (r *repository) UpdateBook(ctx context.Context, bookID, callerID string, req model.BookRequest) (model.Book, error) {
	q, args, err := qb.Update(booksTableName).
		Set("title", req.Title).
		Set("author", req.Author).
		Set("description", req.Description).
		Set("genre", req.Genre).
		Set("published_year", req.PublishedYear).
		Where(sq.Eq{"id": bookID, "added_by": callerID}).
		Suffix("returning id, title, author, description, genre, published_year, added_by, created_at").
		ToSql()
	if err != nil {
		return model.Book{}, err
	}

	var book model.Book
	if err := r.db.GetContext(ctx, &book, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Book{}, r.bookMutationErr(ctx, bookID)
		}
		return model.Book{}, err
	}
	return book, nil
}

func (r *repository) DeleteBook(ctx context.Context, bookID, callerID string) error {
	q, args, err := qb.Delete(booksTableName).
		Where(sq.Eq{"id": bookID, "added_by": callerID}).
		ToSql()
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return r.bookMutationErr(ctx, bookID)
	}
	return nil
}

// bookMutationErr tells a missing book apart from an ownership rejection
// after a zero-row mutation.
func (r *repository) bookMutationErr(ctx context.Context, bookID string) error {
	q, args, err := qb.Select("1").
		From(booksTableName).
		Where(sq.Eq{"id": bookID}).
		ToSql()
	if err != nil {
		return err
	}
	var one int
	if err := r.db.GetContext(ctx, &one, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return errs.ErrNotFound
		}
		return err
	}
	return errs.ErrForbidden
}
