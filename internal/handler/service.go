package handler

import (
	"context"

	"github.com/bookhive/bookreview-service/internal/model"
	"github.com/bookhive/bookreview-service/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

var _ BookService = (*service.Service)(nil)

type BookService interface {
	ListBooks(ctx context.Context, page, size int, search string) (model.ListBooks, error)
	GetBook(ctx context.Context, bookID string) (model.BookSummary, error)
	CreateBook(ctx context.Context, ownerID string, req model.BookRequest) (model.Book, error)
	UpdateBook(ctx context.Context, bookID, callerID string, req model.BookRequest) (model.Book, error)
	DeleteBook(ctx context.Context, bookID, callerID string) error

	ListReviews(ctx context.Context, bookID string) ([]model.BookReview, error)
	CreateReview(ctx context.Context, bookID, authorID string, req model.CreateReviewRequest) (model.Review, error)

	GetProfileInfo(ctx context.Context, userID string) (model.ProfileInfo, error)

	RegisterUser(ctx context.Context, req model.UserCreateRequest) (model.User, error)
	Authenticate(ctx context.Context, email, password string) (model.User, error)
}
