package service

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/bookhive/bookreview-service/internal/model"
	bookRepo "github.com/bookhive/bookreview-service/internal/repository"
	"github.com/bookhive/bookreview-service/pkg/kafka"
)

type Service struct {
	log    *zap.Logger
	repo   bookRepo.Repository
	events EventPublisher
}

func NewService(repo bookRepo.Repository, events EventPublisher, log *zap.Logger) *Service {
	return &Service{
		log:    log,
		repo:   repo,
		events: events,
	}
}

func (s *Service) ListBooks(ctx context.Context, page, size int, search string) (model.ListBooks, error) {
	list, err := s.repo.ListBooks(ctx, page, size, search)
	if err != nil {
		return model.ListBooks{}, err
	}
	for i := range list.Items {
		list.Items[i].Stars = Stars(list.Items[i].AvgRating)
	}
	list.TotalPages = TotalPages(list.TotalElements, size)
	return list, nil
}

func (s *Service) GetBook(ctx context.Context, bookID string) (model.BookSummary, error) {
	book, err := s.repo.GetBook(ctx, bookID)
	if err != nil {
		return model.BookSummary{}, err
	}
	book.Stars = Stars(book.AvgRating)
	return book, nil
}

func (s *Service) CreateBook(ctx context.Context, ownerID string, req model.BookRequest) (model.Book, error) {
	book, err := s.repo.CreateBook(ctx, ownerID, req)
	if err != nil {
		return model.Book{}, err
	}
	s.publish(kafka.ActionBookCreated, book.ID, ownerID)
	return book, nil
}

func (s *Service) UpdateBook(ctx context.Context, bookID, callerID string, req model.BookRequest) (model.Book, error) {
	book, err := s.repo.UpdateBook(ctx, bookID, callerID, req)
	if err != nil {
		return model.Book{}, err
	}
	s.publish(kafka.ActionBookUpdated, book.ID, callerID)
	return book, nil
}

func (s *Service) DeleteBook(ctx context.Context, bookID, callerID string) error {
	if err := s.repo.DeleteBook(ctx, bookID, callerID); err != nil {
		return err
	}
	s.publish(kafka.ActionBookDeleted, bookID, callerID)
	return nil
}

func (s *Service) ListReviews(ctx context.Context, bookID string) ([]model.BookReview, error) {
	return s.repo.ListReviews(ctx, bookID)
}

func (s *Service) CreateReview(ctx context.Context, bookID, authorID string, req model.CreateReviewRequest) (model.Review, error) {
	review, err := s.repo.CreateReview(ctx, bookID, authorID, req)
	if err != nil {
		return model.Review{}, err
	}
	s.publish(kafka.ActionReviewCreated, review.ID, authorID)
	return review, nil
}

// GetProfileInfo assembles the profile view: the profile row plus owned books
// and authored reviews, fetched concurrently.
func (s *Service) GetProfileInfo(ctx context.Context, userID string) (model.ProfileInfo, error) {
	profile, err := s.repo.GetProfile(ctx, userID)
	if err != nil {
		return model.ProfileInfo{}, err
	}

	var (
		books   []model.BookSummary
		reviews []model.UserReview
	)
	gg, gctx := errgroup.WithContext(ctx)
	gg.Go(func() error {
		var err error
		books, err = s.repo.ListUserBooks(gctx, userID)
		return err
	})
	gg.Go(func() error {
		var err error
		reviews, err = s.repo.ListUserReviews(gctx, userID)
		return err
	})
	if err := gg.Wait(); err != nil {
		return model.ProfileInfo{}, err
	}

	for i := range books {
		books[i].Stars = Stars(books[i].AvgRating)
	}

	ratings := make([]int, 0, len(reviews))
	for _, rv := range reviews {
		ratings = append(ratings, rv.Rating)
	}

	return model.ProfileInfo{
		Profile:        profile,
		Books:          books,
		Reviews:        reviews,
		BooksAdded:     len(books),
		ReviewsWritten: len(reviews),
		AvgRatingGiven: FormatAvg(AverageRating(ratings)),
	}, nil
}

func (s *Service) RecordEvent(ctx context.Context, event kafka.Event) error {
	return s.repo.RecordEvent(ctx, event)
}
