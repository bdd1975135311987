package model

import (
	"time"
)

type Book struct {
	ID            string    `json:"id" db:"id"`
	Title         string    `json:"title" db:"title"`
	Author        string    `json:"author" db:"author"`
	Description   string    `json:"description" db:"description"`
	Genre         string    `json:"genre" db:"genre"`
	PublishedYear int       `json:"publishedYear" db:"published_year"`
	AddedBy       string    `json:"addedBy" db:"added_by"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
}

// RatingSummary is derived from the current review set on every fetch,
// never persisted. AvgRating is 0 when there are no reviews.
type RatingSummary struct {
	AvgRating   float64 `json:"avgRating" db:"avg_rating"`
	Stars       int     `json:"stars"`
	ReviewCount int     `json:"reviewCount" db:"review_count"`
}

type BookSummary struct {
	Book
	RatingSummary
	AddedByName string `json:"addedByName" db:"added_by_name"`
}

type Paging struct {
	Page          int `json:"page"`
	PageSize      int `json:"pageSize"`
	TotalElements int `json:"totalElements"`
	TotalPages    int `json:"totalPages"`
}

type ListBooks struct {
	Paging `json:",inline"`
	Items  []BookSummary `json:"items"`
}

type Review struct {
	ID         string    `json:"id" db:"id"`
	BookID     string    `json:"bookId" db:"book_id"`
	UserID     string    `json:"userId" db:"user_id"`
	Rating     int       `json:"rating" db:"rating"`
	ReviewText string    `json:"reviewText,omitempty" db:"review_text"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}

type BookReview struct {
	Review
	ReviewerName string `json:"reviewerName" db:"reviewer_name"`
}

// UserReview is a review joined with the book it was written for.
type UserReview struct {
	Review
	BookTitle  string `json:"bookTitle" db:"book_title"`
	BookAuthor string `json:"bookAuthor" db:"book_author"`
}

type Profile struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

type User struct {
	ID           string `json:"id" db:"id"`
	Email        string `json:"email" db:"email"`
	Name         string `json:"name" db:"name"`
	PasswordHash string `json:"-" db:"password_hash"`
}

type UserCreateRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type AuthRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	AccessToken string `json:"accessToken"`
	ExpiresIn   int    `json:"expiresIn"`
}

type BookRequest struct {
	Title         string `json:"title" validate:"required"`
	Author        string `json:"author" validate:"required"`
	Description   string `json:"description" validate:"required"`
	Genre         string `json:"genre" validate:"required"`
	PublishedYear int    `json:"publishedYear" validate:"required,gte=1000"`
}

type CreateReviewRequest struct {
	Rating     int    `json:"rating" validate:"required,gte=1,lte=5"`
	ReviewText string `json:"reviewText"`
}

type ProfileInfo struct {
	Profile        Profile       `json:"profile"`
	Books          []BookSummary `json:"books"`
	Reviews        []UserReview  `json:"reviews"`
	BooksAdded     int           `json:"booksAdded"`
	ReviewsWritten int           `json:"reviewsWritten"`
	AvgRatingGiven string        `json:"avgRatingGiven"`
}
