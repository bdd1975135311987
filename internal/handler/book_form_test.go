package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bookhive/bookreview-service/internal/errs"
	"github.com/bookhive/bookreview-service/internal/handler"
	service_mocks "github.com/bookhive/bookreview-service/internal/handler/mocks"
	"github.com/bookhive/bookreview-service/internal/model"
	"github.com/bookhive/bookreview-service/pkg/validate"
)

func TestHandler_CreateBook(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockBookService)

	createdAt := time.Date(2024, 7, 1, 8, 0, 0, 0, time.UTC)
	validBody := `{"title":"Piranesi","author":"Susanna Clarke","description":"A house with infinite halls","genre":"Fantasy","publishedYear":2020}`

	var tests = []struct {
		name         string
		body         string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name: "created",
			body: validBody,
			mockBehavior: func(r *service_mocks.MockBookService) {
				r.EXPECT().
					CreateBook(gomock.Any(), testUserID, model.BookRequest{
						Title:         "Piranesi",
						Author:        "Susanna Clarke",
						Description:   "A house with infinite halls",
						Genre:         "Fantasy",
						PublishedYear: 2020,
					}).
					Return(model.Book{
						ID:            testBookID,
						Title:         "Piranesi",
						Author:        "Susanna Clarke",
						Description:   "A house with infinite halls",
						Genre:         "Fantasy",
						PublishedYear: 2020,
						AddedBy:       testUserID,
						CreatedAt:     createdAt,
					}, nil)
			},
			response: response{
				expectedCode: http.StatusCreated,
				expectedBody: `{"id":"83575e12-7ce0-48ee-9931-51919ff3c9ee","title":"Piranesi","author":"Susanna Clarke","description":"A house with infinite halls","genre":"Fantasy","publishedYear":2020,"addedBy":"7f2a4c9e-3b1d-4e8a-9f6c-2d5b8a1e4c7f","createdAt":"2024-07-01T08:00:00Z"}`,
			},
		},
		{
			name:         "err. title required",
			body:         `{"author":"Susanna Clarke","description":"x","genre":"Fantasy","publishedYear":2020}`,
			mockBehavior: func(r *service_mocks.MockBookService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
			},
		},
		{
			name:         "err. future year",
			body:         `{"title":"Piranesi","author":"Susanna Clarke","description":"x","genre":"Fantasy","publishedYear":3020}`,
			mockBehavior: func(r *service_mocks.MockBookService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"publishedYear is invalid"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockBookService(c)
			log := zap.NewExample().Named("test")
			h := handler.New(svc, log)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.POST("/books", h.CreateBook, withUser(testUserID))

			r := httptest.NewRequest(http.MethodPost, "/books", strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			if tt.response.expectedBody != "" {
				require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
			}
		})
	}
}

func TestHandler_UpdateBook(t *testing.T) {
	t.Parallel()
	validBody := `{"title":"Piranesi","author":"Susanna Clarke","description":"revised","genre":"Fantasy","publishedYear":2020}`
	req := model.BookRequest{
		Title:         "Piranesi",
		Author:        "Susanna Clarke",
		Description:   "revised",
		Genre:         "Fantasy",
		PublishedYear: 2020,
	}

	tests := []struct {
		name         string
		caller       string
		mockBehavior func(r *service_mocks.MockBookService)
		expectedCode int
		expectedBody string
	}{
		{
			name:   "ok",
			caller: testUserID,
			mockBehavior: func(r *service_mocks.MockBookService) {
				r.EXPECT().
					UpdateBook(gomock.Any(), testBookID, testUserID, req).
					Return(model.Book{
						ID:            testBookID,
						Title:         req.Title,
						Author:        req.Author,
						Description:   req.Description,
						Genre:         req.Genre,
						PublishedYear: req.PublishedYear,
						AddedBy:       testUserID,
						CreatedAt:     time.Date(2024, 7, 1, 8, 0, 0, 0, time.UTC),
					}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"id":"83575e12-7ce0-48ee-9931-51919ff3c9ee","title":"Piranesi","author":"Susanna Clarke","description":"revised","genre":"Fantasy","publishedYear":2020,"addedBy":"7f2a4c9e-3b1d-4e8a-9f6c-2d5b8a1e4c7f","createdAt":"2024-07-01T08:00:00Z"}`,
		},
		{
			name:   "err. not owner",
			caller: otherUserID,
			mockBehavior: func(r *service_mocks.MockBookService) {
				r.EXPECT().
					UpdateBook(gomock.Any(), testBookID, otherUserID, req).
					Return(model.Book{}, errs.ErrForbidden)
			},
			expectedCode: http.StatusForbidden,
			expectedBody: `{"message":"forbidden"}`,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockBookService(c)
			log := zap.NewExample().Named("test")
			h := handler.New(svc, log)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.PATCH("/books/:bookId", h.UpdateBook, withUser(tt.caller))

			r := httptest.NewRequest(http.MethodPatch, "/books/"+testBookID, strings.NewReader(validBody))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.expectedCode, w.Code)
			require.Equal(t, tt.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_Register(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name         string
		body         string
		mockBehavior func(r *service_mocks.MockBookService)
		expectedCode int
		expectedBody string
	}{
		{
			name: "created",
			body: `{"name":"Alice","email":"alice@example.com","password":"s3cret77"}`,
			mockBehavior: func(r *service_mocks.MockBookService) {
				r.EXPECT().
					RegisterUser(context.Background(), model.UserCreateRequest{
						Name:     "Alice",
						Email:    "alice@example.com",
						Password: "s3cret77",
					}).
					Return(model.User{ID: testUserID, Email: "alice@example.com", Name: "Alice"}, nil)
			},
			expectedCode: http.StatusCreated,
			expectedBody: "ok",
		},
		{
			name: "err. email taken",
			body: `{"name":"Alice","email":"alice@example.com","password":"s3cret77"}`,
			mockBehavior: func(r *service_mocks.MockBookService) {
				r.EXPECT().
					RegisterUser(context.Background(), gomock.Any()).
					Return(model.User{}, errs.ErrUserExists)
			},
			expectedCode: http.StatusConflict,
			expectedBody: `{"message":"user already exists"}`,
		},
		{
			name:         "err. bad email",
			body:         `{"name":"Alice","email":"not-an-email","password":"s3cret77"}`,
			mockBehavior: func(r *service_mocks.MockBookService) {},
			expectedCode: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockBookService(c)
			log := zap.NewExample().Named("test")
			h := handler.New(svc, log)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.POST("/register", h.Register)

			r := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedBody != "" {
				require.Equal(t, tt.expectedBody, strings.Trim(w.Body.String(), "\n"))
			}
		})
	}
}
