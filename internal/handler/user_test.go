package handler

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/labchat/chat-server-go/internal/model"
	"github.com/labchat/chat-server-go/internal/service"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, params model.CreateUserParams) error {
	args := m.Called(ctx, params)
	return args.Error(0)
}

func TestUserHandler_Register(t *testing.T) {
	t.Run("returns 200 with empty body on success", func(t *testing.T) {
		repo := new(mockUserRepo)
		repo.On("Create", mock.Anything, model.CreateUserParams{
			Username: "12bobA",
			Password: "digest",
		}).Return(nil)

		handler := NewUserHandler(service.NewUserService(repo))

		body := bytes.NewBufferString(`{"username": "12bobA", "password": "digest"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/user", body)
		rec := httptest.NewRecorder()

		handler.Register(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{}`, rec.Body.String())
		repo.AssertExpectations(t)
	})

	t.Run("returns 500 with the error message on store failure", func(t *testing.T) {
		repo := new(mockUserRepo)
		repo.On("Create", mock.Anything, mock.Anything).Return(errors.New("duplicate key value"))

		handler := NewUserHandler(service.NewUserService(repo))

		body := bytes.NewBufferString(`{"username": "12bobA", "password": "digest"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/user", body)
		rec := httptest.NewRecorder()

		handler.Register(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), "duplicate key value")
	})

	t.Run("returns 500 on a malformed body", func(t *testing.T) {
		repo := new(mockUserRepo)
		handler := NewUserHandler(service.NewUserService(repo))

		body := bytes.NewBufferString(`{not json}`)
		req := httptest.NewRequest(http.MethodPost, "/api/user", body)
		rec := httptest.NewRecorder()

		handler.Register(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), "message")
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}
