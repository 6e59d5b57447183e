package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/edu-consultancy/internal/model"
	"github.com/deppfellow/edu-consultancy/internal/server"
	"github.com/deppfellow/edu-consultancy/internal/validation"
)

type feedbackService interface {
	CreateFeedback(ctx context.Context, dto model.FeedbackDTO) (*model.FeedbackDTO, error)
	GetFeedbackByID(ctx context.Context, id int64) (*model.FeedbackDTO, error)
	GetAllFeedbacks(ctx context.Context) ([]model.FeedbackDTO, error)
	GetFeedbacksByUserID(ctx context.Context, userID int64) ([]model.FeedbackDTO, error)
	UpdateFeedback(ctx context.Context, id int64, dto model.FeedbackDTO) (*model.Feedback, error)
	DeleteFeedback(ctx context.Context, id int64) error
}

type FeedbackHandler struct {
	Handler
	feedbacks feedbackService
}

func NewFeedbackHandler(s *server.Server, feedbacks feedbackService) *FeedbackHandler {
	return &FeedbackHandler{Handler: NewHandler(s), feedbacks: feedbacks}
}

type CreateFeedbackRequest struct {
	model.FeedbackDTO
}

func (r *CreateFeedbackRequest) Validate() error {
	return validation.Struct(&r.FeedbackDTO)
}

type UpdateFeedbackRequest struct {
	ID int64 `param:"id" json:"-"`
	model.FeedbackDTO
}

func (r *UpdateFeedbackRequest) Validate() error {
	return validation.Struct(&r.FeedbackDTO)
}

func (h *FeedbackHandler) CreateFeedback() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, req *CreateFeedbackRequest) (*model.FeedbackDTO, error) {
		return h.feedbacks.CreateFeedback(c.Request().Context(), req.FeedbackDTO)
	}, http.StatusCreated, &CreateFeedbackRequest{})
}

func (h *FeedbackHandler) GetAllFeedbacks() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, _ *EmptyRequest) ([]model.FeedbackDTO, error) {
		return h.feedbacks.GetAllFeedbacks(c.Request().Context())
	}, http.StatusOK, &EmptyRequest{})
}

func (h *FeedbackHandler) GetFeedbackByID() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, req *IDRequest) (*model.FeedbackDTO, error) {
		return h.feedbacks.GetFeedbackByID(c.Request().Context(), req.ID)
	}, http.StatusOK, &IDRequest{})
}

func (h *FeedbackHandler) GetFeedbacksByUserID() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, req *UserIDRequest) ([]model.FeedbackDTO, error) {
		return h.feedbacks.GetFeedbacksByUserID(c.Request().Context(), req.UserID)
	}, http.StatusOK, &UserIDRequest{})
}

// UpdateFeedback answers with the stored feedback rather than the DTO.
func (h *FeedbackHandler) UpdateFeedback() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, req *UpdateFeedbackRequest) (*model.Feedback, error) {
		return h.feedbacks.UpdateFeedback(c.Request().Context(), req.ID, req.FeedbackDTO)
	}, http.StatusOK, &UpdateFeedbackRequest{})
}

func (h *FeedbackHandler) DeleteFeedback() echo.HandlerFunc {
	return HandleNoContent(h.Handler, func(c echo.Context, req *IDRequest) error {
		return h.feedbacks.DeleteFeedback(c.Request().Context(), req.ID)
	}, http.StatusNoContent, &IDRequest{})
}
