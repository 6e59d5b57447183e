package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/edu-consultancy/internal/model"
	"github.com/deppfellow/edu-consultancy/internal/server"
	"github.com/deppfellow/edu-consultancy/internal/validation"
)

type contactService interface {
	CreateContact(ctx context.Context, dto model.ContactDTO) (*model.ContactDTO, error)
	GetContactByID(ctx context.Context, id int64) (*model.ContactDTO, error)
	GetAllContacts(ctx context.Context) ([]model.ContactDTO, error)
	GetContactsByUserID(ctx context.Context, userID int64) ([]model.ContactDTO, error)
	UpdateContact(ctx context.Context, id int64, dto model.ContactDTO) (*model.Contact, error)
	DeleteContact(ctx context.Context, id int64) error
}

type ContactHandler struct {
	Handler
	contacts contactService
}

func NewContactHandler(s *server.Server, contacts contactService) *ContactHandler {
	return &ContactHandler{Handler: NewHandler(s), contacts: contacts}
}

type CreateContactRequest struct {
	model.ContactDTO
}

func (r *CreateContactRequest) Validate() error {
	return validation.Struct(&r.ContactDTO)
}

type UpdateContactRequest struct {
	ID int64 `param:"id" json:"-"`
	model.ContactDTO
}

func (r *UpdateContactRequest) Validate() error {
	return validation.Struct(&r.ContactDTO)
}

func (h *ContactHandler) CreateContact() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, req *CreateContactRequest) (*model.ContactDTO, error) {
		return h.contacts.CreateContact(c.Request().Context(), req.ContactDTO)
	}, http.StatusCreated, &CreateContactRequest{})
}

func (h *ContactHandler) GetAllContacts() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, _ *EmptyRequest) ([]model.ContactDTO, error) {
		return h.contacts.GetAllContacts(c.Request().Context())
	}, http.StatusOK, &EmptyRequest{})
}

func (h *ContactHandler) GetContactByID() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, req *IDRequest) (*model.ContactDTO, error) {
		return h.contacts.GetContactByID(c.Request().Context(), req.ID)
	}, http.StatusOK, &IDRequest{})
}

func (h *ContactHandler) GetContactsByUserID() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, req *UserIDRequest) ([]model.ContactDTO, error) {
		return h.contacts.GetContactsByUserID(c.Request().Context(), req.UserID)
	}, http.StatusOK, &UserIDRequest{})
}

// UpdateContact answers with the stored contact rather than the DTO.
func (h *ContactHandler) UpdateContact() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, req *UpdateContactRequest) (*model.Contact, error) {
		return h.contacts.UpdateContact(c.Request().Context(), req.ID, req.ContactDTO)
	}, http.StatusOK, &UpdateContactRequest{})
}

func (h *ContactHandler) DeleteContact() echo.HandlerFunc {
	return HandleNoContent(h.Handler, func(c echo.Context, req *IDRequest) error {
		return h.contacts.DeleteContact(c.Request().Context(), req.ID)
	}, http.StatusNoContent, &IDRequest{})
}
