package handler

import "github.com/deppfellow/edu-consultancy/internal/validation"

// IDRequest binds the :id path parameter.
type IDRequest struct {
	ID int64 `param:"id"`
}

func (r *IDRequest) Validate() error {
	return nil
}

// FileRequest binds the :fileName path parameter of the image routes.
type FileRequest struct {
	FileName string `param:"fileName" validate:"required"`
}

func (r *FileRequest) Validate() error {
	return validation.Struct(r)
}

// EmptyRequest is used by routes without input.
type EmptyRequest struct{}

func (r *EmptyRequest) Validate() error {
	return nil
}

// Message is the JSON body of the blog and product deletes.
type Message struct {
	Message string `json:"message"`
}

// UserIDRequest binds the :userId path parameter.
type UserIDRequest struct {
	UserID int64 `param:"userId"`
}

func (r *UserIDRequest) Validate() error {
	return nil
}
