package errs

import "fmt"

// Codes for the domain failures the services return.
const (
	CodeBlogNotFound     = "BLOG_NOT_FOUND"
	CodeProductNotFound  = "PRODUCT_NOT_FOUND"
	CodeUserNotFound     = "USER_NOT_FOUND"
	CodeContactNotFound  = "CONTACT_NOT_FOUND"
	CodeFeedbackNotFound = "FEEDBACK_NOT_FOUND"
	CodeFileExists       = "FILE_EXISTS"
	CodeFileNotFound     = "FILE_NOT_FOUND"
	CodeInvalidImage     = "INVALID_IMAGE"
)

// FileExistsMessage is returned when an upload would overwrite a stored file.
const FileExistsMessage = "File already exists! Please enter another file name!"

func notFound(code, format string, id int64) *HTTPError {
	c := code
	return NewNotFoundError(fmt.Sprintf(format, id), true, &c)
}

func BlogNotFound(id int64) *HTTPError {
	return notFound(CodeBlogNotFound, "Blog not found with id = %d", id)
}

func ProductNotFound(id int64) *HTTPError {
	return notFound(CodeProductNotFound, "Product not found with id = %d", id)
}

func UserNotFound(id int64) *HTTPError {
	return notFound(CodeUserNotFound, "User not found with id: %d", id)
}

func ContactNotFound(id int64) *HTTPError {
	return notFound(CodeContactNotFound, "Contact not found with id: %d", id)
}

func FeedbackNotFound(id int64) *HTTPError {
	return notFound(CodeFeedbackNotFound, "Feedback not found with id: %d", id)
}

// FileExists is the conflict returned by the add flows of blogs and products.
func FileExists() *HTTPError {
	code := CodeFileExists
	return NewConflictError(FileExistsMessage, true, &code)
}

// FileNotFound is returned when a stored image is requested but missing.
func FileNotFound(name string) *HTTPError {
	code := CodeFileNotFound
	return NewNotFoundError(fmt.Sprintf("File not found: %s", name), true, &code)
}

// InvalidImage rejects uploads that are not a supported image.
func InvalidImage(reason string) *HTTPError {
	code := CodeInvalidImage
	return NewBadRequestError(reason, true, &code, []FieldError{{Field: "file", Error: reason}}, nil)
}
