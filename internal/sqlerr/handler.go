package sqlerr

import (
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/deppfellow/edu-consultancy/internal/errs"
)

var uniqueKeyPattern = regexp.MustCompile(`_([^_]+)_(?:key|ukey)$`)

// ErrCode reports the Code carried by err, or Other.
func ErrCode(err error) Code {
	var pgerr *Error
	if errors.As(err, &pgerr) {
		return pgerr.Code
	}

	var raw *pgconn.PgError
	if errors.As(err, &raw) {
		return MapCode(raw.Code)
	}
	return Other
}

// ConvertPgError classifies a raw pgconn error.
func ConvertPgError(src *pgconn.PgError) *Error {
	return &Error{
		Code:           MapCode(src.Code),
		Severity:       MapSeverity(src.Severity),
		DatabaseCode:   src.Code,
		Message:        src.Message,
		SchemaName:     src.SchemaName,
		TableName:      src.TableName,
		ColumnName:     src.ColumnName,
		DataTypeName:   src.DataTypeName,
		ConstraintName: src.ConstraintName,
		driverErr:      src,
	}
}

// actions names the error-code suffix of each constraint class the API
// reports as a client error. Anything missing here is a server fault.
var actions = map[Code]string{
	ForeignKeyViolation: "NOT_FOUND",
	UniqueViolation:     "ALREADY_EXISTS",
	NotNullViolation:    "REQUIRED",
	CheckViolation:      "INVALID",
	InvalidText:         "INVALID",
}

// errorCode builds <ENTITY>_<ACTION> from the table, so users plus a
// unique violation gives USER_ALREADY_EXISTS.
func errorCode(table string, action string) string {
	entity := strings.ToUpper(singular(table))
	if entity == "" {
		entity = "RECORD"
	}
	return entity + "_" + action
}

// describe phrases the violation for API clients without leaking SQL.
func describe(e *Error) string {
	column := humanize(e.ColumnName)

	switch e.Code {
	case ForeignKeyViolation:
		return fmt.Sprintf("The referenced %s does not exist", entityOf(e.TableName, e.ColumnName))
	case UniqueViolation:
		field := "identifier"
		if col := uniqueColumn(e.ConstraintName); col != "" {
			field = humanize(col)
		}
		return fmt.Sprintf("A %s with this %s already exists", entityOf(e.TableName, e.ColumnName), field)
	case NotNullViolation:
		if column == "" {
			column = "field"
		}
		return fmt.Sprintf("The %s is required", column)
	case CheckViolation:
		if column == "" {
			return "One or more values do not meet required conditions"
		}
		return fmt.Sprintf("The %s value does not meet required conditions", column)
	case InvalidText:
		return "One or more values have an invalid format"
	}
	return "An error occurred while processing your request"
}

// entityOf names the row a constraint is about: the referenced entity for
// a *_id column (user_id is a User), else the table in singular form.
func entityOf(table, column string) string {
	column = strings.ToLower(column)
	switch {
	case strings.HasSuffix(column, "_id"):
		return humanize(strings.TrimSuffix(column, "_id"))
	case table != "":
		return humanize(singular(table))
	}
	return "record"
}

func singular(name string) string {
	if len(name) > 1 && strings.HasSuffix(strings.ToLower(name), "s") {
		return name[:len(name)-1]
	}
	return name
}

func humanize(text string) string {
	if text == "" {
		return ""
	}
	return cases.Title(language.English).String(strings.ReplaceAll(text, "_", " "))
}

// uniqueColumn reads the column out of a unique constraint name, either
// unique_<table>_<column> or the PostgreSQL default <table>_<column>_key.
func uniqueColumn(constraint string) string {
	if rest, ok := strings.CutPrefix(constraint, "unique_"); ok {
		if i := strings.LastIndex(rest, "_"); i >= 0 {
			return rest[i+1:]
		}
	}
	if m := uniqueKeyPattern.FindStringSubmatch(constraint); len(m) > 1 {
		return m[1]
	}
	return ""
}

// HandleError converts a repository error into an *errs.HTTPError.
// Errors that already are one pass through unchanged; missing rows become
// 404 and everything unrecognised becomes 500.
func HandleError(err error) error {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}

	if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
		return errs.NewNotFoundError("Resource not found", false, nil)
	}

	var raw *pgconn.PgError
	if !errors.As(err, &raw) {
		return errs.NewInternalServerError()
	}

	e := ConvertPgError(raw)
	action, ok := actions[e.Code]
	if !ok {
		return errs.NewInternalServerError()
	}

	code := errorCode(e.TableName, action)
	var fields []errs.FieldError
	if e.Code == NotNullViolation {
		fields = []errs.FieldError{{Field: strings.ToLower(e.ColumnName), Error: "is required"}}
	}
	// Foreign key messages name another entity, which the client may not
	// be allowed to see verbatim.
	override := e.Code != ForeignKeyViolation
	return errs.NewBadRequestError(describe(e), override, &code, fields, nil)
}
