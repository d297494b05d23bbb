package sqlerr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"

	"github.com/sarhadcorp/catalog-api/internal/errs"
)

func asHTTPError(t *testing.T, err error) *errs.HTTPError {
	t.Helper()
	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr), "expected *errs.HTTPError, got %T", err)
	return httpErr
}

func TestHandleErrorUniqueViolationSlug(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:           "23505",
		Severity:       "ERROR",
		Message:        `duplicate key value violates unique constraint "products_slug_key"`,
		TableName:      "products",
		ConstraintName: "products_slug_key",
	}

	httpErr := asHTTPError(t, HandleError(pgErr))

	require.Equal(t, http.StatusBadRequest, httpErr.Status)
	require.Equal(t, "PRODUCT_ALREADY_EXISTS", httpErr.Code)
	require.Equal(t, "A Product with this Slug already exists", httpErr.Message)
	require.True(t, httpErr.Override)
}

func TestHandleErrorUniqueViolationEmail(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:           "23505",
		Severity:       "ERROR",
		TableName:      "admins",
		ConstraintName: "admins_email_key",
	}

	httpErr := asHTTPError(t, HandleError(pgErr))

	require.Equal(t, http.StatusBadRequest, httpErr.Status)
	require.Equal(t, "ADMIN_ALREADY_EXISTS", httpErr.Code)
	require.Equal(t, "An Admin with this Email already exists", httpErr.Message)
}

func TestHandleErrorNotNullViolation(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:       "23502",
		Severity:   "ERROR",
		TableName:  "products",
		ColumnName: "name",
	}

	httpErr := asHTTPError(t, HandleError(pgErr))

	require.Equal(t, http.StatusBadRequest, httpErr.Status)
	require.Equal(t, "PRODUCT_REQUIRED", httpErr.Code)
	require.Len(t, httpErr.Errors, 1)
	require.Equal(t, "name", httpErr.Errors[0].Field)
}

func TestHandleErrorUnknownPgErrorIsGeneric500(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:     "57014", // query_canceled
		Severity: "ERROR",
		Message:  "canceling statement due to statement timeout",
	}

	httpErr := asHTTPError(t, HandleError(pgErr))

	require.Equal(t, http.StatusInternalServerError, httpErr.Status)
	// Internal detail must not leak.
	require.NotContains(t, httpErr.Message, "statement timeout")
}

func TestHandleErrorNoRowsWithTablePrefix(t *testing.T) {
	err := HandleError(fmt.Errorf("table:products: %w", pgx.ErrNoRows))

	httpErr := asHTTPError(t, err)
	require.Equal(t, http.StatusNotFound, httpErr.Status)
	require.Equal(t, "Product not found", httpErr.Message)
}

func TestHandleErrorNoRowsHeroSlides(t *testing.T) {
	err := HandleError(fmt.Errorf("table:hero_slides: %w", pgx.ErrNoRows))

	httpErr := asHTTPError(t, err)
	require.Equal(t, http.StatusNotFound, httpErr.Status)
	require.Equal(t, "Hero Slide not found", httpErr.Message)
}

func TestHandleErrorNoRowsWithoutPrefix(t *testing.T) {
	httpErr := asHTTPError(t, HandleError(pgx.ErrNoRows))

	require.Equal(t, http.StatusNotFound, httpErr.Status)
	require.Equal(t, "Resource not found", httpErr.Message)
}

func TestHandleErrorPassesThroughHTTPError(t *testing.T) {
	original := errs.NewUnauthorizedError("Invalid credentials", true)

	require.Same(t, original, HandleError(original).(*errs.HTTPError))
}

func TestHandleErrorUnknownErrorIsGeneric500(t *testing.T) {
	httpErr := asHTTPError(t, HandleError(errors.New("dial tcp: connection refused")))

	require.Equal(t, http.StatusInternalServerError, httpErr.Status)
	require.NotContains(t, httpErr.Message, "dial tcp")
}

func TestErrCode(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", Severity: "ERROR"}
	converted := ConvertPgError(pgErr)

	require.Equal(t, UniqueViolation, ErrCode(converted))
	require.Equal(t, Other, ErrCode(errors.New("nope")))
}

func TestExtractColumnForUniqueViolation(t *testing.T) {
	cases := map[string]string{
		"products_slug_key":    "slug",
		"admins_email_key":     "email",
		"unique_products_slug": "slug",
		"some_random_index":    "",
		"":                     "",
	}

	for constraint, want := range cases {
		require.Equal(t, want, extractColumnForUniqueViolation(constraint), "constraint %q", constraint)
	}
}

func TestGenerateErrorCode(t *testing.T) {
	require.Equal(t, "PRODUCT_ALREADY_EXISTS", generateErrorCode("products", UniqueViolation))
	require.Equal(t, "HERO_SLIDE_ALREADY_EXISTS", generateErrorCode("hero_slides", UniqueViolation))
	require.Equal(t, "RECORD_ERROR", generateErrorCode("", Other))
}
