package errs

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConstructorStatusMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        *HTTPError
		wantStatus int
		wantCode   string
	}{
		{"unauthorized", NewUnauthorizedError("Invalid credentials", true), http.StatusUnauthorized, "UNAUTHORIZED"},
		{"forbidden", NewForbiddenError("Admin access required", true), http.StatusForbidden, "FORBIDDEN"},
		{"bad request", NewBadRequestError("No files provided", true, nil, nil, nil), http.StatusBadRequest, "BAD_REQUEST"},
		{"not found", NewNotFoundError("Product not found", true, nil), http.StatusNotFound, "NOT_FOUND"},
		{"payload too large", NewPayloadTooLargeError("too big"), http.StatusRequestEntityTooLarge, "REQUEST_ENTITY_TOO_LARGE"},
		{"too many requests", NewTooManyRequestsError("slow down"), http.StatusTooManyRequests, "TOO_MANY_REQUESTS"},
		{"misconfigured", NewServerMisconfiguredError("JWT secret is not configured on the server"), http.StatusInternalServerError, "SERVER_MISCONFIGURED"},
		{"internal", NewInternalServerError(), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.wantStatus, tc.err.Status)
			require.Equal(t, tc.wantCode, tc.err.Code)
		})
	}
}

func TestInternalServerErrorHidesDetail(t *testing.T) {
	err := NewInternalServerError()
	require.Equal(t, http.StatusText(http.StatusInternalServerError), err.Message)
	require.False(t, err.Override)
}

func TestBadRequestCustomCode(t *testing.T) {
	code := "PRODUCT_ALREADY_EXISTS"
	err := NewBadRequestError("A Product with this Slug already exists", true, &code, nil, nil)

	require.Equal(t, "PRODUCT_ALREADY_EXISTS", err.Code)
	require.Equal(t, http.StatusBadRequest, err.Status)
	require.True(t, err.Override)
}

func TestErrorsAsThroughWrapping(t *testing.T) {
	var httpErr *HTTPError
	wrapped := errors.Join(errors.New("context"), NewNotFoundError("Hero Slide not found", true, nil))

	require.True(t, errors.As(wrapped, &httpErr))
	require.Equal(t, http.StatusNotFound, httpErr.Status)
}

func TestWithMessageDoesNotMutate(t *testing.T) {
	base := NewUnauthorizedError("original", true)
	derived := base.WithMessage("changed")

	require.Equal(t, "original", base.Message)
	require.Equal(t, "changed", derived.Message)
	require.Equal(t, base.Status, derived.Status)
}

func TestMakeUpperCaseWithUnderscores(t *testing.T) {
	require.Equal(t, "BAD_REQUEST", MakeUpperCaseWithUnderscores("Bad Request"))
	require.Equal(t, "REQUEST_ENTITY_TOO_LARGE", MakeUpperCaseWithUnderscores("Request Entity Too Large"))
}
