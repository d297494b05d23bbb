package validation

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/sarhadcorp/catalog-api/internal/errs"
)

type loginPayload struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (p *loginPayload) Validate() error {
	return Struct(p)
}

type customPayload struct {
	ID string `param:"id"`
}

func (p *customPayload) Validate() error {
	if !IsValidUUID(p.ID) {
		return CustomValidationErrors{{Field: "id", Message: "must be a valid id"}}
	}
	return nil
}

func bindContext(body string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return e.NewContext(req, httptest.NewRecorder())
}

func TestBindAndValidateSuccess(t *testing.T) {
	c := bindContext(`{"email":"admin@example.com","password":"secret123"}`)

	payload := &loginPayload{}
	require.NoError(t, BindAndValidate(c, payload))
	require.Equal(t, "admin@example.com", payload.Email)
}

func TestBindAndValidateFieldErrors(t *testing.T) {
	c := bindContext(`{"email":"not-an-email"}`)

	payload := &loginPayload{}
	err := BindAndValidate(c, payload)

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	require.Equal(t, http.StatusBadRequest, httpErr.Status)
	require.Len(t, httpErr.Errors, 2)

	byField := map[string]string{}
	for _, fe := range httpErr.Errors {
		byField[fe.Field] = fe.Error
	}
	require.Equal(t, "must be a valid email address", byField["email"])
	require.Equal(t, "is required", byField["password"])
}

func TestBindAndValidateMalformedJSON(t *testing.T) {
	c := bindContext(`{"email": `)

	err := BindAndValidate(c, &loginPayload{})

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	require.Equal(t, http.StatusBadRequest, httpErr.Status)
}

func TestBindAndValidateCustomErrors(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	err := BindAndValidate(c, &customPayload{})

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	require.Equal(t, http.StatusBadRequest, httpErr.Status)
	require.Len(t, httpErr.Errors, 1)
	require.Equal(t, "id", httpErr.Errors[0].Field)
}

func TestIsValidUUID(t *testing.T) {
	require.True(t, IsValidUUID("4f2c2b9e-8a4e-4e1f-9b59-0f2c77d1a001"))
	require.True(t, IsValidUUID("4F2C2B9E-8A4E-4E1F-9B59-0F2C77D1A001"))

	for _, bad := range []string{
		"",
		"not-a-uuid",
		"4f2c2b9e8a4e4e1f9b590f2c77d1a001",
		"4f2c2b9e-8a4e-4e1f-9b59-0f2c77d1a00", // one short
	} {
		require.False(t, IsValidUUID(bad), "input %q", bad)
	}
}
