package http

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/LerianStudio/lib-dashboard-go/constant"
	"github.com/LerianStudio/lib-dashboard-go/pkg"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"unknown tab", pkg.ValidateBusinessError(constant.ErrUnknownTab, "Tab", "nope"), http.StatusNotFound, constant.ErrUnknownTab.Error()},
		{"duplicate component", pkg.ValidateBusinessError(constant.ErrDuplicateComponent, "Component", "nope"), http.StatusConflict, constant.ErrDuplicateComponent.Error()},
		{"unsupported format", pkg.ValidateBusinessError(constant.ErrUnsupportedFormat, "Tab", "pdf"), http.StatusBadRequest, constant.ErrUnsupportedFormat.Error()},
		{"load failed", pkg.ValidateBusinessError(constant.ErrCustomizationLoadFailed, "AppConfig", "remote"), http.StatusUnprocessableEntity, constant.ErrCustomizationLoadFailed.Error()},
		{"feature disabled", pkg.ValidateBusinessError(constant.ErrFeatureDisabled, "Feature", "reporting"), http.StatusForbidden, constant.ErrFeatureDisabled.Error()},
		{"invalid fields", pkg.ValidationKnownFieldsError{
			Code:    constant.ErrInvalidCustomization.Error(),
			Title:   "Invalid customization",
			Message: "The dashboard customization has 1 invalid field(s).",
			Fields:  pkg.FieldValidations{"title": "title is required"},
		}, http.StatusBadRequest, constant.ErrInvalidCustomization.Error()},
		{"unmapped", errors.New("boom"), http.StatusInternalServerError, constant.ErrInternalServer.Error()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error {
				return WithError(c, tt.err)
			})

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
			require.NoError(t, err)

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			assert.Contains(t, string(body), tt.wantCode)
		})
	}
}
