package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/l3montree-dev/alertguard/database/models"
	"github.com/l3montree-dev/alertguard/dtos"
	"github.com/l3montree-dev/alertguard/mocks"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAlertControllerList(t *testing.T) {
	t.Run("should return 400 for an invalid state filter", func(t *testing.T) {
		alertRepository := mocks.NewAlertRepository(t)
		dismissalService := mocks.NewDismissalService(t)
		controller := NewAlertController(alertRepository, dismissalService)

		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/alerts?state=bogus", nil)
		rec := httptest.NewRecorder()
		ctx := e.NewContext(req, rec)

		err := controller.List(ctx)

		assert.NotNil(t, err)
		assert.Equal(t, 400, err.(*echo.HTTPError).Code)
	})

	t.Run("should pass the parsed filters to the repository", func(t *testing.T) {
		alertRepository := mocks.NewAlertRepository(t)
		dismissalService := mocks.NewDismissalService(t)
		state := dtos.AlertStateOpen
		applicable := true
		alertRepository.On("List", mock.Anything, &state, &applicable).Return([]models.Alert{}, nil)
		controller := NewAlertController(alertRepository, dismissalService)

		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/alerts?state=open&applicable=true", nil)
		rec := httptest.NewRecorder()
		ctx := e.NewContext(req, rec)

		err := controller.List(ctx)

		assert.Nil(t, err)
		assert.Equal(t, 200, rec.Code)
	})
}

func TestAlertControllerDismiss(t *testing.T) {
	t.Run("should return 400 for an invalid dismiss reason", func(t *testing.T) {
		alertRepository := mocks.NewAlertRepository(t)
		dismissalService := mocks.NewDismissalService(t)
		controller := NewAlertController(alertRepository, dismissalService)

		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"reason": "because", "comment": "nope"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		ctx := e.NewContext(req, rec)
		ctx.SetParamNames("owner", "repo", "alertNumber")
		ctx.SetParamValues("acme", "billing", "4")

		err := controller.Dismiss(ctx)

		assert.NotNil(t, err)
		assert.Equal(t, 400, err.(*echo.HTTPError).Code)
		dismissalService.AssertNotCalled(t, "DismissManually", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("should return 400 for a non-numeric alert number", func(t *testing.T) {
		alertRepository := mocks.NewAlertRepository(t)
		dismissalService := mocks.NewDismissalService(t)
		controller := NewAlertController(alertRepository, dismissalService)

		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"reason": "not_used", "comment": "dev-only"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		ctx := e.NewContext(req, rec)
		ctx.SetParamNames("owner", "repo", "alertNumber")
		ctx.SetParamValues("acme", "billing", "four")

		err := controller.Dismiss(ctx)

		assert.NotNil(t, err)
		assert.Equal(t, 400, err.(*echo.HTTPError).Code)
	})

	t.Run("should dismiss the alert via the service", func(t *testing.T) {
		alertRepository := mocks.NewAlertRepository(t)
		dismissalService := mocks.NewDismissalService(t)
		dismissalService.On("DismissManually", mock.Anything, "acme/billing", int64(4), dtos.DismissReasonNotUsed, "dev-only").
			Return(models.Alert{State: dtos.AlertStateDismissed}, nil)
		controller := NewAlertController(alertRepository, dismissalService)

		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"reason": "not_used", "comment": "dev-only"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		ctx := e.NewContext(req, rec)
		ctx.SetParamNames("owner", "repo", "alertNumber")
		ctx.SetParamValues("acme", "billing", "4")

		err := controller.Dismiss(ctx)

		assert.Nil(t, err)
		assert.Equal(t, 200, rec.Code)
	})
}
