package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/l3montree-dev/alertguard/mocks"
	"github.com/l3montree-dev/alertguard/services"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestRuleControllerCreate(t *testing.T) {
	t.Run("should return 400 if the reason is missing", func(t *testing.T) {
		ruleRepository := mocks.NewApplicabilityRuleRepository(t)
		controller := NewRuleController(services.NewRuleService(ruleRepository))

		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/rules", strings.NewReader(`{"applicable": true}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		ctx := e.NewContext(req, rec)

		err := controller.Create(ctx)

		assert.NotNil(t, err)
		assert.Equal(t, 400, err.(*echo.HTTPError).Code)
		ruleRepository.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("should return 400 if a non-applicable rule has no dismiss reason", func(t *testing.T) {
		ruleRepository := mocks.NewApplicabilityRuleRepository(t)
		controller := NewRuleController(services.NewRuleService(ruleRepository))

		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/rules", strings.NewReader(`{"applicable": false, "reason": "dev-only"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		ctx := e.NewContext(req, rec)

		err := controller.Create(ctx)

		assert.NotNil(t, err)
		assert.Equal(t, 400, err.(*echo.HTTPError).Code)
	})

	t.Run("should create a valid rule with active defaulting to true", func(t *testing.T) {
		ruleRepository := mocks.NewApplicabilityRuleRepository(t)
		ruleRepository.On("Create", mock.Anything, mock.Anything).Return(nil)
		controller := NewRuleController(services.NewRuleService(ruleRepository))

		e := echo.New()
		body := `{"packageName": "left-pad", "ecosystem": "npm", "applicable": false, "reason": "dev-only", "dismissReason": "not_used", "priority": 5}`
		req := httptest.NewRequest(http.MethodPost, "/rules", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		ctx := e.NewContext(req, rec)

		err := controller.Create(ctx)

		assert.Nil(t, err)
		assert.Equal(t, 201, rec.Code)
		assert.Contains(t, rec.Body.String(), `"active":true`)
	})
}

func TestRuleControllerList(t *testing.T) {
	t.Run("should return 500 if the repository fails", func(t *testing.T) {
		ruleRepository := mocks.NewApplicabilityRuleRepository(t)
		ruleRepository.On("FindAll", mock.Anything).Return(nil, assert.AnError)
		controller := NewRuleController(services.NewRuleService(ruleRepository))

		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/rules", nil)
		rec := httptest.NewRecorder()
		ctx := e.NewContext(req, rec)

		err := controller.List(ctx)

		assert.NotNil(t, err)
		assert.Equal(t, 500, err.(*echo.HTTPError).Code)
	})
}
