package services

import (
	"context"
	"testing"

	"github.com/l3montree-dev/alertguard/database/models"
	"github.com/l3montree-dev/alertguard/dtos"
	"github.com/l3montree-dev/alertguard/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAutoDismiss(t *testing.T) {
	t.Run("should refuse to dismiss an applicable alert", func(t *testing.T) {
		githubClient := mocks.NewGithubClient(t)
		alertRepository := mocks.NewAlertRepository(t)

		alert := openAlert("acme/billing", 1, func(alert *models.Alert) {
			alert.Applicable = true
		})

		service := NewDismissalService(githubClient, alertRepository)
		err := service.AutoDismiss(context.Background(), &alert, dtos.DismissReasonNotUsed, "dev-only")

		assert.NotNil(t, err)
		githubClient.AssertNotCalled(t, "DismissAlert", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("should refuse an invalid dismiss reason", func(t *testing.T) {
		githubClient := mocks.NewGithubClient(t)
		alertRepository := mocks.NewAlertRepository(t)

		alert := openAlert("acme/billing", 1, func(alert *models.Alert) {
			alert.Applicable = false
		})

		service := NewDismissalService(githubClient, alertRepository)
		err := service.AutoDismiss(context.Background(), &alert, dtos.DismissReason("because"), "dev-only")

		assert.NotNil(t, err)
	})

	t.Run("should not mark the alert closed locally when the upstream dismissal fails", func(t *testing.T) {
		githubClient := mocks.NewGithubClient(t)
		alertRepository := mocks.NewAlertRepository(t)

		alert := openAlert("acme/billing", 1, func(alert *models.Alert) {
			alert.Applicable = false
		})

		githubClient.On("DismissAlert", mock.Anything, "acme/billing", int64(1), dtos.DismissReasonNotUsed, mock.Anything).Return(assert.AnError)

		service := NewDismissalService(githubClient, alertRepository)
		err := service.AutoDismiss(context.Background(), &alert, dtos.DismissReasonNotUsed, "dev-only")

		assert.NotNil(t, err)
		alertRepository.AssertNotCalled(t, "MarkAutoClosed", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("should dismiss upstream with the bot comment prefix and mark the alert closed", func(t *testing.T) {
		githubClient := mocks.NewGithubClient(t)
		alertRepository := mocks.NewAlertRepository(t)

		alert := openAlert("acme/billing", 1, func(alert *models.Alert) {
			alert.Applicable = false
		})

		githubClient.On("DismissAlert", mock.Anything, "acme/billing", int64(1), dtos.DismissReasonNotUsed, "[alertguard] dev-only").Return(nil)
		alertRepository.On("MarkAutoClosed", mock.Anything, &alert, "dev-only").Return(nil)

		service := NewDismissalService(githubClient, alertRepository)
		err := service.AutoDismiss(context.Background(), &alert, dtos.DismissReasonNotUsed, "dev-only")

		assert.Nil(t, err)
	})

	t.Run("should surface the error when the alert is dismissed upstream but cannot be marked closed locally", func(t *testing.T) {
		githubClient := mocks.NewGithubClient(t)
		alertRepository := mocks.NewAlertRepository(t)

		alert := openAlert("acme/billing", 1, func(alert *models.Alert) {
			alert.Applicable = false
		})

		githubClient.On("DismissAlert", mock.Anything, "acme/billing", int64(1), dtos.DismissReasonNotUsed, "[alertguard] dev-only").Return(nil)
		alertRepository.On("MarkAutoClosed", mock.Anything, &alert, "dev-only").Return(assert.AnError)

		service := NewDismissalService(githubClient, alertRepository)
		err := service.AutoDismiss(context.Background(), &alert, dtos.DismissReasonNotUsed, "dev-only")

		assert.NotNil(t, err)
		assert.Contains(t, err.Error(), "could not be marked closed locally")
	})
}

func TestDismissManually(t *testing.T) {
	t.Run("should dismiss an open alert and persist the state change", func(t *testing.T) {
		githubClient := mocks.NewGithubClient(t)
		alertRepository := mocks.NewAlertRepository(t)

		stored := openAlert("acme/billing", 4, nil)
		alertRepository.On("FindByUpstreamIdentity", mock.Anything, "acme/billing", dtos.AlertKindDependabot, int64(4)).Return(stored, nil)
		githubClient.On("DismissAlert", mock.Anything, "acme/billing", int64(4), dtos.DismissReasonTolerableRisk, "accepted by the team").Return(nil)
		alertRepository.On("Save", mock.Anything, mock.MatchedBy(func(alert *models.Alert) bool {
			return alert.State == dtos.AlertStateDismissed
		})).Return(nil)

		service := NewDismissalService(githubClient, alertRepository)
		alert, err := service.DismissManually(context.Background(), "acme/billing", 4, dtos.DismissReasonTolerableRisk, "accepted by the team")

		assert.Nil(t, err)
		assert.Equal(t, dtos.AlertStateDismissed, alert.State)
	})

	t.Run("should refuse to dismiss an alert that is not open", func(t *testing.T) {
		githubClient := mocks.NewGithubClient(t)
		alertRepository := mocks.NewAlertRepository(t)

		stored := openAlert("acme/billing", 4, func(alert *models.Alert) {
			alert.State = dtos.AlertStateAutoDismissed
		})
		alertRepository.On("FindByUpstreamIdentity", mock.Anything, "acme/billing", dtos.AlertKindDependabot, int64(4)).Return(stored, nil)

		service := NewDismissalService(githubClient, alertRepository)
		_, err := service.DismissManually(context.Background(), "acme/billing", 4, dtos.DismissReasonTolerableRisk, "accepted")

		assert.NotNil(t, err)
		githubClient.AssertNotCalled(t, "DismissAlert", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("should return the lookup error when the alert is unknown", func(t *testing.T) {
		githubClient := mocks.NewGithubClient(t)
		alertRepository := mocks.NewAlertRepository(t)

		alertRepository.On("FindByUpstreamIdentity", mock.Anything, "acme/billing", dtos.AlertKindDependabot, int64(99)).Return(models.Alert{}, assert.AnError)

		service := NewDismissalService(githubClient, alertRepository)
		_, err := service.DismissManually(context.Background(), "acme/billing", 99, dtos.DismissReasonInaccurate, "wrong")

		assert.NotNil(t, err)
	})
}
