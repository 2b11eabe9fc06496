package services

import (
	"context"
	"testing"

	"github.com/l3montree-dev/alertguard/database/models"
	"github.com/l3montree-dev/alertguard/dtos"
	"github.com/l3montree-dev/alertguard/mocks"
	"github.com/l3montree-dev/alertguard/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func openAlert(repositoryFullName string, upstreamID int64, mutate func(alert *models.Alert)) models.Alert {
	alert := models.Alert{
		RepositoryFullName: repositoryFullName,
		Kind:               dtos.AlertKindDependabot,
		UpstreamID:         upstreamID,
		State:              dtos.AlertStateOpen,
		Severity:           dtos.SeverityMedium,
		Ecosystem:          "npm",
		PackageName:        "left-pad",
		Scope:              dtos.ScopeRuntime,
		Summary:            "Prototype pollution",
	}
	if mutate != nil {
		mutate(&alert)
	}
	return alert
}

func TestScanServiceRun(t *testing.T) {
	t.Run("should continue with the remaining repositories when one fails", func(t *testing.T) {
		githubClient := mocks.NewGithubClient(t)
		alertRepository := mocks.NewAlertRepository(t)
		ruleRepository := mocks.NewApplicabilityRuleRepository(t)
		scanRunRepository := mocks.NewScanRunRepository(t)
		dismissalService := mocks.NewDismissalService(t)

		scanRunRepository.On("Create", mock.Anything, mock.Anything).Return(nil)
		scanRunRepository.On("Save", mock.Anything, mock.Anything).Return(nil)
		ruleRepository.On("FindActive", mock.Anything).Return([]models.ApplicabilityRule{}, nil)

		githubClient.On("ListRepositories", mock.Anything).Return([]string{"acme/one", "acme/two", "acme/three"}, nil)
		githubClient.On("ListOpenAlerts", mock.Anything, "acme/one").Return([]models.Alert{openAlert("acme/one", 1, nil)}, nil)
		githubClient.On("ListOpenAlerts", mock.Anything, "acme/two").Return(nil, assert.AnError)
		githubClient.On("ListOpenAlerts", mock.Anything, "acme/three").Return([]models.Alert{openAlert("acme/three", 7, nil)}, nil)

		alertRepository.On("UpsertFromScan", mock.Anything, mock.Anything).Return(nil)

		service := NewScanService(githubClient, alertRepository, ruleRepository, scanRunRepository, dismissalService, nil)
		run, err := service.Run(context.Background(), dtos.TriggerManual)

		assert.Nil(t, err)
		assert.True(t, run.Success)
		assert.Equal(t, 2, run.ReposScanned)
		assert.Equal(t, 2, run.AlertsFound)
		assert.Len(t, run.Errors, 1)
		assert.Contains(t, run.Errors[0], "acme/two")
	})

	t.Run("should mark the run as unsuccessful when the repository enumeration fails", func(t *testing.T) {
		githubClient := mocks.NewGithubClient(t)
		alertRepository := mocks.NewAlertRepository(t)
		ruleRepository := mocks.NewApplicabilityRuleRepository(t)
		scanRunRepository := mocks.NewScanRunRepository(t)
		dismissalService := mocks.NewDismissalService(t)

		scanRunRepository.On("Create", mock.Anything, mock.Anything).Return(nil)
		scanRunRepository.On("Save", mock.Anything, mock.Anything).Return(nil)
		githubClient.On("ListRepositories", mock.Anything).Return(nil, assert.AnError)

		service := NewScanService(githubClient, alertRepository, ruleRepository, scanRunRepository, dismissalService, nil)
		run, err := service.Run(context.Background(), dtos.TriggerScheduled)

		assert.Nil(t, err)
		assert.False(t, run.Success)
		assert.Equal(t, 0, run.ReposScanned)
		assert.Len(t, run.Errors, 1)
		assert.NotNil(t, run.CompletedAt)
	})

	t.Run("should auto-dismiss a non-applicable alert with a dismiss reason", func(t *testing.T) {
		githubClient := mocks.NewGithubClient(t)
		alertRepository := mocks.NewAlertRepository(t)
		ruleRepository := mocks.NewApplicabilityRuleRepository(t)
		scanRunRepository := mocks.NewScanRunRepository(t)
		dismissalService := mocks.NewDismissalService(t)

		rule := models.ApplicabilityRule{
			PackageName:   utils.Ptr("left-pad"),
			Applicable:    false,
			Reason:        "dev-only tooling",
			DismissReason: utils.Ptr(dtos.DismissReasonNotUsed),
			Active:        true,
		}

		scanRunRepository.On("Create", mock.Anything, mock.Anything).Return(nil)
		scanRunRepository.On("Save", mock.Anything, mock.Anything).Return(nil)
		ruleRepository.On("FindActive", mock.Anything).Return([]models.ApplicabilityRule{rule}, nil)
		githubClient.On("ListRepositories", mock.Anything).Return([]string{"acme/one"}, nil)
		githubClient.On("ListOpenAlerts", mock.Anything, "acme/one").Return([]models.Alert{openAlert("acme/one", 1, nil)}, nil)
		alertRepository.On("UpsertFromScan", mock.Anything, mock.Anything).Return(nil)
		dismissalService.On("AutoDismiss", mock.Anything, mock.Anything, dtos.DismissReasonNotUsed, "dev-only tooling").Return(nil)

		service := NewScanService(githubClient, alertRepository, ruleRepository, scanRunRepository, dismissalService, nil)
		run, err := service.Run(context.Background(), dtos.TriggerManual)

		assert.Nil(t, err)
		assert.Equal(t, 1, run.AlertsAutoClosed)
		assert.True(t, run.Success)
	})

	t.Run("should never dismiss an applicable alert", func(t *testing.T) {
		githubClient := mocks.NewGithubClient(t)
		alertRepository := mocks.NewAlertRepository(t)
		ruleRepository := mocks.NewApplicabilityRuleRepository(t)
		scanRunRepository := mocks.NewScanRunRepository(t)
		dismissalService := mocks.NewDismissalService(t)

		// the rule marks the alert applicable but carries an incidental
		// dismiss reason from a copy-paste - it must not trigger a dismissal
		rule := models.ApplicabilityRule{
			PackageName:   utils.Ptr("left-pad"),
			Applicable:    true,
			Reason:        "reviewed, reachable in production",
			DismissReason: utils.Ptr(dtos.DismissReasonTolerableRisk),
			Active:        true,
		}

		scanRunRepository.On("Create", mock.Anything, mock.Anything).Return(nil)
		scanRunRepository.On("Save", mock.Anything, mock.Anything).Return(nil)
		ruleRepository.On("FindActive", mock.Anything).Return([]models.ApplicabilityRule{rule}, nil)
		githubClient.On("ListRepositories", mock.Anything).Return([]string{"acme/one"}, nil)
		githubClient.On("ListOpenAlerts", mock.Anything, "acme/one").Return([]models.Alert{openAlert("acme/one", 1, nil)}, nil)
		alertRepository.On("UpsertFromScan", mock.Anything, mock.Anything).Return(nil)

		service := NewScanService(githubClient, alertRepository, ruleRepository, scanRunRepository, dismissalService, nil)
		run, err := service.Run(context.Background(), dtos.TriggerManual)

		assert.Nil(t, err)
		assert.Equal(t, 0, run.AlertsAutoClosed)
		dismissalService.AssertNotCalled(t, "AutoDismiss", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("should not dismiss a non-applicable alert without a dismiss reason", func(t *testing.T) {
		githubClient := mocks.NewGithubClient(t)
		alertRepository := mocks.NewAlertRepository(t)
		ruleRepository := mocks.NewApplicabilityRuleRepository(t)
		scanRunRepository := mocks.NewScanRunRepository(t)
		dismissalService := mocks.NewDismissalService(t)

		rule := models.ApplicabilityRule{
			PackageName: utils.Ptr("left-pad"),
			Applicable:  false,
			Reason:      "needs review",
			Active:      true,
		}

		scanRunRepository.On("Create", mock.Anything, mock.Anything).Return(nil)
		scanRunRepository.On("Save", mock.Anything, mock.Anything).Return(nil)
		ruleRepository.On("FindActive", mock.Anything).Return([]models.ApplicabilityRule{rule}, nil)
		githubClient.On("ListRepositories", mock.Anything).Return([]string{"acme/one"}, nil)
		githubClient.On("ListOpenAlerts", mock.Anything, "acme/one").Return([]models.Alert{openAlert("acme/one", 1, nil)}, nil)
		alertRepository.On("UpsertFromScan", mock.Anything, mock.Anything).Return(nil)

		service := NewScanService(githubClient, alertRepository, ruleRepository, scanRunRepository, dismissalService, nil)
		run, err := service.Run(context.Background(), dtos.TriggerManual)

		assert.Nil(t, err)
		assert.Equal(t, 0, run.AlertsAutoClosed)
		assert.Equal(t, 1, run.AlertsFound)
	})

	t.Run("should record a per-alert failure without failing the repository", func(t *testing.T) {
		githubClient := mocks.NewGithubClient(t)
		alertRepository := mocks.NewAlertRepository(t)
		ruleRepository := mocks.NewApplicabilityRuleRepository(t)
		scanRunRepository := mocks.NewScanRunRepository(t)
		dismissalService := mocks.NewDismissalService(t)

		scanRunRepository.On("Create", mock.Anything, mock.Anything).Return(nil)
		scanRunRepository.On("Save", mock.Anything, mock.Anything).Return(nil)
		ruleRepository.On("FindActive", mock.Anything).Return([]models.ApplicabilityRule{}, nil)
		githubClient.On("ListRepositories", mock.Anything).Return([]string{"acme/one"}, nil)
		githubClient.On("ListOpenAlerts", mock.Anything, "acme/one").Return([]models.Alert{
			openAlert("acme/one", 1, nil),
			openAlert("acme/one", 2, nil),
		}, nil)
		alertRepository.On("UpsertFromScan", mock.Anything, mock.MatchedBy(func(alert *models.Alert) bool {
			return alert.UpstreamID == 1
		})).Return(assert.AnError)
		alertRepository.On("UpsertFromScan", mock.Anything, mock.MatchedBy(func(alert *models.Alert) bool {
			return alert.UpstreamID == 2
		})).Return(nil)

		service := NewScanService(githubClient, alertRepository, ruleRepository, scanRunRepository, dismissalService, nil)
		run, err := service.Run(context.Background(), dtos.TriggerManual)

		assert.Nil(t, err)
		assert.True(t, run.Success)
		assert.Equal(t, 1, run.ReposScanned)
		assert.Equal(t, 1, run.AlertsFound)
		assert.Len(t, run.Errors, 1)
		assert.Contains(t, run.Errors[0], "acme/one#1")
	})
}

func TestScanServiceRunForRepository(t *testing.T) {
	t.Run("should scan only the given repository", func(t *testing.T) {
		githubClient := mocks.NewGithubClient(t)
		alertRepository := mocks.NewAlertRepository(t)
		ruleRepository := mocks.NewApplicabilityRuleRepository(t)
		scanRunRepository := mocks.NewScanRunRepository(t)
		dismissalService := mocks.NewDismissalService(t)

		scanRunRepository.On("Create", mock.Anything, mock.Anything).Return(nil)
		scanRunRepository.On("Save", mock.Anything, mock.Anything).Return(nil)
		ruleRepository.On("FindActive", mock.Anything).Return([]models.ApplicabilityRule{}, nil)
		githubClient.On("ListOpenAlerts", mock.Anything, "acme/billing").Return([]models.Alert{openAlert("acme/billing", 3, nil)}, nil)
		alertRepository.On("UpsertFromScan", mock.Anything, mock.Anything).Return(nil)

		service := NewScanService(githubClient, alertRepository, ruleRepository, scanRunRepository, dismissalService, nil)
		run, err := service.RunForRepository(context.Background(), "acme/billing", dtos.TriggerWebhook)

		assert.Nil(t, err)
		assert.True(t, run.Success)
		assert.Equal(t, 1, run.ReposScanned)
		assert.Equal(t, 1, run.AlertsFound)
		assert.Equal(t, dtos.TriggerWebhook, run.Trigger)
		githubClient.AssertNotCalled(t, "ListRepositories", mock.Anything)
	})
}
