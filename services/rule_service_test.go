package services

import (
	"testing"

	"github.com/l3montree-dev/alertguard/database/models"
	"github.com/l3montree-dev/alertguard/dtos"
	"github.com/l3montree-dev/alertguard/mocks"
	"github.com/l3montree-dev/alertguard/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestRuleServiceCreate(t *testing.T) {
	t.Run("should reject a rule without a reason", func(t *testing.T) {
		ruleRepository := mocks.NewApplicabilityRuleRepository(t)
		service := NewRuleService(ruleRepository)

		err := service.Create(&models.ApplicabilityRule{Applicable: true})

		assert.NotNil(t, err)
		ruleRepository.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("should reject a non-applicable rule without a dismiss reason", func(t *testing.T) {
		ruleRepository := mocks.NewApplicabilityRuleRepository(t)
		service := NewRuleService(ruleRepository)

		err := service.Create(&models.ApplicabilityRule{
			Applicable: false,
			Reason:     "dev-only",
		})

		assert.NotNil(t, err)
	})

	t.Run("should reject a broken expression at creation time", func(t *testing.T) {
		ruleRepository := mocks.NewApplicabilityRuleRepository(t)
		service := NewRuleService(ruleRepository)

		err := service.Create(&models.ApplicabilityRule{
			Applicable: true,
			Reason:     "reviewed",
			Expression: utils.Ptr("this is not (( an expression"),
		})

		assert.NotNil(t, err)
	})

	t.Run("should reject an invalid dismiss reason", func(t *testing.T) {
		ruleRepository := mocks.NewApplicabilityRuleRepository(t)
		service := NewRuleService(ruleRepository)

		err := service.Create(&models.ApplicabilityRule{
			Applicable:    false,
			Reason:        "dev-only",
			DismissReason: utils.Ptr(dtos.DismissReason("because")),
		})

		assert.NotNil(t, err)
	})

	t.Run("should store a valid rule", func(t *testing.T) {
		ruleRepository := mocks.NewApplicabilityRuleRepository(t)
		ruleRepository.On("Create", mock.Anything, mock.Anything).Return(nil)
		service := NewRuleService(ruleRepository)

		err := service.Create(&models.ApplicabilityRule{
			PackageName:   utils.Ptr("left-pad"),
			Ecosystem:     utils.Ptr("npm"),
			Expression:    utils.Ptr(`repository startsWith "acme/"`),
			Applicable:    false,
			Reason:        "dev-only",
			DismissReason: utils.Ptr(dtos.DismissReasonNotUsed),
			Priority:      5,
			Active:        true,
		})

		assert.Nil(t, err)
	})
}
