// util/validation_util.go

package util

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/jupiterai/jupiterctl/model"
	"github.com/jupiterai/jupiterctl/reconcile"
)

// daysPerMonth is the factor the limit forms use to sanity-check daily
// against monthly limits before anything is submitted.
const daysPerMonth = 30

type ValidationUtil struct {
	validate *validator.Validate
}

func NewValidationUtil() *ValidationUtil {
	return &ValidationUtil{validate: validator.New()}
}

// ValidateGrant checks one desired grant before it may enter a plan.
// Violations block the whole submission; nothing is sent to the backend.
func (v *ValidationUtil) ValidateGrant(grant reconcile.DesiredGrant) error {
	if !grant.Included {
		return nil
	}
	if err := v.validate.Struct(grant); err != nil {
		return err
	}
	if err := checkDailyVsMonthly("request", grant.DailyRequestLimit, grant.MonthlyRequestLimit); err != nil {
		return err
	}
	if err := checkDailyVsMonthly("token", grant.DailyTokenLimit, grant.MonthlyTokenLimit); err != nil {
		return err
	}
	return checkDailyVsMonthlyCost(grant.DailyCostLimit, grant.MonthlyCostLimit)
}

// ValidateGrants checks an entire desired set, reporting the offending model.
func (v *ValidationUtil) ValidateGrants(desired map[int64]reconcile.DesiredGrant) error {
	for modelID, grant := range desired {
		if err := v.ValidateGrant(grant); err != nil {
			return fmt.Errorf("model %d: %w", modelID, err)
		}
	}
	return nil
}

// ValidateTemplate checks the shared payload of a bulk assignment.
func (v *ValidationUtil) ValidateTemplate(tmpl model.AssignmentCreate) error {
	if tmpl.AccessLevel != "" && !validAccessLevel(tmpl.AccessLevel) {
		return fmt.Errorf("access level must be one of %v, got %q", model.AccessLevels, tmpl.AccessLevel)
	}
	for name, limit := range map[string]*int64{
		"daily request":   tmpl.DailyRequestLimit,
		"monthly request": tmpl.MonthlyRequestLimit,
		"daily token":     tmpl.DailyTokenLimit,
		"monthly token":   tmpl.MonthlyTokenLimit,
	} {
		if limit != nil && *limit < 0 {
			return fmt.Errorf("%s limit cannot be negative", name)
		}
	}
	if tmpl.DiscountPercentage < 0 || tmpl.DiscountPercentage > 100 {
		return fmt.Errorf("discount percentage must be between 0 and 100")
	}
	if tmpl.CustomCostPerToken != nil && !tmpl.CustomPricingEnabled {
		return fmt.Errorf("custom cost per token requires custom pricing to be enabled")
	}
	if tmpl.CustomCostPerRequest != nil && !tmpl.CustomPricingEnabled {
		return fmt.Errorf("custom cost per request requires custom pricing to be enabled")
	}
	if tmpl.ExpiresInDays != nil && *tmpl.ExpiresInDays <= 0 {
		return fmt.Errorf("expiry days must be positive")
	}
	if err := checkDailyVsMonthly("request", tmpl.DailyRequestLimit, tmpl.MonthlyRequestLimit); err != nil {
		return err
	}
	return checkDailyVsMonthly("token", tmpl.DailyTokenLimit, tmpl.MonthlyTokenLimit)
}

// ValidateBulkSelection checks the user/model id sets of a bulk assignment.
func (v *ValidationUtil) ValidateBulkSelection(userIDs, modelIDs []int64) error {
	if len(userIDs) == 0 {
		return fmt.Errorf("at least one user must be selected")
	}
	if len(modelIDs) == 0 {
		return fmt.Errorf("at least one model must be selected")
	}
	for _, id := range userIDs {
		if id <= 0 {
			return fmt.Errorf("invalid user id %d", id)
		}
	}
	for _, id := range modelIDs {
		if id <= 0 {
			return fmt.Errorf("invalid model id %d", id)
		}
	}
	return nil
}

// ValidateUserUpdate checks an admin edit of a user record.
func (v *ValidationUtil) ValidateUserUpdate(update model.UserUpdate) error {
	if update.MonthlyRequestLimit != nil && *update.MonthlyRequestLimit < 0 {
		return fmt.Errorf("monthly request limit cannot be negative")
	}
	if update.MonthlyTokenLimit != nil && *update.MonthlyTokenLimit < 0 {
		return fmt.Errorf("monthly token limit cannot be negative")
	}
	if update.MonthlyCostLimit != nil && *update.MonthlyCostLimit < 0 {
		return fmt.Errorf("monthly cost limit cannot be negative")
	}
	return nil
}

func validAccessLevel(level string) bool {
	for _, l := range model.AccessLevels {
		if level == l {
			return true
		}
	}
	return false
}

func checkDailyVsMonthly(kind string, daily, monthly *int64) error {
	if daily == nil || monthly == nil {
		return nil
	}
	if *daily*daysPerMonth > *monthly {
		return fmt.Errorf("daily %s limit %d over %d days exceeds monthly limit %d",
			kind, *daily, daysPerMonth, *monthly)
	}
	return nil
}

func checkDailyVsMonthlyCost(daily, monthly *float64) error {
	if daily == nil || monthly == nil {
		return nil
	}
	if *daily*daysPerMonth > *monthly {
		return fmt.Errorf("daily cost limit %.4f over %d days exceeds monthly limit %.4f",
			*daily, daysPerMonth, *monthly)
	}
	return nil
}
