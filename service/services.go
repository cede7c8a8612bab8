// service/services.go
package service

import (
	"github.com/jupiterai/jupiterctl/client"
	"github.com/jupiterai/jupiterctl/util"
)

type Services struct {
	User       IUserService
	Model      IModelService
	Assignment IAssignmentService
	Usage      IUsageService
	Billing    IBillingService
	Discount   IDiscountService
	Admin      IAdminService
}

func InitializeServices(
	api *client.Client,
	validationUtil *util.ValidationUtil,
	eventBus *util.EventBus,
) (*Services, error) {
	services := &Services{
		User:       NewUserService(api, validationUtil, eventBus),
		Model:      NewModelService(api),
		Assignment: NewAssignmentService(api, validationUtil, eventBus),
		Usage:      NewUsageService(api, api),
		Billing:    NewBillingService(api, eventBus),
		Discount:   NewDiscountService(api, eventBus),
		Admin:      NewAdminService(api),
	}

	return services, nil
}
