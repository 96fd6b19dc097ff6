// Package account exposes the account HTTP endpoints.
package account

import (
	"strconv"

	accountsvc "github.com/amirasaad/carddemo/pkg/service/account"
	"github.com/amirasaad/carddemo/pkg/dto"
	"github.com/amirasaad/carddemo/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

// Routes registers the account endpoints.
//
// Routes:
//   - GET /api/accounts/:accountId/view   : Consolidated account + customer view.
//   - PUT /api/accounts/:accountId/update : Partial update of account and customer fields.
//   - GET /api/accounts/:accountId/cards  : Cards issued against the account.
func Routes(app *fiber.App, svc *accountsvc.Service) {
	api := app.Group("/api/accounts")
	api.Get("/:accountId/view", GetAccountView(svc))
	api.Put("/:accountId/update", UpdateAccount(svc))
	api.Get("/:accountId/cards", ListCards(svc))
}

// GetAccountView returns a Fiber handler for the consolidated account view.
// @Summary Get account view by ID
// @Description Retrieves the account joined with its customer, resolved through the card cross-reference.
// @Tags accounts
// @Produce json
// @Param accountId path int true "Account ID"
// @Success 200 {object} common.Response "Account view"
// @Failure 400 {object} common.ProblemDetails "Invalid account ID"
// @Failure 404 {object} common.ProblemDetails "Account, cross-reference, or customer not found"
// @Failure 500 {object} common.ProblemDetails "Internal server error"
// @Router /api/accounts/{accountId}/view [get]
func GetAccountView(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		accountID, err := parseAccountID(c)
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid account ID",
				"Account ID must be a positive number")
		}

		view, err := svc.GetAccountView(c.UserContext(), accountID)
		if err != nil {
			log.Errorf("Failed to get account view: %v", err)
			return common.ErrorResponseJSON(c, common.ErrorToStatusCode(err), "Failed to retrieve account view", err.Error())
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Account view retrieved", view)
	}
}

// UpdateAccount returns a Fiber handler for the partial account/customer update.
// Validation failures surface as 400 problem details carrying the message of
// the first violated rule.
// @Summary Update account and customer data
// @Description Applies every present field of the request to the account and its owning customer; absent fields are left unchanged.
// @Tags accounts
// @Accept json
// @Produce json
// @Param accountId path int true "Account ID"
// @Param request body dto.UpdateAccountRequest true "Fields to update"
// @Success 200 {object} common.Response "Account and customer updated"
// @Failure 400 {object} common.ProblemDetails "Validation failure"
// @Failure 404 {object} common.ProblemDetails "Account or customer not found"
// @Failure 500 {object} common.ProblemDetails "Internal server error"
// @Router /api/accounts/{accountId}/update [put]
func UpdateAccount(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		accountID, err := parseAccountID(c)
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid account ID",
				"Account ID must be a positive number")
		}

		input, err := common.BindAndValidate[dto.UpdateAccountRequest](c)
		if input == nil {
			return err // error response already written
		}

		if err := svc.UpdateAccount(c.UserContext(), accountID, input); err != nil {
			log.Errorf("Failed to update account: %v", err)
			return common.ErrorResponseJSON(c, common.ErrorToStatusCode(err), "Failed to update account", err.Error())
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK,
			"Account and customer information updated successfully", nil)
	}
}

// ListCards returns a Fiber handler listing the cards issued against an account.
// @Summary List cards for an account
// @Tags accounts
// @Produce json
// @Param accountId path int true "Account ID"
// @Success 200 {object} common.Response "Cards"
// @Failure 400 {object} common.ProblemDetails "Invalid account ID"
// @Failure 404 {object} common.ProblemDetails "Account not found"
// @Failure 500 {object} common.ProblemDetails "Internal server error"
// @Router /api/accounts/{accountId}/cards [get]
func ListCards(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		accountID, err := parseAccountID(c)
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid account ID",
				"Account ID must be a positive number")
		}

		cards, err := svc.ListCards(c.UserContext(), accountID)
		if err != nil {
			log.Errorf("Failed to list cards: %v", err)
			return common.ErrorResponseJSON(c, common.ErrorToStatusCode(err), "Failed to list cards", err.Error())
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Cards retrieved", cards)
	}
}

func parseAccountID(c *fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("accountId"), 10, 64)
}
