package budget

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-insights/internal/handlers/httperr"
	"github.com/carson-networks/budget-insights/internal/operator/actions"
)

// UpsertBudgetBody is the request body for setting a monthly budget.
type UpsertBudgetBody struct {
	CategoryID   string `json:"category_id" format:"uuid" doc:"Category UUID"`
	MonthlyLimit string `json:"monthly_limit" minLength:"1" doc:"Decimal monthly limit, greater than zero"`
	Month        int    `json:"month" minimum:"1" maximum:"12" doc:"Month 1-12"`
	Year         int    `json:"year" minimum:"2000" doc:"Year"`
}

// UpsertBudgetInput is the Huma input for setting a monthly budget.
type UpsertBudgetInput struct {
	Body UpsertBudgetBody
}

// UpsertBudgetOutput is the Huma output for setting a monthly budget.
type UpsertBudgetOutput struct {
	Body Budget
}

// actionProcessor runs write actions on the operator queue.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// UpsertBudgetHandler handles PUT /v1/budget.
type UpsertBudgetHandler struct {
	Operator actionProcessor
}

func NewUpsertBudgetHandler(op actionProcessor) *UpsertBudgetHandler {
	return &UpsertBudgetHandler{Operator: op}
}

// Register registers the upsert budget endpoint with the Huma API.
func (h *UpsertBudgetHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "upsert-budget",
		Method:      http.MethodPut,
		Path:        "/v1/budget",
		Summary:     "Set budget",
		Description: "Creates the budget of a category for a month, or replaces its limit.",
		Tags:        []string{"Budgets"},
	}, h.handle)
}

// parseUpsertBudgetInput parses the string fields huma cannot type.
func parseUpsertBudgetInput(input *UpsertBudgetInput) (*actions.UpsertBudget, error) {
	categoryID, err := uuid.FromString(input.Body.CategoryID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid category_id", err)
	}
	limit, err := decimal.NewFromString(input.Body.MonthlyLimit)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid monthly_limit", err)
	}

	return &actions.UpsertBudget{
		CategoryID:   categoryID,
		MonthlyLimit: limit,
		Month:        input.Body.Month,
		Year:         input.Body.Year,
	}, nil
}

func (h *UpsertBudgetHandler) handle(ctx context.Context, input *UpsertBudgetInput) (*UpsertBudgetOutput, error) {
	action, err := parseUpsertBudgetInput(input)
	if err != nil {
		return nil, err
	}

	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, httperr.FromAction(err, "failed to set budget")
	}

	return &UpsertBudgetOutput{Body: newBudget(action.Result)}, nil
}
