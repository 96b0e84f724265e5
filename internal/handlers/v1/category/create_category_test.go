package category

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/budget-insights/internal/operator/actions"
)

type mockProcessor struct {
	mock.Mock
}

func (m *mockProcessor) Process(ctx context.Context, action actions.IAction) error {
	return m.Called(ctx, action).Error(0)
}

func newTestAPI(t *testing.T, op actionProcessor) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewCreateCategoryHandler(op).Register(api)
	return api
}

func TestHTTP_CreateCategory_Success(t *testing.T) {
	createdID := uuid.Must(uuid.NewV4())

	mockOp := new(mockProcessor)
	mockOp.On("Process", mock.Anything, mock.MatchedBy(func(a *actions.CreateCategory) bool {
		return a.Name == "Groceries" && a.Color != nil && *a.Color == "#00ff00"
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*actions.CreateCategory).CreatedID = createdID
	}).Return(nil)

	color := "#00ff00"
	resp := newTestAPI(t, mockOp).Post("/v1/category", CreateCategoryBody{Name: "Groceries", Color: &color})

	assert.Equal(t, http.StatusCreated, resp.Code)
	var body CreateCategoryResponse
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, createdID.String(), body.ID)
	mockOp.AssertExpectations(t)
}

func TestHTTP_CreateCategory_EmptyName(t *testing.T) {
	mockOp := new(mockProcessor)

	resp := newTestAPI(t, mockOp).Post("/v1/category", CreateCategoryBody{Name: ""})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockOp.AssertNotCalled(t, "Process")
}

func TestHTTP_CreateCategory_RejectedByAction(t *testing.T) {
	mockOp := new(mockProcessor)
	mockOp.On("Process", mock.Anything, mock.Anything).
		Return(fmt.Errorf("%w: color \"red\" is not #RRGGBB", actions.ErrInvalidInput))

	color := "red"
	resp := newTestAPI(t, mockOp).Post("/v1/category", CreateCategoryBody{Name: "Food", Color: &color})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestHTTP_CreateCategory_OperatorError(t *testing.T) {
	mockOp := new(mockProcessor)
	mockOp.On("Process", mock.Anything, mock.Anything).Return(errors.New("database unavailable"))

	resp := newTestAPI(t, mockOp).Post("/v1/category", CreateCategoryBody{Name: "Food"})

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}
