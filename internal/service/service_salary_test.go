package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/expense-tracker/internal/logger"
	"github.com/MKhiriev/expense-tracker/internal/mock"
	"github.com/MKhiriev/expense-tracker/internal/store"
	"github.com/MKhiriev/expense-tracker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestSalaryService(t *testing.T, ctrl *gomock.Controller) (SalaryService, *mock.MockSalaryRepository) {
	t.Helper()

	mockSalaries := mock.NewMockSalaryRepository(ctrl)
	return NewSalaryService(mockSalaries, logger.Nop()), mockSalaries
}

func TestSalaryService_CreateSalary_SetsOwnerAndDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockSalaries := newTestSalaryService(t, ctrl)
	ctx := context.Background()

	before := time.Now()
	mockSalaries.EXPECT().CreateSalary(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, salary models.Salary) (models.Salary, error) {
			assert.Equal(t, int64(9), salary.UserID)
			assert.Equal(t, 2500.0, salary.Amount)
			assert.False(t, salary.Date.Before(before), "date must be assigned at creation time")

			salary.ID = 1
			return salary, nil
		})

	created, err := svc.CreateSalary(ctx, 9, models.SalaryUpsert{
		Amount: float64Ptr(2500.0),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
}

func TestSalaryService_CreateSalary_MissingAmount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestSalaryService(t, ctrl)

	_, err := svc.CreateSalary(context.Background(), 9, models.SalaryUpsert{
		Description: strPtrOf("march paycheck"),
	})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestSalaryService_UpdateSalary_RejectsPartialPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestSalaryService(t, ctrl)

	_, err := svc.UpdateSalary(context.Background(), 1, 9, models.SalaryUpsert{})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestSalaryService_UpdateSalary_FullReplacement(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockSalaries := newTestSalaryService(t, ctrl)
	ctx := context.Background()

	mockSalaries.EXPECT().UpdateSalary(ctx, models.Salary{
		ID:     1,
		Amount: 2600.0,
		UserID: 9,
	}).Return(models.Salary{ID: 1, Amount: 2600.0, UserID: 9}, nil)

	updated, err := svc.UpdateSalary(ctx, 1, 9, models.SalaryUpsert{
		Amount: float64Ptr(2600.0),
	})
	require.NoError(t, err)
	assert.Equal(t, 2600.0, updated.Amount)
}

func TestSalaryService_GetSalary_NotFoundPassesThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockSalaries := newTestSalaryService(t, ctrl)
	ctx := context.Background()

	mockSalaries.EXPECT().GetSalary(ctx, int64(42), int64(9)).
		Return(models.Salary{}, store.ErrSalaryNotFound)

	_, err := svc.GetSalary(ctx, 42, 9)
	assert.ErrorIs(t, err, store.ErrSalaryNotFound)
}

func TestSalaryService_GetSalaries_PassesPage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockSalaries := newTestSalaryService(t, ctrl)
	ctx := context.Background()
	page := store.Page{Skip: 10, Limit: 5}

	mockSalaries.EXPECT().GetSalaries(ctx, int64(9), page).
		Return([]models.Salary{{ID: 11, UserID: 9}}, nil)

	salaries, err := svc.GetSalaries(ctx, 9, page)
	require.NoError(t, err)
	assert.Len(t, salaries, 1)
}

func TestSalaryService_DeleteSalary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockSalaries := newTestSalaryService(t, ctrl)
	ctx := context.Background()

	mockSalaries.EXPECT().DeleteSalary(ctx, int64(1), int64(9)).Return(store.ErrSalaryNotFound)

	assert.ErrorIs(t, svc.DeleteSalary(ctx, 1, 9), store.ErrSalaryNotFound)
}
