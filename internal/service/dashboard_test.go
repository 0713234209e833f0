package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/agroconecta/console/internal/domain/model"
	apperrors "github.com/agroconecta/console/internal/errors"
	"github.com/agroconecta/console/internal/mocks"
)

func newDashboardMocks(t *testing.T) (*mocks.MockClientGateway, *mocks.MockProductGateway, *mocks.MockOrderGateway, *mocks.MockUserGateway) {
	ctrl := gomock.NewController(t)
	return mocks.NewMockClientGateway(ctrl),
		mocks.NewMockProductGateway(ctrl),
		mocks.NewMockOrderGateway(ctrl),
		mocks.NewMockUserGateway(ctrl)
}

func TestDashboardService_Summary(t *testing.T) {
	clients, products, orders, users := newDashboardMocks(t)

	clients.EXPECT().Statistics(gomock.Any()).Return(&model.ClientStatistics{Total: 12, Active: 10}, nil)
	products.EXPECT().Statistics(gomock.Any()).Return(&model.ProductStatistics{Total: 40, OutOfStock: 3}, nil)
	orders.EXPECT().Statistics(gomock.Any()).Return(&model.OrderStatistics{Total: 55, Pending: 7}, nil)
	users.EXPECT().Statistics(gomock.Any()).Return(&model.UserStatistics{Total: 9}, nil)

	svc := NewDashboardService(clients, products, orders, users, nil)
	summary, err := svc.Summary(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 12, summary.Clients.Total)
	assert.Equal(t, 3, summary.Products.OutOfStock)
	assert.Equal(t, 7, summary.Orders.Pending)
	assert.Equal(t, 9, summary.Users.Total)
}

func TestDashboardService_Summary_FirstFailureWins(t *testing.T) {
	clients, products, orders, users := newDashboardMocks(t)

	clients.EXPECT().Statistics(gomock.Any()).Return(&model.ClientStatistics{}, nil).AnyTimes()
	products.EXPECT().Statistics(gomock.Any()).Return(nil, apperrors.Upstream("marketplace API unreachable", nil))
	orders.EXPECT().Statistics(gomock.Any()).Return(&model.OrderStatistics{}, nil).AnyTimes()
	users.EXPECT().Statistics(gomock.Any()).Return(&model.UserStatistics{}, nil).AnyTimes()

	svc := NewDashboardService(clients, products, orders, users, nil)
	summary, err := svc.Summary(context.Background())

	require.Error(t, err)
	assert.Nil(t, summary)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeUpstream))
}
