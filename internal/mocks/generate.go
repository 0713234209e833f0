// Package mocks provides gomock mocks for the marketplace gateway
// interfaces in internal/core.
//
// To regenerate after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	gw := mocks.NewMockOrderGateway(ctrl)
//	gw.EXPECT().Statistics(gomock.Any()).Return(&stats, nil)
package mocks

//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=client_gateway_mock.go github.com/agroconecta/console/internal/core ClientGateway

//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=product_gateway_mock.go github.com/agroconecta/console/internal/core ProductGateway

//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=order_gateway_mock.go github.com/agroconecta/console/internal/core OrderGateway

//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=user_gateway_mock.go github.com/agroconecta/console/internal/core UserGateway
