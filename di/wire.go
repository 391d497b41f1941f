//go:build wireinject
// +build wireinject

package di

import (
	"hotel/config"
	"hotel/infras/jwt"
	"hotel/infras/kafka"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/infras/redis"
	"hotel/permissions"
	"hotel/shared/cache"
	"hotel/shared/event"
	"hotel/transport/http"
	"hotel/transport/http/middleware"
	"hotel/transport/http/router"

	accountRepository "hotel/internal/domains/account/repository"
	accountService "hotel/internal/domains/account/service"
	authService "hotel/internal/domains/auth/service"
	billRepository "hotel/internal/domains/bill/repository"
	billService "hotel/internal/domains/bill/service"
	bookingRepository "hotel/internal/domains/booking/repository"
	bookingService "hotel/internal/domains/booking/service"
	customerRepository "hotel/internal/domains/customer/repository"
	customerService "hotel/internal/domains/customer/service"
	employeeRepository "hotel/internal/domains/employee/repository"
	employeeService "hotel/internal/domains/employee/service"
	roomRepository "hotel/internal/domains/room/repository"
	roomService "hotel/internal/domains/room/service"
	roomTypeRepository "hotel/internal/domains/roomtype/repository"
	roomTypeService "hotel/internal/domains/roomtype/service"
	settingRepository "hotel/internal/domains/setting/repository"
	settingService "hotel/internal/domains/setting/service"

	accountHandler "hotel/internal/handlers/account"
	authHandler "hotel/internal/handlers/auth"
	billHandler "hotel/internal/handlers/bill"
	bookingHandler "hotel/internal/handlers/booking"
	customerHandler "hotel/internal/handlers/customer"
	employeeHandler "hotel/internal/handlers/employee"
	roomHandler "hotel/internal/handlers/room"
	roomTypeHandler "hotel/internal/handlers/roomtype"
	settingHandler "hotel/internal/handlers/setting"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	event.NewPublisher,
)

var customerDomain = wire.NewSet(
	customerRepository.New,
	customerService.New,
)

var employeeDomain = wire.NewSet(
	employeeRepository.New,
	employeeService.New,
)

var accountDomain = wire.NewSet(
	accountRepository.New,
	accountService.New,
)

var roomTypeDomain = wire.NewSet(
	roomTypeRepository.New,
	roomTypeService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var billDomain = wire.NewSet(
	billRepository.New,
	billService.New,
)

var settingDomain = wire.NewSet(
	settingRepository.New,
	settingService.New,
)

var authDomain = wire.NewSet(
	authService.New,
	wire.Bind(new(http.Bootstrapper), new(authService.Auth)),
)

var domains = wire.NewSet(
	customerDomain,
	employeeDomain,
	accountDomain,
	roomTypeDomain,
	roomDomain,
	bookingDomain,
	billDomain,
	settingDomain,
	authDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	customerHandler.New,
	employeeHandler.New,
	accountHandler.New,
	roomTypeHandler.New,
	roomHandler.New,
	bookingHandler.New,
	billHandler.New,
	settingHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
