package router

import (
	"hotel/config"
	"hotel/internal/handlers/account"
	"hotel/internal/handlers/auth"
	"hotel/internal/handlers/bill"
	"hotel/internal/handlers/booking"
	"hotel/internal/handlers/customer"
	"hotel/internal/handlers/employee"
	"hotel/internal/handlers/room"
	"hotel/internal/handlers/roomtype"
	"hotel/internal/handlers/setting"
	"hotel/shared/constant"
	"hotel/transport/http/middleware"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth     auth.Handler
	Customer customer.Handler
	Employee employee.Handler
	Account  account.Handler
	RoomType roomtype.Handler
	Room     room.Handler
	Booking  booking.Handler
	Bill     bill.Handler
	Setting  setting.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	Middleware     middleware.AuthRole
	Config         *config.Config
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route(constant.APIPrefix, func(routerGroup chi.Router) {
		if r.Config.App.Auth.Enforce {
			routerGroup.Use(r.Middleware.APIKey, r.Middleware.Auth, r.Middleware.RBAC)
		}

		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Customer.Router(routerGroup)
		r.DomainHandlers.Employee.Router(routerGroup)
		r.DomainHandlers.Account.Router(routerGroup)
		r.DomainHandlers.RoomType.Router(routerGroup)
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Bill.Router(routerGroup)
		r.DomainHandlers.Setting.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers, mw middleware.AuthRole, cfg *config.Config) Router {
	return Router{
		DomainHandlers: domainHandlers,
		Middleware:     mw,
		Config:         cfg,
	}
}
