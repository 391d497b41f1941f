package account

import (
	"net/http"

	"hotel/infras/otel"
	"hotel/internal/domains/account/model/dto"
	"hotel/internal/domains/account/service"
	"hotel/shared/constant"
	"hotel/shared/validator"
	"hotel/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Account
	otel    otel.Otel
}

func New(service service.Account, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/accounts", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetAccounts)
		routerGroup.Post("/", handler.RegisterAccount)
		routerGroup.Post("/register", handler.RegisterAccount)
		routerGroup.Post("/login", handler.Login)
		routerGroup.Get("/{id}", handler.GetAccountByID)
		routerGroup.Put("/{id}", handler.UpdateAccount)
		routerGroup.Delete("/{id}", handler.DeleteAccount)
	})
}

// GetAccounts lists every account in insertion order.
// @Summary Get all accounts
// @Tags Account
// @Produce json
// @Success 200 {array} dto.AccountResponse
// @Failure 500 {object} response.Message
// @Router /api/accounts [get]
func (handler *Handler) GetAccounts(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAccounts")
	defer scope.End()

	accounts, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get accounts")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, accounts)
}

// GetAccountByID retrieves an account by its ID.
// @Summary Get an account by ID
// @Tags Account
// @Produce json
// @Param id path string true "Account ID"
// @Success 200 {object} dto.AccountResponse
// @Failure 404 {object} response.Message
// @Failure 500 {object} response.Message
// @Router /api/accounts/{id} [get]
func (handler *Handler) GetAccountByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAccountByID")
	defer scope.End()

	account, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get account by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, account)
}

// RegisterAccount creates an active account. Served on both POST /accounts and POST /accounts/register.
// @Summary Register a new account
// @Tags Account
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Account"
// @Success 201 {object} dto.AccountResponse
// @Failure 400 {object} response.Message
// @Failure 500 {object} response.Message
// @Router /api/accounts/register [post]
func (handler *Handler) RegisterAccount(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RegisterAccount")
	defer scope.End()

	var req dto.RegisterRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	account, err := handler.service.Register(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to register account")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Account registered " + account.ID)

	response.WithCreated(w, constant.APIPrefix+"/accounts/"+account.ID, account)
}

// Login checks the credentials of an active account.
// @Summary Log in with an account
// @Tags Account
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.AccountResponse
// @Failure 401 {object} response.Message
// @Failure 500 {object} response.Message
// @Router /api/accounts/login [post]
func (handler *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Login")
	defer scope.End()

	var req dto.LoginRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	account, err := handler.service.Login(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to log in")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, account)
}

// UpdateAccount overwrites the fields present in the body.
// @Summary Update an account by ID
// @Tags Account
// @Accept json
// @Produce json
// @Param id path string true "Account ID"
// @Param request body dto.UpdateAccountRequest true "Fields to change"
// @Success 200 {object} dto.AccountResponse
// @Failure 400 {object} response.Message
// @Failure 404 {object} response.Message
// @Failure 500 {object} response.Message
// @Router /api/accounts/{id} [put]
func (handler *Handler) UpdateAccount(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateAccount")
	defer scope.End()

	var req dto.UpdateAccountRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	account, err := handler.service.Update(ctx, chi.URLParam(r, constant.RequestParamID), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update account")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, account)
}

// DeleteAccount deletes an account by its ID.
// @Summary Delete an account by ID
// @Tags Account
// @Param id path string true "Account ID"
// @Success 204
// @Failure 404 {object} response.Message
// @Failure 500 {object} response.Message
// @Router /api/accounts/{id} [delete]
func (handler *Handler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteAccount")
	defer scope.End()

	if err := handler.service.Delete(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete account")

		response.WithError(w, err)

		return
	}

	response.WithNoContent(w)
}
