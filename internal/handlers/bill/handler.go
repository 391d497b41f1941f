package bill

import (
	"net/http"

	"hotel/infras/otel"
	"hotel/internal/domains/bill/model/dto"
	"hotel/internal/domains/bill/service"
	"hotel/shared/constant"
	"hotel/shared/validator"
	"hotel/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Bill
	otel    otel.Otel
}

func New(service service.Bill, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bills", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetBills)
		routerGroup.Post("/", handler.CreateBill)
		routerGroup.Get("/customer/{customerId}", handler.GetBillsByCustomer)
		routerGroup.Get("/date-range", handler.GetBillsByDateRange)
		routerGroup.Get("/{id}", handler.GetBillByID)
		routerGroup.Put("/{id}", handler.UpdateBill)
		routerGroup.Delete("/{id}", handler.DeleteBill)
		routerGroup.Get("/{id}/total", handler.GetBillTotal)
	})
}

// GetBills lists every bill in insertion order.
// @Summary Get all bills
// @Tags Bill
// @Produce json
// @Success 200 {array} dto.BillResponse
// @Failure 500 {object} response.Message
// @Router /api/bills [get]
func (handler *Handler) GetBills(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBills")
	defer scope.End()

	bills, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bills")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, bills)
}

// GetBillByID retrieves a bill by its ID.
// @Summary Get a bill by ID
// @Tags Bill
// @Produce json
// @Param id path string true "Bill ID"
// @Success 200 {object} dto.BillResponse
// @Failure 404 {object} response.Message
// @Failure 500 {object} response.Message
// @Router /api/bills/{id} [get]
func (handler *Handler) GetBillByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBillByID")
	defer scope.End()

	bill, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bill by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, bill)
}

// CreateBill handles the creation of a new bill.
// @Summary Create a new bill
// @Tags Bill
// @Accept json
// @Produce json
// @Param request body dto.CreateBillRequest true "Bill"
// @Success 201 {object} dto.BillResponse
// @Failure 400 {object} response.Message
// @Failure 500 {object} response.Message
// @Router /api/bills [post]
func (handler *Handler) CreateBill(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBill")
	defer scope.End()

	var req dto.CreateBillRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	bill, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create bill")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Bill created " + bill.ID)

	response.WithCreated(w, constant.APIPrefix+"/bills/"+bill.ID, bill)
}

// UpdateBill overwrites the fields present in the body.
// @Summary Update a bill by ID
// @Tags Bill
// @Accept json
// @Produce json
// @Param id path string true "Bill ID"
// @Param request body dto.UpdateBillRequest true "Fields to change"
// @Success 200 {object} dto.BillResponse
// @Failure 400 {object} response.Message
// @Failure 404 {object} response.Message
// @Failure 500 {object} response.Message
// @Router /api/bills/{id} [put]
func (handler *Handler) UpdateBill(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateBill")
	defer scope.End()

	var req dto.UpdateBillRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	bill, err := handler.service.Update(ctx, chi.URLParam(r, constant.RequestParamID), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update bill")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, bill)
}

// DeleteBill deletes a bill by its ID.
// @Summary Delete a bill by ID
// @Tags Bill
// @Param id path string true "Bill ID"
// @Success 204
// @Failure 404 {object} response.Message
// @Failure 500 {object} response.Message
// @Router /api/bills/{id} [delete]
func (handler *Handler) DeleteBill(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteBill")
	defer scope.End()

	if err := handler.service.Delete(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete bill")

		response.WithError(w, err)

		return
	}

	response.WithNoContent(w)
}

// GetBillsByCustomer lists the bills of one customer.
// @Summary Get bills by customer
// @Tags Bill
// @Produce json
// @Param customerId path string true "Customer ID"
// @Success 200 {array} dto.BillResponse
// @Failure 500 {object} response.Message
// @Router /api/bills/customer/{customerId} [get]
func (handler *Handler) GetBillsByCustomer(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBillsByCustomer")
	defer scope.End()

	bills, err := handler.service.GetByCustomer(ctx, chi.URLParam(r, constant.RequestParamCustomerID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bills by customer")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, bills)
}

// GetBillsByDateRange lists bills issued inside the range.
// @Summary Get bills by date range
// @Tags Bill
// @Produce json
// @Param startDate query string true "First issue date (ISO-8601)"
// @Param endDate query string true "Last issue date (ISO-8601)"
// @Success 200 {array} dto.BillResponse
// @Failure 400 {object} response.Message
// @Failure 500 {object} response.Message
// @Router /api/bills/date-range [get]
func (handler *Handler) GetBillsByDateRange(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBillsByDateRange")
	defer scope.End()

	query := r.URL.Query()

	bills, err := handler.service.GetByDateRange(ctx, query.Get(constant.RequestParamStartDate), query.Get(constant.RequestParamEndDate))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bills by date range")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, bills)
}

// GetBillTotal reports the amount of a bill.
// @Summary Get the total of a bill
// @Tags Bill
// @Produce json
// @Param id path string true "Bill ID"
// @Success 200 {object} response.Total
// @Failure 404 {object} response.Message
// @Failure 500 {object} response.Message
// @Router /api/bills/{id}/total [get]
func (handler *Handler) GetBillTotal(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBillTotal")
	defer scope.End()

	total, err := handler.service.Total(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bill total")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, response.Total{Total: total})
}
