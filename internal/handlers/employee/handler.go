package employee

import (
	"net/http"

	"hotel/infras/otel"
	"hotel/internal/domains/employee/model/dto"
	"hotel/internal/domains/employee/service"
	"hotel/shared/constant"
	"hotel/shared/validator"
	"hotel/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Employee
	otel    otel.Otel
}

func New(service service.Employee, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/employees", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetEmployees)
		routerGroup.Post("/", handler.CreateEmployee)
		routerGroup.Get("/role/{role}", handler.GetEmployeesByRole)
		routerGroup.Get("/search", handler.SearchEmployees)
		routerGroup.Get("/{id}", handler.GetEmployeeByID)
		routerGroup.Put("/{id}", handler.UpdateEmployee)
		routerGroup.Delete("/{id}", handler.DeleteEmployee)
	})
}

// GetEmployees lists every employee in insertion order.
// @Summary Get all employees
// @Tags Employee
// @Produce json
// @Success 200 {array} dto.EmployeeResponse
// @Failure 500 {object} response.Message
// @Router /api/employees [get]
func (handler *Handler) GetEmployees(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEmployees")
	defer scope.End()

	employees, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get employees")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, employees)
}

// GetEmployeeByID retrieves an employee by its ID.
// @Summary Get an employee by ID
// @Tags Employee
// @Produce json
// @Param id path string true "Employee ID"
// @Success 200 {object} dto.EmployeeResponse
// @Failure 404 {object} response.Message
// @Failure 500 {object} response.Message
// @Router /api/employees/{id} [get]
func (handler *Handler) GetEmployeeByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEmployeeByID")
	defer scope.End()

	employee, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get employee by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, employee)
}

// CreateEmployee handles the creation of a new employee.
// @Summary Create a new employee
// @Tags Employee
// @Accept json
// @Produce json
// @Param request body dto.EmployeeRequest true "Employee"
// @Success 201 {object} dto.EmployeeResponse
// @Failure 400 {object} response.Message
// @Failure 500 {object} response.Message
// @Router /api/employees [post]
func (handler *Handler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateEmployee")
	defer scope.End()

	var req dto.EmployeeRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	employee, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create employee")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Employee created " + employee.ID)

	response.WithCreated(w, constant.APIPrefix+"/employees/"+employee.ID, employee)
}

// UpdateEmployee replaces every mutable field. A body id must match the path id.
// @Summary Update an employee by ID
// @Tags Employee
// @Accept json
// @Produce json
// @Param id path string true "Employee ID"
// @Param request body dto.EmployeeRequest true "Employee"
// @Success 200 {object} dto.EmployeeResponse
// @Failure 400 {object} response.Message
// @Failure 404 {object} response.Message
// @Failure 500 {object} response.Message
// @Router /api/employees/{id} [put]
func (handler *Handler) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateEmployee")
	defer scope.End()

	var req dto.EmployeeRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	employee, err := handler.service.Update(ctx, chi.URLParam(r, constant.RequestParamID), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update employee")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, employee)
}

// DeleteEmployee deletes an employee by its ID.
// @Summary Delete an employee by ID
// @Tags Employee
// @Param id path string true "Employee ID"
// @Success 204
// @Failure 404 {object} response.Message
// @Failure 500 {object} response.Message
// @Router /api/employees/{id} [delete]
func (handler *Handler) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteEmployee")
	defer scope.End()

	if err := handler.service.Delete(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete employee")

		response.WithError(w, err)

		return
	}

	response.WithNoContent(w)
}

// GetEmployeesByRole lists the employees holding a job title.
// @Summary Get employees by role
// @Tags Employee
// @Produce json
// @Param role path string true "Job title"
// @Success 200 {array} dto.EmployeeResponse
// @Failure 500 {object} response.Message
// @Router /api/employees/role/{role} [get]
func (handler *Handler) GetEmployeesByRole(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEmployeesByRole")
	defer scope.End()

	employees, err := handler.service.GetByRole(ctx, chi.URLParam(r, constant.RequestParamRole))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get employees by role")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, employees)
}

// SearchEmployees matches the query against name, email and phone.
// @Summary Search employees
// @Tags Employee
// @Produce json
// @Param query query string false "Text to match"
// @Success 200 {array} dto.EmployeeResponse
// @Failure 500 {object} response.Message
// @Router /api/employees/search [get]
func (handler *Handler) SearchEmployees(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SearchEmployees")
	defer scope.End()

	employees, err := handler.service.Search(ctx, r.URL.Query().Get(constant.RequestParamQuery))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to search employees")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, employees)
}
