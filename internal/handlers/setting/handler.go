package setting

import (
	"net/http"

	"hotel/infras/otel"
	"hotel/internal/domains/setting/model/dto"
	"hotel/internal/domains/setting/service"
	"hotel/shared/constant"
	"hotel/shared/validator"
	"hotel/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Setting
	otel    otel.Otel
}

func New(service service.Setting, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/settings", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetSettings)
		routerGroup.Put("/", handler.UpdateSettings)
		routerGroup.Post("/reset", handler.ResetSettings)
	})
}

// GetSettings returns the hotel settings.
// @Summary Get settings
// @Tags Settings
// @Produce json
// @Success 200 {object} dto.SettingsResponse
// @Failure 500 {object} response.Message
// @Router /api/settings [get]
func (handler *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSettings")
	defer scope.End()

	settings, err := handler.service.Get(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get settings")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, settings)
}

// UpdateSettings changes the fields present in the body.
// @Summary Update settings
// @Tags Settings
// @Accept json
// @Produce json
// @Param request body dto.UpdateSettingsRequest true "Settings"
// @Success 200 {object} dto.SettingsResponse
// @Failure 400 {object} response.Message
// @Failure 500 {object} response.Message
// @Router /api/settings [put]
func (handler *Handler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateSettings")
	defer scope.End()

	var req dto.UpdateSettingsRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	settings, err := handler.service.Update(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update settings")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, settings)
}

// ResetSettings restores the configured defaults.
// @Summary Reset settings
// @Tags Settings
// @Produce json
// @Success 200 {object} dto.SettingsResponse
// @Failure 500 {object} response.Message
// @Router /api/settings/reset [post]
func (handler *Handler) ResetSettings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ResetSettings")
	defer scope.End()

	settings, err := handler.service.Reset(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to reset settings")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Settings reset")

	response.WithJSON(w, http.StatusOK, settings)
}
