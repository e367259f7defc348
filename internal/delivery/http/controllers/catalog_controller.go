package controllers

import (
	"log/slog"
	"net/http"

	"sportsevents/internal/delivery/http/helpers"
	"sportsevents/internal/domain"
)

// CatalogController serves the read-only reference listings (sports, venues, teams).
type CatalogController struct {
	Logger *slog.Logger
	Sports domain.SportService
	Venues domain.VenueService
	Teams  domain.TeamService
}

func NewCatalogController(logger *slog.Logger, sports domain.SportService, venues domain.VenueService, teams domain.TeamService) *CatalogController {
	return &CatalogController{
		Logger: logger,
		Sports: sports,
		Venues: venues,
		Teams:  teams,
	}
}

// SportListSuccessResponse is the success envelope for GET /sports (200).
type SportListSuccessResponse struct {
	Data  []*domain.Sport   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// ListSports godoc
// @Summary List sports
// @Description Reference sports, alphabetical by name.
// @Tags catalog
// @Produce json
// @Success 200 {object} controllers.SportListSuccessResponse
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /sports [get]
func (c *CatalogController) ListSports(w http.ResponseWriter, r *http.Request) {
	sports, err := c.Sports.ListSports(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, sports)
}

// VenueListSuccessResponse is the success envelope for GET /venues (200).
type VenueListSuccessResponse struct {
	Data  []*domain.Venue   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// ListVenues godoc
// @Summary List venues
// @Description Reference venues, alphabetical by name.
// @Tags catalog
// @Produce json
// @Success 200 {object} controllers.VenueListSuccessResponse
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /venues [get]
func (c *CatalogController) ListVenues(w http.ResponseWriter, r *http.Request) {
	venues, err := c.Venues.ListVenues(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, venues)
}

// TeamListSuccessResponse is the success envelope for GET /teams (200).
type TeamListSuccessResponse struct {
	Data  []*domain.Team    `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// ListTeams godoc
// @Summary List teams
// @Description Reference teams, alphabetical by name, optionally filtered by sport.
// @Tags catalog
// @Produce json
// @Param sport_id query string false "Filter by sport UUID"
// @Success 200 {object} controllers.TeamListSuccessResponse
// @Failure 422 {object} helpers.APIResponse "error.code: validation_error (malformed sport_id)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /teams [get]
func (c *CatalogController) ListTeams(w http.ResponseWriter, r *http.Request) {
	sportID := r.URL.Query().Get("sport_id")
	if sportID != "" {
		var err error
		if sportID, err = helpers.ParseUUID(sportID, "sport_id"); err != nil {
			helpers.WriteJSONError(w, http.StatusUnprocessableEntity, helpers.ErrCodeValidation, err.Error())
			return
		}
	}
	teams, err := c.Teams.ListTeams(r.Context(), sportID)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, teams)
}
