package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/leadflow/crm/internal/model"
	"github.com/leadflow/crm/internal/service"
)

// Every reply carries the same envelope - success flag plus either data or a
// human readable message.
type response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// All lead attributes are optional on create, no server-side requiredness
// beyond what the client sends.
type newLead struct {
	FirstName   string `json:"firstName"`
	CompanyName string `json:"companyName"`
	Email       string `json:"email"`
	Source      string `json:"source"`
	Note        string `json:"note"`
}

type newActivity struct {
	ID          string `json:"id" validate:"required"`
	Type        string `json:"type" validate:"required"`
	Description string `json:"description" validate:"required"`
}

type updateStatus struct {
	ID     string `param:"id"`
	Status string `json:"status" validate:"required"`
}

// LeadHTTPHandler is http handler for lead endpoint
type LeadHTTPHandler struct {
	leadSvc service.LeadService
}

// NewLeadHTTPHandler builds new LeadHTTPHandler
func NewLeadHTTPHandler(leadSvc service.LeadService) *LeadHTTPHandler {
	return &LeadHTTPHandler{leadSvc: leadSvc}
}

// Post creates new lead
// @Summary     New Lead
// @Description Creates new lead with status New and empty activity journal
// @Tags        leads
// @Accept		json
// @Produce     json
// @Param 		newLead body	 newLead true "Data for new lead"
// @Success     201    {object} response
// @Failure     500    {object} response
// @Router      /api/lead/create [post]
func (h *LeadHTTPHandler) Post(c echo.Context) error {
	var nl newLead
	if err := c.Bind(&nl); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	lead, err := h.leadSvc.Create(c.Request().Context(), &model.Lead{
		FirstName:   nl.FirstName,
		CompanyName: nl.CompanyName,
		Email:       nl.Email,
		Source:      nl.Source,
		Note:        nl.Note,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, &response{
		Success: true,
		Message: "Lead created",
		Data:    lead,
	})
}

// GetAll gets all leads
// @Summary     Get all leads
// @Description Returns every lead, unfiltered and unpaginated
// @Tags        leads
// @Produce     json
// @Success     200    {object} response
// @Failure     500    {object} response
// @Router      /api/lead/leads [get]
func (h *LeadHTTPHandler) GetAll(c echo.Context) error {
	leads, err := h.leadSvc.FindAll(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, &response{
		Success: true,
		Data:    leads,
	})
}

// Get gets single lead
// @Summary     Get single lead by id
// @Description Returns single lead with provided id
// @Tags        leads
// @Produce     json
// @Param       id     path 	string true "Lead id"
// @Success     200    {object} response
// @Failure     404    {object} response
// @Failure     500    {object} response
// @Router      /api/lead/{id} [get]
func (h *LeadHTTPHandler) Get(c echo.Context) error {
	lead, err := h.leadSvc.FindByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, &response{
		Success: true,
		Data:    lead,
	})
}

// PostActivity appends activity to lead journal
// @Summary     Add activity
// @Description Appends a timestamped activity to the lead journal
// @Tags        leads
// @Accept		json
// @Produce     json
// @Param 		newActivity body	 newActivity true "Activity data"
// @Success     200    {object} response
// @Failure     400    {object} response
// @Failure     404    {object} response
// @Router      /api/lead/activity [post]
func (h *LeadHTTPHandler) PostActivity(c echo.Context) error {
	var na newActivity
	if err := c.Bind(&na); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&na); err != nil {
		return err
	}

	activities, err := h.leadSvc.AddActivity(c.Request().Context(), na.ID, na.Type, na.Description)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, &response{
		Success: true,
		Message: "Activity added successfully",
		Data:    activities,
	})
}

// PatchStatus updates lead status
// @Summary     Update lead status
// @Description Overwrites lead status with the provided value
// @Tags        leads
// @Accept		json
// @Produce     json
// @Param       id     		path 	string 		 true "Lead id"
// @Param 		updateStatus 	body	updateStatus true "New status"
// @Success     200    {object} response
// @Failure     400    {object} response
// @Failure     404    {object} response
// @Router      /api/lead/{id}/status [patch]
func (h *LeadHTTPHandler) PatchStatus(c echo.Context) error {
	var us updateStatus
	if err := c.Bind(&us); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&us); err != nil {
		return err
	}

	lead, err := h.leadSvc.UpdateStatus(c.Request().Context(), us.ID, model.Status(us.Status))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, &response{
		Success: true,
		Message: "Lead status updated successfully",
		Data:    lead,
	})
}
