package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"GasMileageTracker/internal/models"
	"GasMileageTracker/internal/service"
)

type RecordsResponse struct {
	Records []models.Record `json:"records"`
}

type SubmitResponse struct {
	Record models.Record   `json:"record"`
	Recent []models.Record `json:"recent"`
}

// ListRecords godoc
// @Summary      List records
// @Description  Returns every stored refuel record in storage order.
// @Tags         Records
// @Produce      json
// @Success      200 {object} handler.RecordsResponse
// @Failure      422 {object} handler.ErrorResponse "stored rows could not be parsed"
// @Failure      502 {object} handler.ErrorResponse "record store unavailable"
// @Router       /api/records [get]
func (h *Handler) ListRecords(c *gin.Context) {
	records, err := h.service.Records(c.Request.Context())
	if err != nil {
		h.abortJSON(c, "ListRecords(): failed", err)
		return
	}
	c.JSON(http.StatusOK, RecordsResponse{Records: records})
}

// RecentRecords godoc
// @Summary      Recent records
// @Description  Returns the most recent records shown in the history table, oldest first.
// @Tags         Records
// @Produce      json
// @Success      200 {object} handler.RecordsResponse
// @Failure      502 {object} handler.ErrorResponse "record store unavailable"
// @Router       /api/records/recent [get]
func (h *Handler) RecentRecords(c *gin.Context) {
	history, err := h.service.History(c.Request.Context())
	if err != nil {
		h.abortJSON(c, "RecentRecords(): failed", err)
		return
	}
	c.JSON(http.StatusOK, RecordsResponse{Records: history.Recent})
}

// Chart godoc
// @Summary      Efficiency chart
// @Description  Returns a Vega-Lite line chart spec of gas mileage over all records.
// @Tags         Records
// @Produce      json
// @Success      200 {object} presenter.ChartSpec
// @Failure      502 {object} handler.ErrorResponse "record store unavailable"
// @Router       /api/chart [get]
func (h *Handler) Chart(c *gin.Context) {
	history, err := h.service.History(c.Request.Context())
	if err != nil {
		h.abortJSON(c, "Chart(): failed", err)
		return
	}
	c.JSON(http.StatusOK, history.Chart)
}

// CreateRecord godoc
// @Summary      Add a refuel
// @Description  Validates the raw input, derives mileage from the last record and appends the new record.
// @Tags         Records
// @Accept       json
// @Produce      json
// @Param        X-Access-Code header string false "access code, when one is configured"
// @Param        request body models.FormInput true "raw form values"
// @Success      201 {object} handler.SubmitResponse
// @Failure      400 {object} handler.ErrorResponse "invalid fields"
// @Failure      403 {object} handler.ErrorResponse "wrong access code"
// @Failure      422 {object} handler.ErrorResponse "mileage could not be derived"
// @Failure      502 {object} handler.ErrorResponse "record store unavailable"
// @Router       /api/records [post]
func (h *Handler) CreateRecord(c *gin.Context) {
	var in models.FormInput

	rawData, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request"})
		return
	}
	if err := json.Unmarshal(rawData, &in); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "JSON parsing error: " + err.Error()})
		return
	}

	res, err := h.service.Submit(c.Request.Context(), in)
	if err != nil {
		h.abortJSON(c, "CreateRecord(): submit failed", err)
		return
	}
	c.JSON(http.StatusCreated, SubmitResponse{Record: res.Record, Recent: res.Recent})
}

// Health godoc
// @Summary      Health check
// @Tags         System
// @Produce      json
// @Success      200 {object} handler.HealthResponse
// @Router       /health [get]
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}

func (h *Handler) abortJSON(c *gin.Context, msg string, err error) {
	h.logFailure(msg, err)
	status, resp := errorResponse(err)
	c.AbortWithStatusJSON(status, resp)
}

func formatOneDecimal(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

var _ FuelService = (*service.FuelService)(nil)
