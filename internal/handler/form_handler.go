package handler

import (
	"embed"
	"encoding/json"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"GasMileageTracker/internal/models"
	"GasMileageTracker/internal/service"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates parses the embedded page templates.
func Templates() *template.Template {
	return template.Must(template.New("").Funcs(template.FuncMap{
		"deref":  derefInt,
		"derefF": derefFloat,
	}).ParseFS(templateFS, "templates/*.html"))
}

// PageData feeds templates/index.html.
type PageData struct {
	Form               models.FormInput
	FieldErrors        map[string]string
	Error              string
	Result             *models.Record
	History            *service.History
	ChartJSON          template.JS
	AccessCodeRequired bool
}

// Index renders the form with today's date and the current history.
func (h *Handler) Index(c *gin.Context) {
	data := h.newPage(models.FormInput{Date: h.today()})

	history, err := h.service.History(c.Request.Context())
	if err != nil {
		h.logFailure("Index(): failed to load history", err)
		_, resp := errorResponse(err)
		data.Error = resp.Error
	} else {
		h.setHistory(&data, history)
	}
	c.HTML(http.StatusOK, "index.html", data)
}

// Submit handles the form post.
func (h *Handler) Submit(c *gin.Context) {
	in := models.FormInput{
		Date:         c.PostForm("date"),
		Gas:          c.PostForm("gas"),
		TotalMileage: c.PostForm("total_mileage"),
	}
	data := h.newPage(in)

	res, err := h.service.Submit(c.Request.Context(), in)
	if err != nil {
		h.logFailure("Submit(): submit failed", err)
		status, resp := errorResponse(err)
		data.Error = resp.Error
		for _, f := range resp.Fields {
			data.FieldErrors[f.Field] = f.Message
		}
		c.HTML(status, "index.html", data)
		return
	}

	data.Result = &res.Record
	data.Form = models.FormInput{Date: h.today()}
	h.setHistory(&data, &res.History)
	c.HTML(http.StatusOK, "index.html", data)
}

// AccessDenied renders the form again with an access code error.
func (h *Handler) AccessDenied(c *gin.Context) {
	data := h.newPage(models.FormInput{
		Date:         c.PostForm("date"),
		Gas:          c.PostForm("gas"),
		TotalMileage: c.PostForm("total_mileage"),
	})
	data.Error = "Access code is incorrect."
	c.HTML(http.StatusForbidden, "index.html", data)
	c.Abort()
}

func (h *Handler) newPage(form models.FormInput) PageData {
	return PageData{
		Form:               form,
		FieldErrors:        map[string]string{},
		AccessCodeRequired: h.accessCodeRequired,
	}
}

func (h *Handler) setHistory(data *PageData, history *service.History) {
	data.History = history
	raw, err := json.Marshal(history.Chart)
	if err != nil {
		h.logger.Error("setHistory(): failed to encode chart", zap.Error(err))
		return
	}
	data.ChartJSON = template.JS(raw)
}

func derefInt(v *int64) interface{} {
	if v == nil {
		return "-"
	}
	return *v
}

func derefFloat(v *float64) string {
	if v == nil {
		return "-"
	}
	return formatOneDecimal(*v)
}
