package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"fleetledger/internal/domain"
	"fleetledger/internal/report"
	"fleetledger/internal/services"
	"fleetledger/internal/utils"
)

// Shared wiring. Repositories fall back to the shared DB handle, so
// the zero values are usable; tests swap the handle through intconfig.
var (
	invalidator = report.NewInvalidator()
	reportSvc   = services.NewReportService(services.StoreSource{}, invalidator)
)

// moneyField accepts amounts as JSON numbers or formatted strings
// ("1,000.50", "₹100") and parses them exactly.
type moneyField struct {
	decimal.Decimal
}

func (m *moneyField) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var raw string
		if err := json.Unmarshal(b, &raw); err != nil {
			return err
		}
		d, err := utils.ParseAmount(raw)
		if err != nil {
			return err
		}
		m.Decimal = d
		return nil
	}
	return m.Decimal.UnmarshalJSON(b)
}

// BindJSONOrError ensures the body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_json", "invalid json: "+err.Error())
		return false
	}
	return true
}

// QueryRange reads ?from=&to= and validates the window before any
// report work happens. Inverted or malformed ranges answer 400.
func QueryRange(c *gin.Context) (domain.DateRange, bool) {
	r := domain.DateRange{
		From: strings.TrimSpace(c.Query("from")),
		To:   strings.TrimSpace(c.Query("to")),
	}
	if err := r.Validate(); err != nil {
		RespondDomainError(c, err)
		return domain.DateRange{}, false
	}
	return r, true
}

// QueryPage reads ?page= with a floor of 1; the paginator clamps the rest.
func QueryPage(c *gin.Context) int {
	page, _ := strconv.Atoi(strings.TrimSpace(c.DefaultQuery("page", "1")))
	if page < 1 {
		page = 1
	}
	return page
}
