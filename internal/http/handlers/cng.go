package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"fleetledger/internal/domain"
	"fleetledger/internal/repositories"
)

type cngPayload struct {
	Date   string     `json:"date" binding:"required"`
	Amount moneyField `json:"amount"`
}

func (p *cngPayload) validate() error {
	p.Date = strings.TrimSpace(p.Date)
	if !domain.IsCalendarDate(p.Date) {
		return domain.ValidationError{Field: "date", Msg: "must be yyyy-MM-dd"}
	}
	if p.Amount.IsNegative() {
		return domain.ValidationError{Field: "amount", Msg: "must be greater than or equal to 0"}
	}
	return nil
}

// GET /api/vehicles/:id/cng-expenses?from=&to=
func GetVehicleCngExpenses(c *gin.Context) {
	r, ok := QueryRange(c)
	if !ok {
		return
	}

	repo := repositories.CngRepository{}
	out, err := repo.List(c.Request.Context(), c.Param("id"), r.From, r.To)
	if err != nil {
		log.Println("GetVehicleCngExpenses query error:", err)
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// POST /api/vehicles/:id/cng-expenses
func CreateCngExpense(c *gin.Context) {
	var p cngPayload
	if !BindJSONOrError(c, &p) {
		return
	}
	if err := p.validate(); err != nil {
		RespondDomainError(c, err)
		return
	}

	vehicleID := c.Param("id")
	if _, err := (repositories.VehiclesRepository{}).GetByID(c.Request.Context(), vehicleID); err != nil {
		RespondDomainError(c, err)
		return
	}

	repo := repositories.CngRepository{}
	e, err := repo.Create(c.Request.Context(), domain.CngExpense{
		VehicleID: vehicleID,
		Date:      p.Date,
		Amount:    p.Amount.Decimal,
	})
	if err != nil {
		log.Println("CreateCngExpense insert error:", err)
		RespondDomainError(c, err)
		return
	}

	invalidator.Notify(vehicleID, domain.KindCng)
	c.JSON(http.StatusCreated, e)
}

// PUT /api/cng-expenses/:id
func UpdateCngExpense(c *gin.Context) {
	var p cngPayload
	if !BindJSONOrError(c, &p) {
		return
	}
	if err := p.validate(); err != nil {
		RespondDomainError(c, err)
		return
	}

	id := c.Param("id")
	repo := repositories.CngRepository{}

	vehicleID, err := repo.VehicleID(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	e := domain.CngExpense{ID: id, VehicleID: vehicleID, Date: p.Date, Amount: p.Amount.Decimal}
	if err := repo.Update(c.Request.Context(), e); err != nil {
		log.Println("UpdateCngExpense update error:", err)
		RespondDomainError(c, err)
		return
	}

	invalidator.Notify(vehicleID, domain.KindCng)
	c.JSON(http.StatusOK, e)
}

// DELETE /api/cng-expenses/:id
func DeleteCngExpense(c *gin.Context) {
	id := c.Param("id")
	repo := repositories.CngRepository{}

	vehicleID, err := repo.VehicleID(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if err := repo.Delete(c.Request.Context(), id); err != nil {
		log.Println("DeleteCngExpense delete error:", err)
		RespondDomainError(c, err)
		return
	}

	invalidator.Notify(vehicleID, domain.KindCng)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
