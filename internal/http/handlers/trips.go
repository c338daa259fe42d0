package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"fleetledger/internal/domain"
	"fleetledger/internal/http/middleware"
	"fleetledger/internal/repositories"
	"fleetledger/internal/services"
)

type tripPayload struct {
	Date    string     `json:"date" binding:"required"`
	Cash    moneyField `json:"cash"`
	Earning moneyField `json:"earning"`
}

func (p *tripPayload) validate() error {
	p.Date = strings.TrimSpace(p.Date)
	if !domain.IsCalendarDate(p.Date) {
		return domain.ValidationError{Field: "date", Msg: "must be yyyy-MM-dd"}
	}
	if p.Cash.IsNegative() {
		return domain.ValidationError{Field: "cash", Msg: "must be greater than or equal to 0"}
	}
	if p.Earning.IsNegative() {
		return domain.ValidationError{Field: "earning", Msg: "must be greater than or equal to 0"}
	}
	return nil
}

// GET /api/vehicles/:id/trips?from=&to=
func GetVehicleTrips(c *gin.Context) {
	r, ok := QueryRange(c)
	if !ok {
		return
	}

	repo := repositories.TripsRepository{}
	out, err := repo.List(c.Request.Context(), repositories.TripListFilter{
		VehicleID: c.Param("id"),
		From:      r.From,
		To:        r.To,
	})
	if err != nil {
		log.Println("GetVehicleTrips query error:", err)
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// POST /api/vehicles/:id/trips
func CreateTrip(c *gin.Context) {
	var p tripPayload
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

	repo := repositories.TripsRepository{}
	t, err := repo.Create(c.Request.Context(), domain.Trip{
		VehicleID: vehicleID,
		Date:      p.Date,
		Cash:      p.Cash.Decimal,
		Earning:   p.Earning.Decimal,
	})
	if err != nil {
		log.Println("CreateTrip insert error:", err)
		RespondDomainError(c, err)
		return
	}

	invalidator.Notify(vehicleID, domain.KindTrip)
	c.JSON(http.StatusCreated, t)
}

// PUT /api/trips/:id
func UpdateTrip(c *gin.Context) {
	var p tripPayload
	if !BindJSONOrError(c, &p) {
		return
	}
	if err := p.validate(); err != nil {
		RespondDomainError(c, err)
		return
	}

	id := c.Param("id")
	repo := repositories.TripsRepository{}

	vehicleID, err := repo.VehicleID(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	t := domain.Trip{ID: id, VehicleID: vehicleID, Date: p.Date, Cash: p.Cash.Decimal, Earning: p.Earning.Decimal}
	if err := repo.Update(c.Request.Context(), t); err != nil {
		log.Println("UpdateTrip update error:", err)
		RespondDomainError(c, err)
		return
	}

	invalidator.Notify(vehicleID, domain.KindTrip)
	c.JSON(http.StatusOK, t)
}

// DELETE /api/trips/:id
func DeleteTrip(c *gin.Context) {
	id := c.Param("id")
	repo := repositories.TripsRepository{}

	vehicleID, err := repo.VehicleID(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if err := repo.Delete(c.Request.Context(), id); err != nil {
		log.Println("DeleteTrip delete error:", err)
		RespondDomainError(c, err)
		return
	}

	invalidator.Notify(vehicleID, domain.KindTrip)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// POST /api/trips/archive-old
func ArchiveOldTrips(c *gin.Context) {
	svc := services.ArchiveService{
		TripRepo:  repositories.TripsRepository{},
		Inv:       invalidator,
		RequestID: middleware.GetRequestID(c),
	}
	n, err := svc.ArchiveOldTrips(c.Request.Context())
	if err != nil {
		log.Println("ArchiveOldTrips error:", err)
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"archived": n})
}
