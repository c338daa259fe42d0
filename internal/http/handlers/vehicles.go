package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"fleetledger/internal/domain"
	"fleetledger/internal/repositories"
)

type vehiclePayload struct {
	Name      string `json:"name" binding:"required"`
	OwnerName string `json:"ownerName" binding:"required"`
}

func (p *vehiclePayload) validate() error {
	p.Name = strings.TrimSpace(p.Name)
	p.OwnerName = strings.TrimSpace(p.OwnerName)
	if p.Name == "" || len(p.Name) > 100 {
		return domain.ValidationError{Field: "name", Msg: "must be 1-100 characters"}
	}
	if p.OwnerName == "" || len(p.OwnerName) > 100 {
		return domain.ValidationError{Field: "ownerName", Msg: "must be 1-100 characters"}
	}
	return nil
}

// GET /api/vehicles?q=
func GetVehicles(c *gin.Context) {
	repo := repositories.VehiclesRepository{}
	out, err := repo.List(c.Request.Context(), c.Query("q"))
	if err != nil {
		log.Println("GetVehicles query error:", err)
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// GET /api/vehicles/:id
func GetVehicleByID(c *gin.Context) {
	repo := repositories.VehiclesRepository{}
	v, err := repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

// POST /api/vehicles
func CreateVehicle(c *gin.Context) {
	var p vehiclePayload
	if !BindJSONOrError(c, &p) {
		return
	}
	if err := p.validate(); err != nil {
		RespondDomainError(c, err)
		return
	}

	repo := repositories.VehiclesRepository{}
	v, err := repo.Create(c.Request.Context(), domain.Vehicle{Name: p.Name, OwnerName: p.OwnerName})
	if err != nil {
		log.Println("CreateVehicle insert error:", err)
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, v)
}

// PUT /api/vehicles/:id
func UpdateVehicle(c *gin.Context) {
	var p vehiclePayload
	if !BindJSONOrError(c, &p) {
		return
	}
	if err := p.validate(); err != nil {
		RespondDomainError(c, err)
		return
	}

	repo := repositories.VehiclesRepository{}
	v, err := repo.Update(c.Request.Context(), domain.Vehicle{ID: c.Param("id"), Name: p.Name, OwnerName: p.OwnerName})
	if err != nil {
		log.Println("UpdateVehicle update error:", err)
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

// DELETE /api/vehicles/:id
func DeleteVehicle(c *gin.Context) {
	repo := repositories.VehiclesRepository{}
	if err := repo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		log.Println("DeleteVehicle delete error:", err)
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
