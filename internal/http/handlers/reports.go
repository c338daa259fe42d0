package handlers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"fleetledger/internal/http/middleware"
	"fleetledger/internal/services"
)

// GET /api/vehicles/:id/reports/current-month
func GetCurrentMonthReport(c *gin.Context) {
	rep, err := reportSvc.CurrentMonth(c.Request.Context(), c.Param("id"))
	if err != nil {
		log.Println("GetCurrentMonthReport error:", err)
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, rep)
}

// GET /api/vehicles/:id/reports/archive?from=&to=&page=
func GetArchiveReport(c *gin.Context) {
	r, ok := QueryRange(c)
	if !ok {
		return
	}
	rep, err := reportSvc.Archive(c.Request.Context(), c.Param("id"), r, QueryPage(c))
	if err != nil {
		log.Println("GetArchiveReport error:", err)
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, rep)
}

// GET /api/vehicles/:id/reports/statement?from=&to=
func GetStatementReport(c *gin.Context) {
	r, ok := QueryRange(c)
	if !ok {
		return
	}
	rep, err := reportSvc.Statement(c.Request.Context(), c.Param("id"), r)
	if err != nil {
		log.Println("GetStatementReport error:", err)
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, rep)
}

// GET /api/vehicles/:id/reports/cng-statement?from=&to=
func GetCngStatementReport(c *gin.Context) {
	r, ok := QueryRange(c)
	if !ok {
		return
	}
	rep, err := reportSvc.CngStatement(c.Request.Context(), c.Param("id"), r)
	if err != nil {
		log.Println("GetCngStatementReport error:", err)
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, rep)
}

// GET /api/vehicles/:id/stats?from=&to=
func GetVehicleStats(c *gin.Context) {
	r, ok := QueryRange(c)
	if !ok {
		return
	}
	stats, err := reportSvc.Stats(c.Request.Context(), c.Param("id"), r)
	if err != nil {
		log.Println("GetVehicleStats error:", err)
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GET /api/vehicles/:id/reports/statement/export?from=&to=
func ExportStatement(c *gin.Context) {
	r, ok := QueryRange(c)
	if !ok {
		return
	}
	out, err := reportSvc.ExportStatement(c.Request.Context(), c.Param("id"), r)
	if err != nil {
		log.Println("ExportStatement error:", err)
		RespondDomainError(c, err)
		return
	}
	sendCSV(c, out)
}

// GET /api/vehicles/:id/reports/cng-statement/export?from=&to=
func ExportCngStatement(c *gin.Context) {
	r, ok := QueryRange(c)
	if !ok {
		return
	}
	out, err := reportSvc.ExportCngStatement(c.Request.Context(), c.Param("id"), r)
	if err != nil {
		log.Println("ExportCngStatement error:", err)
		RespondDomainError(c, err)
		return
	}
	sendCSV(c, out)
}

// GET /api/vehicles/:id/reports/archive/export?from=&to=
func ExportArchive(c *gin.Context) {
	r, ok := QueryRange(c)
	if !ok {
		return
	}
	out, err := reportSvc.ExportArchive(c.Request.Context(), c.Param("id"), r)
	if err != nil {
		log.Println("ExportArchive error:", err)
		RespondDomainError(c, err)
		return
	}
	sendCSV(c, out)
}

// GET /api/vehicles/:id/reports/statement/print?from=&to=
func PrintStatement(c *gin.Context) {
	r, ok := QueryRange(c)
	if !ok {
		return
	}
	svc := services.PrintService{Reports: reportSvc, RequestID: middleware.GetRequestID(c)}
	body, filename, err := svc.StatementPDF(c.Request.Context(), c.Param("id"), r)
	if err != nil {
		log.Println("PrintStatement error:", err)
		RespondDomainError(c, err)
		return
	}
	sendPDF(c, body, filename)
}

// GET /api/vehicles/:id/reports/cng-statement/print?from=&to=
func PrintCngStatement(c *gin.Context) {
	r, ok := QueryRange(c)
	if !ok {
		return
	}
	svc := services.PrintService{Reports: reportSvc, RequestID: middleware.GetRequestID(c)}
	body, filename, err := svc.CngStatementPDF(c.Request.Context(), c.Param("id"), r)
	if err != nil {
		log.Println("PrintCngStatement error:", err)
		RespondDomainError(c, err)
		return
	}
	sendPDF(c, body, filename)
}

func sendCSV(c *gin.Context, out services.Export) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", out.Filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(out.Body))
}

func sendPDF(c *gin.Context, body []byte, filename string) {
	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", body)
}
