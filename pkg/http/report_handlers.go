package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"liyu1981.xyz/battery-tracking-service/pkg/common"
	"liyu1981.xyz/battery-tracking-service/pkg/errs"
	"liyu1981.xyz/battery-tracking-service/pkg/models"
	"liyu1981.xyz/battery-tracking-service/pkg/report"
)

const defaultReportSubject = "Battery status report"

func (rs *RestfulServer) GetCriticalReport(c *gin.Context) {
	batteries, err := rs.Inventory.Battery.List()
	if err != nil {
		rs.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, rs.batteryViews(report.Critical(batteries)))
}

func (rs *RestfulServer) ExportCSV(c *gin.Context) {
	batteries, err := rs.Inventory.Battery.List()
	if err != nil {
		rs.writeError(c, err)
		return
	}

	filename := fmt.Sprintf("battery_inventory_%s.csv", rs.now().Format("20060102"))
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Status(http.StatusOK)

	if err := report.WriteCSV(c.Writer, batteries); err != nil {
		common.GetLoggerWith(common.LoggerNameRestfulServer).Error("CSV export failed", zap.Error(err))
	}
}

type NotifyRequest struct {
	Subject string `json:"subject"`
}

func (rs *RestfulServer) NotifyStakeholders(c *gin.Context) {
	if rs.Notifier == nil {
		rs.writeError(c, errs.Validation("notifier", "not configured"))
		return
	}

	var req NotifyRequest
	// the body is optional
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			rs.writeError(c, bindError(err))
			return
		}
	}
	if !nonBlank.MatchString(req.Subject) {
		req.Subject = defaultReportSubject
	}

	batteries, err := rs.Inventory.Battery.List()
	if err != nil {
		rs.writeError(c, err)
		return
	}
	stakeholders, err := rs.Inventory.Stakeholder.List()
	if err != nil {
		rs.writeError(c, err)
		return
	}

	dashboard := models.Summarize(batteries)
	result, err := rs.Notifier.SendReport(stakeholders, req.Subject, report.Summary(&dashboard, report.Critical(batteries)))
	if err != nil {
		rs.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
