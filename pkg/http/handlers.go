package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"

	"liyu1981.xyz/battery-tracking-service/pkg/common"
	"liyu1981.xyz/battery-tracking-service/pkg/errs"
	"liyu1981.xyz/battery-tracking-service/pkg/models"
)

// BatteryView is a battery plus the values the dashboard derives from it.
type BatteryView struct {
	models.Battery
	StatusColor    models.StatusColor `json:"status_color"`
	StatusLabel    string             `json:"status_label"`
	DaysSinceCheck *int               `json:"days_since_check"`
}

func newBatteryView(b models.Battery, now time.Time) BatteryView {
	color := b.Color()
	return BatteryView{
		Battery:        b,
		StatusColor:    color,
		StatusLabel:    color.Label(),
		DaysSinceCheck: b.DaysSinceCheck(now),
	}
}

func (rs *RestfulServer) batteryViews(batteries []models.Battery) []BatteryView {
	now := rs.now()
	return common.Mapper(batteries, func(b models.Battery) BatteryView { return newBatteryView(b, now) })
}

func bindError(err error) error {
	return errs.Validation("body", err.Error())
}

func (rs *RestfulServer) ListBatteries(c *gin.Context) {
	filter := &models.BatteryFilter{
		ProductQuery: c.Query("product"),
		Status:       c.Query("status"),
	}

	var err error
	if filter.VoltageMin, err = common.ParseOptionalFloat(c.Query("voltage_min")); err != nil {
		rs.writeError(c, errs.Validation("voltage_min", "must be a number"))
		return
	}
	if filter.VoltageMax, err = common.ParseOptionalFloat(c.Query("voltage_max")); err != nil {
		rs.writeError(c, errs.Validation("voltage_max", "must be a number"))
		return
	}

	batteries, err := rs.Inventory.Battery.Filter(filter)
	if err != nil {
		rs.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"batteries": rs.batteryViews(batteries),
		"colors":    models.CountColors(batteries),
	})
}

type AddBatteryRequest struct {
	ProductNumber  string   `json:"product_number"`
	PackingMonth   *string  `json:"packing_month"`
	InitialVoltage *float64 `json:"initial_voltage"`
}

var addBatteryRequestSchema = z.Struct(z.Shape{
	"ProductNumber": z.String().Required().Match(nonBlank),
})

func (rs *RestfulServer) AddBattery(c *gin.Context) {
	var req AddBatteryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		rs.writeError(c, bindError(err))
		return
	}
	if issues := addBatteryRequestSchema.Validate(&req); len(issues) > 0 {
		rs.writeError(c, errs.Validation("product_number", "must not be blank"))
		return
	}

	battery, err := rs.Inventory.Battery.Add(req.ProductNumber, req.PackingMonth, req.InitialVoltage)
	if err != nil {
		rs.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newBatteryView(*battery, rs.now()))
}

func (rs *RestfulServer) ScanBattery(c *gin.Context) {
	battery, err := rs.Inventory.Battery.Scan(c.Param("identifier"))
	if err != nil {
		rs.writeError(c, err)
		return
	}
	if battery == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no battery matches " + c.Param("identifier")})
		return
	}

	c.JSON(http.StatusOK, newBatteryView(*battery, rs.now()))
}

func (rs *RestfulServer) GetChecks(c *gin.Context) {
	id, ok := rs.pathID(c)
	if !ok {
		return
	}

	checks, err := rs.Inventory.Battery.Checks(id)
	if err != nil {
		rs.writeError(c, err)
		return
	}
	if checks == nil {
		checks = []models.Check{}
	}

	c.JSON(http.StatusOK, checks)
}

type VoltageRequest struct {
	Reading            *float64 `json:"reading"`
	CheckedBy          string   `json:"checked_by"`
	Notes              *string  `json:"notes"`
	VoltageDuringCheck *float64 `json:"voltage_during_check"`
}

var voltageRequestSchema = z.Struct(z.Shape{
	"CheckedBy": z.String().Required().Match(nonBlank),
})

func (rs *RestfulServer) UpdateVoltage(c *gin.Context) {
	id, ok := rs.pathID(c)
	if !ok {
		return
	}

	var req VoltageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		rs.writeError(c, bindError(err))
		return
	}
	if req.Reading == nil {
		rs.writeError(c, errs.Validation("reading", "is required"))
		return
	}
	if issues := voltageRequestSchema.Validate(&req); len(issues) > 0 {
		rs.writeError(c, errs.Validation("checked_by", "must not be blank"))
		return
	}

	battery, err := rs.Inventory.Battery.UpdateVoltage(id, &models.VoltageUpdate{
		Reading:            *req.Reading,
		CheckedBy:          req.CheckedBy,
		Notes:              req.Notes,
		VoltageDuringCheck: req.VoltageDuringCheck,
	})
	if err != nil {
		rs.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, newBatteryView(*battery, rs.now()))
}

type HandoverRequest struct {
	Status string `json:"status"`
}

var handoverRequestSchema = z.Struct(z.Shape{
	"Status": z.String().Required().Match(nonBlank),
})

func (rs *RestfulServer) Handover(c *gin.Context) {
	id, ok := rs.pathID(c)
	if !ok {
		return
	}

	var req HandoverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		rs.writeError(c, bindError(err))
		return
	}
	if issues := handoverRequestSchema.Validate(&req); len(issues) > 0 {
		rs.writeError(c, errs.Validation("status", "must not be blank"))
		return
	}

	battery, err := rs.Inventory.Battery.Handover(id, models.BatteryStatus(req.Status))
	if err != nil {
		rs.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, newBatteryView(*battery, rs.now()))
}

func (rs *RestfulServer) DeleteBattery(c *gin.Context) {
	id, ok := rs.pathID(c)
	if !ok {
		return
	}

	removed, err := rs.Inventory.Battery.Delete(id)
	if err != nil {
		rs.writeError(c, err)
		return
	}
	if !removed {
		rs.writeError(c, errs.NotFound("battery", id))
		return
	}

	c.Status(http.StatusNoContent)
}

type DashboardResponse struct {
	models.Dashboard
	Colors models.ColorCounts `json:"colors"`
}

func (rs *RestfulServer) GetDashboard(c *gin.Context) {
	batteries, err := rs.Inventory.Battery.List()
	if err != nil {
		rs.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, DashboardResponse{
		Dashboard: models.Summarize(batteries),
		Colors:    models.CountColors(batteries),
	})
}

type LimiterRequest struct {
	Rate  float64 `json:"rate"`
	Burst int     `json:"burst"`
}

var limiterRequestSchema = z.Struct(z.Shape{
	"rate":  z.Float64().Required(),
	"burst": z.Int().Required(),
})

func (rs *RestfulServer) PostLimiter(c *gin.Context) {
	clientKey := c.Param("client")

	var req LimiterRequest
	if err := limiterRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	rs.SetLimiter(clientKey, req.Rate, req.Burst)

	c.Status(http.StatusOK)
}

func (rs *RestfulServer) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
