package http

import (
	"net/http"
	"regexp"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"liyu1981.xyz/battery-tracking-service/pkg/common"
	"liyu1981.xyz/battery-tracking-service/pkg/errs"
	"liyu1981.xyz/battery-tracking-service/pkg/inventory"
	"liyu1981.xyz/battery-tracking-service/pkg/metrics"
	"liyu1981.xyz/battery-tracking-service/pkg/notify"
)

var nonBlank = regexp.MustCompile(`\S`)

type RestfulServer struct {
	Server           *gin.Engine
	Inventory        *inventory.Inventory
	Notifier         *notify.Notifier
	Metrics          *metrics.Metrics
	RateLimiterStore *inventory.RateLimiterStore
}

func (rs *RestfulServer) CheckClientLimiter(clientKey string) bool {
	return rs.RateLimiterStore.Allow(clientKey)
}

func (rs *RestfulServer) SetLimiter(clientKey string, clientRate float64, clientBurst int) {
	if rs.RateLimiterStore == nil {
		return
	}
	rs.RateLimiterStore.SetLimiter(clientKey, rate.Limit(clientRate), clientBurst)
}

func (rs *RestfulServer) limitByClient(c *gin.Context) {
	if !rs.CheckClientLimiter(c.ClientIP()) {
		c.AbortWithStatus(http.StatusTooManyRequests)
		return
	}
	c.Next()
}

func (rs *RestfulServer) countRequests(c *gin.Context) {
	c.Next()
	if rs.Metrics == nil {
		return
	}
	route := c.FullPath()
	if route == "" {
		route = "unmatched"
	}
	rs.Metrics.ObserveRequest(route, c.Writer.Status())
}

func (rs *RestfulServer) now() time.Time {
	if rs.Inventory.Now != nil {
		return rs.Inventory.Now()
	}
	return time.Now()
}

func statusFor(err error) int {
	switch {
	case errs.IsValidation(err):
		return http.StatusBadRequest
	case errs.IsNotFound(err):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func (rs *RestfulServer) writeError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		common.GetLoggerWith(common.LoggerNameRestfulServer).Error("Request failed",
			zap.String("route", c.FullPath()), zap.Error(err))
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func (rs *RestfulServer) pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		rs.writeError(c, errs.Validation("id", "must be an integer"))
		return 0, false
	}
	return id, true
}

func (rs *RestfulServer) Setup() {
	rs.Server.Use(rs.countRequests)

	rs.Server.GET("/healthz", rs.HealthCheck)
	if rs.Metrics != nil {
		rs.Server.GET("/metrics", gin.WrapH(rs.Metrics.Handler()))
	}
	rs.Server.POST("/limiters/:client", rs.PostLimiter)

	api := rs.Server.Group("/", rs.limitByClient)
	{
		batteries := api.Group("/batteries")
		batteries.GET("", rs.ListBatteries)
		batteries.POST("", rs.AddBattery)
		batteries.GET("/scan/:identifier", rs.ScanBattery)
		batteries.GET("/:id/checks", rs.GetChecks)
		batteries.POST("/:id/voltage", rs.UpdateVoltage)
		batteries.POST("/:id/handover", rs.Handover)
		batteries.DELETE("/:id", rs.DeleteBattery)

		api.GET("/dashboard", rs.GetDashboard)

		reports := api.Group("/reports")
		reports.GET("/critical", rs.GetCriticalReport)
		reports.GET("/export.csv", rs.ExportCSV)
		reports.POST("/notify", rs.NotifyStakeholders)

		stakeholders := api.Group("/stakeholders")
		stakeholders.GET("", rs.ListStakeholders)
		stakeholders.POST("", rs.AddStakeholder)
		stakeholders.PATCH("/:id", rs.UpdateStakeholder)
		stakeholders.DELETE("/:id", rs.DeleteStakeholder)
	}
}
