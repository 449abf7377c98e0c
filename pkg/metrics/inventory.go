package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"liyu1981.xyz/battery-tracking-service/pkg/models"
)

var (
	batteriesDesc = prometheus.NewDesc(
		"battery_inventory_batteries",
		"Number of batteries per status color",
		[]string{"color"}, nil,
	)
	totalDesc = prometheus.NewDesc(
		"battery_inventory_total",
		"Number of tracked batteries",
		nil, nil,
	)
	activeDesc = prometheus.NewDesc(
		"battery_inventory_active",
		"Number of batteries with status active",
		nil, nil,
	)
)

// inventoryCollector reads the battery table at scrape time, so the gauges
// always agree with the dashboard.
type inventoryCollector struct {
	source BatterySource
}

func newInventoryCollector(source BatterySource) *inventoryCollector {
	return &inventoryCollector{source: source}
}

func (c *inventoryCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- batteriesDesc
	ch <- totalDesc
	ch <- activeDesc
}

func (c *inventoryCollector) Collect(ch chan<- prometheus.Metric) {
	batteries, err := c.source.List()
	if err != nil {
		ch <- prometheus.NewInvalidMetric(totalDesc, err)
		return
	}

	counts := models.CountColors(batteries)
	dashboard := models.Summarize(batteries)

	for color, n := range map[models.StatusColor]int{
		models.StatusColorRed:    counts.Red,
		models.StatusColorYellow: counts.Yellow,
		models.StatusColorGreen:  counts.Green,
		models.StatusColorGray:   counts.Gray,
	} {
		ch <- prometheus.MustNewConstMetric(batteriesDesc, prometheus.GaugeValue, float64(n), string(color))
	}
	ch <- prometheus.MustNewConstMetric(totalDesc, prometheus.GaugeValue, float64(dashboard.Total))
	ch <- prometheus.MustNewConstMetric(activeDesc, prometheus.GaugeValue, float64(dashboard.Active))
}
