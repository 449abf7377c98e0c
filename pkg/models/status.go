package models

import (
	"math"
	"strings"
	"time"
)

type StatusColor string

const (
	StatusColorRed    StatusColor = "red"
	StatusColorYellow StatusColor = "yellow"
	StatusColorGreen  StatusColor = "green"
	StatusColorGray   StatusColor = "gray"
)

const (
	// below this a battery is critical and needs charging
	CriticalVoltage = 10.5
	// below this (and at or above CriticalVoltage) a battery is low
	HealthyVoltage = 11.0
)

// StatusColorFor is the only place the voltage thresholds are applied.
func StatusColorFor(voltage *float64) StatusColor {
	switch {
	case voltage == nil:
		return StatusColorGray
	case *voltage < CriticalVoltage:
		return StatusColorRed
	case *voltage < HealthyVoltage:
		return StatusColorYellow
	default:
		return StatusColorGreen
	}
}

// Label is the badge text shown next to a color.
func (c StatusColor) Label() string {
	switch c {
	case StatusColorGreen:
		return "Active"
	case StatusColorYellow:
		return "Low"
	case StatusColorRed:
		return "Critical"
	default:
		return "Unknown"
	}
}

func (b *Battery) Color() StatusColor {
	return StatusColorFor(b.CurrentVoltage)
}

func (b *Battery) IsActive() bool {
	return strings.EqualFold(string(b.Status), string(BatteryStatusActive))
}

// DaysSinceCheck counts whole days since the last check, rounded down, nil
// when the battery was never checked. A check dated after now is negative.
func (b *Battery) DaysSinceCheck(now time.Time) *int {
	if b.LastCheckedDate == nil {
		return nil
	}
	days := int(math.Floor(now.Sub(*b.LastCheckedDate).Hours() / 24))
	return &days
}

func CountColors(batteries []Battery) ColorCounts {
	var counts ColorCounts
	for i := range batteries {
		switch batteries[i].Color() {
		case StatusColorRed:
			counts.Red++
		case StatusColorYellow:
			counts.Yellow++
		case StatusColorGreen:
			counts.Green++
		default:
			counts.Gray++
		}
	}
	return counts
}

func Summarize(batteries []Battery) Dashboard {
	d := Dashboard{Total: len(batteries)}
	for i := range batteries {
		if batteries[i].IsActive() {
			d.Active++
		}
		switch batteries[i].Color() {
		case StatusColorYellow:
			d.LowVoltage++
		case StatusColorRed:
			d.Critical++
		}
	}
	return d
}
