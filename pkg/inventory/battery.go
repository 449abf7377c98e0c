package inventory

import (
	"slices"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"liyu1981.xyz/battery-tracking-service/pkg/common"
	"liyu1981.xyz/battery-tracking-service/pkg/errs"
	"liyu1981.xyz/battery-tracking-service/pkg/models"
	"liyu1981.xyz/battery-tracking-service/pkg/tabular"
)

const entityBattery = "battery"

func (i *Inventory) readBatteries() (*tabular.Table, error) {
	return i.Store.ReadTable(common.TableBatteries)
}

func decodeBattery(row tabular.Row) (*models.Battery, error) {
	b, err := models.BatteryFromRow(row)
	if err != nil {
		return nil, errs.Storage(common.TableBatteries, "decode", err)
	}
	return &b, nil
}

func indexOfID(rows []tabular.Row, id int) int {
	return slices.IndexFunc(rows, func(r tabular.Row) bool {
		rowID, ok := models.RowID(r)
		return ok && rowID == id
	})
}

// scan matches an integer id first and falls back to the trimmed product
// number, so "5" finds battery 5 even if another one is labelled "5".
func (i *Inventory) scan(identifier string) (*models.Battery, error) {
	table, err := i.readBatteries()
	if err != nil {
		return nil, err
	}

	needle := strings.TrimSpace(identifier)
	if needle == "" {
		return nil, nil
	}

	if id, err := strconv.Atoi(needle); err == nil {
		if idx := indexOfID(table.Rows, id); idx >= 0 {
			return decodeBattery(table.Rows[idx])
		}
	}

	for _, row := range table.Rows {
		if strings.TrimSpace(row["product_number"]) == needle {
			return decodeBattery(row)
		}
	}
	return nil, nil
}

func (i *Inventory) addBattery(productNumber string, packingMonth *string, initialVoltage *float64) (*models.Battery, error) {
	if err := requireText("product_number", productNumber); err != nil {
		return nil, err
	}
	if err := requireFinite("initial_voltage", initialVoltage); err != nil {
		return nil, err
	}

	logger := coreLogger(common.LoggerCategoryBattery)

	table, err := i.readBatteries()
	if err != nil {
		return nil, err
	}

	battery := models.Battery{
		ID:             tabular.NextID(table.Rows, "id"),
		ProductNumber:  productNumber,
		CurrentVoltage: initialVoltage,
		PackingMonth:   blankToNil(packingMonth),
		Status:         models.BatteryStatusActive,
		TotalChecks:    0,
	}

	logger.Info("Received battery", zap.Reflect("battery", battery))

	if err := i.Store.WriteTable(common.TableBatteries, append(table.Rows, battery.Row())); err != nil {
		return nil, err
	}

	logger.Info("Battery saved", zap.Reflect("battery", battery))
	return &battery, nil
}

func (i *Inventory) deleteBattery(id int) (bool, error) {
	table, err := i.readBatteries()
	if err != nil {
		return false, err
	}

	kept := slices.DeleteFunc(slices.Clone(table.Rows), func(r tabular.Row) bool {
		rowID, ok := models.RowID(r)
		return ok && rowID == id
	})
	if len(kept) == len(table.Rows) {
		return false, nil
	}

	if err := i.Store.WriteTable(common.TableBatteries, kept); err != nil {
		return false, err
	}

	coreLogger(common.LoggerCategoryBattery).Info("Battery deleted", zap.Int("id", id))
	return true, nil
}

// updateVoltage writes the battery first and then appends the check. If the
// check append fails the battery change stays on disk and the caller gets
// the storage error.
func (i *Inventory) updateVoltage(id int, input *models.VoltageUpdate) (*models.Battery, error) {
	if input == nil {
		return nil, errs.Validation("reading", "is required")
	}
	if err := requireFinite("reading", &input.Reading); err != nil {
		return nil, err
	}
	if err := requireFinite("voltage_during_check", input.VoltageDuringCheck); err != nil {
		return nil, err
	}

	logger := coreLogger(common.LoggerCategoryCheck)

	table, err := i.readBatteries()
	if err != nil {
		return nil, err
	}
	idx := indexOfID(table.Rows, id)
	if idx < 0 {
		return nil, errs.NotFound(entityBattery, id)
	}
	battery, err := decodeBattery(table.Rows[idx])
	if err != nil {
		return nil, err
	}

	now := i.now()
	reading := input.Reading
	battery.CurrentVoltage = &reading
	battery.LastCheckedDate = &now
	battery.TotalChecks++

	logger.Info("Received voltage reading", zap.Int("battery_id", id), zap.Float64("reading", reading))

	table.Rows[idx] = battery.Row()
	if err := i.Store.WriteTable(common.TableBatteries, table.Rows); err != nil {
		return nil, err
	}

	checks, err := i.Store.ReadTable(common.TableChecks)
	if err != nil {
		return nil, err
	}
	check := models.Check{
		ID:                 tabular.NextID(checks.Rows, "id"),
		BatteryID:          id,
		VoltageReading:     reading,
		VoltageDuringCheck: input.VoltageDuringCheck,
		CheckedBy:          input.CheckedBy,
		Notes:              blankToNil(input.Notes),
		CheckedAt:          now,
	}
	if _, err := tabular.AppendRow(i.Store, common.TableChecks, check.Row()); err != nil {
		logger.Error("Check append failed after battery update", zap.Int("battery_id", id), zap.Error(err))
		return nil, err
	}

	logger.Info("Check saved", zap.Reflect("check", check))
	return battery, nil
}

func (i *Inventory) handover(id int, status models.BatteryStatus) (*models.Battery, error) {
	table, err := i.readBatteries()
	if err != nil {
		return nil, err
	}
	idx := indexOfID(table.Rows, id)
	if idx < 0 {
		return nil, errs.NotFound(entityBattery, id)
	}
	battery, err := decodeBattery(table.Rows[idx])
	if err != nil {
		return nil, err
	}

	previous := battery.Status
	battery.Status = status
	table.Rows[idx] = battery.Row()
	if err := i.Store.WriteTable(common.TableBatteries, table.Rows); err != nil {
		return nil, err
	}

	coreLogger(common.LoggerCategoryBattery).Info("Battery handed over",
		zap.Int("id", id), zap.String("from", string(previous)), zap.String("to", string(status)))
	return battery, nil
}

func (i *Inventory) listBatteries() ([]models.Battery, error) {
	table, err := i.readBatteries()
	if err != nil {
		return nil, err
	}
	batteries := make([]models.Battery, 0, len(table.Rows))
	for _, row := range table.Rows {
		b, err := decodeBattery(row)
		if err != nil {
			return nil, err
		}
		batteries = append(batteries, *b)
	}
	return batteries, nil
}

func matchesFilter(b *models.Battery, f *models.BatteryFilter) bool {
	if f.ProductQuery != "" &&
		!strings.Contains(strings.ToLower(b.ProductNumber), strings.ToLower(f.ProductQuery)) {
		return false
	}
	if f.Status != "" && string(b.Status) != f.Status {
		return false
	}
	// an absent voltage never satisfies a bound
	if f.VoltageMin != nil && (b.CurrentVoltage == nil || *b.CurrentVoltage < *f.VoltageMin) {
		return false
	}
	if f.VoltageMax != nil && (b.CurrentVoltage == nil || *b.CurrentVoltage > *f.VoltageMax) {
		return false
	}
	return true
}

func (i *Inventory) filterBatteries(f *models.BatteryFilter) ([]models.Battery, error) {
	batteries, err := i.listBatteries()
	if err != nil || f == nil {
		return batteries, err
	}
	return common.Filter(batteries, func(b models.Battery) bool {
		return matchesFilter(&b, f)
	}), nil
}

// checks returns the history of one battery, newest first. History
// outlives the battery, so a deleted id still has its checks.
func (i *Inventory) checks(batteryID int) ([]models.Check, error) {
	table, err := i.Store.ReadTable(common.TableChecks)
	if err != nil {
		return nil, err
	}
	var out []models.Check
	for _, row := range table.Rows {
		c, err := models.CheckFromRow(row)
		if err != nil {
			return nil, errs.Storage(common.TableChecks, "decode", err)
		}
		if c.BatteryID == batteryID {
			out = append(out, c)
		}
	}
	slices.SortStableFunc(out, func(a, b models.Check) int {
		if c := b.CheckedAt.Compare(a.CheckedAt); c != 0 {
			return c
		}
		return b.ID - a.ID
	})
	return out, nil
}

type IBatteryImpl struct {
	inventory *Inventory
}

func (ib *IBatteryImpl) Scan(identifier string) (*models.Battery, error) {
	return ib.inventory.scan(identifier)
}

func (ib *IBatteryImpl) Add(productNumber string, packingMonth *string, initialVoltage *float64) (*models.Battery, error) {
	return ib.inventory.addBattery(productNumber, packingMonth, initialVoltage)
}

func (ib *IBatteryImpl) Delete(id int) (bool, error) {
	return ib.inventory.deleteBattery(id)
}

func (ib *IBatteryImpl) UpdateVoltage(id int, input *models.VoltageUpdate) (*models.Battery, error) {
	return ib.inventory.updateVoltage(id, input)
}

func (ib *IBatteryImpl) Handover(id int, status models.BatteryStatus) (*models.Battery, error) {
	return ib.inventory.handover(id, status)
}

func (ib *IBatteryImpl) Filter(filter *models.BatteryFilter) ([]models.Battery, error) {
	return ib.inventory.filterBatteries(filter)
}

func (ib *IBatteryImpl) List() ([]models.Battery, error) {
	return ib.inventory.listBatteries()
}

func (ib *IBatteryImpl) Checks(batteryID int) ([]models.Check, error) {
	return ib.inventory.checks(batteryID)
}

func (i *Inventory) GetIBattery() IBattery {
	return &IBatteryImpl{inventory: i}
}
