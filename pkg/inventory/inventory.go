package inventory

import (
	"time"

	"go.uber.org/zap"

	"liyu1981.xyz/battery-tracking-service/pkg/common"
	"liyu1981.xyz/battery-tracking-service/pkg/models"
	"liyu1981.xyz/battery-tracking-service/pkg/tabular"
)

//go:generate mockgen -destination=mocks/mock_inventory.go -package=mocks . IBattery,IStakeholder

type IBattery interface {
	Scan(identifier string) (*models.Battery, error)
	Add(productNumber string, packingMonth *string, initialVoltage *float64) (*models.Battery, error)
	Delete(id int) (bool, error)
	UpdateVoltage(id int, input *models.VoltageUpdate) (*models.Battery, error)
	Handover(id int, status models.BatteryStatus) (*models.Battery, error)
	Filter(filter *models.BatteryFilter) ([]models.Battery, error)
	List() ([]models.Battery, error)
	Checks(batteryID int) ([]models.Check, error)
}

type IStakeholder interface {
	Add(name, email string) (*models.Stakeholder, error)
	Update(id int, name, email *string) (*models.Stakeholder, error)
	Delete(id int) (bool, error)
	List() ([]models.Stakeholder, error)
}

// Inventory holds the registries. Every operation reads its tables from
// Store on each call, so there is no state to keep in sync besides Store.
type Inventory struct {
	Store       tabular.Store
	Now         func() time.Time
	Battery     IBattery
	Stakeholder IStakeholder
}

type ServiceOpts struct {
	Battery     IBattery
	Stakeholder IStakeholder
}

// New ensures the three tables exist and wires the default registries.
func New(store tabular.Store) (*Inventory, error) {
	i := &Inventory{Store: store, Now: time.Now}
	if err := i.EnsureTables(); err != nil {
		return nil, err
	}
	i.WithServices(ServiceOpts{
		Battery:     i.GetIBattery(),
		Stakeholder: i.GetIStakeholder(),
	})
	return i, nil
}

func (i *Inventory) WithServices(opts ServiceOpts) *Inventory {
	if opts.Battery != nil {
		i.Battery = opts.Battery
	}
	if opts.Stakeholder != nil {
		i.Stakeholder = opts.Stakeholder
	}
	return i
}

func (i *Inventory) EnsureTables() error {
	tables := []struct {
		name    string
		columns []string
	}{
		{common.TableBatteries, models.BatteryColumns},
		{common.TableStakeholders, models.StakeholderColumns},
		{common.TableChecks, models.CheckColumns},
	}
	for _, t := range tables {
		if err := i.Store.EnsureTable(t.name, t.columns); err != nil {
			return err
		}
	}
	return nil
}

func coreLogger(category string) *zap.Logger {
	return common.GetLoggerWith(
		common.LoggerNameInventoryCore,
		zap.String(common.LoggerFieldCategory, category),
	)
}

func (i *Inventory) now() time.Time {
	if i.Now == nil {
		return time.Now()
	}
	return i.Now()
}

// Dashboard is derived from the battery list using the shared color rule.
func (i *Inventory) Dashboard() (*models.Dashboard, error) {
	batteries, err := i.Battery.List()
	if err != nil {
		return nil, err
	}
	d := models.Summarize(batteries)
	return &d, nil
}
