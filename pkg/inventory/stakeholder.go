package inventory

import (
	"slices"

	"go.uber.org/zap"

	"liyu1981.xyz/battery-tracking-service/pkg/common"
	"liyu1981.xyz/battery-tracking-service/pkg/errs"
	"liyu1981.xyz/battery-tracking-service/pkg/models"
	"liyu1981.xyz/battery-tracking-service/pkg/tabular"
)

const entityStakeholder = "stakeholder"

func decodeStakeholder(row tabular.Row) (*models.Stakeholder, error) {
	s, err := models.StakeholderFromRow(row)
	if err != nil {
		return nil, errs.Storage(common.TableStakeholders, "decode", err)
	}
	return &s, nil
}

func (i *Inventory) addStakeholder(name, email string) (*models.Stakeholder, error) {
	if err := requireText("name", name); err != nil {
		return nil, err
	}
	if err := requireText("email", email); err != nil {
		return nil, err
	}

	logger := coreLogger(common.LoggerCategoryStakeholder)

	table, err := i.Store.ReadTable(common.TableStakeholders)
	if err != nil {
		return nil, err
	}

	stakeholder := models.Stakeholder{
		ID:    tabular.NextID(table.Rows, "id"),
		Name:  name,
		Email: email,
	}

	logger.Info("Received stakeholder", zap.Reflect("stakeholder", stakeholder))

	if err := i.Store.WriteTable(common.TableStakeholders, append(table.Rows, stakeholder.Row())); err != nil {
		return nil, err
	}

	logger.Info("Stakeholder saved", zap.Reflect("stakeholder", stakeholder))
	return &stakeholder, nil
}

// updateStakeholder changes only the supplied fields. A supplied field
// still has to be non-blank.
func (i *Inventory) updateStakeholder(id int, name, email *string) (*models.Stakeholder, error) {
	if name != nil {
		if err := requireText("name", *name); err != nil {
			return nil, err
		}
	}
	if email != nil {
		if err := requireText("email", *email); err != nil {
			return nil, err
		}
	}

	table, err := i.Store.ReadTable(common.TableStakeholders)
	if err != nil {
		return nil, err
	}
	idx := indexOfID(table.Rows, id)
	if idx < 0 {
		return nil, errs.NotFound(entityStakeholder, id)
	}
	stakeholder, err := decodeStakeholder(table.Rows[idx])
	if err != nil {
		return nil, err
	}

	if name != nil {
		stakeholder.Name = *name
	}
	if email != nil {
		stakeholder.Email = *email
	}

	table.Rows[idx] = stakeholder.Row()
	if err := i.Store.WriteTable(common.TableStakeholders, table.Rows); err != nil {
		return nil, err
	}

	coreLogger(common.LoggerCategoryStakeholder).Info("Stakeholder updated", zap.Reflect("stakeholder", stakeholder))
	return stakeholder, nil
}

func (i *Inventory) deleteStakeholder(id int) (bool, error) {
	table, err := i.Store.ReadTable(common.TableStakeholders)
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

	if err := i.Store.WriteTable(common.TableStakeholders, kept); err != nil {
		return false, err
	}

	coreLogger(common.LoggerCategoryStakeholder).Info("Stakeholder deleted", zap.Int("id", id))
	return true, nil
}

func (i *Inventory) listStakeholders() ([]models.Stakeholder, error) {
	table, err := i.Store.ReadTable(common.TableStakeholders)
	if err != nil {
		return nil, err
	}
	out := make([]models.Stakeholder, 0, len(table.Rows))
	for _, row := range table.Rows {
		s, err := decodeStakeholder(row)
		if err != nil {
			return nil, err
		}
		out = append(out, *s)
	}
	return out, nil
}

type IStakeholderImpl struct {
	inventory *Inventory
}

func (is *IStakeholderImpl) Add(name, email string) (*models.Stakeholder, error) {
	return is.inventory.addStakeholder(name, email)
}

func (is *IStakeholderImpl) Update(id int, name, email *string) (*models.Stakeholder, error) {
	return is.inventory.updateStakeholder(id, name, email)
}

func (is *IStakeholderImpl) Delete(id int) (bool, error) {
	return is.inventory.deleteStakeholder(id)
}

func (is *IStakeholderImpl) List() ([]models.Stakeholder, error) {
	return is.inventory.listStakeholders()
}

func (i *Inventory) GetIStakeholder() IStakeholder {
	return &IStakeholderImpl{inventory: i}
}
