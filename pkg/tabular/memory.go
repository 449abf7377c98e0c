package tabular

import (
	"slices"
	"sync"

	"liyu1981.xyz/battery-tracking-service/pkg/errs"
)

var _ Store = (*Memory)(nil)

// Memory keeps tables in process. Rows are copied in and out so callers
// never share state with the store.
type Memory struct {
	mu     sync.Mutex
	tables map[string]*Table

	// FailWrites makes every WriteTable on the named tables fail, for
	// exercising partial-update paths in tests.
	FailWrites map[string]error
}

func NewMemory() *Memory {
	return &Memory{tables: map[string]*Table{}}
}

func (m *Memory) EnsureTable(name string, columns []string) error {
	if err := ValidateColumns(name, columns); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.tables[name]; ok {
		return nil
	}
	m.tables[name] = &Table{Name: name, Columns: slices.Clone(columns)}
	return nil
}

func (m *Memory) ReadTable(name string) (*Table, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	t, ok := m.tables[name]
	if !ok {
		return nil, errs.Storage(name, "read", errs.ErrTableNotInitialized)
	}
	out := &Table{Name: name, Columns: slices.Clone(t.Columns), Rows: make([]Row, len(t.Rows))}
	for i, r := range t.Rows {
		out.Rows[i] = r.Clone()
	}
	return out, nil
}

func (m *Memory) WriteTable(name string, rows []Row) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err, ok := m.FailWrites[name]; ok {
		return errs.Storage(name, "write", err)
	}

	t, ok := m.tables[name]
	if !ok {
		return errs.Storage(name, "write", errs.ErrTableNotInitialized)
	}
	stored := make([]Row, len(rows))
	for i, r := range rows {
		stored[i] = Bind(t.Columns, Project(t.Columns, r))
	}
	t.Rows = stored
	return nil
}
