package actions

import (
	"fmt"

	"github.com/ibstat/cli/internal/dispatchers"
	"github.com/ibstat/cli/internal/reports"
	"github.com/ibstat/cli/internal/ui"
	"github.com/ibstat/cli/internal/ui/style"
)

// Show handles "show report:<name> [columns:a,b] [limit:n]".
func (c *Console) Show(args string) error {
	a := dispatchers.NewArgs(args)

	name, err := a.Required("report")
	if err != nil {
		return err
	}
	columns, err := a.List("columns")
	if err != nil {
		return err
	}
	limit, err := a.Int("limit", 0)
	if err != nil {
		return err
	}

	rep, err := c.lookup(name)
	if err != nil {
		return err
	}

	c.deps.printf("%s\n", style.Header(rep.Token()))
	c.table(rep.Columns(), rep.Rows(), ui.TableOptions{Columns: columns, MaxRows: limit})
	return nil
}

// Find handles "find report:<name> column:<col> value:<v>" through the store.
func (c *Console) Find(args string) error {
	a := dispatchers.NewArgs(args)

	name, err := a.Required("report")
	if err != nil {
		return err
	}
	column, err := a.Required("column")
	if err != nil {
		return err
	}
	value, err := a.Required("value")
	if err != nil {
		return err
	}

	rep, err := c.lookup(name)
	if err != nil {
		return err
	}

	found, err := c.deps.Find(c.loadID, rep.Token(), column, value)
	if err != nil {
		return fmt.Errorf("find: %w", err)
	}

	rows := make([]reports.Row, len(found))
	for i, f := range found {
		rows[i] = f.Values
	}
	c.table(rep.Columns(), rows, ui.TableOptions{})
	return nil
}

// Export handles "export report:<name> file:<path.xlsx> [columns:a,b]".
func (c *Console) Export(args string) error {
	a := dispatchers.NewArgs(args)

	name, err := a.Required("report")
	if err != nil {
		return err
	}
	path, err := a.Required("file")
	if err != nil {
		return err
	}
	selected, err := a.List("columns")
	if err != nil {
		return err
	}

	rep, err := c.lookup(name)
	if err != nil {
		return err
	}

	columns := rep.Columns()
	if len(selected) > 0 {
		columns = keepColumns(columns, selected)
	}

	if err := c.deps.Export(path, rep.Token(), columns, rep.Rows()); err != nil {
		return err
	}

	c.deps.logger().Info("exported %s to %s", rep.Token(), path)
	c.deps.printf("%s %d rows of %s to %s\n", style.Success("Exported"), len(rep.Rows()), rep.Token(), path)
	return nil
}

func keepColumns(columns, selected []string) []string {
	want := make(map[string]bool, len(selected))
	for _, s := range selected {
		want[s] = true
	}
	var out []string
	for _, c := range columns {
		if want[c] {
			out = append(out, c)
		}
	}
	return out
}
