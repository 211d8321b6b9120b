package actions

import (
	"fmt"
	"strconv"

	"github.com/ibstat/cli/internal/dispatchers"
	"github.com/ibstat/cli/internal/reports"
	"github.com/ibstat/cli/internal/ui"
	"github.com/ibstat/cli/internal/ui/style"
)

// Load handles "load file:<path>".
func (c *Console) Load(args string) error {
	path, err := dispatchers.NewArgs(args).Required("file")
	if err != nil {
		return err
	}
	return c.LoadPath(path)
}

// LoadPath parses the statement at path, mirrors it into the store and makes
// it the current statement. A failed load keeps the previous statement.
func (c *Console) LoadPath(path string) error {
	res, err := c.deps.ParseFile(path)
	if err != nil {
		return err
	}

	id, err := c.deps.RecordLoad(path, reportRows(res.Reports))
	if err != nil {
		return fmt.Errorf("record load: %w", err)
	}

	c.loaded = &res
	c.loadID = id
	c.deps.logger().Info("statement %s loaded as %s", path, id)

	c.deps.printf("%s %s: %d reports, %d sections skipped\n",
		style.Success("Loaded"), path, len(res.Reports), len(res.Dropped()))
	return nil
}

// Reports handles "reports": the loaded reports with their sizes.
func (c *Console) Reports(string) error {
	list, err := c.reports()
	if err != nil {
		return err
	}

	rows := make([]reports.Row, 0, len(list))
	for _, r := range list {
		rows = append(rows, reports.Row{
			"Report":  r.Token(),
			"Rows":    strconv.Itoa(len(r.Rows())),
			"Columns": strconv.Itoa(len(r.Columns())),
		})
	}
	c.table([]string{"Report", "Rows", "Columns"}, rows, ui.TableOptions{})
	return nil
}

// Sections handles "sections": every category of the statement and what
// became of it.
func (c *Console) Sections(string) error {
	if c.loaded == nil {
		_, err := c.reports()
		return err
	}

	rows := make([]reports.Row, 0, len(c.loaded.Sections))
	for _, s := range c.loaded.Sections {
		detail := ""
		if s.Err != nil {
			detail = s.Err.Error()
		}
		rows = append(rows, reports.Row{
			"Category": s.Token,
			"Lines":    strconv.Itoa(s.Lines),
			"Rows":     strconv.Itoa(s.Rows),
			"Status":   s.Status.String(),
			"Detail":   detail,
		})
	}
	c.table([]string{"Category", "Lines", "Rows", "Status", "Detail"}, rows, ui.TableOptions{})
	return nil
}

// History handles "history": the statements loaded in this session.
func (c *Console) History(string) error {
	loads, err := c.deps.Loads()
	if err != nil {
		return fmt.Errorf("load history: %w", err)
	}

	rows := make([]reports.Row, 0, len(loads))
	for _, l := range loads {
		marker := ""
		if l.ID == c.loadID {
			marker = "*"
		}
		rows = append(rows, reports.Row{
			"":          marker,
			"Load":      shortID(l.ID),
			"Source":    l.Source,
			"Loaded at": l.LoadedAt.Local().Format("2006-01-02 15:04:05"),
			"Reports":   strconv.Itoa(l.ReportCount),
			"Rows":      strconv.Itoa(l.RowCount),
		})
	}
	c.table([]string{"", "Load", "Source", "Loaded at", "Reports", "Rows"}, rows, ui.TableOptions{})
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
