// Package tui renders a gotable.Table as an interactive terminal widget. It
// is a host for the table state machine: every key press turns into table
// mutations, and every render flushes the table and draws the derived view.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Alp4ka/gotable"
)

// Column describes one rendered column: a header title, the dotted record
// path the cells resolve through, and a fixed width.
type Column struct {
	Title string
	Key   string
	Width int
}

// rowsOnPageCycle lists the page sizes the rows-per-page key cycles through.
var rowsOnPageCycle = []int{5, 10, 25, 50}

// Model is a bubbletea model around a table and its paginator.
type Model[T any] struct {
	table     *gotable.Table[T]
	paginator *gotable.Paginator[T]
	columns   []Column

	sortIdx int // index into columns, -1 when unsorted
	order   gotable.Order

	keys   keyMap
	styles Styles
}

// New builds a widget over table. The table reference is required; columns
// must name at least one column.
func New[T any](table *gotable.Table[T], columns []Column) (Model[T], error) {
	if len(columns) == 0 {
		return Model[T]{}, fmt.Errorf("cannot build table widget: no columns")
	}

	paginator, err := gotable.NewPaginator(table)
	if err != nil {
		return Model[T]{}, err
	}

	m := Model[T]{
		table:     table,
		paginator: paginator,
		columns:   columns,
		sortIdx:   -1,
		order:     gotable.OrderAsc,
		keys:      DefaultKeyMap(),
		styles:    DefaultStyles(),
	}

	// Adopt a sort already configured on the table so the header indicator
	// is not stale on first render.
	spec := table.GetSort()
	m.order = spec.Order
	if spec.IsSorted() && len(spec.Keys) == 1 {
		for i, column := range columns {
			if column.Key == spec.Keys[0] {
				m.sortIdx = i
				break
			}
		}
	}

	return m, nil
}

// WithStyles overrides the default styles.
func (m Model[T]) WithStyles(styles Styles) Model[T] {
	m.styles = styles
	return m
}

func (m Model[T]) Init() tea.Cmd {
	return nil
}

func (m Model[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.NextPage):
		if m.paginator.ActivePage() < m.paginator.LastPage() {
			m.paginator.SetPage(m.paginator.ActivePage() + 1)
		}
	case key.Matches(keyMsg, m.keys.PrevPage):
		if m.paginator.ActivePage() > 1 {
			m.paginator.SetPage(m.paginator.ActivePage() - 1)
		}
	case key.Matches(keyMsg, m.keys.FirstPage):
		m.paginator.SetPage(1)
	case key.Matches(keyMsg, m.keys.LastPage):
		m.paginator.SetPage(m.paginator.LastPage())
	case key.Matches(keyMsg, m.keys.CycleRows):
		m.paginator.SetRowsOnPage(nextRowsOnPage(m.paginator.RowsOnPage()))
	case key.Matches(keyMsg, m.keys.CycleSort):
		m.sortIdx = (m.sortIdx + 1) % len(m.columns)
		m.table.SetSort(m.order, m.columns[m.sortIdx].Key)
	case key.Matches(keyMsg, m.keys.FlipOrder):
		if m.order == gotable.OrderAsc {
			m.order = gotable.OrderDesc
		} else {
			m.order = gotable.OrderAsc
		}
		if m.sortIdx >= 0 {
			m.table.SetSort(m.order, m.columns[m.sortIdx].Key)
		}
	}

	return m, nil
}

func (m Model[T]) View() string {
	view := m.table.View()

	var b strings.Builder
	b.WriteString(m.styles.Header.Render(m.headerLine()))
	b.WriteByte('\n')

	for _, row := range view.Rows {
		b.WriteString(m.styles.Cell.Render(m.rowLine(row)))
		b.WriteByte('\n')
	}

	b.WriteString(m.styles.Footer.Render(fmt.Sprintf(
		"page %d/%d · %d rows · %d records",
		m.paginator.ActivePage(), m.paginator.LastPage(),
		m.paginator.RowsOnPage(), m.paginator.DataLength(),
	)))
	b.WriteByte('\n')
	b.WriteString(m.styles.Help.Render("←/→ page · r rows · s sort · o order · q quit"))

	return b.String()
}

func (m Model[T]) headerLine() string {
	cells := make([]string, 0, len(m.columns))
	for i, column := range m.columns {
		title := column.Title
		if i == m.sortIdx {
			title += sortMarker(m.order)
		}
		cells = append(cells, pad(title, column.Width))
	}

	return strings.Join(cells, "  ")
}

func (m Model[T]) rowLine(row T) string {
	cells := make([]string, 0, len(m.columns))
	for _, column := range m.columns {
		text := ""
		if value, ok := gotable.Resolve(row, column.Key); ok {
			text = fmt.Sprint(value)
		}
		cells = append(cells, pad(text, column.Width))
	}

	return strings.Join(cells, "  ")
}

func sortMarker(order gotable.Order) string {
	if order == gotable.OrderDesc {
		return " ↓"
	}

	return " ↑"
}

// pad truncates or right-pads text to width runes.
func pad(text string, width int) string {
	runes := []rune(text)
	if len(runes) > width {
		return string(runes[:width])
	}

	return text + strings.Repeat(" ", width-len(runes))
}

func nextRowsOnPage(current int) int {
	for i, size := range rowsOnPageCycle {
		if size == current {
			return rowsOnPageCycle[(i+1)%len(rowsOnPageCycle)]
		}
	}

	return rowsOnPageCycle[0]
}
