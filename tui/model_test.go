package tui

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/Alp4ka/gotable"
)

func newTestModel(t *testing.T) Model[gotable.Record] {
	t.Helper()

	rows := make([]gotable.Record, 0, 25)
	for i := 0; i < 25; i++ {
		rows = append(rows, gotable.Record{"n": i, "name": fmt.Sprintf("row-%02d", i)})
	}

	table := gotable.NewTable[gotable.Record]().WithData(rows).WithPage(1, 10)
	m, err := New(table, []Column{
		{Title: "N", Key: "n", Width: 4},
		{Title: "Name", Key: "name", Width: 10},
	})
	require.NoError(t, err)

	return m
}

func press(m Model[gotable.Record], msg tea.KeyMsg) Model[gotable.Record] {
	next, _ := m.Update(msg)
	return next.(Model[gotable.Record])
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func Test_New_Validation(t *testing.T) {
	_, err := New[gotable.Record](nil, []Column{{Title: "N", Key: "n", Width: 3}})
	require.Error(t, err)

	_, err = New(gotable.NewTable[gotable.Record](), nil)
	require.Error(t, err)
}

func Test_View_FirstPage(t *testing.T) {
	m := newTestModel(t)
	out := m.View()

	require.Contains(t, out, "Name")
	require.Contains(t, out, "row-00")
	require.Contains(t, out, "row-09")
	require.NotContains(t, out, "row-10")
	require.Contains(t, out, "page 1/3")
	require.Contains(t, out, "25 records")
}

func Test_Update_PageNavigation(t *testing.T) {
	m := newTestModel(t)

	m = press(m, tea.KeyMsg{Type: tea.KeyRight})
	out := m.View()
	require.Contains(t, out, "page 2/3")
	require.Contains(t, out, "row-10")

	m = press(m, tea.KeyMsg{Type: tea.KeyEnd})
	require.Contains(t, m.View(), "page 3/3")

	// Past the last page is a no-op.
	m = press(m, tea.KeyMsg{Type: tea.KeyRight})
	require.Contains(t, m.View(), "page 3/3")

	m = press(m, tea.KeyMsg{Type: tea.KeyHome})
	require.Contains(t, m.View(), "page 1/3")
}

func Test_Update_CycleRows(t *testing.T) {
	m := newTestModel(t)

	m = press(m, runeKey('r'))

	require.Contains(t, m.View(), "25 rows")
}

func Test_Update_CycleSortAndFlipOrder(t *testing.T) {
	m := newTestModel(t)

	m = press(m, runeKey('s'))
	out := m.View()
	require.Contains(t, out, "N ↑")
	require.Contains(t, out, "row-00")

	m = press(m, runeKey('o'))
	out = m.View()
	require.Contains(t, out, "N ↓")
	require.Contains(t, out, "row-24")
}

func Test_Update_QuitReturnsQuitCmd(t *testing.T) {
	m := newTestModel(t)

	_, cmd := m.Update(runeKey('q'))

	require.NotNil(t, cmd)
}

func Test_pad(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  string
	}{
		{"pads short", "ab", 4, "ab  "},
		{"truncates long", "abcdef", 4, "abcd"},
		{"exact", "abcd", 4, "abcd"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pad(tt.in, tt.width); got != tt.want {
				t.Errorf("%s: got %q want %q", tt.name, got, tt.want)
			}
		})
	}
}

func Test_nextRowsOnPage(t *testing.T) {
	tests := []struct {
		current int
		want    int
	}{
		{5, 10},
		{10, 25},
		{50, 5},
		{1000, 5}, // off-cycle starts over
	}
	for _, tt := range tests {
		if got := nextRowsOnPage(tt.current); got != tt.want {
			t.Errorf("nextRowsOnPage(%d)=%d want %d", tt.current, got, tt.want)
		}
	}
}

func Test_View_AdoptsPreconfiguredSort(t *testing.T) {
	table := gotable.NewTable[gotable.Record]().
		WithData([]gotable.Record{{"name": "b"}, {"name": "a"}}).
		WithSort(gotable.OrderDesc, "name")

	m, err := New(table, []Column{{Title: "Name", Key: "name", Width: 8}})
	require.NoError(t, err)

	out := m.View()
	require.Contains(t, out, "Name ↓")
	require.True(t, strings.Index(out, "b") < strings.Index(out, "a"))
}
