package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/watchface/internal/store"
)

// historyModel is the run-history overlay: minutes per day over a 7-day
// window, stacked by run kind.
type historyModel struct {
	store  *store.Store
	now    func() time.Time
	width  int
	height int

	open      bool
	offset    int // 7-day blocks back from today
	summaries []store.DailySummary
	completed int

	chart barchart.Model
}

func newHistoryModel(s *store.Store, now func() time.Time) historyModel {
	return historyModel{
		store: s,
		now:   now,
		chart: barchart.New(60, 12),
	}
}

func (h *historyModel) setSize(w, hgt int) {
	h.width = w
	h.height = hgt
}

type historyDataMsg struct {
	summaries []store.DailySummary
	completed int
}

func (h historyModel) refresh() tea.Cmd {
	return func() tea.Msg {
		from, to := h.dateRange()
		summaries, _ := h.store.GetDailySummary(from, to)
		completed, _ := h.store.CountCompleted(from, to)
		return historyDataMsg{summaries: summaries, completed: completed}
	}
}

func (h historyModel) dateRange() (time.Time, time.Time) {
	now := h.now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	end := today.AddDate(0, 0, 1-7*h.offset)
	return end.AddDate(0, 0, -7), end
}

func (h historyModel) update(msg tea.Msg) (historyModel, tea.Cmd) {
	switch msg := msg.(type) {
	case historyDataMsg:
		h.summaries = msg.summaries
		h.completed = msg.completed
		h.buildChart()
		return h, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Prev):
			h.offset++
			return h, h.refresh()
		case key.Matches(msg, keys.Next):
			if h.offset > 0 {
				h.offset--
			}
			return h, h.refresh()
		}
	}
	return h, nil
}

func (h *historyModel) buildChart() {
	chartWidth := h.width - 8
	if chartWidth < 20 {
		chartWidth = 20
	}
	chartHeight := 12
	if h.height > 30 {
		chartHeight = 16
	}

	h.chart = barchart.New(chartWidth, chartHeight)

	from, to := h.dateRange()

	var bars []barchart.BarData
	for d := from; d.Before(to); d = d.AddDate(0, 0, 1) {
		dateStr := d.Format("2006-01-02")

		var values []barchart.BarValue
		for _, s := range h.summaries {
			if s.Date != dateStr {
				continue
			}
			values = append(values, barchart.BarValue{
				Name:  string(s.Kind),
				Value: float64(s.TotalMS) / 60000.0,
				Style: kindStyle(s.Kind),
			})
		}

		if len(values) == 0 {
			values = []barchart.BarValue{{Name: "", Value: 0, Style: lipgloss.NewStyle().Foreground(colorSubtle)}}
		}

		bars = append(bars, barchart.BarData{
			Label:  d.Format("Mon 02"),
			Values: values,
		})
	}

	h.chart.PushAll(bars)
	h.chart.Draw()
}

func kindStyle(k store.RunKind) lipgloss.Style {
	if k == store.RunCountdown {
		return lipgloss.NewStyle().Foreground(colorSecondary)
	}
	return lipgloss.NewStyle().Foreground(colorAccent)
}

func (h historyModel) view() string {
	w := h.width - 4
	from, to := h.dateRange()

	title := titleStyle.Render("Run History")
	period := mutedStyle.Render(fmt.Sprintf("%s – %s",
		from.Format("Jan 02"), to.AddDate(0, 0, -1).Format("Jan 02")))

	var totals = map[store.RunKind]int64{}
	var count int
	for _, s := range h.summaries {
		totals[s.Kind] += s.TotalMS
		count += s.Count
	}

	var legend []string
	for _, k := range []store.RunKind{store.RunStopwatch, store.RunCountdown} {
		legend = append(legend, kindStyle(k).Render("■ ")+
			fmt.Sprintf("%s %s", k, formatMinutes(totals[k])))
	}

	rows := []string{
		title + "  " + period,
		"",
		h.chart.View(),
		"",
		strings.Join(legend, "   "),
		mutedStyle.Render(fmt.Sprintf("%d runs in range, %d completed countdowns", count, h.completed)),
		"",
		mutedStyle.Render("←/→: older/newer  h/esc: close"),
	}
	return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
