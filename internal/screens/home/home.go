package home

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/factdrill/internal/curriculum"
	"github.com/abhisek/factdrill/internal/router"
	"github.com/abhisek/factdrill/internal/screen"
	"github.com/abhisek/factdrill/internal/screens/drill"
	"github.com/abhisek/factdrill/internal/session"
	"github.com/abhisek/factdrill/internal/ui/components"
	"github.com/abhisek/factdrill/internal/ui/layout"
)

// TimerChoices are the per-question limits offered on the menu, in seconds.
var TimerChoices = []int{5, 10, 15, 20, 30}

// HomeScreen lets the learner pick a curriculum, a timer and a unit.
type HomeScreen struct {
	ctrl   *session.Controller
	keys   []curriculum.Key
	tabs   components.Selector
	timers []int
	timer  components.Selector
	menu   components.Menu
	units  []curriculum.Unit
	snap   session.Snapshot
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen for the controller's current state.
func New(ctrl *session.Controller) *HomeScreen {
	snap := ctrl.Snapshot()
	cat := ctrl.Catalog()

	h := &HomeScreen{
		ctrl: ctrl,
		keys: cat.Keys(),
		snap: snap,
	}

	names := make([]string, len(h.keys))
	for i, k := range h.keys {
		names[i] = curriculum.DisplayName(k)
		if cur, ok := cat.Curriculum(k); ok && cur.Name != "" {
			names[i] = cur.Name
		}
	}
	h.tabs = components.NewSelector("Curriculum", names, slices.Index(h.keys, snap.Curriculum))
	h.tabs.NextKeys = []string{"tab"}

	h.timers = timerOptions(snap.TimerLimit)
	labels := make([]string, len(h.timers))
	for i, s := range h.timers {
		labels[i] = strconv.Itoa(s) + "s"
	}
	h.timer = components.NewSelector("Timer", labels, slices.Index(h.timers, snap.TimerLimit))
	h.timer.NextKeys = []string{"t"}

	h.rebuildMenu()
	return h
}

// timerOptions returns TimerChoices with limit merged in when it is not
// one of the defaults, so a configured value stays selectable.
func timerOptions(limit int) []int {
	opts := slices.Clone(TimerChoices)
	if limit > 0 && !slices.Contains(opts, limit) {
		opts = append(opts, limit)
		slices.Sort(opts)
	}
	return opts
}

// rebuildMenu lists the units of the active curriculum, keeping the
// cursor where it was when the curriculum is unchanged.
func (h *HomeScreen) rebuildMenu() {
	prev := h.menu.Selected

	h.units = nil
	if cur, ok := h.ctrl.Catalog().Curriculum(h.snap.Curriculum); ok {
		h.units = cur.Units
	}

	items := make([]components.MenuItem, len(h.units))
	for i, u := range h.units {
		id := u.ID
		items[i] = components.MenuItem{
			Label:   u.Title,
			Checked: h.snap.IsCompleted(id),
			Action:  func() tea.Cmd { return h.start(id) },
		}
	}
	h.menu = components.NewMenu(items)
	if prev < len(items) {
		h.menu.Selected = prev
	}
}

// start selects the unit, begins a run and opens the drill screen.
func (h *HomeScreen) start(unitID string) tea.Cmd {
	if !h.ctrl.SelectUnit(unitID) || !h.ctrl.StartPractice() {
		return nil
	}
	d := drill.New(h.ctrl)
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: d}
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case screen.SnapshotMsg:
		if msg.Snapshot.Version < h.snap.Version {
			return h, nil
		}
		changed := msg.Snapshot.Curriculum != h.snap.Curriculum
		h.snap = msg.Snapshot
		if changed {
			h.menu.Selected = 0
			h.tabs.Selected = max(slices.Index(h.keys, h.snap.Curriculum), 0)
		}
		h.rebuildMenu()
		return h, nil

	case tea.KeyMsg:
		return h.handleKey(msg)
	}
	return h, nil
}

func (h *HomeScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "q":
		return h, tea.Quit

	case "tab", "left", "right", "h", "l":
		var changed bool
		h.tabs, changed = h.tabs.Update(msg)
		if changed {
			h.ctrl.SelectCurriculum(h.keys[h.tabs.Selected])
			h.snap = h.ctrl.Snapshot()
			h.menu.Selected = 0
			h.rebuildMenu()
		}
		return h, nil

	case "t":
		prev := h.timer
		var changed bool
		h.timer, changed = h.timer.Update(msg)
		if changed {
			if err := h.ctrl.SetTimerLimit(h.timers[h.timer.Selected]); err != nil {
				h.timer = prev
				return h, nil
			}
			h.snap = h.ctrl.Snapshot()
		}
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

// SelectedUnit returns the unit under the cursor.
func (h *HomeScreen) SelectedUnit() (curriculum.Unit, bool) {
	if h.menu.Selected < 0 || h.menu.Selected >= len(h.units) {
		return curriculum.Unit{}, false
	}
	return h.units[h.menu.Selected], true
}

func (h *HomeScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	compact := layout.IsCompactHeight(height + layout.HeaderHeight + layout.FooterHeight)

	var sections []string
	sections = append(sections, renderTitle(cw, compact))
	sections = append(sections, components.Card(h.tabs.View()+"\n"+h.timer.View(), cw))
	sections = append(sections, renderStatsBar(h.completedInCurriculum(), len(h.units), cw))
	sections = append(sections, components.Card(strings.TrimRight(h.menu.View(), "\n"), cw))
	if u, ok := h.SelectedUnit(); ok {
		sections = append(sections, renderUnitDetail(u, h.snap.IsCompleted(u.ID), cw))
	}

	return components.Centered(strings.Join(sections, "\n"), width, height)
}

func (h *HomeScreen) completedInCurriculum() int {
	n := 0
	for _, u := range h.units {
		if h.snap.IsCompleted(u.ID) {
			n++
		}
	}
	return n
}

func (h *HomeScreen) Title() string {
	return fmt.Sprintf("%s Units", curriculum.DisplayName(h.snap.Curriculum))
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Unit"},
		{Key: "Tab", Description: "Curriculum"},
		{Key: "t", Description: "Timer"},
		{Key: "Enter", Description: "Start"},
		{Key: "q", Description: "Quit"},
	}
}
