// Package mouse maps terminal mouse events onto named screen regions.
package mouse

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Double-click window: the second press must land within this time and
// distance of the first, on the same region.
const (
	DoubleClickThreshold = 400 * time.Millisecond
	DoubleClickDistance  = 2
)

// Rect is a screen rectangle in cells. Width and height are exclusive.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Region is a named, hit-testable rectangle.
type Region struct {
	ID   string
	Rect Rect
	Data any
}

// HitMap holds regions in registration order. Later regions sit on top.
type HitMap struct {
	regions []Region
}

// NewHitMap returns an empty hit map.
func NewHitMap() *HitMap {
	return &HitMap{}
}

// AddRect registers a region on top of all existing regions.
func (hm *HitMap) AddRect(id string, x, y, w, h int, data any) {
	hm.Add(id, Rect{X: x, Y: y, W: w, H: h}, data)
}

// Add registers r on top of all existing regions.
func (hm *HitMap) Add(id string, r Rect, data any) {
	hm.regions = append(hm.regions, Region{ID: id, Rect: r, Data: data})
}

// Test returns the topmost region containing (x, y), or nil.
func (hm *HitMap) Test(x, y int) *Region {
	for i := len(hm.regions) - 1; i >= 0; i-- {
		if hm.regions[i].Rect.Contains(x, y) {
			return &hm.regions[i]
		}
	}
	return nil
}

// Regions returns the registered regions, bottom first.
func (hm *HitMap) Regions() []Region {
	return hm.regions
}

// Clear removes every region. Call before each render pass.
func (hm *HitMap) Clear() {
	hm.regions = hm.regions[:0]
}

// ActionType classifies a handled mouse event.
type ActionType int

const (
	ActionNone ActionType = iota
	ActionClick
	ActionDoubleClick
	ActionHover
	ActionScrollUp
	ActionScrollDown
)

// MouseAction is the result of HandleMouse.
type MouseAction struct {
	Type   ActionType
	Region *Region
	X, Y   int
}

// ClickResult is the outcome of HandleClick.
type ClickResult struct {
	Region        *Region
	IsDoubleClick bool
}

// Handler resolves mouse messages against a HitMap.
type Handler struct {
	HitMap *HitMap
	Now    func() time.Time

	hover string

	lastClickAt     time.Time
	lastClickX      int
	lastClickY      int
	lastClickRegion string
}

// NewHandler returns a handler with an empty hit map.
func NewHandler() *Handler {
	return &Handler{HitMap: NewHitMap(), Now: time.Now}
}

// HandleClick resolves the region under a click and reports whether it
// completes a double click. A double click resets the tracker, so a third
// quick click starts a new pair.
func (h *Handler) HandleClick(x, y int) ClickResult {
	region := h.HitMap.Test(x, y)
	now := h.Now()

	id := ""
	if region != nil {
		id = region.ID
	}

	double := region != nil &&
		!h.lastClickAt.IsZero() &&
		now.Sub(h.lastClickAt) <= DoubleClickThreshold &&
		abs(x-h.lastClickX) <= DoubleClickDistance &&
		abs(y-h.lastClickY) <= DoubleClickDistance &&
		id == h.lastClickRegion

	if double {
		h.lastClickAt = time.Time{}
		h.lastClickRegion = ""
	} else {
		h.lastClickAt = now
		h.lastClickX, h.lastClickY = x, y
		h.lastClickRegion = id
	}

	return ClickResult{Region: region, IsDoubleClick: double}
}

// Hovered returns the ID of the region under the pointer after the last motion event.
func (h *Handler) Hovered() string {
	return h.hover
}

// HandleMouse classifies msg and resolves the region under it.
func (h *Handler) HandleMouse(msg tea.MouseMsg) MouseAction {
	action := MouseAction{X: msg.X, Y: msg.Y}

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			result := h.HandleClick(msg.X, msg.Y)
			action.Type = ActionClick
			if result.IsDoubleClick {
				action.Type = ActionDoubleClick
			}
			action.Region = result.Region
		case tea.MouseButtonWheelUp:
			action.Type = ActionScrollUp
			action.Region = h.HitMap.Test(msg.X, msg.Y)
		case tea.MouseButtonWheelDown:
			action.Type = ActionScrollDown
			action.Region = h.HitMap.Test(msg.X, msg.Y)
		}
	case tea.MouseActionMotion:
		action.Type = ActionHover
		action.Region = h.HitMap.Test(msg.X, msg.Y)
		h.hover = ""
		if action.Region != nil {
			h.hover = action.Region.ID
		}
	}

	return action
}

// Clear drops all regions and hover state.
func (h *Handler) Clear() {
	h.HitMap.Clear()
	h.hover = ""
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
