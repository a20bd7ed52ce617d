package nav

// State is the navigation state of one view.
type State struct {
	Active        Section
	Search        string
	SecondaryOpen bool // list pane expanded on wide viewports
	MobileOpen    bool // overlay sidebar shown on narrow viewports
}

// NewState returns the state of a fresh view.
func NewState() State {
	return State{Active: DefaultItems()[0].Section}
}

// Event is a navigation input.
type Event interface {
	isEvent()
}

// SelectSection activates a rail item. Mobile tells the reducer the host
// viewport is narrow.
type SelectSection struct {
	Section Section
	Mobile  bool
}

// SetSearch replaces the search text.
type SetSearch struct {
	Text string
}

// OpenMobile shows or hides the mobile overlay.
type OpenMobile struct {
	Open bool
}

// OpenSecondary expands or collapses the list pane on wide viewports.
type OpenSecondary struct {
	Open bool
}

func (SelectSection) isEvent() {}
func (SetSearch) isEvent()     {}
func (OpenMobile) isEvent()    {}
func (OpenSecondary) isEvent() {}

// Effect is a side effect the host must perform after a transition.
type Effect struct {
	Navigate string // route to push, empty for none
}

// None reports whether the effect is empty.
func (e Effect) None() bool { return e.Navigate == "" }

// Reduce applies ev to s.
func Reduce(s State, ev Event) (State, Effect) {
	switch ev := ev.(type) {
	case SelectSection:
		s.Active = ev.Section
		s.MobileOpen = false
		if ev.Mobile {
			return s, Effect{Navigate: ItemFor(ev.Section).URL}
		}
		s.SecondaryOpen = true
	case SetSearch:
		s.Search = ev.Text
	case OpenMobile:
		s.MobileOpen = ev.Open
	case OpenSecondary:
		s.SecondaryOpen = ev.Open
	}
	return s, Effect{}
}
