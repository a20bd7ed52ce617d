// Package layout decides whether the auxiliary outline panel fits next to the
// post column, given the viewport width and the primary sidebar state.
package layout

const (
	SidebarWidth     = 300
	BlogWidth        = 578.4 + 32 // post column plus its padding
	ContentThreshold = 298        // minimum room left for the outline panel
	MobileBreakpoint = 768
)

// Remaining returns the horizontal space left after the post column and, when
// open, the primary sidebar.
func Remaining(width int, sidebarOpen bool) float64 {
	if width < 0 {
		width = 0
	}
	if sidebarOpen {
		return float64(width) - SidebarWidth - BlogWidth
	}
	return float64(width) - BlogWidth
}

// ShowAuxiliary reports whether the outline panel should render.
func ShowAuxiliary(width int, sidebarOpen bool) bool {
	return Remaining(width, sidebarOpen) >= ContentThreshold
}

// IsMobile reports whether width belongs to a narrow viewport. A zero width
// means the client has not reported yet and is treated as wide.
func IsMobile(width int) bool {
	return width > 0 && width < MobileBreakpoint
}

// Viewport caches the visibility decision for one view. The decision depends
// on width and sidebarOpen only and is recomputed when one of them changes.
type Viewport struct {
	width       int
	sidebarOpen bool
	show        bool
	gen         uint64
}

// NewViewport returns the state of a view that has not been measured yet.
func NewViewport() Viewport {
	return RestoreViewport(0, false)
}

// RestoreViewport rebuilds a viewport from stored dependencies.
func RestoreViewport(width int, sidebarOpen bool) Viewport {
	if width < 0 {
		width = 0
	}
	v := Viewport{width: width, sidebarOpen: sidebarOpen}
	v.show = ShowAuxiliary(v.width, v.sidebarOpen)
	return v
}

func (v Viewport) recompute() Viewport {
	v.show = ShowAuxiliary(v.width, v.sidebarOpen)
	v.gen++
	return v
}

// Resize applies a window resize.
func (v Viewport) Resize(width int) Viewport {
	if width < 0 {
		width = 0
	}
	if width == v.width {
		return v
	}
	v.width = width
	return v.recompute()
}

// SetSidebarOpen applies a primary sidebar toggle.
func (v Viewport) SetSidebarOpen(open bool) Viewport {
	if open == v.sidebarOpen {
		return v
	}
	v.sidebarOpen = open
	return v.recompute()
}

func (v Viewport) Width() int          { return v.width }
func (v Viewport) SidebarOpen() bool   { return v.sidebarOpen }
func (v Viewport) ShowAuxiliary() bool { return v.show }
func (v Viewport) Mobile() bool        { return IsMobile(v.width) }

// Generation counts how many times the decision has been recomputed.
func (v Viewport) Generation() uint64 { return v.gen }
