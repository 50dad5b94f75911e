package ui

import "sync"

// ScrollThreshold is the vertical offset in px past which the navbar
// switches to its compact style.
const ScrollThreshold = 50

type Navbar struct {
	mu             sync.Mutex
	scrolled       bool
	mobileMenuOpen bool
}

func NewNavbar(scrollY float64, menuOpen bool) *Navbar {
	n := &Navbar{mobileMenuOpen: menuOpen}
	n.OnScroll(scrollY)
	return n
}

func (n *Navbar) OnScroll(scrollY float64) {
	n.mu.Lock()
	n.scrolled = scrollY > ScrollThreshold
	n.mu.Unlock()
}

func (n *Navbar) ToggleMenu() {
	n.mu.Lock()
	n.mobileMenuOpen = !n.mobileMenuOpen
	n.mu.Unlock()
}

// CloseMenu runs when a mobile link is followed.
func (n *Navbar) CloseMenu() {
	n.mu.Lock()
	n.mobileMenuOpen = false
	n.mu.Unlock()
}

func (n *Navbar) Scrolled() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.scrolled
}

func (n *Navbar) MobileMenuOpen() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.mobileMenuOpen
}
