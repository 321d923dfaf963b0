package page

import "time"

// Trigger says when an entrance animation starts.
type Trigger string

const (
	// OnLoad plays once when the page loads.
	OnLoad Trigger = "load"
	// InView plays once when the element first scrolls into the viewport.
	InView Trigger = "view"
)

// Motion is cosmetic entrance animation metadata. The page content is the
// same whether or not a client ever plays it.
type Motion struct {
	Preset   string
	Trigger  Trigger
	Duration time.Duration
	Delay    time.Duration
}

func fadeUp(trigger Trigger, d time.Duration) Motion {
	return Motion{Preset: "fade-up", Trigger: trigger, Duration: d}
}

func scaleIn(d, delay time.Duration) Motion {
	return Motion{Preset: "scale-in", Trigger: OnLoad, Duration: d, Delay: delay}
}

// staggered delays the nth card of a grid by 50ms per position.
func staggered(m Motion, n int) Motion {
	m.Delay = time.Duration(n) * 50 * time.Millisecond
	return m
}
