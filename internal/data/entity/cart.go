package entity

import "sort"

// CartLine is one bottle in a tab. Quantity is always >= 1; a line
// decremented to zero is deleted, never stored.
type CartLine struct {
	Bottle   Bottle
	Quantity int
}

// Subtotal is price * quantity in minor units.
func (l CartLine) Subtotal() int64 {
	return l.Bottle.Price * int64(l.Quantity)
}

// Progress describes how far a tab is from a table's minimum spend.
// All amounts are in minor units.
type Progress struct {
	Spent     int64
	Remaining int64
	Met       bool
}

// Cart accumulates bottle selections for one booking session. At most
// one line exists per bottle id. Amounts are kept in integer minor
// units so repeated adds and removes never drift.
type Cart struct {
	lines map[string]*CartLine
}

func NewCart() *Cart {
	return &Cart{lines: make(map[string]*CartLine)}
}

// AddBottle increments the line for the bottle, inserting it at
// quantity 1 if absent. Never fails.
func (c *Cart) AddBottle(bottle Bottle) {
	if line, ok := c.lines[bottle.ID]; ok {
		line.Quantity++
		return
	}
	c.lines[bottle.ID] = &CartLine{Bottle: bottle, Quantity: 1}
}

// RemoveBottle decrements the line for the bottle id, deleting it when
// the quantity reaches zero. Removing an absent id is a no-op; the UI
// may race a double-click.
func (c *Cart) RemoveBottle(bottleID string) {
	line, ok := c.lines[bottleID]
	if !ok {
		return
	}
	line.Quantity--
	if line.Quantity <= 0 {
		delete(c.lines, bottleID)
	}
}

// Quantity returns the quantity for a bottle id, 0 if not in the cart.
func (c *Cart) Quantity(bottleID string) int {
	if line, ok := c.lines[bottleID]; ok {
		return line.Quantity
	}
	return 0
}

// Total is the sum of price * quantity over all lines, in minor units.
func (c *Cart) Total() int64 {
	var total int64
	for _, line := range c.lines {
		total += line.Subtotal()
	}
	return total
}

// Progress compares the cart total against a minimum spend. A minimum
// of zero is always met. Pure read; calling it repeatedly without
// mutating the cart returns identical results.
func (c *Cart) Progress(minSpend int64) Progress {
	spent := c.Total()
	remaining := minSpend - spent
	if remaining < 0 {
		remaining = 0
	}
	return Progress{
		Spent:     spent,
		Remaining: remaining,
		Met:       spent >= minSpend,
	}
}

// Lines returns a copy of the cart lines sorted by bottle id.
func (c *Cart) Lines() []CartLine {
	lines := make([]CartLine, 0, len(c.lines))
	for _, line := range c.lines {
		lines = append(lines, *line)
	}
	sort.Slice(lines, func(i, j int) bool {
		return lines[i].Bottle.ID < lines[j].Bottle.ID
	})
	return lines
}

// Len returns the number of distinct bottles in the cart.
func (c *Cart) Len() int {
	return len(c.lines)
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.lines = make(map[string]*CartLine)
}
