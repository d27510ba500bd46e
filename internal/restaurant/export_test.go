package restaurant

import "sort"

// Accessors for tests. They read agent state directly, so callers must not
// run the agent concurrently.

func (h *HostAgent) OccupiedTables() []int {
	var out []int
	for _, t := range h.tables {
		if t.occupied {
			out = append(out, t.number)
		}
	}
	sort.Ints(out)
	return out
}

func (h *HostAgent) WaitListLen() int {
	return len(h.waitList)
}

func (w *WaiterAgent) OnBreak() bool {
	return w.breakState == waiterBreakOn
}

func (w *WaiterAgent) Serving() int {
	return len(w.customers)
}

func (c *CookAgent) PantryCount(item string) int {
	return c.pantry[item]
}

func (c *CustomerAgent) State() CustomerState {
	return c.state
}

func (c *CustomerAgent) Cash() float64 {
	return c.cash
}
