package domain

// MenuItem is one dish. CookTime is in simulation time units.
type MenuItem struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	CookTime float64 `json:"cook_time"`
}

// Menu is immutable once built and may be handed to any agent.
type Menu struct {
	items []MenuItem
}

func NewMenu(items ...MenuItem) Menu {
	return Menu{items: append([]MenuItem(nil), items...)}
}

func DefaultMenu() Menu {
	return NewMenu(
		MenuItem{Name: "Steak", Price: 15.99, CookTime: 5},
		MenuItem{Name: "Chicken", Price: 10.99, CookTime: 4},
		MenuItem{Name: "Salad", Price: 5.99, CookTime: 2},
		MenuItem{Name: "Pizza", Price: 8.99, CookTime: 3},
	)
}

func (m Menu) Lookup(name string) (MenuItem, bool) {
	for _, it := range m.items {
		if it.Name == name {
			return it, true
		}
	}
	return MenuItem{}, false
}

func (m Menu) Price(name string) (float64, bool) {
	it, ok := m.Lookup(name)
	return it.Price, ok
}

func (m Menu) Items() []MenuItem {
	return append([]MenuItem(nil), m.items...)
}

func (m Menu) Names() []string {
	names := make([]string, len(m.items))
	for i, it := range m.items {
		names[i] = it.Name
	}
	return names
}

func (m Menu) Len() int {
	return len(m.items)
}

// Supply is a market's line for one item.
type Supply struct {
	Price float64 `json:"price"`
	Stock int     `json:"stock"`
}

func DefaultCatalog() map[string]Supply {
	return map[string]Supply{
		"Steak":   {Price: 8, Stock: 15},
		"Chicken": {Price: 4, Stock: 10},
		"Salad":   {Price: 1, Stock: 5},
		"Pizza":   {Price: 3, Stock: 8},
	}
}

// DefaultPantry is what a cook starts a shift with.
func DefaultPantry(m Menu) map[string]int {
	pantry := make(map[string]int, m.Len())
	for _, name := range m.Names() {
		pantry[name] = 10
	}
	return pantry
}
