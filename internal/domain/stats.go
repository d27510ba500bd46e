package domain

// Stats is the live projection of the event stream kept in Redis.
type Stats struct {
	OccupiedTables  []int              `json:"occupied_tables"`
	WaitersOnBreak  []string           `json:"waiters_on_break"`
	Revenue         float64            `json:"revenue"`
	MarketSpend     float64            `json:"market_spend"`
	WorkOffHours    float64            `json:"work_off_hours"`
	CustomersServed int64              `json:"customers_served"`
	WalkOuts        int64              `json:"walk_outs"`
	Dishes          map[string]float64 `json:"dishes"`
}
