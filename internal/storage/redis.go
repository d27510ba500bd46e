package storage

import (
	"context"
	"sort"
	"strconv"

	"github.com/redis/go-redis/v9"

	"overcooked-agents/internal/domain"
)

const (
	keyTables = "sim:tables"
	keyBreaks = "sim:breaks"
	keyTotals = "sim:totals"
	keyDishes = "sim:dishes"
)

// RedisStats keeps a live projection of the event stream.
type RedisStats struct {
	Client *redis.Client
}

func NewRedisStats(client *redis.Client) *RedisStats {
	return &RedisStats{Client: client}
}

func (s *RedisStats) WriteEvent(ctx context.Context, ev domain.Event) error {
	switch ev.Type {
	case domain.EventTableOccupied:
		return s.Client.SAdd(ctx, keyTables, ev.Table).Err()
	case domain.EventTableCleared:
		return s.Client.SRem(ctx, keyTables, ev.Table).Err()
	case domain.EventWaiterOnBreak:
		return s.Client.SAdd(ctx, keyBreaks, ev.Agent).Err()
	case domain.EventWaiterOffBreak:
		return s.Client.SRem(ctx, keyBreaks, ev.Agent).Err()
	case domain.EventCustomerOrdered:
		return s.Client.ZIncrBy(ctx, keyDishes, 1, ev.Item).Err()
	case domain.EventCustomerLeft:
		return s.Client.HIncrBy(ctx, keyTotals, "customers_served", 1).Err()
	case domain.EventCustomerLeftQueue:
		return s.Client.HIncrBy(ctx, keyTotals, "walk_outs", 1).Err()
	case domain.EventBillSettled:
		return s.settle(ctx, ev)
	}
	return nil
}

func (s *RedisStats) settle(ctx context.Context, ev domain.Event) error {
	if ev.Bill == nil {
		return nil
	}
	if ev.Bill.Payer == domain.PayerMarket {
		return s.Client.HIncrByFloat(ctx, keyTotals, "market_spend", ev.Amount).Err()
	}
	if err := s.Client.HIncrByFloat(ctx, keyTotals, "revenue", ev.Amount).Err(); err != nil {
		return err
	}
	if ev.Bill.Status == domain.BillPaidByWork {
		return s.Client.HIncrByFloat(ctx, keyTotals, "work_off_hours", ev.Bill.HoursOwed).Err()
	}
	return nil
}

func (s *RedisStats) Snapshot(ctx context.Context) (domain.Stats, error) {
	stats := domain.Stats{
		OccupiedTables: []int{},
		WaitersOnBreak: []string{},
		Dishes:         map[string]float64{},
	}

	tables, err := s.Client.SMembers(ctx, keyTables).Result()
	if err != nil {
		return stats, err
	}
	for _, t := range tables {
		if n, err := strconv.Atoi(t); err == nil {
			stats.OccupiedTables = append(stats.OccupiedTables, n)
		}
	}
	sort.Ints(stats.OccupiedTables)

	breaks, err := s.Client.SMembers(ctx, keyBreaks).Result()
	if err != nil {
		return stats, err
	}
	sort.Strings(breaks)
	stats.WaitersOnBreak = append(stats.WaitersOnBreak, breaks...)

	totals, err := s.Client.HGetAll(ctx, keyTotals).Result()
	if err != nil {
		return stats, err
	}
	stats.Revenue = domain.Round2(parseFloat(totals["revenue"]))
	stats.MarketSpend = domain.Round2(parseFloat(totals["market_spend"]))
	stats.WorkOffHours = domain.Round2(parseFloat(totals["work_off_hours"]))
	stats.CustomersServed, _ = strconv.ParseInt(totals["customers_served"], 10, 64)
	stats.WalkOuts, _ = strconv.ParseInt(totals["walk_outs"], 10, 64)

	dishes, err := s.Client.ZRevRangeWithScores(ctx, keyDishes, 0, -1).Result()
	if err != nil {
		return stats, err
	}
	for _, z := range dishes {
		if name, ok := z.Member.(string); ok {
			stats.Dishes[name] = z.Score
		}
	}
	return stats, nil
}

// Reset clears the projection when a new simulation starts.
func (s *RedisStats) Reset(ctx context.Context) error {
	return s.Client.Del(ctx, keyTables, keyBreaks, keyTotals, keyDishes).Err()
}

func parseFloat(v string) float64 {
	f, _ := strconv.ParseFloat(v, 64)
	return f
}
