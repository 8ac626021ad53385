package core

import (
	"context"
	"time"
)

// Reward is a single append-only EXP grant.
type Reward struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	ExpAmount   int       `json:"expAmount"`
	Source      string    `json:"source"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"timestamp"`
}

type UserRewards struct {
	UserID   string    `json:"userId"`
	TotalExp int       `json:"totalExp"`
	Level    int       `json:"level"`
	Entries  []*Reward `json:"rewards"`
}

// LevelForExp derives the level from total experience. Level is always
// recomputed through this, never stored independently.
func LevelForExp(totalExp int) int {
	return totalExp/100 + 1
}

type RewardStore interface {
	Init(ctx context.Context, userID string, totalExp int, entries []*Reward) error
	Find(ctx context.Context, userID string) (*UserRewards, error)
}
