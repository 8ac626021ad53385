package db

import (
	"sync"

	"github.com/halcyonlabs/demo-wallet/core"
)

// Memory is the process-wide registry backing every entity store. One lock
// guards all maps so a mutation touching several entities (transaction
// insert + reward grant) stays a single critical section.
type Memory struct {
	mu sync.RWMutex

	Users        map[string]*core.User
	EmailIndex   map[string]string
	Wallets      map[string][]*core.Wallet
	Transactions map[string][]*core.Transaction
	Rewards      map[string]*core.UserRewards
	Recoveries   map[string][]*core.RecoveryRequest
}

func NewMemory() *Memory {
	return &Memory{
		Users:        make(map[string]*core.User),
		EmailIndex:   make(map[string]string),
		Wallets:      make(map[string][]*core.Wallet),
		Transactions: make(map[string][]*core.Transaction),
		Rewards:      make(map[string]*core.UserRewards),
		Recoveries:   make(map[string][]*core.RecoveryRequest),
	}
}

// Update runs fn under the write lock.
func (m *Memory) Update(fn func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	fn()
}

// View runs fn under the read lock.
func (m *Memory) View(fn func()) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	fn()
}
