package core

// FixtureService fabricates the per-user demo data. Implementations draw
// from an injected random source so tests can pin the seed.
type FixtureService interface {
	Wallets(userID string) []*Wallet
	Transactions(userID string) []*Transaction
	TxHash() string
}
