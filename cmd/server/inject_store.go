package main

import (
	"github.com/google/wire"

	"github.com/halcyonlabs/demo-wallet/store/db"
	"github.com/halcyonlabs/demo-wallet/store/recovery"
	"github.com/halcyonlabs/demo-wallet/store/reward"
	"github.com/halcyonlabs/demo-wallet/store/transaction"
	"github.com/halcyonlabs/demo-wallet/store/user"
	"github.com/halcyonlabs/demo-wallet/store/wallet"
)

var storeSet = wire.NewSet(
	db.NewMemory,
	user.New,
	wallet.New,
	transaction.New,
	reward.New,
	recovery.New,
)
