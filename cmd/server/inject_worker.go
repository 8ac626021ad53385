package main

import (
	"github.com/google/wire"

	"github.com/halcyonlabs/demo-wallet/worker/confirmer"
)

var workerSet = wire.NewSet(
	confirmer.New,
)
