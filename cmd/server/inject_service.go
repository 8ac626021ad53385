package main

import (
	"github.com/google/wire"
	"github.com/spf13/viper"

	"github.com/halcyonlabs/demo-wallet/core"
	"github.com/halcyonlabs/demo-wallet/service/account"
	"github.com/halcyonlabs/demo-wallet/service/fixture"
	"github.com/halcyonlabs/demo-wallet/service/ledger"
	"github.com/halcyonlabs/demo-wallet/service/quote"
	"github.com/halcyonlabs/demo-wallet/service/security"
	"github.com/halcyonlabs/demo-wallet/service/token"
)

var serviceSet = wire.NewSet(
	provideTokenConfig,
	token.New,
	wire.Bind(new(core.TokenIssuer), new(*token.Service)),
	wire.Bind(new(core.SessionVerifier), new(*token.Service)),
	provideFixtureConfig,
	fixture.New,
	provideQuoteConfig,
	quote.New,
	provideSecurityConfig,
	security.New,
	account.New,
	ledger.New,
)

func provideTokenConfig(v *viper.Viper) token.Config {
	v.SetDefault("auth.secret", "demo-wallet-not-a-secret")
	v.SetDefault("auth.issuer", "demo-wallet")
	v.SetDefault("auth.ttl", "24h")

	return token.Config{
		Secret: v.GetString("auth.secret"),
		Issuer: v.GetString("auth.issuer"),
		TTL:    v.GetDuration("auth.ttl"),
	}
}

func provideFixtureConfig(v *viper.Viper) fixture.Config {
	return fixture.Config{Seed: v.GetInt64("fixture.seed")}
}

func provideQuoteConfig(v *viper.Viper) quote.Config {
	return quote.Config{Seed: v.GetInt64("fixture.seed")}
}

func provideSecurityConfig(v *viper.Viper) security.Config {
	return security.Config{Seed: v.GetInt64("fixture.seed")}
}
