package main

import "github.com/halcyonlabs/demo-wallet/cmd/demowallet-cli/cmd"

func main() {
	cmd.Execute()
}
