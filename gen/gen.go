package main

import (
	oracle "github.com/custodia-labs/vesting-actors/actors/builtin/oracle"
	token "github.com/custodia-labs/vesting-actors/actors/builtin/token"
	vesting "github.com/custodia-labs/vesting-actors/actors/builtin/vesting"
	vestshare "github.com/custodia-labs/vesting-actors/actors/builtin/vestshare"

	gen "github.com/whyrusleeping/cbor-gen"
)

func main() {
	if err := gen.WriteTupleEncodersToFile("./actors/builtin/vesting/cbor_gen.go", "vesting",
		// actor state
		vesting.State{},
		vesting.Schedule{},
		vesting.VestPeriod{},
		vesting.LedgerEntry{},
		// method params
		vesting.ConstructorParams{},
		vesting.DepositParams{},
	); err != nil {
		panic(err)
	}

	if err := gen.WriteTupleEncodersToFile("./actors/builtin/vestshare/cbor_gen.go", "vestshare",
		// actor state
		vestshare.State{},
		// method params
		vestshare.ConstructorParams{},
		vestshare.MintParams{},
		vestshare.BurnParams{},
		vestshare.TransferParams{},
	); err != nil {
		panic(err)
	}

	if err := gen.WriteTupleEncodersToFile("./actors/builtin/token/cbor_gen.go", "token",
		// method params
		token.TransferParams{},
		token.TransferFromParams{},
	); err != nil {
		panic(err)
	}

	if err := gen.WriteTupleEncodersToFile("./actors/builtin/oracle/cbor_gen.go", "oracle",
		// actor state
		oracle.State{},
		// method params
		oracle.ConstructorParams{},
		oracle.SubmitPriceParams{},
		oracle.LatestRoundReturn{},
	); err != nil {
		panic(err)
	}
}
