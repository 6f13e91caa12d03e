package vestshare

import (
	"github.com/filecoin-project/go-state-types/abi"

	"github.com/custodia-labs/vesting-actors/actors/builtin"
	"github.com/custodia-labs/vesting-actors/actors/util/adt"
)

type StateSummary struct {
	Holders      int
	BalanceTotal abi.TokenAmount
}

// Checks internal invariants of share token state.
func CheckStateInvariants(st *State, store adt.Store) (*StateSummary, *builtin.MessageAccumulator, error) {
	acc := &builtin.MessageAccumulator{}

	acc.Require(st.Supply.Sign() >= 0, "share supply is negative: %v", st.Supply)

	balances := adt.AsBalanceTable(store, st.Balances)
	keys, err := adt.AsMap(store, st.Balances).CollectKeys()
	if err != nil {
		return nil, acc, err
	}
	total, err := balances.Total()
	if err != nil {
		return nil, acc, err
	}

	acc.Require(total.Equals(st.Supply), "sum of balances %v does not match supply %v", total, st.Supply)

	return &StateSummary{
		Holders:      len(keys),
		BalanceTotal: total,
	}, acc, nil
}
