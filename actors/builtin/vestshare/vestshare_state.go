package vestshare

import (
	addr "github.com/filecoin-project/go-address"
	abi "github.com/filecoin-project/go-state-types/abi"
	big "github.com/filecoin-project/go-state-types/big"
	cid "github.com/ipfs/go-cid"

	adt "github.com/custodia-labs/vesting-actors/actors/util/adt"
)

type State struct {
	// The only actor permitted to mint and burn shares.
	Controller addr.Address
	// Total shares outstanding: minted minus burned.
	Supply abi.TokenAmount
	// Per-holder balances: HAMT[address]TokenAmount.
	Balances cid.Cid
}

func ConstructState(emptyBalances cid.Cid, controller addr.Address) *State {
	return &State{
		Controller: controller,
		Supply:     big.Zero(),
		Balances:   emptyBalances,
	}
}

// Returns a holder's share balance, zero if they hold none.
func (st *State) BalanceOf(store adt.Store, holder addr.Address) (abi.TokenAmount, error) {
	return adt.AsBalanceTable(store, st.Balances).Get(holder)
}
