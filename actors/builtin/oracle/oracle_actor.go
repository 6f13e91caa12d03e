package oracle

import (
	addr "github.com/filecoin-project/go-address"
	abi "github.com/filecoin-project/go-state-types/abi"
	big "github.com/filecoin-project/go-state-types/big"

	builtin "github.com/custodia-labs/vesting-actors/actors/builtin"
	vmr "github.com/custodia-labs/vesting-actors/actors/runtime"
)

type Runtime = vmr.Runtime

// The oracle actor records the latest price for a single asset pair, posted by
// a designated reporter. It is a read-only collaborator for consumers and has
// no interaction with the vesting ledger.
type Actor struct{}

func (a Actor) Exports() []interface{} {
	return []interface{}{
		builtin.MethodConstructor: a.Constructor,
		2:                         a.SubmitPrice,
		3:                         a.LatestRound,
	}
}

var _ vmr.Invokee = Actor{}

type State struct {
	// The only principal permitted to post prices.
	Reporter addr.Address
	// The asset pair this feed reports, e.g. "FIL/USD".
	Ticker string
	// Most recently posted price, denominated in the feed's own precision.
	Price abi.TokenAmount
	// Epoch of the most recent post, zero if no price was ever posted.
	UpdatedAt abi.ChainEpoch
}

type ConstructorParams struct {
	Reporter addr.Address
	Ticker   string
}

func (a Actor) Constructor(rt Runtime, params *ConstructorParams) *abi.EmptyValue {
	rt.ValidateImmediateCallerIs(builtin.InitActorAddr)

	builtin.RequireParam(rt, params.Reporter != addr.Undef, "reporter address required")
	builtin.RequireParam(rt, len(params.Ticker) > 0, "ticker required")

	rt.State().Create(&State{
		Reporter:  params.Reporter,
		Ticker:    params.Ticker,
		Price:     big.Zero(),
		UpdatedAt: abi.ChainEpoch(0),
	})
	return nil
}

type SubmitPriceParams struct {
	Price abi.TokenAmount
}

func (a Actor) SubmitPrice(rt Runtime, params *SubmitPriceParams) *abi.EmptyValue {
	var st State
	rt.State().Readonly(&st)
	rt.ValidateImmediateCallerIs(st.Reporter)

	builtin.RequireParam(rt, params.Price.Sign() > 0, "price %v must be positive", params.Price)

	rt.State().Transaction(&st, func() {
		st.Price = params.Price
		st.UpdatedAt = rt.CurrEpoch()
	})
	return nil
}

type LatestRoundReturn struct {
	Price     abi.TokenAmount
	UpdatedAt abi.ChainEpoch
}

func (a Actor) LatestRound(rt Runtime, _ *abi.EmptyValue) *LatestRoundReturn {
	rt.ValidateImmediateCallerAcceptAny()

	var st State
	rt.State().Readonly(&st)
	builtin.RequireState(rt, st.UpdatedAt != 0, "no price posted for %s", st.Ticker)
	return &LatestRoundReturn{
		Price:     st.Price,
		UpdatedAt: st.UpdatedAt,
	}
}
