package vestshare

import (
	addr "github.com/filecoin-project/go-address"
	abi "github.com/filecoin-project/go-state-types/abi"
	big "github.com/filecoin-project/go-state-types/big"
	exitcode "github.com/filecoin-project/go-state-types/exitcode"

	builtin "github.com/custodia-labs/vesting-actors/actors/builtin"
	vmr "github.com/custodia-labs/vesting-actors/actors/runtime"
	adt "github.com/custodia-labs/vesting-actors/actors/util/adt"
)

type Runtime = vmr.Runtime

// The vestshare actor is the accounting-share unit backing vesting positions:
// a receipt token minted on deposit and burned on claim by its controller (the
// vesting actor). It is not a tradable asset; transfers between accounts
// always fail.
type Actor struct{}

func (a Actor) Exports() []interface{} {
	return []interface{}{
		builtin.MethodConstructor: a.Constructor,
		2:                         a.Mint,
		3:                         a.Burn,
		4:                         a.Transfer,
	}
}

var _ vmr.Invokee = Actor{}

// Actor-specific exit codes.
const (
	// An attempted transfer of shares between accounts.
	ErrTransfersDisabled = exitcode.FirstActorSpecificExitCode + iota
)

type ConstructorParams struct {
	Controller addr.Address
}

func (a Actor) Constructor(rt Runtime, params *ConstructorParams) *abi.EmptyValue {
	rt.ValidateImmediateCallerIs(builtin.InitActorAddr)

	builtin.RequireParam(rt, params.Controller != addr.Undef, "controller address required")

	emptyBalances, err := adt.MakeEmptyMap(adt.AsStore(rt))
	builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to create empty balance table")

	st := ConstructState(emptyBalances.Root(), params.Controller)
	rt.State().Create(st)
	return nil
}

type MintParams struct {
	To     addr.Address
	Amount abi.TokenAmount
}

func (a Actor) Mint(rt Runtime, params *MintParams) *abi.EmptyValue {
	var st State
	rt.State().Readonly(&st)
	rt.ValidateImmediateCallerIs(st.Controller)

	builtin.RequireParam(rt, params.To != addr.Undef, "mint recipient required")
	builtin.RequireParam(rt, params.Amount.Sign() > 0, "mint amount %v must be positive", params.Amount)

	rt.State().Transaction(&st, func() {
		balances := adt.AsBalanceTable(adt.AsStore(rt), st.Balances)
		err := balances.Add(params.To, params.Amount)
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to credit %v", params.To)
		st.Balances = balances.Root()
		st.Supply = big.Add(st.Supply, params.Amount)
	})
	return nil
}

type BurnParams struct {
	From   addr.Address
	Amount abi.TokenAmount
}

func (a Actor) Burn(rt Runtime, params *BurnParams) *abi.EmptyValue {
	var st State
	rt.State().Readonly(&st)
	rt.ValidateImmediateCallerIs(st.Controller)

	builtin.RequireParam(rt, params.Amount.Sign() > 0, "burn amount %v must be positive", params.Amount)

	rt.State().Transaction(&st, func() {
		balances := adt.AsBalanceTable(adt.AsStore(rt), st.Balances)
		held, err := balances.Get(params.From)
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to load balance of %v", params.From)
		if held.LessThan(params.Amount) {
			rt.Abortf(exitcode.ErrInsufficientFunds, "cannot burn %v, %v holds %v", params.Amount, params.From, held)
		}
		err = balances.Add(params.From, params.Amount.Neg())
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to debit %v", params.From)
		st.Balances = balances.Root()
		st.Supply = big.Sub(st.Supply, params.Amount)
	})
	return nil
}

type TransferParams struct {
	To     addr.Address
	Amount abi.TokenAmount
}

// Shares exist purely as an internal accounting receipt, so transfers between
// accounts are rejected unconditionally.
func (a Actor) Transfer(rt Runtime, params *TransferParams) *abi.EmptyValue {
	rt.ValidateImmediateCallerAcceptAny()
	rt.Abortf(ErrTransfersDisabled, "accounting shares are not transferable")
	return nil
}
