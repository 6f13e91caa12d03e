package vesting

import (
	addr "github.com/filecoin-project/go-address"
	abi "github.com/filecoin-project/go-state-types/abi"
	big "github.com/filecoin-project/go-state-types/big"
	exitcode "github.com/filecoin-project/go-state-types/exitcode"
	rtt "github.com/filecoin-project/go-state-types/rt"

	builtin "github.com/custodia-labs/vesting-actors/actors/builtin"
	token "github.com/custodia-labs/vesting-actors/actors/builtin/token"
	vestshare "github.com/custodia-labs/vesting-actors/actors/builtin/vestshare"
	vmr "github.com/custodia-labs/vesting-actors/actors/runtime"
	adt "github.com/custodia-labs/vesting-actors/actors/util/adt"
)

type Runtime = vmr.Runtime

// The vesting actor locks deposits of a custody asset and releases them to
// beneficiaries as a deterministic function of elapsed time against a
// committed unlock schedule.
type Actor struct{}

func (a Actor) Exports() []interface{} {
	return []interface{}{
		builtin.MethodConstructor: a.Constructor,
		2:                         a.CommitSchedule,
		3:                         a.Deposit,
		4:                         a.Claim,
	}
}

var _ vmr.Invokee = Actor{}

// Actor-specific exit codes.
const (
	// A deposit arrived at or after the cliff epoch.
	ErrCliffPassed = exitcode.FirstActorSpecificExitCode + iota
	// A claim found nothing releasable.
	ErrNothingVested
)

type ConstructorParams struct {
	Token             addr.Address
	ShareToken        addr.Address
	Minter            addr.Address
	ScheduleAuthority addr.Address
	BasisPoints       uint64
}

func (a Actor) Constructor(rt Runtime, params *ConstructorParams) *abi.EmptyValue {
	rt.ValidateImmediateCallerIs(builtin.InitActorAddr)

	builtin.RequireParam(rt, params.BasisPoints > 0, "basis point denominator must be positive")
	builtin.RequireParam(rt, params.Token != addr.Undef, "custody asset address required")
	builtin.RequireParam(rt, params.ShareToken != addr.Undef, "share token address required")
	builtin.RequireParam(rt, params.Minter != addr.Undef, "minter address required")
	builtin.RequireParam(rt, params.ScheduleAuthority != addr.Undef, "schedule authority address required")

	emptyLedger, err := adt.MakeEmptyMap(adt.AsStore(rt))
	builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to create empty ledger")

	st := ConstructState(emptyLedger.Root(), params.Token, params.ShareToken, params.Minter, params.ScheduleAuthority, params.BasisPoints)
	rt.State().Create(st)
	return nil
}

// Validates and commits the unlock schedule. The schedule is committed at most
// once: recommitting (and thereby appending or replacing periods under
// already-locked funds) is forbidden.
func (a Actor) CommitSchedule(rt Runtime, params *Schedule) *abi.EmptyValue {
	var st State
	rt.State().Readonly(&st)
	rt.ValidateImmediateCallerIs(st.ScheduleAuthority)

	now := rt.CurrEpoch()
	if params.StartEpoch < now {
		rt.Abortf(exitcode.ErrIllegalArgument, "schedule start %d before current epoch %d", params.StartEpoch, now)
	}
	if params.CliffEpoch < params.StartEpoch {
		rt.Abortf(exitcode.ErrIllegalArgument, "cliff %d before schedule start %d", params.CliffEpoch, params.StartEpoch)
	}
	if params.InitialUnlockPercent > PercentDenominator {
		rt.Abortf(exitcode.ErrIllegalArgument, "initial unlock percent %d exceeds %d", params.InitialUnlockPercent, PercentDenominator)
	}
	if len(params.Periods) == 0 {
		rt.Abortf(exitcode.ErrIllegalArgument, "schedule must define at least one period")
	}

	// The period portions must partition the full denominator exactly, with
	// strictly increasing end epochs all after the cliff.
	portionSum := big.Zero()
	prevEnd := params.CliffEpoch
	for i, p := range params.Periods {
		if p.EndEpoch <= params.CliffEpoch {
			rt.Abortf(exitcode.ErrIllegalArgument, "period %d ends at %d, not after cliff %d", i, p.EndEpoch, params.CliffEpoch)
		}
		if p.EndEpoch <= prevEnd {
			rt.Abortf(exitcode.ErrIllegalArgument, "period %d ends at %d, not after previous period end %d", i, p.EndEpoch, prevEnd)
		}
		portionSum = big.Add(portionSum, big.NewIntUnsigned(p.PortionBps))
		prevEnd = p.EndEpoch
	}
	if !portionSum.Equals(big.NewIntUnsigned(st.BasisPoints)) {
		rt.Abortf(exitcode.ErrIllegalArgument, "period portions sum to %v, expected %d", portionSum, st.BasisPoints)
	}

	rt.State().Transaction(&st, func() {
		if st.Schedule != nil {
			rt.Abortf(exitcode.ErrForbidden, "vesting schedule already committed")
		}
		st.Schedule = &Schedule{
			StartEpoch:           params.StartEpoch,
			CliffEpoch:           params.CliffEpoch,
			InitialUnlockPercent: params.InitialUnlockPercent,
			Periods:              append([]VestPeriod(nil), params.Periods...),
		}
	})
	return nil
}

type DepositParams struct {
	Beneficiary addr.Address
	Amount      abi.TokenAmount
}

// Admits a new locked deposit for a beneficiary. Only the minter may deposit,
// and only before the cliff. The ledger is updated before the custody asset is
// pulled in and accounting shares are minted, so a reentrant call can never
// observe stale ledger state.
func (a Actor) Deposit(rt Runtime, params *DepositParams) *abi.EmptyValue {
	var st State
	rt.State().Readonly(&st)
	rt.ValidateImmediateCallerIs(st.Minter)

	builtin.RequireParam(rt, params.Beneficiary != addr.Undef, "beneficiary address required")
	builtin.RequireParam(rt, params.Amount.Sign() > 0, "deposit amount %v must be positive", params.Amount)

	rt.State().Transaction(&st, func() {
		if st.Schedule == nil {
			rt.Abortf(exitcode.ErrIllegalState, "no vesting schedule committed")
		}
		if rt.CurrEpoch() >= st.Schedule.CliffEpoch {
			rt.Abortf(ErrCliffPassed, "deposits closed: cliff epoch %d has passed (now %d)", st.Schedule.CliffEpoch, rt.CurrEpoch())
		}
		err := st.AddLocked(adt.AsStore(rt), params.Beneficiary, params.Amount)
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to record deposit for %v", params.Beneficiary)
	})

	rt.Log(rtt.INFO, "deposit: token %v, beneficiary %v, amount %v", st.Token, params.Beneficiary, params.Amount)

	// Ledger effects are committed; now pull the asset into custody and issue
	// an equal amount of accounting shares.
	_, code := rt.Send(st.Token, builtin.MethodsToken.TransferFrom, &token.TransferFromParams{
		From:   rt.Message().Caller(),
		To:     rt.Message().Receiver(),
		Amount: params.Amount,
	}, big.Zero())
	builtin.RequireSuccess(rt, code, "failed to transfer %v into custody", params.Amount)

	_, code = rt.Send(st.ShareToken, builtin.MethodsVestShare.Mint, &vestshare.MintParams{
		To:     params.Beneficiary,
		Amount: params.Amount,
	}, big.Zero())
	builtin.RequireSuccess(rt, code, "failed to mint %v accounting shares for %v", params.Amount, params.Beneficiary)

	return nil
}

// Releases everything the calling beneficiary has accrued but not yet claimed.
// The release is recorded in the ledger before shares are burned and the
// custody asset is paid out; the payout is an external call and must not be
// able to re-enter a claim against stale state.
func (a Actor) Claim(rt Runtime, _ *abi.EmptyValue) *abi.EmptyValue {
	rt.ValidateImmediateCallerType(builtin.CallerTypesSignable...)
	claimant := rt.Message().Caller()

	var st State
	releasable := big.Zero()
	rt.State().Transaction(&st, func() {
		if st.Schedule == nil {
			rt.Abortf(ErrNothingVested, "no vesting schedule committed")
		}
		entry, err := st.Entry(adt.AsStore(rt), claimant)
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to load ledger entry for %v", claimant)

		unlocked := UnlockedAmount(st.Schedule, st.BasisPoints, entry.Locked, rt.CurrEpoch())
		releasable = big.Sub(unlocked, entry.Released)
		if releasable.Sign() <= 0 {
			rt.Abortf(ErrNothingVested, "nothing vested for %v at epoch %d", claimant, rt.CurrEpoch())
		}

		err = st.AddReleased(adt.AsStore(rt), claimant, releasable)
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to record release for %v", claimant)
	})

	_, code := rt.Send(st.ShareToken, builtin.MethodsVestShare.Burn, &vestshare.BurnParams{
		From:   claimant,
		Amount: releasable,
	}, big.Zero())
	builtin.RequireSuccess(rt, code, "failed to burn %v accounting shares of %v", releasable, claimant)

	_, code = rt.Send(st.Token, builtin.MethodsToken.Transfer, &token.TransferParams{
		To:     claimant,
		Amount: releasable,
	}, big.Zero())
	builtin.RequireSuccess(rt, code, "failed to release %v to %v", releasable, claimant)

	return nil
}
