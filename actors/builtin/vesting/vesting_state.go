package vesting

import (
	addr "github.com/filecoin-project/go-address"
	abi "github.com/filecoin-project/go-state-types/abi"
	big "github.com/filecoin-project/go-state-types/big"
	cid "github.com/ipfs/go-cid"
	errors "github.com/pkg/errors"
	"golang.org/x/xerrors"

	adt "github.com/custodia-labs/vesting-actors/actors/util/adt"
)

type State struct {
	// The external custody asset held in trust and released on claim.
	Token addr.Address
	// The accounting-share token controlled by this actor.
	ShareToken addr.Address
	// The only principal permitted to deposit.
	Minter addr.Address
	// The only principal permitted to commit the schedule.
	ScheduleAuthority addr.Address

	// Fixed precision denominator for period portions, immutable after construction.
	BasisPoints uint64

	// The committed unlock schedule. Nil until CommitSchedule succeeds, and
	// immutable thereafter.
	Schedule *Schedule

	// Ledger of vesting positions: HAMT[address]LedgerEntry.
	Ledger cid.Cid

	// Sum of all LedgerEntry.Locked amounts, maintained so aggregate supply
	// can be reported without iterating the ledger.
	InitialLockedSupply abi.TokenAmount
}

// An administrator-defined unlock schedule. After the cliff, an initial
// percentage of each position unlocks immediately and the remainder unlocks
// linearly within each period, period portions summing to the basis-point
// denominator.
type Schedule struct {
	StartEpoch           abi.ChainEpoch
	CliffEpoch           abi.ChainEpoch
	InitialUnlockPercent uint64
	Periods              []VestPeriod
}

// One segment of the schedule, ending at EndEpoch (exclusive start at the
// previous period's end, or the cliff for the first period).
type VestPeriod struct {
	EndEpoch   abi.ChainEpoch
	PortionBps uint64
}

// A beneficiary's vesting position. Both fields are cumulative and only ever grow.
type LedgerEntry struct {
	Locked   abi.TokenAmount
	Released abi.TokenAmount
}

func ConstructState(emptyLedger cid.Cid, token, shareToken, minter, authority addr.Address, basisPoints uint64) *State {
	return &State{
		Token:             token,
		ShareToken:        shareToken,
		Minter:            minter,
		ScheduleAuthority: authority,

		BasisPoints: basisPoints,
		Schedule:    nil,

		Ledger:              emptyLedger,
		InitialLockedSupply: big.Zero(),
	}
}

// Returns the ledger entry for a beneficiary, which is zero if they have never
// received a deposit.
func (st *State) Entry(store adt.Store, beneficiary addr.Address) (LedgerEntry, error) {
	ledger := adt.AsMap(store, st.Ledger)
	entry := LedgerEntry{Locked: big.Zero(), Released: big.Zero()}
	found, err := ledger.Get(adt.AddrKey(beneficiary), &entry)
	if err != nil {
		return LedgerEntry{}, errors.Wrapf(err, "failed to load ledger entry for %v", beneficiary)
	}
	if !found {
		entry = LedgerEntry{Locked: big.Zero(), Released: big.Zero()}
	}
	return entry, nil
}

// Records a deposit for a beneficiary, creating their entry if absent, and
// increases the aggregate locked supply.
func (st *State) AddLocked(store adt.Store, beneficiary addr.Address, amount abi.TokenAmount) error {
	entry, err := st.Entry(store, beneficiary)
	if err != nil {
		return err
	}
	entry.Locked = big.Add(entry.Locked, amount)

	ledger := adt.AsMap(store, st.Ledger)
	if err := ledger.Put(adt.AddrKey(beneficiary), &entry); err != nil {
		return errors.Wrapf(err, "failed to put ledger entry for %v", beneficiary)
	}
	st.Ledger = ledger.Root()
	st.InitialLockedSupply = big.Add(st.InitialLockedSupply, amount)
	return nil
}

// Records a release for a beneficiary. The entry must exist, and the release
// must not exceed what remains locked; the caller is responsible for having
// computed `amount` against the accrual schedule.
func (st *State) AddReleased(store adt.Store, beneficiary addr.Address, amount abi.TokenAmount) error {
	ledger := adt.AsMap(store, st.Ledger)
	var entry LedgerEntry
	found, err := ledger.Get(adt.AddrKey(beneficiary), &entry)
	if err != nil {
		return errors.Wrapf(err, "failed to load ledger entry for %v", beneficiary)
	}
	if !found {
		return xerrors.Errorf("no ledger entry for %v", beneficiary)
	}

	entry.Released = big.Add(entry.Released, amount)
	if entry.Released.GreaterThan(entry.Locked) {
		return xerrors.Errorf("release of %v for %v exceeds locked %v", amount, beneficiary, entry.Locked)
	}

	if err := ledger.Put(adt.AddrKey(beneficiary), &entry); err != nil {
		return errors.Wrapf(err, "failed to put ledger entry for %v", beneficiary)
	}
	st.Ledger = ledger.Root()
	return nil
}

// Reports the aggregate unlocked supply at an epoch by applying the accrual
// schedule to the aggregate locked supply. Because accrual floors per
// position, this can overstate the sum over individual entries by a few
// indivisible units; it is a reporting convenience, not a ledger invariant.
func (st *State) UnlockedSupply(at abi.ChainEpoch) abi.TokenAmount {
	if st.Schedule == nil {
		return big.Zero()
	}
	return UnlockedAmount(st.Schedule, st.BasisPoints, st.InitialLockedSupply, at)
}

// The amount a beneficiary could claim at an epoch: accrued minus already released.
func (st *State) Releasable(store adt.Store, beneficiary addr.Address, at abi.ChainEpoch) (abi.TokenAmount, error) {
	if st.Schedule == nil {
		return big.Zero(), nil
	}
	entry, err := st.Entry(store, beneficiary)
	if err != nil {
		return big.Zero(), err
	}
	return big.Sub(UnlockedAmount(st.Schedule, st.BasisPoints, entry.Locked, at), entry.Released), nil
}
