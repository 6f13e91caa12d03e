package vesting

import (
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/big"

	"github.com/custodia-labs/vesting-actors/actors/builtin"
	"github.com/custodia-labs/vesting-actors/actors/util/adt"
)

type StateSummary struct {
	Beneficiaries int
	TotalLocked   abi.TokenAmount
	TotalReleased abi.TokenAmount
}

// Checks internal invariants of vesting actor state.
func CheckStateInvariants(st *State, store adt.Store) (*StateSummary, *builtin.MessageAccumulator, error) {
	acc := &builtin.MessageAccumulator{}

	if st.Schedule != nil {
		sched := st.Schedule
		acc.Require(sched.CliffEpoch >= sched.StartEpoch,
			"cliff epoch %d precedes start epoch %d", sched.CliffEpoch, sched.StartEpoch)
		acc.Require(sched.InitialUnlockPercent <= PercentDenominator,
			"initial unlock percent %d exceeds %d", sched.InitialUnlockPercent, PercentDenominator)
		acc.Require(len(sched.Periods) > 0, "committed schedule has no periods")

		portionSum := big.Zero()
		prevEnd := sched.CliffEpoch
		for i, p := range sched.Periods {
			acc.Require(p.EndEpoch > prevEnd, "period %d end %d does not follow %d", i, p.EndEpoch, prevEnd)
			portionSum = big.Add(portionSum, big.NewIntUnsigned(p.PortionBps))
			prevEnd = p.EndEpoch
		}
		acc.Require(portionSum.Equals(big.NewIntUnsigned(st.BasisPoints)),
			"period portions sum to %v, expected %d", portionSum, st.BasisPoints)
	}

	ledger := adt.AsMap(store, st.Ledger)
	beneficiaries := 0
	totalLocked := big.Zero()
	totalReleased := big.Zero()
	var entry LedgerEntry
	err := ledger.ForEach(&entry, func(key string) error {
		acc.Require(entry.Locked.Sign() > 0, "entry %x locked is not positive: %v", key, entry.Locked)
		acc.Require(entry.Released.Sign() >= 0, "entry %x released is negative: %v", key, entry.Released)
		acc.Require(entry.Released.LessThanEqual(entry.Locked),
			"entry %x released %v exceeds locked %v", key, entry.Released, entry.Locked)
		beneficiaries++
		totalLocked = big.Add(totalLocked, entry.Locked)
		totalReleased = big.Add(totalReleased, entry.Released)
		return nil
	})
	if err != nil {
		return nil, acc, err
	}

	acc.Require(totalLocked.Equals(st.InitialLockedSupply),
		"sum of ledger locked amounts %v does not match recorded supply %v", totalLocked, st.InitialLockedSupply)

	return &StateSummary{
		Beneficiaries: beneficiaries,
		TotalLocked:   totalLocked,
		TotalReleased: totalReleased,
	}, acc, nil
}
