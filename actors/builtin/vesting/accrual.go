package vesting

import (
	abi "github.com/filecoin-project/go-state-types/abi"
	big "github.com/filecoin-project/go-state-types/big"

	"github.com/custodia-labs/vesting-actors/actors/util"
)

// Denominator of the schedule's initial unlock percentage.
const PercentDenominator = uint64(100)

// UnlockedAmount computes how much of a locked amount has unlocked under a
// schedule as of the given epoch. Pure and deterministic: claims recompute it
// from elapsed time on every call rather than caching accrual.
//
// At the cliff, floor(locked * InitialUnlockPercent / 100) unlocks at once.
// The remainder is split across the periods by their basis-point portions,
// each portion unlocking linearly over its period. All division floors, and
// intermediate products are arbitrary-precision, so the result is exact,
// overflow-free, and monotonically non-decreasing in `at`.
func UnlockedAmount(s *Schedule, basisPoints uint64, locked abi.TokenAmount, at abi.ChainEpoch) abi.TokenAmount {
	util.AssertMsg(basisPoints > 0, "zero basis point denominator")
	if at < s.CliffEpoch {
		return big.Zero()
	}

	initial := big.Div(big.Mul(locked, big.NewIntUnsigned(s.InitialUnlockPercent)), big.NewIntUnsigned(PercentDenominator))
	remaining := big.Sub(locked, initial)
	denominator := big.NewIntUnsigned(basisPoints)

	unlocked := initial
	periodStart := s.CliffEpoch
	for _, p := range s.Periods {
		portion := big.NewIntUnsigned(p.PortionBps)
		if at < p.EndEpoch {
			// Partway through this period: the period's portion of the
			// remainder unlocks linearly over [periodStart, EndEpoch).
			elapsed := big.NewInt(int64(at - periodStart))
			duration := big.NewInt(int64(p.EndEpoch - periodStart))
			accrued := big.Div(
				big.Mul(big.Mul(remaining, elapsed), portion),
				big.Mul(duration, denominator),
			)
			return big.Add(unlocked, accrued)
		}
		unlocked = big.Add(unlocked, big.Div(big.Mul(remaining, portion), denominator))
		periodStart = p.EndEpoch
	}

	// Past the last period everything has vested. Portions sum to the full
	// denominator, but per-period flooring can leave the running total a few
	// units short of the deposit, so return the locked amount exactly.
	return locked
}
