package vesting_test

import (
	"context"
	"testing"

	abi "github.com/filecoin-project/go-state-types/abi"
	big "github.com/filecoin-project/go-state-types/big"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/vesting-actors/actors/builtin/vesting"
	"github.com/custodia-labs/vesting-actors/actors/util/adt"
	"github.com/custodia-labs/vesting-actors/support/ipld"
	tutil "github.com/custodia-labs/vesting-actors/support/testing"
)

const basisPoints = uint64(10_000)

func TestUnlockedAmount(t *testing.T) {
	start := abi.ChainEpoch(1000)

	t.Run("initial unlock plus single linear period", func(t *testing.T) {
		sched := &vesting.Schedule{
			StartEpoch:           start,
			CliffEpoch:           start,
			InitialUnlockPercent: 10,
			Periods:              []vesting.VestPeriod{{EndEpoch: start + 100, PortionBps: 10_000}},
		}
		locked := abi.NewTokenAmount(1000)

		assert.Equal(t, big.Zero(), vesting.UnlockedAmount(sched, basisPoints, locked, start-1))
		assert.Equal(t, abi.NewTokenAmount(100), vesting.UnlockedAmount(sched, basisPoints, locked, start))
		assert.Equal(t, abi.NewTokenAmount(550), vesting.UnlockedAmount(sched, basisPoints, locked, start+50))
		assert.Equal(t, locked, vesting.UnlockedAmount(sched, basisPoints, locked, start+100))
		assert.Equal(t, locked, vesting.UnlockedAmount(sched, basisPoints, locked, start+5000))
	})

	t.Run("cliff delays all accrual", func(t *testing.T) {
		sched := &vesting.Schedule{
			StartEpoch:           start,
			CliffEpoch:           start + 50,
			InitialUnlockPercent: 50,
			Periods:              []vesting.VestPeriod{{EndEpoch: start + 150, PortionBps: 10_000}},
		}
		locked := abi.NewTokenAmount(1000)

		assert.Equal(t, big.Zero(), vesting.UnlockedAmount(sched, basisPoints, locked, start))
		assert.Equal(t, big.Zero(), vesting.UnlockedAmount(sched, basisPoints, locked, start+49))
		assert.Equal(t, abi.NewTokenAmount(500), vesting.UnlockedAmount(sched, basisPoints, locked, start+50))
	})

	t.Run("multiple periods with uneven portions", func(t *testing.T) {
		sched := &vesting.Schedule{
			StartEpoch:           start,
			CliffEpoch:           start,
			InitialUnlockPercent: 0,
			Periods: []vesting.VestPeriod{
				{EndEpoch: start + 50, PortionBps: 5_000},
				{EndEpoch: start + 150, PortionBps: 5_000},
			},
		}
		locked := abi.NewTokenAmount(1000)

		// Half over the first 50 epochs, half over the next 100.
		assert.Equal(t, abi.NewTokenAmount(250), vesting.UnlockedAmount(sched, basisPoints, locked, start+25))
		assert.Equal(t, abi.NewTokenAmount(500), vesting.UnlockedAmount(sched, basisPoints, locked, start+50))
		assert.Equal(t, abi.NewTokenAmount(750), vesting.UnlockedAmount(sched, basisPoints, locked, start+100))
		assert.Equal(t, locked, vesting.UnlockedAmount(sched, basisPoints, locked, start+150))
	})

	t.Run("division floors, never rounds up", func(t *testing.T) {
		sched := &vesting.Schedule{
			StartEpoch:           start,
			CliffEpoch:           start,
			InitialUnlockPercent: 0,
			Periods:              []vesting.VestPeriod{{EndEpoch: start + 3, PortionBps: 10_000}},
		}
		locked := abi.NewTokenAmount(10)

		// 10 * 1/3 = 3.33 floors to 3, 10 * 2/3 = 6.66 floors to 6.
		assert.Equal(t, abi.NewTokenAmount(3), vesting.UnlockedAmount(sched, basisPoints, locked, start+1))
		assert.Equal(t, abi.NewTokenAmount(6), vesting.UnlockedAmount(sched, basisPoints, locked, start+2))
		assert.Equal(t, locked, vesting.UnlockedAmount(sched, basisPoints, locked, start+3))
	})

	t.Run("entire deposit vests despite per-period flooring", func(t *testing.T) {
		sched := &vesting.Schedule{
			StartEpoch:           start,
			CliffEpoch:           start,
			InitialUnlockPercent: 13,
			Periods: []vesting.VestPeriod{
				{EndEpoch: start + 70, PortionBps: 3_333},
				{EndEpoch: start + 170, PortionBps: 6_667},
			},
		}
		locked := abi.NewTokenAmount(997)

		assert.Equal(t, locked, vesting.UnlockedAmount(sched, basisPoints, locked, start+170))
	})

	t.Run("monotonically non-decreasing over every epoch", func(t *testing.T) {
		sched := &vesting.Schedule{
			StartEpoch:           start,
			CliffEpoch:           start + 7,
			InitialUnlockPercent: 13,
			Periods: []vesting.VestPeriod{
				{EndEpoch: start + 70, PortionBps: 3_333},
				{EndEpoch: start + 170, PortionBps: 6_667},
			},
		}
		locked := abi.NewTokenAmount(999_983)

		prev := big.Zero()
		for at := start; at <= start+200; at++ {
			unlocked := vesting.UnlockedAmount(sched, basisPoints, locked, at)
			assert.True(t, unlocked.GreaterThanEqual(prev), "accrual decreased at epoch %d: %v < %v", at, unlocked, prev)
			assert.True(t, unlocked.LessThanEqual(locked), "accrual exceeded deposit at epoch %d: %v", at, unlocked)
			prev = unlocked
		}
		assert.Equal(t, locked, prev)
	})
}

func TestLedger(t *testing.T) {
	beneficiary := tutil.NewIDAddr(t, 201)
	other := tutil.NewIDAddr(t, 202)

	setup := func(t *testing.T) (*vesting.State, adt.Store) {
		store := ipld.NewADTStore(context.Background())
		ledger, err := adt.MakeEmptyMap(store)
		require.NoError(t, err)
		st := vesting.ConstructState(ledger.Root(),
			tutil.NewIDAddr(t, 101), tutil.NewIDAddr(t, 102), tutil.NewIDAddr(t, 103), tutil.NewIDAddr(t, 104),
			basisPoints)
		return st, store
	}

	t.Run("entry is zero for unknown beneficiary", func(t *testing.T) {
		st, store := setup(t)
		entry, err := st.Entry(store, beneficiary)
		require.NoError(t, err)
		assert.Equal(t, big.Zero(), entry.Locked)
		assert.Equal(t, big.Zero(), entry.Released)
	})

	t.Run("deposits accumulate per beneficiary and in aggregate", func(t *testing.T) {
		st, store := setup(t)
		require.NoError(t, st.AddLocked(store, beneficiary, abi.NewTokenAmount(600)))
		require.NoError(t, st.AddLocked(store, beneficiary, abi.NewTokenAmount(400)))
		require.NoError(t, st.AddLocked(store, other, abi.NewTokenAmount(250)))

		entry, err := st.Entry(store, beneficiary)
		require.NoError(t, err)
		assert.Equal(t, abi.NewTokenAmount(1000), entry.Locked)
		assert.Equal(t, abi.NewTokenAmount(1250), st.InitialLockedSupply)
	})

	t.Run("release requires an entry", func(t *testing.T) {
		st, store := setup(t)
		err := st.AddReleased(store, beneficiary, abi.NewTokenAmount(1))
		assert.Error(t, err)
	})

	t.Run("release cannot exceed locked", func(t *testing.T) {
		st, store := setup(t)
		require.NoError(t, st.AddLocked(store, beneficiary, abi.NewTokenAmount(100)))
		require.NoError(t, st.AddReleased(store, beneficiary, abi.NewTokenAmount(60)))
		err := st.AddReleased(store, beneficiary, abi.NewTokenAmount(41))
		assert.Error(t, err)

		// The failed release is not recorded.
		entry, err := st.Entry(store, beneficiary)
		require.NoError(t, err)
		assert.Equal(t, abi.NewTokenAmount(60), entry.Released)
	})

	t.Run("releasable is accrued minus released", func(t *testing.T) {
		st, store := setup(t)
		start := abi.ChainEpoch(1000)
		st.Schedule = &vesting.Schedule{
			StartEpoch:           start,
			CliffEpoch:           start,
			InitialUnlockPercent: 10,
			Periods:              []vesting.VestPeriod{{EndEpoch: start + 100, PortionBps: 10_000}},
		}
		require.NoError(t, st.AddLocked(store, beneficiary, abi.NewTokenAmount(1000)))
		require.NoError(t, st.AddReleased(store, beneficiary, abi.NewTokenAmount(100)))

		releasable, err := st.Releasable(store, beneficiary, start+50)
		require.NoError(t, err)
		assert.Equal(t, abi.NewTokenAmount(450), releasable)
	})

	t.Run("unlocked supply applies the schedule to the aggregate", func(t *testing.T) {
		st, store := setup(t)
		start := abi.ChainEpoch(1000)
		assert.Equal(t, big.Zero(), st.UnlockedSupply(start))

		st.Schedule = &vesting.Schedule{
			StartEpoch:           start,
			CliffEpoch:           start,
			InitialUnlockPercent: 0,
			Periods:              []vesting.VestPeriod{{EndEpoch: start + 100, PortionBps: 10_000}},
		}
		require.NoError(t, st.AddLocked(store, beneficiary, abi.NewTokenAmount(1000)))
		assert.Equal(t, abi.NewTokenAmount(500), st.UnlockedSupply(start+50))
	})
}
