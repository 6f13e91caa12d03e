package oracle_test

import (
	"context"
	"testing"

	abi "github.com/filecoin-project/go-state-types/abi"
	exitcode "github.com/filecoin-project/go-state-types/exitcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/vesting-actors/actors/builtin"
	"github.com/custodia-labs/vesting-actors/actors/builtin/oracle"
	"github.com/custodia-labs/vesting-actors/support/mock"
	tutil "github.com/custodia-labs/vesting-actors/support/testing"
)

func TestOracle(t *testing.T) {
	receiver := tutil.NewIDAddr(t, 100)
	reporter := tutil.NewIDAddr(t, 101)
	actor := oracle.Actor{}

	construct := func(t *testing.T) *mock.Runtime {
		rt := mock.NewBuilder(context.Background(), receiver).
			WithCaller(builtin.InitActorAddr, builtin.InitActorCodeID).
			Build(t)
		rt.ExpectValidateCallerAddr(builtin.InitActorAddr)
		rt.Call(actor.Constructor, &oracle.ConstructorParams{Reporter: reporter, Ticker: "FIL/USD"})
		rt.Verify()
		return rt
	}

	t.Run("reports the latest submitted price", func(t *testing.T) {
		rt := construct(t)
		rt.SetEpoch(42)
		rt.SetCaller(reporter, builtin.AccountActorCodeID)
		rt.ExpectValidateCallerAddr(reporter)
		rt.Call(actor.SubmitPrice, &oracle.SubmitPriceParams{Price: abi.NewTokenAmount(5_250_000)})
		rt.Verify()

		rt.SetEpoch(50)
		rt.ExpectValidateCallerAny()
		ret := rt.Call(actor.LatestRound, abi.Empty).(*oracle.LatestRoundReturn)
		rt.Verify()
		assert.Equal(t, abi.NewTokenAmount(5_250_000), ret.Price)
		assert.Equal(t, abi.ChainEpoch(42), ret.UpdatedAt)
	})

	t.Run("newer submissions replace older ones", func(t *testing.T) {
		rt := construct(t)
		rt.SetCaller(reporter, builtin.AccountActorCodeID)
		for i, price := range []int64{100, 200, 150} {
			rt.SetEpoch(abi.ChainEpoch(10 + i))
			rt.ExpectValidateCallerAddr(reporter)
			rt.Call(actor.SubmitPrice, &oracle.SubmitPriceParams{Price: abi.NewTokenAmount(price)})
			rt.Verify()
		}

		var st oracle.State
		rt.GetState(&st)
		assert.Equal(t, abi.NewTokenAmount(150), st.Price)
		assert.Equal(t, abi.ChainEpoch(12), st.UpdatedAt)
	})

	t.Run("rejects submission from non-reporter", func(t *testing.T) {
		rt := construct(t)
		rt.SetCaller(tutil.NewIDAddr(t, 999), builtin.AccountActorCodeID)
		rt.ExpectValidateCallerAddr(reporter)
		rt.ExpectAbort(exitcode.ErrForbidden, func() {
			rt.Call(actor.SubmitPrice, &oracle.SubmitPriceParams{Price: abi.NewTokenAmount(100)})
		})
		rt.Verify()
	})

	t.Run("rejects non-positive price", func(t *testing.T) {
		rt := construct(t)
		rt.SetCaller(reporter, builtin.AccountActorCodeID)
		rt.ExpectValidateCallerAddr(reporter)
		rt.ExpectAbort(exitcode.ErrIllegalArgument, func() {
			rt.Call(actor.SubmitPrice, &oracle.SubmitPriceParams{Price: abi.NewTokenAmount(0)})
		})
		rt.Verify()
	})

	t.Run("latest round requires a prior submission", func(t *testing.T) {
		rt := construct(t)
		rt.ExpectValidateCallerAny()
		rt.ExpectAbort(exitcode.ErrIllegalState, func() {
			rt.Call(actor.LatestRound, abi.Empty)
		})
		rt.Verify()

		var st oracle.State
		rt.GetState(&st)
		require.Equal(t, "FIL/USD", st.Ticker)
	})
}
