package vestshare_test

import (
	"context"
	"testing"

	addr "github.com/filecoin-project/go-address"
	abi "github.com/filecoin-project/go-state-types/abi"
	big "github.com/filecoin-project/go-state-types/big"
	exitcode "github.com/filecoin-project/go-state-types/exitcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/vesting-actors/actors/builtin"
	"github.com/custodia-labs/vesting-actors/actors/builtin/vestshare"
	"github.com/custodia-labs/vesting-actors/actors/util/adt"
	"github.com/custodia-labs/vesting-actors/support/mock"
	tutil "github.com/custodia-labs/vesting-actors/support/testing"
)

func TestVestShare(t *testing.T) {
	actor := newHarness(t)
	holder := tutil.NewIDAddr(t, 201)

	t.Run("construction", func(t *testing.T) {
		rt := actor.newRuntime(t)
		actor.constructAndVerify(rt)

		var st vestshare.State
		rt.GetState(&st)
		assert.Equal(t, actor.controller, st.Controller)
		assert.Equal(t, big.Zero(), st.Supply)
	})

	t.Run("mint credits holder and supply", func(t *testing.T) {
		rt := actor.newRuntime(t)
		actor.constructAndVerify(rt)
		actor.mint(rt, holder, abi.NewTokenAmount(1000))
		actor.mint(rt, holder, abi.NewTokenAmount(500))

		var st vestshare.State
		rt.GetState(&st)
		assert.Equal(t, abi.NewTokenAmount(1500), st.Supply)
		held, err := st.BalanceOf(adt.AsStore(rt), holder)
		require.NoError(t, err)
		assert.Equal(t, abi.NewTokenAmount(1500), held)
	})

	t.Run("mint by non-controller is forbidden", func(t *testing.T) {
		rt := actor.newRuntime(t)
		actor.constructAndVerify(rt)
		rt.SetCaller(tutil.NewIDAddr(t, 999), builtin.AccountActorCodeID)
		rt.ExpectValidateCallerAddr(actor.controller)
		rt.ExpectAbort(exitcode.ErrForbidden, func() {
			rt.Call(actor.Mint, &vestshare.MintParams{To: holder, Amount: abi.NewTokenAmount(1000)})
		})
		rt.Verify()
	})

	t.Run("mint of non-positive amount is rejected", func(t *testing.T) {
		rt := actor.newRuntime(t)
		actor.constructAndVerify(rt)
		rt.SetCaller(actor.controller, builtin.VestingActorCodeID)
		rt.ExpectValidateCallerAddr(actor.controller)
		rt.ExpectAbort(exitcode.ErrIllegalArgument, func() {
			rt.Call(actor.Mint, &vestshare.MintParams{To: holder, Amount: big.Zero()})
		})
		rt.Verify()
	})

	t.Run("burn debits holder and supply", func(t *testing.T) {
		rt := actor.newRuntime(t)
		actor.constructAndVerify(rt)
		actor.mint(rt, holder, abi.NewTokenAmount(1000))
		actor.burn(rt, holder, abi.NewTokenAmount(400))

		var st vestshare.State
		rt.GetState(&st)
		assert.Equal(t, abi.NewTokenAmount(600), st.Supply)
		held, err := st.BalanceOf(adt.AsStore(rt), holder)
		require.NoError(t, err)
		assert.Equal(t, abi.NewTokenAmount(600), held)
	})

	t.Run("burn exceeding balance is rejected", func(t *testing.T) {
		rt := actor.newRuntime(t)
		actor.constructAndVerify(rt)
		actor.mint(rt, holder, abi.NewTokenAmount(100))
		rt.SetCaller(actor.controller, builtin.VestingActorCodeID)
		rt.ExpectValidateCallerAddr(actor.controller)
		rt.ExpectAbort(exitcode.ErrInsufficientFunds, func() {
			rt.Call(actor.Burn, &vestshare.BurnParams{From: holder, Amount: abi.NewTokenAmount(101)})
		})
		rt.Verify()

		var st vestshare.State
		rt.GetState(&st)
		assert.Equal(t, abi.NewTokenAmount(100), st.Supply)
	})

	t.Run("transfer is always disabled", func(t *testing.T) {
		rt := actor.newRuntime(t)
		actor.constructAndVerify(rt)
		actor.mint(rt, holder, abi.NewTokenAmount(1000))

		rt.SetCaller(holder, builtin.AccountActorCodeID)
		rt.ExpectValidateCallerAny()
		rt.ExpectAbort(vestshare.ErrTransfersDisabled, func() {
			rt.Call(actor.Transfer, &vestshare.TransferParams{To: tutil.NewIDAddr(t, 202), Amount: abi.NewTokenAmount(1)})
		})
		rt.Verify()

		// Balances are untouched by the rejected transfer.
		var st vestshare.State
		rt.GetState(&st)
		held, err := st.BalanceOf(adt.AsStore(rt), holder)
		require.NoError(t, err)
		assert.Equal(t, abi.NewTokenAmount(1000), held)
	})

	t.Run("supply always matches sum of balances", func(t *testing.T) {
		rt := actor.newRuntime(t)
		actor.constructAndVerify(rt)
		actor.mint(rt, holder, abi.NewTokenAmount(1000))
		actor.mint(rt, tutil.NewIDAddr(t, 202), abi.NewTokenAmount(250))
		actor.burn(rt, holder, abi.NewTokenAmount(300))

		var st vestshare.State
		rt.GetState(&st)
		summary, acc, err := vestshare.CheckStateInvariants(&st, adt.AsStore(rt))
		require.NoError(t, err)
		assert.True(t, acc.IsEmpty(), "%v", acc.Messages())
		assert.Equal(t, 2, summary.Holders)
		assert.Equal(t, abi.NewTokenAmount(950), summary.BalanceTotal)
	})
}

type shareHarness struct {
	vestshare.Actor
	t testing.TB

	receiver   addr.Address
	controller addr.Address
}

func newHarness(t testing.TB) *shareHarness {
	return &shareHarness{
		t:          t,
		receiver:   tutil.NewIDAddr(t, 100),
		controller: tutil.NewIDAddr(t, 101),
	}
}

func (h *shareHarness) newRuntime(t testing.TB) *mock.Runtime {
	return mock.NewBuilder(context.Background(), h.receiver).
		WithCaller(builtin.InitActorAddr, builtin.InitActorCodeID).
		Build(t)
}

func (h *shareHarness) constructAndVerify(rt *mock.Runtime) {
	rt.SetCaller(builtin.InitActorAddr, builtin.InitActorCodeID)
	rt.ExpectValidateCallerAddr(builtin.InitActorAddr)
	ret := rt.Call(h.Constructor, &vestshare.ConstructorParams{Controller: h.controller})
	assert.Nil(h.t, ret)
	rt.Verify()
}

func (h *shareHarness) mint(rt *mock.Runtime, to addr.Address, amount abi.TokenAmount) {
	rt.SetCaller(h.controller, builtin.VestingActorCodeID)
	rt.ExpectValidateCallerAddr(h.controller)
	rt.Call(h.Mint, &vestshare.MintParams{To: to, Amount: amount})
	rt.Verify()
}

func (h *shareHarness) burn(rt *mock.Runtime, from addr.Address, amount abi.TokenAmount) {
	rt.SetCaller(h.controller, builtin.VestingActorCodeID)
	rt.ExpectValidateCallerAddr(h.controller)
	rt.Call(h.Burn, &vestshare.BurnParams{From: from, Amount: amount})
	rt.Verify()
}
