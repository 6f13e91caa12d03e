package adt_test

import (
	"context"
	"testing"

	abi "github.com/filecoin-project/go-state-types/abi"
	big "github.com/filecoin-project/go-state-types/big"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/vesting-actors/actors/util/adt"
	"github.com/custodia-labs/vesting-actors/support/ipld"
	tutil "github.com/custodia-labs/vesting-actors/support/testing"
)

func TestMapPutGetDelete(t *testing.T) {
	store := ipld.NewADTStore(context.Background())
	m, err := adt.MakeEmptyMap(store)
	require.NoError(t, err)

	k1 := adt.AddrKey(tutil.NewIDAddr(t, 101))
	k2 := adt.AddrKey(tutil.NewIDAddr(t, 102))

	v1 := abi.NewTokenAmount(100)
	require.NoError(t, m.Put(k1, &v1))

	var out big.Int
	found, err := m.Get(k1, &out)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, v1, out)

	found, err = m.Get(k2, &out)
	require.NoError(t, err)
	assert.False(t, found)

	// Overwrite changes the root and the stored value.
	prevRoot := m.Root()
	v2 := abi.NewTokenAmount(200)
	require.NoError(t, m.Put(k1, &v2))
	assert.NotEqual(t, prevRoot, m.Root())

	found, err = m.Get(k1, &out)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, v2, out)

	require.NoError(t, m.Delete(k1))
	found, err = m.Get(k1, &out)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMapReloadFromRoot(t *testing.T) {
	store := ipld.NewADTStore(context.Background())
	m, err := adt.MakeEmptyMap(store)
	require.NoError(t, err)

	k := adt.AddrKey(tutil.NewIDAddr(t, 101))
	v := abi.NewTokenAmount(42)
	require.NoError(t, m.Put(k, &v))

	// A map interpreted from the flushed root sees the same entries.
	reloaded := adt.AsMap(store, m.Root())
	var out big.Int
	found, err := reloaded.Get(k, &out)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, v, out)
}

func TestMapForEach(t *testing.T) {
	store := ipld.NewADTStore(context.Background())
	m, err := adt.MakeEmptyMap(store)
	require.NoError(t, err)

	addrs := []adt.AddrKey{
		adt.AddrKey(tutil.NewIDAddr(t, 101)),
		adt.AddrKey(tutil.NewIDAddr(t, 102)),
		adt.AddrKey(tutil.NewIDAddr(t, 103)),
	}
	for i, k := range addrs {
		v := abi.NewTokenAmount(int64(i + 1))
		require.NoError(t, m.Put(k, &v))
	}

	seen := map[string]big.Int{}
	var out big.Int
	err = m.ForEach(&out, func(key string) error {
		seen[key] = out
		return nil
	})
	require.NoError(t, err)
	require.Len(t, seen, len(addrs))
	for i, k := range addrs {
		assert.Equal(t, abi.NewTokenAmount(int64(i+1)), seen[k.Key()])
	}

	keys, err := m.CollectKeys()
	require.NoError(t, err)
	assert.Len(t, keys, len(addrs))
}

func TestBalanceTable(t *testing.T) {
	store := ipld.NewADTStore(context.Background())
	m, err := adt.MakeEmptyMap(store)
	require.NoError(t, err)
	table := adt.AsBalanceTable(store, m.Root())

	holder := tutil.NewIDAddr(t, 101)

	// Absent keys read as zero.
	held, err := table.Get(holder)
	require.NoError(t, err)
	assert.Equal(t, big.Zero(), held)

	require.NoError(t, table.Add(holder, abi.NewTokenAmount(100)))
	require.NoError(t, table.Add(holder, abi.NewTokenAmount(50)))
	held, err = table.Get(holder)
	require.NoError(t, err)
	assert.Equal(t, abi.NewTokenAmount(150), held)

	// A balance may not go negative.
	err = table.Add(holder, abi.NewTokenAmount(-151))
	assert.Error(t, err)

	// Zeroing a balance removes its entry.
	require.NoError(t, table.Add(holder, abi.NewTokenAmount(-150)))
	keys, err := adt.AsMap(store, table.Root()).CollectKeys()
	require.NoError(t, err)
	assert.Empty(t, keys)

	total, err := table.Total()
	require.NoError(t, err)
	assert.Equal(t, big.Zero(), total)
}
