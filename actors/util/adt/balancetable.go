package adt

import (
	addr "github.com/filecoin-project/go-address"
	abi "github.com/filecoin-project/go-state-types/abi"
	big "github.com/filecoin-project/go-state-types/big"
	cid "github.com/ipfs/go-cid"
	errors "github.com/pkg/errors"
)

// A specialization of a map of addresses to token amounts.
// Absent keys are implicitly zero; entries are created on first addition.
type BalanceTable Map

// Interprets a store as a balance table with root `r`.
func AsBalanceTable(s Store, r cid.Cid) *BalanceTable {
	return &BalanceTable{
		root:  r,
		store: s,
	}
}

// Returns the root cid of the underlying HAMT.
func (t *BalanceTable) Root() cid.Cid {
	return t.root
}

// Gets the balance for a key, which is zero if the key has never been added to.
func (t *BalanceTable) Get(key addr.Address) (abi.TokenAmount, error) {
	value := big.Zero()
	found, err := (*Map)(t).Get(AddrKey(key), &value)
	if err != nil {
		return big.Zero(), err // The errors from Map carry good information, no need to wrap here.
	}
	if !found {
		value = big.Zero()
	}
	return value, nil
}

// Adds an amount to a balance, creating the entry if it doesn't already exist.
// The resulting balance must be non-negative.
func (t *BalanceTable) Add(key addr.Address, value abi.TokenAmount) error {
	prev, err := t.Get(key)
	if err != nil {
		return err
	}
	sum := big.Add(prev, value)
	if sum.Sign() < 0 {
		return errors.Errorf("adding %v to balance %v of %v would be negative", value, prev, key)
	}
	if sum.IsZero() {
		return (*Map)(t).Delete(AddrKey(key))
	}
	return (*Map)(t).Put(AddrKey(key), &sum)
}

// Returns the total of all balances in the table.
func (t *BalanceTable) Total() (abi.TokenAmount, error) {
	total := big.Zero()
	balance := big.Zero()
	err := (*Map)(t).ForEach(&balance, func(key string) error {
		total = big.Add(total, balance)
		return nil
	})
	return total, err
}
