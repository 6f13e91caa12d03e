// Package token defines the wire interface of the external custody asset that
// vesting deposits are drawn from and claims are paid out of. The asset itself
// is an external collaborator and is not implemented in this repo; the vesting
// actor only depends on the parameter shapes and method numbers
// (builtin.MethodsToken) defined here.
package token

import (
	addr "github.com/filecoin-project/go-address"
	abi "github.com/filecoin-project/go-state-types/abi"
)

// Parameters for the custody asset's Transfer method: moves `Amount` from the
// calling actor's balance to `To`.
type TransferParams struct {
	To     addr.Address
	Amount abi.TokenAmount
}

// Parameters for the custody asset's TransferFrom method: moves `Amount` from
// `From` to `To`, subject to the asset's own approval rules for the caller.
type TransferFromParams struct {
	From   addr.Address
	To     addr.Address
	Amount abi.TokenAmount
}
