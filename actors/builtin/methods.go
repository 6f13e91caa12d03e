package builtin

import (
	abi "github.com/filecoin-project/go-state-types/abi"
)

const (
	MethodSend        = abi.MethodNum(0)
	MethodConstructor = abi.MethodNum(1)
)

type vestingMethods struct {
	Constructor    abi.MethodNum
	CommitSchedule abi.MethodNum
	Deposit        abi.MethodNum
	Claim          abi.MethodNum
}

var MethodsVesting = vestingMethods{MethodConstructor, 2, 3, 4}

type vestShareMethods struct {
	Constructor abi.MethodNum
	Mint        abi.MethodNum
	Burn        abi.MethodNum
	Transfer    abi.MethodNum
}

var MethodsVestShare = vestShareMethods{MethodConstructor, 2, 3, 4}

// Methods of the external custody asset. The asset itself is not implemented
// here; these numbers define the interface the vesting actor calls.
type tokenMethods struct {
	Constructor  abi.MethodNum
	Transfer     abi.MethodNum
	TransferFrom abi.MethodNum
}

var MethodsToken = tokenMethods{MethodConstructor, 2, 3}

type oracleMethods struct {
	Constructor abi.MethodNum
	SubmitPrice abi.MethodNum
	LatestRound abi.MethodNum
}

var MethodsOracle = oracleMethods{MethodConstructor, 2, 3}
