package model

type Network string

var (
	Mainnet   Network = "mainnet"
	Rinkeby   Network = "rinkeby"
	Ropsten   Network = "ropsten"
	Localhost Network = "localhost"
)

// OperationAction is the kind of an L1 block operation.
type OperationAction string

var (
	// ActionCommit marks a block commitment sent to L1.
	ActionCommit OperationAction = "COMMIT"
	// ActionVerify marks a block proof verification sent to L1.
	ActionVerify OperationAction = "VERIFY"
)
