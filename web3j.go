// Package web3j provides a client-side engine for invoking and deploying
// smart contracts on Ethereum-style, account-based chains.
//
// The package turns a typed function call into ABI-encoded calldata, prices
// it with a gas strategy (legacy or fee-market), submits it as a transaction
// or a read-only call, waits for settlement, and decodes the binary result
// or binary error back into Go values. Dozens of generated contract wrappers
// share this one code path, so its failure semantics are precise: reverted
// calls carry decoded reasons, failed transactions carry their hash, status,
// gas used and a reason recovered by replaying the call.
//
// # Basic Usage
//
// Bind an existing contract and call it:
//
//	tokenABI := web3j.MustParseABI(tokenABIJSON)
//
//	token, err := web3j.NewContract(tokenABI, tokenBin, tokenAddr,
//	    client, signer, web3j.NewStaticGas(gasPrice, 4_300_000))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	balance, err := web3j.CallSingleValue[*big.Int](ctx, token, "balanceOf", holder)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	receipt, err := token.Transact(ctx, nil, "transfer", recipient, amount)
//
// Deploy a new contract:
//
//	args, _ := tokenABI.Pack("", initialSupply)
//	token, err := web3j.Deploy(ctx, client, signer, gas, tokenABI, tokenBin, args, nil)
//
// # Gas Strategies
//
// A Contract carries exactly one GasStrategy at a time:
//
//   - NewStaticGas: a constant legacy gas price and limit
//   - NewFeeMarketGas: chain id, priority fee and fee cap (EIP-1559);
//     the limit may be computed per transaction, e.g. with EstimatedLimit
//
// When the active strategy supports fee-market pricing the executor submits
// a dynamic-fee transaction first and falls back to legacy pricing only if
// that submission yields no receipt.
//
// # Collaborators
//
// The engine consumes, rather than implements, its surroundings: a Backend
// (satisfied by ethclient.Client) for transport, a Signer for sender
// identity and raw-transaction signing, a ReceiptWaiter for the
// wait-for-mining policy, and a NameResolver for address resolution at
// construction time. All operations are synchronous; cancellation and
// timeouts come from the caller's context.
//
// # Utilities
//
// LinkBinary rewrites library placeholders inside deployment bytecode,
// ExtractEventValues decodes receipt logs against an ABI event, and
// Contract.IsValid verifies on-chain code against the wrapper's bytecode
// after stripping compiler metadata. All three are usable without a live
// node connection except IsValid.
package web3j
