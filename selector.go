package abi

import "github.com/ethereum/go-ethereum/crypto"

// Keccak256Func hashes data. The boundary between the type/value engine
// and a concrete hash implementation is kept explicit: every function here
// takes the hash function as a parameter, so callers that care about
// dependency injection (tests, alternate implementations) can supply their
// own; passing nil falls back to DefaultKeccak256, go-ethereum's
// crypto.Keccak256.
type Keccak256Func func([]byte) []byte

// DefaultKeccak256 is go-ethereum's Keccak256, used by FunctionSelector
// and EventTopic when no explicit hash function is supplied.
func DefaultKeccak256(data []byte) []byte { return crypto.Keccak256(data) }

// FunctionSelector returns the 4-byte selector for a canonical function
// signature ("transfer(address,uint256)"): the first four bytes of
// hash(signature).
func FunctionSelector(signature string, hash Keccak256Func) [4]byte {
	if hash == nil {
		hash = DefaultKeccak256
	}
	digest := hash([]byte(signature))
	var sel [4]byte
	copy(sel[:], digest[:4])
	return sel
}

// EventTopic returns the 32-byte topic0 for a canonical event signature
// ("Transfer(address,address,uint256)"): the full hash(signature).
func EventTopic(signature string, hash Keccak256Func) [32]byte {
	if hash == nil {
		hash = DefaultKeccak256
	}
	digest := hash([]byte(signature))
	var topic [32]byte
	copy(topic[:], digest)
	return topic
}

// FunctionSelectorFor computes the selector directly from a name and its
// Parameters, building the canonical signature via Parameters.CanonicalType
// so callers don't need to hand-assemble the signature string themselves.
func FunctionSelectorFor(name string, params Parameters, hash Keccak256Func) [4]byte {
	return FunctionSelector(name+params.CanonicalType(), hash)
}

// EventTopicFor computes topic0 directly from a name and its Parameters.
// topic0 always hashes the full canonical signature regardless of which
// parameters are marked Indexed; indexing only affects which parameters
// are emitted as additional topics rather than ABI-encoded in the log
// data, a concern outside this package's scope.
func EventTopicFor(name string, params Parameters, hash Keccak256Func) [32]byte {
	return EventTopic(name+params.CanonicalType(), hash)
}
