package web3j

import (
	"encoding/hex"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// placeholderLen is the fixed width of a library placeholder token; it
// matches the width of a hex-encoded address so substitution preserves
// bytecode length.
const placeholderLen = 40

// LinkReference binds a library placeholder inside deployment bytecode to a
// deployed library address.
type LinkReference struct {
	Source  string // source unit name, e.g. "contracts/Math.sol"
	Library string // library name, e.g. "SafeMath"
	Address common.Address
}

// LinkBinary substitutes library placeholders in hex bytecode with the
// referenced addresses. Three placeholder conventions are replaced for each
// reference, independently of one another:
//
//   - solc / hardhat: "__$" + first 34 hex chars of keccak("source:library") + "$__"
//   - old solc: "__source:library" padded with "_" to 40 chars
//   - old truffle: "__library" padded with "_" to 40 chars
//
// References that match nothing are silent no-ops; tooling may supply more
// references than a binary uses.
func LinkBinary(binary string, links []LinkReference) string {
	for _, link := range links {
		replacement := hex.EncodeToString(link.Address.Bytes())
		qualified := link.Source + ":" + link.Library

		hash := crypto.Keccak256Hash([]byte(qualified)).Hex()
		binary = strings.ReplaceAll(binary, "__$"+hash[2:36]+"$__", replacement)

		if p, ok := paddedPlaceholder(qualified); ok {
			binary = strings.ReplaceAll(binary, p, replacement)
		}
		if p, ok := paddedPlaceholder(link.Library); ok {
			binary = strings.ReplaceAll(binary, p, replacement)
		}
	}
	return binary
}

// paddedPlaceholder builds the legacy "__name____..." token. Names too long
// to fit the fixed width never appear in legacy bytecode and are skipped.
func paddedPlaceholder(name string) (string, bool) {
	pad := placeholderLen - len(name) - 2
	if pad < 0 {
		return "", false
	}
	return "__" + name + strings.Repeat("_", pad), true
}
