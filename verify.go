package web3j

import (
	"strings"
)

// metadataIndicators are hex markers of the compiler-appended metadata hash
// trailing deployed bytecode: Swarm bzzr0, Swarm bzzr1, IPFS, and the bare
// solc version marker. Executable code ends where the metadata begins.
var metadataIndicators = []string{
	"a165627a7a72305820",       // Swarm legacy (bzzr0)
	"a265627a7a72315820",       // Swarm (bzzr1)
	"a2646970667358221220",     // IPFS
	"a164736f6c634300080a000a", // solc (None)
}

// stripMetadata truncates hex bytecode at the earliest occurrence of any
// metadata indicator. When several indicators appear, the one at the
// earliest code position wins regardless of its place in the indicator
// list.
func stripMetadata(code string) string {
	cut := len(code)
	for _, indicator := range metadataIndicators {
		if i := strings.Index(code, indicator); i >= 0 && i < cut {
			cut = i
		}
	}
	return code[:cut]
}

// cleanHexPrefix drops a leading "0x" from a hex string.
func cleanHexPrefix(s string) string {
	return strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
}
