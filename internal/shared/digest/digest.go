// Package digest は記事本文やプロンプトの固定長ダイジェストを提供します。
package digest

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// Hex は文字列のBLAKE2b-256ダイジェストを16進文字列で返します。
func Hex(s string) string {
	sum := blake2b.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}
