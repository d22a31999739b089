package utils

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
	"golang.org/x/crypto/sha3"
)

// PersonalMessageHash 按 personal_sign 的方式哈希消息（EIP-191 前缀），
// 这样浏览器钱包签的名才能在服务端核验
func PersonalMessageHash(message string) []byte {
	prefixed := fmt.Sprintf("\x19Ethereum Signed Message:\n%d%s", len(message), message)
	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(prefixed))
	return h.Sum(nil)
}

// VerifyPersonalSign 验证 sigHex 是不是 address 对 message 的 personal_sign 签名
// 钱包把 recovery id 编码成 27/28，原始 secp256k1 签名用 0/1，两种都接受
func VerifyPersonalSign(address, message, sigHex string) (bool, error) {
	sig, err := hex.DecodeString(strings.TrimPrefix(sigHex, "0x"))
	if err != nil {
		return false, errors.Wrap(err, "decode signature")
	}
	if len(sig) != crypto.SignatureLength {
		return false, errors.Errorf("signature must be %d bytes, got %d", crypto.SignatureLength, len(sig))
	}
	if sig[crypto.RecoveryIDOffset] >= 27 {
		sig[crypto.RecoveryIDOffset] -= 27
	}
	// 从签名反推出公钥，再和给定地址比对
	pub, err := crypto.SigToPub(PersonalMessageHash(message), sig)
	if err != nil {
		return false, errors.Wrap(err, "recover public key")
	}
	return crypto.PubkeyToAddress(*pub) == common.HexToAddress(address), nil
}
