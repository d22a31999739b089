package utils

import (
	"encoding/hex"
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyPersonalSign(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	addr := crypto.PubkeyToAddress(key.PublicKey).Hex()

	msg := "increment counter at block 12345"
	sig, err := crypto.Sign(PersonalMessageHash(msg), key)
	require.NoError(t, err)

	ok, err := VerifyPersonalSign(addr, msg, "0x"+hex.EncodeToString(sig))
	require.NoError(t, err)
	assert.True(t, ok)

	// 钱包风格的 recovery id（27/28）也必须能验过
	walletSig := make([]byte, len(sig))
	copy(walletSig, sig)
	walletSig[crypto.RecoveryIDOffset] += 27
	ok, err = VerifyPersonalSign(addr, msg, hex.EncodeToString(walletSig))
	require.NoError(t, err)
	assert.True(t, ok)

	// 篡改消息后恢复出的签名者不同，验证必须失败
	ok, err = VerifyPersonalSign(addr, msg+"x", hex.EncodeToString(sig))
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = VerifyPersonalSign(addr, msg, "0xdead")
	assert.Error(t, err)
}

func TestPersonalMessageHashMatchesKeccak(t *testing.T) {
	want := crypto.Keccak256([]byte("\x19Ethereum Signed Message:\n5hello"))
	assert.Equal(t, want, PersonalMessageHash("hello"))
}
