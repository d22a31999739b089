package services

import (
	"encoding/hex"
	"testing"
	"time"

	"counter-backend/utils"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIncrementSignMessage(t *testing.T) {
	assert.Equal(t, "counter:increment:2810:1700000000", incrementSignMessage(2810, 1700000000))
}

func TestIncrementSignFresh(t *testing.T) {
	now := time.Unix(1700000000, 0)
	cases := []struct {
		name     string
		signedAt int64
		want     bool
	}{
		{"just signed", now.Unix(), true},
		{"五分钟前", now.Add(-5 * time.Minute).Unix(), true},
		{"exactly max age", now.Add(-incrementSignMaxAge).Unix(), true},
		{"过期一秒", now.Add(-incrementSignMaxAge - time.Second).Unix(), false},
		{"时钟快一分钟", now.Add(time.Minute).Unix(), true},
		{"太超前", now.Add(incrementSignMaxSkew + time.Second).Unix(), false},
		{"zero", 0, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, incrementSignFresh(c.signedAt, now))
		})
	}
}

// 前端签的消息后端必须能验过，重放一个过期时间戳必须两头都挡得住
func TestIncrementSignRoundTrip(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	addr := crypto.PubkeyToAddress(key.PublicKey).Hex()

	signedAt := time.Now().Unix()
	message := incrementSignMessage(2810, signedAt)
	sig, err := crypto.Sign(utils.PersonalMessageHash(message), key)
	require.NoError(t, err)

	ok, err := utils.VerifyPersonalSign(addr, message, "0x"+hex.EncodeToString(sig))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, incrementSignFresh(signedAt, time.Now()))

	// 同一个签名放到十分钟后就失效了
	assert.False(t, incrementSignFresh(signedAt, time.Now().Add(incrementSignMaxAge+time.Minute)))
}
