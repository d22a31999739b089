package utils

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeiToEthStr(t *testing.T) {
	cases := []struct {
		wei  string
		want string
	}{
		{"0", "0"},
		{"1", "0.000000000000000001"},
		{"1000000000000000000", "1"},
		{"51239000000000000", "0.051239"},
		{"2500000000000000000000", "2500"},
	}
	for _, c := range cases {
		wei, ok := new(big.Int).SetString(c.wei, 10)
		require.True(t, ok)
		assert.Equal(t, c.want, WeiToEthStr(wei), "wei=%s", c.wei)
	}
	assert.Equal(t, "0", WeiToEthStr(nil))
}

func TestEthStrToWei(t *testing.T) {
	wei, err := EthStrToWei("0.05")
	require.NoError(t, err)
	assert.Equal(t, "50000000000000000", wei.String())

	wei, err = EthStrToWei("2")
	require.NoError(t, err)
	assert.Equal(t, "2000000000000000000", wei.String())

	_, err = EthStrToWei("not-a-number")
	assert.Error(t, err)
}

func TestGetRandomString(t *testing.T) {
	s := GetRandomString(23)
	assert.Len(t, s, 23)
}
