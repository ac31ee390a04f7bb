package explorer

import (
	"testing"

	"github.com/blocto/solana-go-sdk/rpc"
	"github.com/stretchr/testify/assert"
)

func TestFromEndpoint(t *testing.T) {
	assert.Equal(t, ClusterDevnet, FromEndpoint(rpc.DevnetRPCEndpoint))
	assert.Equal(t, ClusterTestnet, FromEndpoint(rpc.TestnetRPCEndpoint))
	assert.Equal(t, ClusterMainnetBeta, FromEndpoint(rpc.MainnetRPCEndpoint))
	assert.Equal(t, ClusterMainnetBeta, FromEndpoint("https://my-private-rpc.example.com"))
}

func TestTransactionUrl(t *testing.T) {
	assert.Equal(
		t,
		"https://explorer.solana.com/tx/abc123",
		TransactionUrl("abc123", ClusterMainnetBeta),
	)
	assert.Equal(
		t,
		"https://explorer.solana.com/tx/abc123?cluster=devnet",
		TransactionUrl("abc123", ClusterDevnet),
	)
}

func TestAddressUrl(t *testing.T) {
	assert.Equal(
		t,
		"https://explorer.solana.com/address/So11111111111111111111111111111111111111112",
		AddressUrl("So11111111111111111111111111111111111111112", ClusterMainnetBeta),
	)
	assert.Equal(
		t,
		"https://explorer.solana.com/address/abc?cluster=testnet",
		AddressUrl("abc", ClusterTestnet),
	)
}
