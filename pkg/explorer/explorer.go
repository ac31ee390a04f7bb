// Package explorer builds Solana explorer URLs for transactions and accounts.
package explorer

import (
	"fmt"
	"net/url"
	"strings"
)

const baseUrl = "https://explorer.solana.com"

// Cluster identifies the cluster an explorer link should point at.
type Cluster string

const (
	ClusterMainnetBeta Cluster = "mainnet-beta"
	ClusterDevnet      Cluster = "devnet"
	ClusterTestnet     Cluster = "testnet"
)

// FromEndpoint classifies an RPC endpoint into the matching public cluster.
// Unrecognized endpoints map to mainnet-beta, which is what the explorer
// itself defaults to.
func FromEndpoint(endpoint string) Cluster {
	switch {
	case strings.Contains(endpoint, "devnet"):
		return ClusterDevnet
	case strings.Contains(endpoint, "testnet"):
		return ClusterTestnet
	default:
		return ClusterMainnetBeta
	}
}

// TransactionUrl returns the explorer URL for a transaction signature.
func TransactionUrl(signature string, cluster Cluster) string {
	return withCluster(fmt.Sprintf("%s/tx/%s", baseUrl, signature), cluster)
}

// AddressUrl returns the explorer URL for an account address.
func AddressUrl(address string, cluster Cluster) string {
	return withCluster(fmt.Sprintf("%s/address/%s", baseUrl, address), cluster)
}

func withCluster(u string, cluster Cluster) string {
	if cluster == ClusterMainnetBeta || cluster == "" {
		return u
	}
	return u + "?cluster=" + url.QueryEscape(string(cluster))
}
