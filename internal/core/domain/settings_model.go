package domain

import "context"

// Network is one of the target ledger's public clusters.
type Network string

const (
	NetworkDevnet      Network = "devnet"
	NetworkTestnet     Network = "testnet"
	NetworkMainnetBeta Network = "mainnet-beta"
)

var networkRPCAddr = map[Network]string{
	NetworkDevnet:      "https://api.devnet.solana.com",
	NetworkTestnet:     "https://api.testnet.solana.com",
	NetworkMainnetBeta: "https://api.mainnet-beta.solana.com",
}

// ParseNetwork maps a network name to its Network value.
func ParseNetwork(name string) (Network, error) {
	network := Network(name)
	if _, ok := networkRPCAddr[network]; !ok {
		return "", ErrUnknownNetwork
	}
	return network, nil
}

// RPCAddr returns the address of the cluster's public RPC endpoint.
func (n Network) RPCAddr() string {
	return networkRPCAddr[n]
}

// Settings holds the daemon-wide preferences that survive restarts.
type Settings struct {
	Network Network
}

// SettingsRepository is the abstraction for any kind of database intended to
// persist Settings.
type SettingsRepository interface {
	// GetSettings returns the stored settings.
	GetSettings(ctx context.Context) (*Settings, error)
	// UpdateSettings replaces the stored settings.
	UpdateSettings(ctx context.Context, settings Settings) error
}
