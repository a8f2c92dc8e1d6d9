package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/btcsuite/btcd/btcutil"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/cryptilo/cryptilo-daemon/internal/core/domain"
	"github.com/cryptilo/cryptilo-daemon/pkg/ledger"
	"github.com/cryptilo/cryptilo-daemon/pkg/ledger/solana"
)

const (
	// DatadirKey is the local data directory to store the internal state of daemon
	DatadirKey = "DATADIR"
	// LogLevelKey are the different logging levels. For reference on the values https://godoc.org/github.com/sirupsen/logrus#Level
	LogLevelKey = "LOG_LEVEL"
	// NetworkKey is the ledger network to use when none has been persisted yet.
	// Either "devnet", "testnet" or "mainnet-beta"
	NetworkKey = "NETWORK"
	// RPCAddrKey overrides the public RPC endpoint of the active network
	RPCAddrKey = "RPC_ADDR"
	// RPCCommitmentKey is the commitment level ledger queries are made at
	RPCCommitmentKey = "RPC_COMMITMENT"
	// RPCRequestsPerSecondKey caps the request rate towards the RPC endpoint
	RPCRequestsPerSecondKey = "RPC_REQUESTS_PER_SECOND"

	DbLocation = "db"
)

var vip *viper.Viper
var defaultDatadir = btcutil.AppDataDir("cryptilo-daemon", false)

func init() {
	vip = viper.New()
	vip.SetEnvPrefix("CRYPTILO")
	vip.AutomaticEnv()

	vip.SetDefault(DatadirKey, defaultDatadir)
	vip.SetDefault(LogLevelKey, 4)
	vip.SetDefault(NetworkKey, string(domain.NetworkDevnet))
	vip.SetDefault(RPCCommitmentKey, "confirmed")
	vip.SetDefault(RPCRequestsPerSecondKey, 10)

	if err := validate(); err != nil {
		log.WithError(err).Panic("error while validating config")
	}

	if err := initDatadir(); err != nil {
		log.WithError(err).Panic("error while creating datadir")
	}
}

//GetString ...
func GetString(key string) string {
	return vip.GetString(key)
}

//GetInt ...
func GetInt(key string) int {
	return vip.GetInt(key)
}

//GetBool ...
func GetBool(key string) bool {
	return vip.GetBool(key)
}

// GetDatadir ...
func GetDatadir() string {
	return GetString(DatadirKey)
}

// GetDbDir ...
func GetDbDir() string {
	return filepath.Join(GetDatadir(), DbLocation)
}

// GetDefaultNetwork returns the network to use before any choice has been
// persisted.
func GetDefaultNetwork() domain.Network {
	network, _ := domain.ParseNetwork(GetString(NetworkKey))
	return network
}

// GetLedgerService returns a client for the given network's RPC endpoint,
// honoring the endpoint override if one is configured.
func GetLedgerService(network domain.Network) (ledger.Service, error) {
	rpcAddr := GetString(RPCAddrKey)
	if len(rpcAddr) <= 0 {
		rpcAddr = network.RPCAddr()
	}
	return solana.NewService(solana.NewServiceOpts{
		RPCAddr:           rpcAddr,
		Commitment:        GetString(RPCCommitmentKey),
		RequestsPerSecond: GetInt(RPCRequestsPerSecondKey),
	})
}

func validate() error {
	datadir := GetString(DatadirKey)
	if len(datadir) <= 0 {
		return fmt.Errorf("datadir must not be null")
	}

	if _, err := domain.ParseNetwork(GetString(NetworkKey)); err != nil {
		return fmt.Errorf(
			"network must be either '%s', '%s' or '%s'",
			domain.NetworkDevnet, domain.NetworkTestnet, domain.NetworkMainnetBeta,
		)
	}

	if rpcAddr := GetString(RPCAddrKey); rpcAddr != "" {
		if _, err := url.Parse(rpcAddr); err != nil {
			return fmt.Errorf("rpc endpoint is not a valid url: %s", err)
		}
	}

	return nil
}

func initDatadir() error {
	return makeDirectoryIfNotExists(GetDbDir())
}

func makeDirectoryIfNotExists(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return os.MkdirAll(path, os.ModeDir|0755)
	}
	return nil
}
