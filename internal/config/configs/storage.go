package configs

import (
	"fmt"
	"strings"
)

// Storage drivers.
const (
	DriverJSON     = "json"
	DriverPostgres = "postgres"
)

// Storage selects where campaigns and transactions are persisted. With the
// json driver each collection is a JSON document at the given path.
type Storage struct {
	Driver           string `env:"DRIVER" envDefault:"json"`
	CampaignsFile    string `env:"CAMPAIGNS_FILE" envDefault:"./data/campaigns.json"`
	TransactionsFile string `env:"TRANSACTIONS_FILE" envDefault:"./data/transactions.json"`
}

// NormalizedDriver returns the lower-cased driver name or an error for an
// unknown driver.
func (c Storage) NormalizedDriver() (string, error) {
	switch d := strings.ToLower(c.Driver); d {
	case DriverJSON, DriverPostgres:
		return d, nil
	default:
		return "", fmt.Errorf("unknown storage driver %q", c.Driver)
	}
}
