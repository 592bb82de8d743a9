package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v2"
)

// Config holds everything the server needs at startup: the listen
// address, the starting cash balance and the static reference data
// (mock price table and term glossary). Amounts are YAML strings so
// they parse through decimal without a float round-trip.
type Config struct {
	ListenAddr   string            `yaml:"listen_addr"`
	StartingCash string            `yaml:"starting_cash"`
	Prices       map[string]string `yaml:"prices"`
	Terms        map[string]string `yaml:"terms"`
}

// Default returns the built-in configuration: the original mock price
// table and glossary, and the fixed 10000.00 starting cash.
func Default() *Config {
	return &Config{
		ListenAddr:   ":8080",
		StartingCash: "10000.00",
		Prices: map[string]string{
			"AAPL": "150.12",
			"TSLA": "700.45",
			"GOOG": "2800.99",
			"MSFT": "305.22",
			"AMZN": "3500.50",
		},
		Terms: map[string]string{
			"stock":     "A stock is a share representing ownership in a company.",
			"bond":      "A bond is a loan made by an investor to a borrower, like a company or government.",
			"fintech":   "Fintech means financial technology innovations that improve financial services.",
			"dividend":  "A dividend is a payment made by a company to its shareholders from profits.",
			"portfolio": "A portfolio is a collection of investments owned by an investor.",
		},
	}
}

// Load reads a YAML config file. Fields left empty in the file fall back
// to the defaults, so a partial file only overrides what it names.
func Load(path string) (*Config, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	config := &Config{}
	if err := yaml.Unmarshal(file, config); err != nil {
		return nil, err
	}

	defaults := Default()
	if config.ListenAddr == "" {
		config.ListenAddr = defaults.ListenAddr
	}
	if config.StartingCash == "" {
		config.StartingCash = defaults.StartingCash
	}
	if len(config.Prices) == 0 {
		config.Prices = defaults.Prices
	}
	if len(config.Terms) == 0 {
		config.Terms = defaults.Terms
	}

	return config, nil
}

// DecimalStartingCash parses the configured starting cash.
func (c *Config) DecimalStartingCash() (decimal.Decimal, error) {
	cash, err := decimal.NewFromString(c.StartingCash)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid starting_cash %q: %w", c.StartingCash, err)
	}
	if cash.IsNegative() {
		return decimal.Zero, fmt.Errorf("starting_cash must not be negative, got %s", c.StartingCash)
	}
	return cash, nil
}

// DecimalPrices parses the configured price table.
func (c *Config) DecimalPrices() (map[string]decimal.Decimal, error) {
	prices := make(map[string]decimal.Decimal, len(c.Prices))
	for symbol, raw := range c.Prices {
		price, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid price for %s: %w", symbol, err)
		}
		prices[symbol] = price
	}
	return prices, nil
}
