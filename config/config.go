package config

type Config struct {
	DatabaseDSN    string
	MigrationDir   string
	CurrencySymbol string
	SeedAccounts   []SeedAccount
}

// SeedAccount is a demo account inserted on first initialization if its
// account number is not already present.
type SeedAccount struct {
	AccountNumber string
	DefaultPIN    string
}

var DefaultConfig = Config{
	DatabaseDSN:    "root:1@tcp(localhost:3306)/atm_teller?parseTime=true",
	MigrationDir:   "migration/atm",
	CurrencySymbol: "$",
	SeedAccounts: []SeedAccount{
		{AccountNumber: "1001", DefaultPIN: "1234"},
		{AccountNumber: "1002", DefaultPIN: "2345"},
		{AccountNumber: "1003", DefaultPIN: "3456"},
	},
}
