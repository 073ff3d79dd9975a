package console

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/laleethkumar26/atm-machine-project/config"
	"github.com/laleethkumar26/atm-machine-project/model"
	"github.com/laleethkumar26/atm-machine-project/service/teller"
)

// memRepo is an in-memory teller.IRepo so scripted sessions run without
// a database.
type memRepo struct {
	rows map[string]model.Account
}

func newMemRepo() *memRepo {
	return &memRepo{rows: make(map[string]model.Account)}
}

func (m *memRepo) Transact(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (m *memRepo) EnsureSchema(ctx context.Context) error { return nil }

func (m *memRepo) SeedAccount(ctx context.Context, account model.Account) error {
	if _, ok := m.rows[account.AccountNumber]; !ok {
		m.rows[account.AccountNumber] = account
	}
	return nil
}

func (m *memRepo) ListAccounts(ctx context.Context) ([]model.Account, error) {
	out := make([]model.Account, 0, len(m.rows))
	for _, account := range m.rows {
		out = append(out, account)
	}
	return out, nil
}

func (m *memRepo) InsertAccount(ctx context.Context, account model.Account) error {
	if _, ok := m.rows[account.AccountNumber]; ok {
		return teller.ErrAccountExists
	}
	m.rows[account.AccountNumber] = account
	return nil
}

func (m *memRepo) UpdateBalance(ctx context.Context, accountNumber string, balance decimal.Decimal) error {
	account := m.rows[accountNumber]
	account.Balance = balance
	m.rows[accountNumber] = account
	return nil
}

func (m *memRepo) UpdatePinDigest(ctx context.Context, accountNumber string, digest string) error {
	account := m.rows[accountNumber]
	account.PinDigest = digest
	m.rows[accountNumber] = account
	return nil
}

func runScript(t *testing.T, lines ...string) string {
	t.Helper()
	svc := teller.NewService(newMemRepo(), []config.SeedAccount{
		{AccountNumber: "1001", DefaultPIN: "1234"},
	})
	if err := svc.Init(context.Background()); err != nil {
		t.Fatalf("Init: %v", err)
	}

	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	var out bytes.Buffer
	err := New(svc, in, &out, "$").Run(context.Background())
	assert.NoError(t, err)
	return out.String()
}

func TestScriptedSession(t *testing.T) {
	out := runScript(t,
		"2", "3001", "4321", // create account
		"1", "3001", "9999", // wrong PIN
		"1", "3001", "4321", // login
		"3", "250", // deposit
		"3", "abc", // malformed amount
		"2", "100", // withdraw
		"2", "1000", // over balance
		"1", // balance inquiry
		"4", // session history
		"6", // logout
		"3", // exit
	)

	assert.Contains(t, out, "Account 3001 created")
	assert.Contains(t, out, "Login failed: invalid account number or PIN.")
	assert.Contains(t, out, "Welcome, account 3001.")
	assert.Contains(t, out, "Deposited $250.00. New balance: $250.00")
	assert.Contains(t, out, `invalid amount "abc"`)
	assert.Contains(t, out, "Withdrew $100.00. New balance: $150.00")
	assert.Contains(t, out, "Withdrawal failed: insufficient funds.")
	assert.Contains(t, out, "Current balance: $150.00")
	assert.Contains(t, out, "DEPOSIT")
	assert.Contains(t, out, "WITHDRAW")
	assert.Contains(t, out, "INQUIRY")
	assert.Contains(t, out, "Logged out.")
	assert.Contains(t, out, "Goodbye.")

	// the failed withdrawal is not in the history: exactly one WITHDRAW line
	assert.Equal(t, 1, strings.Count(out, "WITHDRAW "))
}

func TestDuplicateCreateAndBadMenuChoice(t *testing.T) {
	out := runScript(t,
		"2", "1001", "5555", // seeded number already exists
		"7", // unknown top-level option
		"3",
	)

	assert.Contains(t, out, "Could not create account: account number already exists.")
	assert.Contains(t, out, `Unknown option "7".`)
}

func TestChangePINFlow(t *testing.T) {
	out := runScript(t,
		"1", "1001", "1234", // login with seeded account
		"5", "0000", "8765", // wrong current PIN
		"5", "1234", "12", // new PIN too short
		"5", "1234", "8765", // success
		"6",
		"1", "1001", "1234", // old PIN no longer works
		"1", "1001", "8765", // new PIN does
		"6",
		"3",
	)

	assert.Contains(t, out, "PIN change failed: current PIN does not match.")
	assert.Contains(t, out, "PIN change failed: PIN must be at least 4 characters.")
	assert.Contains(t, out, "PIN changed.")
	assert.Equal(t, 1, strings.Count(out, "Login failed:"))
	assert.Equal(t, 2, strings.Count(out, "Welcome, account 1001."))
}

func TestRunStopsAtEndOfInput(t *testing.T) {
	out := runScript(t, "1", "1001") // input ends mid-login
	assert.Contains(t, out, "PIN: ")
}
