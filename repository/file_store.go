// file: repository/file_store.go

package repository

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"go-bank-ledger/common"
	"go-bank-ledger/logger"
	"go-bank-ledger/model"
)

const snapshotVersion = 1

// ILedgerStore abstracts snapshot persistence so services can be tested
// against a mock.
type ILedgerStore interface {
	Load() (*Ledger, error)
	Save(ledger *Ledger) error
}

// persistedAccount is the on-disk record for one account. The balance is an
// exact decimal string and the credential is carried as Base64 of the raw
// salt and derived hash; the plaintext PIN never reaches the file.
type persistedAccount struct {
	AccountNumber int    `json:"account_number"`
	FullName      string `json:"full_name"`
	Address       string `json:"address"`
	Birthday      string `json:"birthday"`
	Gender        string `json:"gender"`
	AccountType   string `json:"account_type"`
	Balance       string `json:"balance"`
	Salt          string `json:"salt"`
	PinHash       string `json:"pin_hash"`
}

type snapshot struct {
	Version    int                `json:"version"`
	NextNumber int                `json:"next_number"`
	Accounts   []persistedAccount `json:"accounts"`
}

// FileStore persists the whole ledger as a single JSON snapshot file,
// written wholesale on save and read wholesale on load.
type FileStore struct {
	Path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

// Load reads the snapshot at the store path. An absent file is a normal
// first run and a corrupt file is recovered from; both yield an empty
// ledger, logged distinctly so operators can tell the two apart.
func (s *FileStore) Load() (*Ledger, error) {
	log := logger.Log.WithField("path", s.Path)

	data, err := os.ReadFile(s.Path)
	if errors.Is(err, os.ErrNotExist) {
		log.Info("No snapshot file found, starting with an empty ledger")
		return NewLedger(), nil
	}
	if err != nil {
		log.WithError(err).Error("Snapshot file unreadable, starting with an empty ledger")
		return NewLedger(), nil
	}

	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		log.WithError(err).Error("Snapshot file corrupt, starting with an empty ledger")
		return NewLedger(), nil
	}

	accounts := make([]*model.Account, 0, len(snap.Accounts))
	for _, record := range snap.Accounts {
		account, err := record.toAccount()
		if err != nil {
			log.WithError(err).WithField("account_number", record.AccountNumber).
				Error("Snapshot record corrupt, starting with an empty ledger")
			return NewLedger(), nil
		}
		accounts = append(accounts, account)
	}

	ledger := NewLedger()
	ledger.Restore(accounts, snap.NextNumber)

	log.WithField("accounts", len(accounts)).Info("Ledger loaded from snapshot")
	return ledger, nil
}

// Save serializes the full account collection and replaces the snapshot
// atomically: the bytes go to a temporary file first and a rename swaps it
// in, so a crash mid-write cannot truncate the previous snapshot.
func (s *FileStore) Save(ledger *Ledger) error {
	accounts := ledger.Accounts()
	snap := snapshot{
		Version:    snapshotVersion,
		NextNumber: ledger.NextNumber(),
		Accounts:   make([]persistedAccount, 0, len(accounts)),
	}
	for _, account := range accounts {
		snap.Accounts = append(snap.Accounts, toPersisted(account))
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return &common.PersistenceError{Op: "encode", Err: err}
	}

	tmp := s.Path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return &common.PersistenceError{Op: "write", Err: err}
	}
	if err := os.Rename(tmp, s.Path); err != nil {
		os.Remove(tmp)
		return &common.PersistenceError{Op: "rename", Err: err}
	}

	logger.Log.WithFields(logrus.Fields{
		"path":     s.Path,
		"accounts": len(accounts),
	}).Info("Ledger snapshot saved")
	return nil
}

func toPersisted(account *model.Account) persistedAccount {
	return persistedAccount{
		AccountNumber: account.AccountNumber,
		FullName:      account.FullName,
		Address:       account.Address,
		Birthday:      account.Birthday,
		Gender:        account.Gender,
		AccountType:   string(account.AccountType),
		Balance:       account.Balance.String(),
		Salt:          base64.StdEncoding.EncodeToString(account.Credential.Salt),
		PinHash:       base64.StdEncoding.EncodeToString(account.Credential.Hash),
	}
}

func (p persistedAccount) toAccount() (*model.Account, error) {
	if p.AccountNumber <= 0 {
		return nil, fmt.Errorf("invalid account number %d", p.AccountNumber)
	}
	accountType := model.AccountType(p.AccountType)
	if !accountType.Valid() {
		return nil, fmt.Errorf("unknown account type %q", p.AccountType)
	}
	balance, err := model.MoneyFromMajorUnits(p.Balance)
	if err != nil {
		return nil, fmt.Errorf("invalid balance %q: %w", p.Balance, err)
	}
	salt, err := base64.StdEncoding.DecodeString(p.Salt)
	if err != nil {
		return nil, fmt.Errorf("invalid salt encoding: %w", err)
	}
	hash, err := base64.StdEncoding.DecodeString(p.PinHash)
	if err != nil {
		return nil, fmt.Errorf("invalid pin hash encoding: %w", err)
	}
	return &model.Account{
		AccountNumber: p.AccountNumber,
		FullName:      p.FullName,
		Address:       p.Address,
		Birthday:      p.Birthday,
		Gender:        p.Gender,
		AccountType:   accountType,
		Balance:       balance,
		Credential:    model.Credential{Salt: salt, Hash: hash},
	}, nil
}
