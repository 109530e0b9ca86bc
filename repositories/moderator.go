//go:generate go run go.uber.org/mock/mockgen -source=moderator.go -destination=../mocks/mock_moderator_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	goerrors "errors"
	"fmt"
	"time"

	"sentinel-lab/errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

type IModeratorRepository interface {
	CreateModerator(email, hashedPassword string, roles []string) (string, error)
	GetModeratorByEmail(email string) (Moderator, error)
}

type ModeratorRepository struct {
	db *badger.DB
}

func NewModeratorRepository(db *badger.DB) IModeratorRepository {
	return &ModeratorRepository{db: db}
}

// Moderator is a staff account allowed to resolve reports and label
// feedback. The password hash is an argon2id encoded string.
type Moderator struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password_hash"`
	Roles        []string  `json:"roles"`
	CreatedAt    time.Time `json:"created_at"`
}

// CreateModerator persists a new account and returns its generated ID.
func (m ModeratorRepository) CreateModerator(email, hashedPassword string, roles []string) (string, error) {
	if len(roles) == 0 {
		roles = []string{"moderator"}
	}
	moderator := Moderator{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: hashedPassword,
		Roles:        roles,
		CreatedAt:    time.Now().UTC(),
	}

	data, err := json.Marshal(moderator)
	if err != nil {
		return "", fmt.Errorf("marshal failed: %w", err)
	}

	err = m.db.Update(func(txn *badger.Txn) error {
		key := []byte("moderator:" + email)
		if _, err = txn.Get(key); err == nil {
			return errors.ErrModeratorAlreadyExists
		}
		return txn.Set(key, data)
	})

	return moderator.ID, err
}

// GetModeratorByEmail retrieves an account from Badger.
func (m ModeratorRepository) GetModeratorByEmail(email string) (Moderator, error) {
	var moderator Moderator

	err := m.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte("moderator:" + email))
		if err != nil {
			if goerrors.Is(err, badger.ErrKeyNotFound) {
				return errors.ErrInvalidCredentials
			}
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &moderator)
		})
	})

	if err != nil {
		return Moderator{}, err
	}

	return moderator, nil
}
