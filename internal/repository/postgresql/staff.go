package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/washpoint/staffops/internal/db"
	"github.com/washpoint/staffops/internal/repository"
)

// StaffRepo holds the gateway's local staff credentials. These are gateway
// logins only; staff identity toward the platform backend travels as the
// bearer token.
type StaffRepo struct {
	db db.DB
}

func NewStaffRepo(db db.DB) *StaffRepo {
	return &StaffRepo{db: db}
}

func (r *StaffRepo) CreateStaff(ctx context.Context, username, password, officeID string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx,
		"INSERT INTO staff_credentials (username, password, office_id) VALUES ($1, $2, $3)",
		username, string(hashedPassword), officeID)
	return err
}

// ValidateStaff checks a username/password pair and returns the staff
// member's office scope on success.
func (r *StaffRepo) ValidateStaff(ctx context.Context, username, password string) (string, error) {
	var cred repository.StaffCredential
	err := r.db.Get(ctx, &cred,
		"SELECT * FROM staff_credentials WHERE username = $1", username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", repository.ErrObjectNotFound
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(cred.Password), []byte(password)); err != nil {
		return "", repository.ErrObjectNotFound
	}
	return cred.OfficeID, nil
}
