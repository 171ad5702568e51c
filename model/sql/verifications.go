package sql

import (
	"time"

	"github.com/Brawl345/channelgate/model"
	"github.com/jmoiron/sqlx"
)

type verificationService struct {
	*sqlx.DB
}

func NewVerificationService(db *sqlx.DB) *verificationService {
	return &verificationService{
		DB: db,
	}
}

func (db *verificationService) Record(userID int64, event model.VerificationEvent, missing int) error {
	const query = `INSERT INTO verifications (user_id, event, missing) VALUES (?, ?, ?)`
	_, err := db.Exec(query, userID, event, missing)
	return err
}

func (db *verificationService) CountSince(event model.VerificationEvent, since time.Time) (int64, error) {
	const query = `SELECT COUNT(*) FROM verifications WHERE event = ? AND created_at >= ?`
	var count int64
	err := db.Get(&count, query, event, since)
	return count, err
}
