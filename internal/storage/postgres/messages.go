package postgres

import (
	"context"

	domainErrors "github.com/ovenlight/bakeshop/internal/domain/errors"
	"github.com/ovenlight/bakeshop/internal/domain/model"
)

func (r *messageRepository) Create(ctx context.Context, name, email, subject, message string) (*model.ContactMessage, error) {
	const query = `INSERT INTO contact_messages (name, email, subject, message)
                   VALUES ($1, $2, $3, $4)
                   RETURNING id, status, created_at`
	m := model.ContactMessage{Name: name, Email: email, Subject: subject, Message: message}
	err := r.storage.pool.QueryRow(ctx, query, name, email, subject, message).
		Scan(&m.ID, &m.Status, &m.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *messageRepository) List(ctx context.Context) ([]model.ContactMessage, error) {
	const query = `SELECT id, name, email, subject, message, status, created_at
                   FROM contact_messages ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.ContactMessage
	for rows.Next() {
		var m model.ContactMessage
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message, &m.Status, &m.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *messageRepository) UpdateStatus(ctx context.Context, id int64, status model.MessageStatus) error {
	const query = `UPDATE contact_messages SET status=$1 WHERE id=$2`
	tag, err := r.storage.pool.Exec(ctx, query, status, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *messageRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM contact_messages WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}
