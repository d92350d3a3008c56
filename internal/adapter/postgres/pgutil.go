package postgres

import (
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/socialblog/backend/internal/domain"
)

// MediaToColumns splits an optional MediaRef into its storage_id/url
// column pair (nil -> NULL/NULL).
func MediaToColumns(m *domain.MediaRef) (pgtype.Text, pgtype.Text) {
	if m == nil {
		return pgtype.Text{}, pgtype.Text{}
	}
	return pgtype.Text{String: m.StorageID, Valid: true}, pgtype.Text{String: m.URL, Valid: true}
}

// MediaFromColumns rebuilds an optional MediaRef from its column pair.
// A NULL storage id means no media.
func MediaFromColumns(storageID, url pgtype.Text) *domain.MediaRef {
	if !storageID.Valid {
		return nil
	}
	return &domain.MediaRef{StorageID: storageID.String, URL: url.String}
}

// TextToPtr converts a nullable text column to *string.
func TextToPtr(t pgtype.Text) *string {
	if !t.Valid {
		return nil
	}
	s := t.String
	return &s
}

// PtrToText converts a *string to a nullable text column (nil -> NULL).
func PtrToText(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}
