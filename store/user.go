package store

import (
	"context"
)

// User is the object representing a bot user.
type User struct {
	ID        int32
	RowStatus RowStatus
	CreatedTs int64
	UpdatedTs int64

	Username string
	// TelegramChatID is the outbound delivery address; 0 means the user
	// has never opened the bot chat and cannot be reached.
	TelegramChatID int64
	// Timezone is an IANA identifier; invalid values resolve to UTC.
	Timezone string
	// Language is a BCP 47 tag; only the "ru" prefix changes wording.
	Language string
	// LastReportTs is when the last habits report was delivered, nil if never.
	LastReportTs *int64
}

// FindUser is the find condition for users.
type FindUser struct {
	ID        *int32
	RowStatus *RowStatus

	// HasTelegramChat filters to users with a non-zero chat ID.
	HasTelegramChat *bool
	// LastReportBefore matches users whose last report is older than the
	// given timestamp, including users never reported at all.
	LastReportBefore *int64
}

// UpdateUser is the update request for users.
type UpdateUser struct {
	ID           int32
	UpdatedTs    *int64
	RowStatus    *RowStatus
	Timezone     *string
	Language     *string
	LastReportTs *int64
}

// CreateUser creates a new user.
func (s *Store) CreateUser(ctx context.Context, create *User) (*User, error) {
	return s.driver.CreateUser(ctx, create)
}

// GetUser gets a single user with the find condition.
func (s *Store) GetUser(ctx context.Context, find *FindUser) (*User, error) {
	users, err := s.driver.ListUsers(ctx, find)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, nil
	}
	return users[0], nil
}

// ListUsers lists users with the find condition.
func (s *Store) ListUsers(ctx context.Context, find *FindUser) ([]*User, error) {
	return s.driver.ListUsers(ctx, find)
}

// UpdateUser updates a user.
func (s *Store) UpdateUser(ctx context.Context, update *UpdateUser) error {
	return s.driver.UpdateUser(ctx, update)
}
