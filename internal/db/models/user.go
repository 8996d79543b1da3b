package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/mugiliam/contentsrv/internal/security"
	"github.com/mugiliam/contentsrv/pkg/types"
)

/*
Table "public.users"
     Column     |           Type           | Collation | Nullable | Default
----------------+--------------------------+-----------+----------+---------
 id             | uuid                     |           | not null |
 username       | character varying(50)    |           | not null |
 email          | character varying(120)   |           | not null |
 url_identifier | character varying(64)    |           | not null |
 password_hash  | character varying(256)   |           | not null |
 status         | integer                  |           | not null | 0
 bio            | text                     |           |          |
 created        | timestamp with time zone |           |          | now()
 updated        | timestamp with time zone |           |          | now()
Indexes:
    "users_pkey" PRIMARY KEY, btree (id)
    "users_username_key" UNIQUE CONSTRAINT, btree (username)
    "users_email_key" UNIQUE CONSTRAINT, btree (email)
    "users_url_identifier_key" UNIQUE CONSTRAINT, btree (url_identifier)
Referenced by:
    TABLE "namespaces" CONSTRAINT "namespaces_user_id_fkey" FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE RESTRICT
    TABLE "pages" CONSTRAINT "pages_user_id_fkey" FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE RESTRICT
    TABLE "sections" CONSTRAINT "sections_user_id_fkey" FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE RESTRICT
*/

type User struct {
	ID            uuid.UUID           `db:"id"`
	Username      string              `db:"username"`
	Email         string              `db:"email"`
	URLIdentifier string              `db:"url_identifier"`
	PasswordHash  string              `db:"password_hash"`
	Status        types.AccountStatus `db:"status"`
	Bio           string              `db:"bio"`
	Created       time.Time           `db:"created"`
	Updated       time.Time           `db:"updated"`
}

// SetPassword computes a salted one-way hash of plaintext and stores it as
// the user's password hash. The plaintext is never persisted.
func (u *User) SetPassword(plaintext string) error {
	hash, err := security.HashPassword(plaintext)
	if err != nil {
		return err
	}
	u.PasswordHash = hash
	return nil
}

// CheckPassword reports whether plaintext verifies against the stored hash.
func (u *User) CheckPassword(plaintext string) bool {
	ok, err := security.VerifyPassword(plaintext, u.PasswordHash)
	return err == nil && ok
}
