package models

import (
	"time"

	"github.com/google/uuid"
)

/*
Table "public.books"
   Column    |           Type           | Collation | Nullable | Default
-------------+--------------------------+-----------+----------+---------
 id          | uuid                     |           | not null |
 title       | character varying(120)   |           | not null |
 description | text                     |           |          |
 created     | timestamp with time zone |           |          | now()
 updated     | timestamp with time zone |           |          | now()
Indexes:
    "books_pkey" PRIMARY KEY, btree (id)
Referenced by:
    TABLE "namespaces" CONSTRAINT "namespaces_book_id_fkey" FOREIGN KEY (book_id) REFERENCES books(id)
*/

type Book struct {
	ID          uuid.UUID `db:"id"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	Created     time.Time `db:"created"`
	Updated     time.Time `db:"updated"`
}
