package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/mugiliam/contentsrv/pkg/types"
)

/*
Table "public.namespaces"
   Column   |           Type           | Collation | Nullable | Default
------------+--------------------------+-----------+----------+---------
 id         | uuid                     |           | not null |
 name       | character varying(50)    |           | not null |
 slug       | character varying(64)    |           | not null |
 md_content | text                     |           | not null |
 status     | integer                  |           | not null | 1
 active     | boolean                  |           | not null | true
 user_id    | uuid                     |           | not null |
 book_id    | uuid                     |           |          |
 created    | timestamp with time zone |           |          | now()
 updated    | timestamp with time zone |           |          | now()
Indexes:
    "namespaces_pkey" PRIMARY KEY, btree (id)
    "namespaces_slug_key" UNIQUE CONSTRAINT, btree (slug)
Foreign-key constraints:
    "namespaces_user_id_fkey" FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE RESTRICT
    "namespaces_book_id_fkey" FOREIGN KEY (book_id) REFERENCES books(id)
Referenced by:
    TABLE "pages" CONSTRAINT "pages_namespace_id_fkey" FOREIGN KEY (namespace_id) REFERENCES namespaces(id) ON DELETE RESTRICT
    TABLE "namespace_tags" CONSTRAINT "namespace_tags_namespace_id_fkey" FOREIGN KEY (namespace_id) REFERENCES namespaces(id) ON DELETE CASCADE
*/

type Namespace struct {
	ID        uuid.UUID           `db:"id"`
	Name      string              `db:"name"`
	Slug      string              `db:"slug"`
	MDContent string              `db:"md_content"`
	Status    types.ContentStatus `db:"status"`
	Active    bool                `db:"active"`
	UserID    uuid.UUID           `db:"user_id"`
	BookID    uuid.UUID           `db:"book_id"` // uuid.Nil when no book is associated
	Created   time.Time           `db:"created"`
	Updated   time.Time           `db:"updated"`
}
