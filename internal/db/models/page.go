package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/mugiliam/contentsrv/pkg/types"
)

/*
Table "public.pages"
     Column     |           Type           | Collation | Nullable | Default
----------------+--------------------------+-----------+----------+---------
 id             | uuid                     |           | not null |
 namespace_id   | uuid                     |           | not null |
 user_id        | uuid                     |           | not null |
 title          | character varying(120)   |           | not null |
 url_identifier | character varying(64)    |           | not null |
 md_content     | text                     |           | not null |
 status         | integer                  |           | not null | 1
 created        | timestamp with time zone |           |          | now()
 updated        | timestamp with time zone |           |          | now()
Indexes:
    "pages_pkey" PRIMARY KEY, btree (id)
    "pages_url_identifier_key" UNIQUE CONSTRAINT, btree (url_identifier)
Foreign-key constraints:
    "pages_namespace_id_fkey" FOREIGN KEY (namespace_id) REFERENCES namespaces(id) ON DELETE RESTRICT
    "pages_user_id_fkey" FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE RESTRICT
Referenced by:
    TABLE "sections" CONSTRAINT "sections_page_id_fkey" FOREIGN KEY (page_id) REFERENCES pages(id) ON DELETE RESTRICT
*/

type Page struct {
	ID            uuid.UUID           `db:"id"`
	NamespaceID   uuid.UUID           `db:"namespace_id"`
	UserID        uuid.UUID           `db:"user_id"`
	Title         string              `db:"title"`
	URLIdentifier string              `db:"url_identifier"`
	MDContent     string              `db:"md_content"`
	Status        types.ContentStatus `db:"status"`
	Created       time.Time           `db:"created"`
	Updated       time.Time           `db:"updated"`
}
