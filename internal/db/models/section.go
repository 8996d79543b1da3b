package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/mugiliam/contentsrv/pkg/types"
)

/*
Table "public.sections"
   Column   |           Type           | Collation | Nullable | Default
------------+--------------------------+-----------+----------+---------
 id         | uuid                     |           | not null |
 page_id    | uuid                     |           | not null |
 user_id    | uuid                     |           | not null |
 title      | character varying(120)   |           | not null |
 md_content | text                     |           | not null |
 status     | integer                  |           | not null | 1
 created    | timestamp with time zone |           |          | now()
 updated    | timestamp with time zone |           |          | now()
Indexes:
    "sections_pkey" PRIMARY KEY, btree (id)
Foreign-key constraints:
    "sections_page_id_fkey" FOREIGN KEY (page_id) REFERENCES pages(id) ON DELETE RESTRICT
    "sections_user_id_fkey" FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE RESTRICT
*/

type Section struct {
	ID        uuid.UUID           `db:"id"`
	PageID    uuid.UUID           `db:"page_id"`
	UserID    uuid.UUID           `db:"user_id"`
	Title     string              `db:"title"`
	MDContent string              `db:"md_content"`
	Status    types.ContentStatus `db:"status"`
	Created   time.Time           `db:"created"`
	Updated   time.Time           `db:"updated"`
}
