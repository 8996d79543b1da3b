package models

import (
	"time"

	"github.com/google/uuid"
)

/*
Table "public.tags"
 Column  |           Type           | Collation | Nullable | Default
---------+--------------------------+-----------+----------+---------
 id      | uuid                     |           | not null |
 name    | character varying(50)    |           | not null |
 created | timestamp with time zone |           |          | now()
 updated | timestamp with time zone |           |          | now()
Indexes:
    "tags_pkey" PRIMARY KEY, btree (id)
    "tags_name_key" UNIQUE CONSTRAINT, btree (name)
Referenced by:
    TABLE "namespace_tags" CONSTRAINT "namespace_tags_tag_id_fkey" FOREIGN KEY (tag_id) REFERENCES tags(id) ON DELETE CASCADE

Association table "public.namespace_tags"
    Column     | Type | Collation | Nullable
---------------+------+-----------+----------
 namespace_id  | uuid |           | not null
 tag_id        | uuid |           | not null
Indexes:
    "namespace_tags_pkey" PRIMARY KEY, btree (namespace_id, tag_id)
*/

type Tag struct {
	ID      uuid.UUID `db:"id"`
	Name    string    `db:"name"`
	Created time.Time `db:"created"`
	Updated time.Time `db:"updated"`
}
