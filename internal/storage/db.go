// Package storage provides bun + sqlite implementations of the
// studygroup repository contracts. The services treat these as
// already-serializing external collaborators; nothing here knows about
// the cache.
package storage

import (
	"context"
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	"github.com/goliatone/go-studygroup-directory/studygroup"
)

// Open opens a sqlite-backed bun database for the given DSN.
func Open(dsn string) (*bun.DB, error) {
	sqldb, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}

	return bun.NewDB(sqldb, sqlitedialect.New()), nil
}

// InitSchema creates the backing tables when they do not exist yet.
// Membership rows get a composite primary key over (group_id, member_id);
// everything else keys on its single identifier column.
func InitSchema(ctx context.Context, db *bun.DB) error {
	models := []any{
		(*studygroup.StudyGroup)(nil),
		(*studygroup.StudyGroupMember)(nil),
		(*studygroup.Member)(nil),
		(*studygroup.StudyGroupReview)(nil),
	}

	for _, model := range models {
		if _, err := db.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
			return err
		}
	}
	return nil
}
