package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	"github.com/abhisek/tutorly/internal/session"
)

// SessionRepo stores each learner record as one JSON blob keyed by user id.
type SessionRepo struct {
	drv *entsql.Driver
}

var _ session.Store = (*SessionRepo)(nil)

func (r *SessionRepo) Load(ctx context.Context, userID string) (*session.Record, error) {
	if err := session.ValidateUserID(userID); err != nil {
		return nil, err
	}

	b := entsql.Dialect(dialect.SQLite)
	query, args := b.Select(colData).
		From(b.Table(sessionsTableName)).
		Where(entsql.EQ(colUserID, userID)).
		Query()

	rows := &entsql.Rows{}
	if err := r.drv.Query(ctx, query, args, rows); err != nil {
		return nil, fmt.Errorf("load session %s: %w", userID, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("load session %s: %w", userID, err)
		}
		return session.NewRecord(), nil
	}
	var data string
	if err := rows.Scan(&data); err != nil {
		return nil, fmt.Errorf("load session %s: %w", userID, err)
	}

	rec, err := session.Decode([]byte(data))
	if err != nil {
		return nil, fmt.Errorf("decode session %s: %w", userID, err)
	}
	return rec, nil
}

func (r *SessionRepo) Save(ctx context.Context, userID string, rec *session.Record) error {
	if err := session.ValidateUserID(userID); err != nil {
		return err
	}

	data, err := session.Encode(rec)
	if err != nil {
		return fmt.Errorf("encode session %s: %w", userID, err)
	}

	query, args := entsql.Dialect(dialect.SQLite).
		Insert(sessionsTableName).
		Columns(colUserID, colData, colUpdatedAt).
		Values(userID, string(data), time.Now().UTC().UnixMicro()).
		OnConflict(
			entsql.ConflictColumns(colUserID),
			entsql.ResolveWithNewValues(),
		).
		Query()

	var res sql.Result
	if err := r.drv.Exec(ctx, query, args, &res); err != nil {
		return fmt.Errorf("save session %s: %w", userID, err)
	}
	return nil
}

func (r *SessionRepo) Delete(ctx context.Context, userID string) error {
	if err := session.ValidateUserID(userID); err != nil {
		return err
	}

	query, args := entsql.Dialect(dialect.SQLite).
		Delete(sessionsTableName).
		Where(entsql.EQ(colUserID, userID)).
		Query()

	var res sql.Result
	if err := r.drv.Exec(ctx, query, args, &res); err != nil {
		return fmt.Errorf("delete session %s: %w", userID, err)
	}
	return nil
}

// Users lists user ids with a stored record, alphabetically.
func (r *SessionRepo) Users(ctx context.Context) ([]string, error) {
	b := entsql.Dialect(dialect.SQLite)
	query, args := b.Select(colUserID).
		From(b.Table(sessionsTableName)).
		OrderBy(colUserID).
		Query()

	rows := &entsql.Rows{}
	if err := r.drv.Query(ctx, query, args, rows); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var users []string
	for rows.Next() {
		var u string
		if err := rows.Scan(&u); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}
