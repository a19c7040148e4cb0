package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

// LLMEventRepo implements EventRepo on the llm_request_events table and
// adds the read side used by the llm inspection commands.
type LLMEventRepo struct {
	drv *entsql.Driver
	now func() time.Time
}

var _ EventRepo = (*LLMEventRepo)(nil)

func (r *LLMEventRepo) clock() time.Time {
	if r.now != nil {
		return r.now()
	}
	return time.Now()
}

func (r *LLMEventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	query, args := entsql.Dialect(dialect.SQLite).
		Insert(llmEventsTableName).
		Columns(
			colTimestamp, colProvider, colModel, colPurpose, colUserID,
			colInputTokens, colOutputTokens, colLatencyMs, colSuccess,
			colErrorMessage, colRequestBody, colResponseBody,
		).
		Values(
			r.clock().UTC().UnixMicro(), data.Provider, data.Model, data.Purpose, data.UserID,
			data.InputTokens, data.OutputTokens, data.LatencyMs, data.Success,
			data.ErrorMessage, data.RequestBody, data.ResponseBody,
		).
		Query()

	var res sql.Result
	if err := r.drv.Exec(ctx, query, args, &res); err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}
	return nil
}

func (r *LLMEventRepo) selectEvents() *entsql.Selector {
	b := entsql.Dialect(dialect.SQLite)
	return b.Select(columnNames(llmEventColumns)...).From(b.Table(llmEventsTableName))
}

// QueryLLMEvents returns events newest first.
func (r *LLMEventRepo) QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEventRecord, error) {
	var preds []*entsql.Predicate
	if opts.Purpose != "" {
		preds = append(preds, entsql.EQ(colPurpose, opts.Purpose))
	}
	if opts.UserID != "" {
		preds = append(preds, entsql.EQ(colUserID, opts.UserID))
	}
	if !opts.From.IsZero() {
		preds = append(preds, entsql.GTE(colTimestamp, opts.From.UTC().UnixMicro()))
	}
	if !opts.To.IsZero() {
		preds = append(preds, entsql.LTE(colTimestamp, opts.To.UTC().UnixMicro()))
	}

	sel := r.selectEvents()
	if len(preds) > 0 {
		sel.Where(entsql.And(preds...))
	}
	sel.OrderBy(entsql.Desc(colID))
	if opts.Limit > 0 {
		sel.Limit(opts.Limit)
	}

	return r.queryEvents(ctx, sel)
}

// GetLLMEvent returns one event, or nil if id does not exist.
func (r *LLMEventRepo) GetLLMEvent(ctx context.Context, id int) (*LLMRequestEventRecord, error) {
	recs, err := r.queryEvents(ctx, r.selectEvents().Where(entsql.EQ(colID, id)))
	if err != nil || len(recs) == 0 {
		return nil, err
	}
	return &recs[0], nil
}

func (r *LLMEventRepo) queryEvents(ctx context.Context, sel *entsql.Selector) ([]LLMRequestEventRecord, error) {
	query, args := sel.Query()
	rows := &entsql.Rows{}
	if err := r.drv.Query(ctx, query, args, rows); err != nil {
		return nil, fmt.Errorf("query LLM events: %w", err)
	}
	defer rows.Close()

	var out []LLMRequestEventRecord
	for rows.Next() {
		rec, err := scanLLMEvent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *rec)
	}
	return out, rows.Err()
}

// usageSelect groups events by key and selects key, call count and token sums.
func usageSelect(key string, extra ...string) *entsql.Selector {
	b := entsql.Dialect(dialect.SQLite)
	calls := entsql.Count("*")
	cols := append([]string{
		key,
		calls,
		"COALESCE(" + entsql.Sum(colInputTokens) + ", 0)",
		"COALESCE(" + entsql.Sum(colOutputTokens) + ", 0)",
	}, extra...)
	return b.Select(cols...).
		From(b.Table(llmEventsTableName)).
		GroupBy(key).
		OrderBy(entsql.Desc(calls), key)
}

// LLMUsageByPurpose aggregates usage per purpose, busiest first.
func (r *LLMEventRepo) LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStats, error) {
	query, args := usageSelect(colPurpose,
		"CAST(COALESCE("+entsql.Avg(colLatencyMs)+", 0) AS INTEGER)").Query()

	rows := &entsql.Rows{}
	if err := r.drv.Query(ctx, query, args, rows); err != nil {
		return nil, fmt.Errorf("query usage by purpose: %w", err)
	}
	defer rows.Close()

	var out []LLMUsageStats
	for rows.Next() {
		var s LLMUsageStats
		if err := rows.Scan(&s.Purpose, &s.Calls, &s.InputTokens, &s.OutputTokens, &s.AvgLatencyMs); err != nil {
			return nil, fmt.Errorf("scan usage: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// LLMUsageByModel aggregates usage per model, busiest first.
func (r *LLMEventRepo) LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error) {
	query, args := usageSelect(colModel).Query()

	rows := &entsql.Rows{}
	if err := r.drv.Query(ctx, query, args, rows); err != nil {
		return nil, fmt.Errorf("query usage by model: %w", err)
	}
	defer rows.Close()

	var out []LLMModelUsage
	for rows.Next() {
		var m LLMModelUsage
		if err := rows.Scan(&m.Model, &m.Calls, &m.InputTokens, &m.OutputTokens); err != nil {
			return nil, fmt.Errorf("scan model usage: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func scanLLMEvent(rows *entsql.Rows) (*LLMRequestEventRecord, error) {
	var (
		rec LLMRequestEventRecord
		ts  int64
	)
	err := rows.Scan(
		&rec.ID, &ts, &rec.Provider, &rec.Model, &rec.Purpose, &rec.UserID,
		&rec.InputTokens, &rec.OutputTokens, &rec.LatencyMs, &rec.Success,
		&rec.ErrorMessage, &rec.RequestBody, &rec.ResponseBody,
	)
	if err != nil {
		return nil, fmt.Errorf("scan LLM event: %w", err)
	}
	rec.Timestamp = time.UnixMicro(ts).UTC()
	return &rec, nil
}
