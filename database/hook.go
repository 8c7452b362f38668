/*
 * Copyright 2025 tomoncle.
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package database

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/extra/bundebug"
)

var (
	selectColor = color.New(color.FgGreen)
	insertColor = color.New(color.FgBlue)
	updateColor = color.New(color.FgYellow)
	deleteColor = color.New(color.FgMagenta)
	otherColor  = color.New(color.FgCyan)
	errorColor  = color.New(color.BgRed, color.FgWhite)
)

func colorizeQuery(event *bun.QueryEvent) string {
	switch event.Operation() {
	case "SELECT":
		return selectColor.Sprint(event.Query)
	case "INSERT":
		return insertColor.Sprint(event.Query)
	case "UPDATE":
		return updateColor.Sprint(event.Query)
	case "DELETE":
		return deleteColor.Sprint(event.Query)
	default:
		return otherColor.Sprint(event.Query)
	}
}

// ErrorQueryHook reports failed statements. Missing rows and finished
// transactions are part of normal control flow and stay silent.
type ErrorQueryHook struct {
	logger Logger
}

var _ bun.QueryHook = (*ErrorQueryHook)(nil)

func NewErrorQueryHook(logger Logger) *ErrorQueryHook {
	return &ErrorQueryHook{logger: logger}
}

func (h *ErrorQueryHook) BeforeQuery(ctx context.Context, _ *bun.QueryEvent) context.Context {
	return ctx
}

func (h *ErrorQueryHook) AfterQuery(_ context.Context, event *bun.QueryEvent) {
	switch {
	case event.Err == nil, errors.Is(event.Err, sql.ErrNoRows), errors.Is(event.Err, sql.ErrTxDone):
		return
	}
	_, kind := IsSqlError(event.Err)
	h.logger.Debug("query failed",
		"kind", kind.String(),
		"duration", time.Since(event.StartTime).Round(time.Microsecond),
		"query", colorizeQuery(event),
		"error", errorColor.Sprint(event.Err.Error()),
	)
}

// SlowQueryHook warns about successful statements slower than threshold.
type SlowQueryHook struct {
	logger    Logger
	threshold time.Duration
}

var _ bun.QueryHook = (*SlowQueryHook)(nil)

func NewSlowQueryHook(logger Logger, threshold time.Duration) *SlowQueryHook {
	return &SlowQueryHook{logger: logger, threshold: threshold}
}

func (h *SlowQueryHook) BeforeQuery(ctx context.Context, _ *bun.QueryEvent) context.Context {
	return ctx
}

func (h *SlowQueryHook) AfterQuery(_ context.Context, event *bun.QueryEvent) {
	if event.Err != nil || h.threshold <= 0 {
		return
	}
	if d := time.Since(event.StartTime); d > h.threshold {
		h.logger.Warn("slow query",
			"duration", d.Round(time.Microsecond),
			"threshold", h.threshold,
			"query", colorizeQuery(event),
		)
	}
}

// installQueryHooks attaches the hooks selected by config to db.
func installQueryHooks(db *bun.DB, config *ConnectionConfig, logger Logger, out io.Writer) {
	db.AddQueryHook(NewErrorQueryHook(logger))
	if config.SlowQueryTime > 0 {
		db.AddQueryHook(NewSlowQueryHook(logger, config.SlowQueryTime))
	}
	if config.EnableQueryLog {
		db.AddQueryHook(bundebug.NewQueryHook(
			bundebug.WithVerbose(true),
			bundebug.WithWriter(out),
		))
	}
}
