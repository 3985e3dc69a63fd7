package timescaledb

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
)

type stubRow struct {
	exists bool
	err    error
}

func (r stubRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*dest[0].(*bool) = r.exists
	return nil
}

type stubQuerier struct {
	row   stubRow
	table string
}

func (q *stubQuerier) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	q.table = args[0].(string)
	return q.row
}

func TestHypertableExists(t *testing.T) {
	tests := []struct {
		name string
		row  stubRow
		want bool
	}{
		{name: "already a hypertable", row: stubRow{exists: true}, want: true},
		{name: "plain table", row: stubRow{exists: false}, want: false},
		{name: "lookup fails", row: stubRow{exists: true, err: errors.New("relation timescaledb_information.hypertables does not exist")}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := &stubQuerier{row: tt.row}
			assert.Equal(t, tt.want, hypertableExists(context.Background(), q, alertEventsTableName))
			assert.Equal(t, alertEventsTableName, q.table)
		})
	}
}
