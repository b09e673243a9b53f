package renderlog

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/memento/internal/clock"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	conn, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "renderlog.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := AutoMigrate(conn); err != nil {
		t.Fatal(err)
	}
	return conn
}

func TestRecordPersistsEntry(t *testing.T) {
	conn := testDB(t)
	node, err := snowflake.NewNode(1)
	if err != nil {
		t.Fatal(err)
	}
	instant := time.Date(2025, 6, 21, 23, 30, 0, 0, time.UTC)
	rec := NewRecorder(conn, node, clock.FixedClock{Instant: instant}, zap.NewNop())

	rec.Record(context.Background(), Entry{
		TemplateID: "poster-bold",
		TrackCount: 12,
		Outcome:    OutcomeOK,
		DurationMS: 85,
		Metadata:   map[string]interface{}{"scale": 2},
	})

	var rows []Entry
	if err := conn.Find(&rows).Error; err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	row := rows[0]
	if row.ID == 0 {
		t.Fatalf("id not assigned")
	}
	if row.TemplateID != "poster-bold" || row.Outcome != OutcomeOK || row.TrackCount != 12 {
		t.Fatalf("row mismatch: %+v", row)
	}
	if !row.CreatedAt.Equal(instant) {
		t.Fatalf("created_at %v", row.CreatedAt)
	}
}

func TestRecordErrorOutcome(t *testing.T) {
	conn := testDB(t)
	node, err := snowflake.NewNode(2)
	if err != nil {
		t.Fatal(err)
	}
	rec := NewRecorder(conn, node, nil, nil)

	rec.Record(context.Background(), Entry{
		TemplateID: "neon-grid",
		Outcome:    OutcomeError,
		ErrorCode:  "invalid_photo",
	})

	var row Entry
	if err := conn.First(&row, "outcome = ?", OutcomeError).Error; err != nil {
		t.Fatal(err)
	}
	if row.ErrorCode != "invalid_photo" {
		t.Fatalf("error code %q", row.ErrorCode)
	}
}

func TestRecordSurvivesClosedDB(t *testing.T) {
	conn := testDB(t)
	sqlDB, err := conn.DB()
	if err != nil {
		t.Fatal(err)
	}
	sqlDB.Close()

	node, err := snowflake.NewNode(3)
	if err != nil {
		t.Fatal(err)
	}
	rec := NewRecorder(conn, node, nil, zap.NewNop())

	// Must not panic or return; recording is best-effort.
	rec.Record(context.Background(), Entry{TemplateID: "poster-bold", Outcome: OutcomeOK})
}
