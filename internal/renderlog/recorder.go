package renderlog

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/memento/internal/clock"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Recorder writes render log entries. Recording is best-effort: a
// database problem is logged and swallowed so it never fails a render.
type Recorder struct {
	db   *gorm.DB
	node *snowflake.Node
	clk  clock.Clock
	log  *zap.Logger
}

func NewRecorder(db *gorm.DB, node *snowflake.Node, clk clock.Clock, log *zap.Logger) *Recorder {
	if log == nil {
		log = zap.NewNop()
	}
	if clk == nil {
		clk = clock.SystemClock{}
	}
	return &Recorder{db: db, node: node, clk: clk, log: log.Named("renderlog")}
}

// Record assigns identity and timestamp, then inserts the entry.
func (r *Recorder) Record(ctx context.Context, entry Entry) {
	if r == nil || r.db == nil {
		return
	}
	entry.ID = r.node.Generate()
	entry.CreatedAt = r.clk.Now()
	if entry.Metadata == nil {
		entry.Metadata = map[string]interface{}{}
	}

	if err := r.db.WithContext(ctx).Create(&entry).Error; err != nil {
		r.log.Warn("render log insert failed",
			zap.String("template_id", entry.TemplateID),
			zap.String("outcome", entry.Outcome),
			zap.Error(err),
		)
	}
}
