// Package oplog keeps the operator audit trail of back office writes in
// the sys_opr_log table.
package oplog

import (
	"fmt"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/bwmarrin/snowflake"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/techbucket/techbucket-web/internal/domain"
)

// Topic is the bus topic carrying domain.Mutation values.
const Topic = "admin:mutation"

type Recorder struct {
	db   *gorm.DB
	node *snowflake.Node
	now  func() time.Time
}

// Open connects to postgres and migrates the audit tables.
func Open(dsn string, node *snowflake.Node, debug bool) (*Recorder, error) {
	level := logger.Silent
	if debug {
		level = logger.Info
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(level),
	})
	if err != nil {
		return nil, errors.Wrap(err, "open oplog database")
	}
	if err := db.Migrator().AutoMigrate(domain.Tables...); err != nil {
		return nil, errors.Wrap(err, "migrate oplog tables")
	}
	return New(db, node), nil
}

func New(db *gorm.DB, node *snowflake.Node) *Recorder {
	return &Recorder{db: db, node: node, now: time.Now}
}

// Subscribe records every mutation published on bus, asynchronously and
// in publish order.
func (r *Recorder) Subscribe(bus EventBus.Bus) error {
	return bus.SubscribeAsync(Topic, r.handle, true)
}

func (r *Recorder) Unsubscribe(bus EventBus.Bus) {
	_ = bus.Unsubscribe(Topic, r.handle)
}

func (r *Recorder) handle(m domain.Mutation) {
	if err := r.Record(m); err != nil {
		zap.L().Error("oplog record failed", zap.String("kind", string(m.Kind)), zap.Error(err))
	}
}

func (r *Recorder) Record(m domain.Mutation) error {
	entry := Entry(m, r.node.Generate().Int64(), r.now())
	return errors.Wrap(r.db.Create(&entry).Error, "insert oplog")
}

// Purge deletes entries older than before and returns how many went.
func (r *Recorder) Purge(before time.Time) (int64, error) {
	res := r.db.Where("opt_time < ?", before).Delete(&domain.SysOprLog{})
	return res.RowsAffected, errors.Wrap(res.Error, "purge oplog")
}

// Recent lists the newest entries first.
func (r *Recorder) Recent(limit int) ([]domain.SysOprLog, error) {
	var rows []domain.SysOprLog
	err := r.db.Order("opt_time DESC").Limit(limit).Find(&rows).Error
	return rows, errors.Wrap(err, "query oplog")
}

func (r *Recorder) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Entry maps a mutation onto an audit row.
func Entry(m domain.Mutation, id int64, at time.Time) domain.SysOprLog {
	return domain.SysOprLog{
		ID:        id,
		OprName:   m.Operator,
		OprIp:     m.Remote,
		OptAction: fmt.Sprintf("%s_%s", m.Action, m.Kind),
		OptDesc:   Describe(m),
		OptTime:   at,
	}
}

// Describe renders a mutation as a sentence, e.g. "update Product #3".
func Describe(m domain.Mutation) string {
	var s string
	if m.ID > 0 {
		s = fmt.Sprintf("%s %s #%d", m.Action, m.Kind.Label(), m.ID)
	} else {
		s = fmt.Sprintf("%s %s", m.Action, m.Kind.Label())
	}
	if m.Detail != "" {
		s += ": " + m.Detail
	}
	return s
}
