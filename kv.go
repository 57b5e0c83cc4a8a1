package main

import (
	"errors"
	"sync"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// KV is the persistence contract the progress store runs on. Get reports
// absence instead of failing; Set and Remove are best effort. The
// durable implementation survives restarts, the ephemeral one lives for
// the process only.
type KV interface {
	Get(key string) (string, bool)
	Set(key, value string)
	Remove(key string)
}

type dbKV struct {
	db  *gorm.DB
	log *zap.Logger
}

// NewDBKV returns the durable KV backed by the kv_entries table.
func NewDBKV(db *gorm.DB, log *zap.Logger) KV {
	return &dbKV{db: db, log: log}
}

func (s *dbKV) Get(key string) (string, bool) {
	var e KVEntry
	if err := s.db.First(&e, "key = ?", key).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.log.Warn("kv read failed", zap.String("key", key), zap.Error(err))
		}
		return "", false
	}
	return e.Value, true
}

func (s *dbKV) Set(key, value string) {
	e := KVEntry{Key: key, Value: value}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&e).Error
	if err != nil {
		s.log.Warn("kv write failed", zap.String("key", key), zap.Error(err))
	}
}

func (s *dbKV) Remove(key string) {
	if err := s.db.Delete(&KVEntry{}, "key = ?", key).Error; err != nil {
		s.log.Warn("kv delete failed", zap.String("key", key), zap.Error(err))
	}
}

type memKV struct {
	mu sync.RWMutex
	m  map[string]string
}

// NewMemKV returns the ephemeral in-memory KV, used for the last-answers
// hand-off between a finished round and its results view.
func NewMemKV() KV {
	return &memKV{m: make(map[string]string)}
}

func (s *memKV) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.m[key]
	return v, ok
}

func (s *memKV) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[key] = value
}

func (s *memKV) Remove(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, key)
}
