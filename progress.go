package main

import (
	"encoding/json"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Storage keys, kept identical to the browser app this store replaces so
// exported state stays interchangeable.
const (
	keyWrongIDs          = "mlh_wrong_ids"
	keyWrongCountMap     = "mlh_wrong_count_map"
	keySubjectWrongMap   = "mlh_subject_wrong_map"
	keySubjectAttemptMap = "mlh_subject_attempt_map"
	keyDailyProgress     = "mlh_daily_progress"
	keyPerfectCount      = "mlh_perfect_count"
	keyPerfectLastID     = "mlh_perfect_last_attempt"
	keyLastAnswers       = "mlh_last_answers"
)

// ProgressStore tracks learner progress on top of a KV store: the wrong
// set with per-question counters, per-subject attempt/wrong counters,
// daily answer buckets, and the perfect-score counter. Reads never fail;
// absent or malformed values degrade to empty defaults. Writes are
// last-write-wins, which is acceptable for a single-learner store.
type ProgressStore struct {
	kv  KV
	log *zap.Logger
	now func() time.Time

	mu sync.Mutex // serializes read-modify-write cycles
}

func NewProgressStore(kv KV, log *zap.Logger) *ProgressStore {
	return &ProgressStore{kv: kv, log: log, now: time.Now}
}

// --- Wrong set ---

// WrongIDs returns the ids answered incorrectly at least once, in
// first-added order.
func (s *ProgressStore) WrongIDs() []string {
	raw, ok := s.kv.Get(keyWrongIDs)
	if !ok || raw == "" {
		return nil
	}
	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		s.log.Warn("discarding malformed progress entry",
			zap.String("key", keyWrongIDs), zap.Error(err))
		return nil
	}
	return ids
}

// WrongCountMap returns how many times each question id was missed.
func (s *ProgressStore) WrongCountMap() map[string]int {
	return s.readCountMap(keyWrongCountMap)
}

// AddWrong records a miss for a question: set membership plus a
// per-question counter. Repeat calls grow the counter but not the set.
func (s *ProgressStore) AddWrong(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := s.WrongIDs()
	found := false
	for _, v := range ids {
		if v == id {
			found = true
			break
		}
	}
	if !found {
		ids = append(ids, id)
		s.writeJSON(keyWrongIDs, ids)
	}

	counts := s.readCountMap(keyWrongCountMap)
	counts[id]++
	s.writeJSON(keyWrongCountMap, counts)
}

// ClearWrongIDs empties the wrong set and its per-question counters.
// Subject stats and daily progress are untouched.
func (s *ProgressStore) ClearWrongIDs() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.kv.Remove(keyWrongIDs)
	s.kv.Remove(keyWrongCountMap)
}

// --- Per-subject counters ---

// AddAttemptBySubject bumps the attempt counter for a subject stratum.
// Every submission counts; there is no dedup here.
func (s *ProgressStore) AddAttemptBySubject(subject string) {
	s.bumpCount(keySubjectAttemptMap, subject, 1)
}

// AddWrongBySubject bumps the wrong counter for a subject stratum.
func (s *ProgressStore) AddWrongBySubject(subject string) {
	s.bumpCount(keySubjectWrongMap, subject, 1)
}

func (s *ProgressStore) SubjectAttemptMap() map[string]int {
	return s.readCountMap(keySubjectAttemptMap)
}

func (s *ProgressStore) SubjectWrongMap() map[string]int {
	return s.readCountMap(keySubjectWrongMap)
}

// ClearSubjectStats empties the per-subject counters only.
func (s *ProgressStore) ClearSubjectStats() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.kv.Remove(keySubjectAttemptMap)
	s.kv.Remove(keySubjectWrongMap)
}

// --- Daily progress ---

// DailyProgress returns the per-day answer counts keyed by local
// YYYY-MM-DD date.
func (s *ProgressStore) DailyProgress() map[string]int {
	return s.readCountMap(keyDailyProgress)
}

// TodayAnsweredCount returns today's bucket.
func (s *ProgressStore) TodayAnsweredCount() int {
	return s.DailyProgress()[s.todayKey()]
}

// AddDailyProgress adds count to today's bucket. Past buckets are never
// rewritten.
func (s *ProgressStore) AddDailyProgress(count int) {
	s.bumpCount(keyDailyProgress, s.todayKey(), count)
}

func (s *ProgressStore) todayKey() string {
	return s.now().Format("2006-01-02")
}

// --- Perfect streak ---

// PerfectCount returns how many sessions finished at 100%.
func (s *ProgressStore) PerfectCount() int {
	raw, ok := s.kv.Get(keyPerfectCount)
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		s.log.Warn("discarding malformed perfect count", zap.String("value", raw))
		return 0
	}
	return n
}

// TryIncrementPerfectCount advances the perfect counter for sessionID
// and reports whether it did. The session id is recorded before the
// counter moves, so a re-rendered results view cannot count the same
// session twice.
func (s *ProgressStore) TryIncrementPerfectCount(sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if last, ok := s.kv.Get(keyPerfectLastID); ok && last == sessionID {
		return false
	}
	s.kv.Set(keyPerfectLastID, sessionID)
	s.kv.Set(keyPerfectCount, strconv.Itoa(s.PerfectCount()+1))
	return true
}

// --- helpers ---

func (s *ProgressStore) bumpCount(key, field string, delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m := s.readCountMap(key)
	m[field] += delta
	s.writeJSON(key, m)
}

func (s *ProgressStore) readCountMap(key string) map[string]int {
	raw, ok := s.kv.Get(key)
	if !ok || raw == "" {
		return map[string]int{}
	}
	var m map[string]int
	if err := json.Unmarshal([]byte(raw), &m); err != nil || m == nil {
		s.log.Warn("discarding malformed progress entry", zap.String("key", key))
		return map[string]int{}
	}
	return m
}

func (s *ProgressStore) writeJSON(key string, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		s.log.Warn("encode progress entry failed", zap.String("key", key), zap.Error(err))
		return
	}
	s.kv.Set(key, string(b))
}
