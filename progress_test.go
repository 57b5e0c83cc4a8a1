package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newTestStore() (*ProgressStore, KV) {
	kv := NewMemKV()
	return NewProgressStore(kv, zap.NewNop()), kv
}

func TestAddWrongSetSemantics(t *testing.T) {
	s, _ := newTestStore()

	s.AddWrong("a-1")
	s.AddWrong("a-1")
	s.AddWrong("b-2")

	assert.Equal(t, []string{"a-1", "b-2"}, s.WrongIDs(), "set membership, first-added order")
	assert.Equal(t, map[string]int{"a-1": 2, "b-2": 1}, s.WrongCountMap())
}

func TestSubjectCountersNotDeduplicated(t *testing.T) {
	s, _ := newTestStore()

	s.AddAttemptBySubject("anatomy")
	s.AddAttemptBySubject("anatomy")
	s.AddAttemptBySubject("pharma")
	s.AddWrongBySubject("anatomy")

	assert.Equal(t, map[string]int{"anatomy": 2, "pharma": 1}, s.SubjectAttemptMap())
	assert.Equal(t, map[string]int{"anatomy": 1}, s.SubjectWrongMap())
}

func TestDailyProgressBuckets(t *testing.T) {
	s, _ := newTestStore()
	s.now = func() time.Time { return time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC) }

	s.AddDailyProgress(3)
	s.AddDailyProgress(3)
	assert.Equal(t, 6, s.TodayAnsweredCount())

	// Next day: new bucket, old one untouched.
	s.now = func() time.Time { return time.Date(2026, 3, 15, 8, 0, 0, 0, time.UTC) }
	s.AddDailyProgress(1)
	daily := s.DailyProgress()
	assert.Equal(t, 6, daily["2026-03-14"])
	assert.Equal(t, 1, daily["2026-03-15"])
	assert.Equal(t, 1, s.TodayAnsweredCount())
}

func TestPerfectCountGuard(t *testing.T) {
	s, _ := newTestStore()

	assert.True(t, s.TryIncrementPerfectCount("sess-1"))
	assert.False(t, s.TryIncrementPerfectCount("sess-1"), "same session must not double count")
	assert.Equal(t, 1, s.PerfectCount())

	assert.True(t, s.TryIncrementPerfectCount("sess-2"))
	assert.Equal(t, 2, s.PerfectCount())
}

func TestClearWrongIDsLeavesOtherState(t *testing.T) {
	s, _ := newTestStore()
	s.AddWrong("a-1")
	s.AddAttemptBySubject("a")
	s.AddDailyProgress(2)

	s.ClearWrongIDs()

	assert.Empty(t, s.WrongIDs())
	assert.Empty(t, s.WrongCountMap())
	assert.Equal(t, map[string]int{"a": 1}, s.SubjectAttemptMap())
	assert.Equal(t, 2, s.TodayAnsweredCount())
}

func TestClearSubjectStatsLeavesWrongSet(t *testing.T) {
	s, _ := newTestStore()
	s.AddWrong("a-1")
	s.AddAttemptBySubject("a")
	s.AddWrongBySubject("a")

	s.ClearSubjectStats()

	assert.Empty(t, s.SubjectAttemptMap())
	assert.Empty(t, s.SubjectWrongMap())
	assert.Equal(t, []string{"a-1"}, s.WrongIDs())
}

func TestReadsDegradeOnMalformedStorage(t *testing.T) {
	s, kv := newTestStore()
	kv.Set(keyWrongIDs, "{not json")
	kv.Set(keyWrongCountMap, `"a string"`)
	kv.Set(keyDailyProgress, "null")
	kv.Set(keyPerfectCount, "many")

	assert.Empty(t, s.WrongIDs())
	assert.Empty(t, s.WrongCountMap())
	assert.Empty(t, s.DailyProgress())
	assert.Zero(t, s.PerfectCount())

	// The store keeps working after a corrupt read.
	s.AddWrong("a-1")
	assert.Equal(t, []string{"a-1"}, s.WrongIDs())
}

func TestReadsDefaultWhenEmpty(t *testing.T) {
	s, _ := newTestStore()
	assert.Empty(t, s.WrongIDs())
	assert.Empty(t, s.WrongCountMap())
	assert.Empty(t, s.SubjectAttemptMap())
	assert.Empty(t, s.DailyProgress())
	assert.Zero(t, s.TodayAnsweredCount())
	assert.Zero(t, s.PerfectCount())
}
