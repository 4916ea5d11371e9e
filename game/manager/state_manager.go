package manager

import "time"

const maxHistory = 50 // lives kept in the score history

// LifeRecord summarises one life of the snake, from reset to death
type LifeRecord struct {
	Score     int
	Length    int
	StartTime time.Time
	EndTime   time.Time
}

func (r LifeRecord) Duration() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}

// StateManager keeps score for the current session. Nothing is persisted;
// the high score lives as long as the process.
type StateManager struct {
	score        int
	highScore    int
	lifeStart    time.Time
	scoreHistory []LifeRecord
}

func NewStateManager(now time.Time) *StateManager {
	return &StateManager{
		lifeStart:    now,
		scoreHistory: make([]LifeRecord, 0),
	}
}

// AddPoint records an eat and returns the new score
func (sm *StateManager) AddPoint() int {
	sm.score++
	if sm.score > sm.highScore {
		sm.highScore = sm.score
	}
	return sm.score
}

// EndLife closes the current life, appends it to the history and starts a
// new one at zero.
func (sm *StateManager) EndLife(now time.Time, length int) LifeRecord {
	record := LifeRecord{
		Score:     sm.score,
		Length:    length,
		StartTime: sm.lifeStart,
		EndTime:   now,
	}
	if len(sm.scoreHistory) >= maxHistory {
		sm.scoreHistory = sm.scoreHistory[1:]
	}
	sm.scoreHistory = append(sm.scoreHistory, record)
	sm.score = 0
	sm.lifeStart = now
	return record
}

func (sm *StateManager) GetScore() int {
	return sm.score
}

func (sm *StateManager) GetHighScore() int {
	return sm.highScore
}

func (sm *StateManager) GetScoreHistory() []LifeRecord {
	history := make([]LifeRecord, len(sm.scoreHistory))
	copy(history, sm.scoreHistory)
	return history
}

// GetAverageScore averages the scores in the history
func (sm *StateManager) GetAverageScore() float64 {
	if len(sm.scoreHistory) == 0 {
		return 0
	}
	sum := 0
	for _, r := range sm.scoreHistory {
		sum += r.Score
	}
	return float64(sum) / float64(len(sm.scoreHistory))
}
