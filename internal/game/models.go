package game

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// PoolSize is the number of balls in the traditional Spanish 90-ball game.
// The caller only supports this variant.
const PoolSize = 90

// Speed selects the pause length between called numbers. Values other than
// the defined constants are preserved as stored but resolve to the normal
// pacing when looked up.
type Speed string

const (
	SpeedSlow   Speed = "slow"
	SpeedNormal Speed = "normal"
	SpeedFast   Speed = "fast"
	SpeedTurbo  Speed = "turbo"
)

// NumberList is an ordered list of called balls persisted as a JSON text
// column. Insertion order is draw order.
type NumberList []int

func (n NumberList) Value() (driver.Value, error) {
	if n == nil {
		n = NumberList{}
	}
	b, err := json.Marshal([]int(n))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (n *NumberList) Scan(value interface{}) error {
	if value == nil {
		*n = NumberList{}
		return nil
	}
	var b []byte
	switch v := value.(type) {
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return fmt.Errorf("unsupported column type %T for NumberList", value)
	}
	if len(b) == 0 {
		*n = NumberList{}
		return nil
	}
	return json.Unmarshal(b, (*[]int)(n))
}

// Contains reports whether ball has already been called.
func (n NumberList) Contains(ball int) bool {
	for _, v := range n {
		if v == ball {
			return true
		}
	}
	return false
}

// Session is the persisted state of one bingo game, keyed by the voice
// platform's session identifier. One request owns the record for the
// duration of a full batch; overlapping turns for the same key are
// serialized at the HTTP edge.
type Session struct {
	gorm.Model
	SessionKey    string     `json:"session_key" gorm:"uniqueIndex;size:64"`
	Active        bool       `json:"active"`
	Paused        bool       `json:"paused"`
	Speed         Speed      `json:"speed" gorm:"size:16"`
	CalledNumbers NumberList `json:"called_numbers" gorm:"type:text"`
	LastNumber    *int       `json:"last_number"`
	StartTime     time.Time  `json:"start_time"`
}

func (Session) TableName() string { return "game_sessions" }

// NewSession creates the initial record for a fresh game. Unrecognized
// speed values are stored as given; pacing lookups fall back to normal.
func NewSession(key string, speed Speed) *Session {
	if speed == "" {
		speed = SpeedNormal
	}
	return &Session{
		SessionKey:    key,
		Active:        true,
		Paused:        false,
		Speed:         speed,
		CalledNumbers: NumberList{},
		LastNumber:    nil,
		StartTime:     time.Now().UTC(),
	}
}

// RecordDraw appends a freshly drawn ball and updates LastNumber.
func (s *Session) RecordDraw(ball int) {
	s.CalledNumbers = append(s.CalledNumbers, ball)
	n := ball
	s.LastNumber = &n
}
