package dto

import (
	"time"

	"github.com/google/uuid"
)

type SnapshotQuery struct {
	Date string `query:"date"`
}

type DailyRankingResponse struct {
	Date        string    `json:"date"`
	Rank        int       `json:"rank"`
	StudentID   uuid.UUID `json:"student_id"`
	StudentName string    `json:"student_name"`
	Score       int       `json:"score"`
}

type SnapshotResult struct {
	Date       string `json:"date"`
	Classrooms int    `json:"classrooms"`
	Rows       int    `json:"rows"`
}

// DailyRankingRow is the scan target of the day listing (ranking joined with the student name).
type DailyRankingRow struct {
	StudentID    uuid.UUID `gorm:"column:student_id"`
	StudentName  string    `gorm:"column:student_name"`
	RankPosition int       `gorm:"column:rank_position"`
	Score        int       `gorm:"column:score"`
	RankingDate  time.Time `gorm:"column:ranking_date"`
}

func FromRows(rows []DailyRankingRow) []DailyRankingResponse {
	out := make([]DailyRankingResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, DailyRankingResponse{
			Date:        r.RankingDate.Format("2006-01-02"),
			Rank:        r.RankPosition,
			StudentID:   r.StudentID,
			StudentName: r.StudentName,
			Score:       r.Score,
		})
	}
	return out
}
