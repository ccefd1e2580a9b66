package dto

import (
	"github.com/google/uuid"

	submissionDTO "homework_backend/internals/features/homeworks/submissions/dto"
)

type TypeProgress struct {
	Type        string `json:"type"`
	Label       string `json:"label"`
	PointsEach  int    `json:"points_each"`
	Count       int    `json:"count"`
	TotalPoints int    `json:"total_points"`
	Goal        int    `json:"goal"`
	Progress    int    `json:"progress"` // percent, 0..100
}

type PointsSummary struct {
	TotalPoints int            `json:"total_points"`
	TotalCount  int            `json:"total_count"`
	Types       []TypeProgress `json:"types"`
}

type RankingEntry struct {
	Rank            int       `json:"rank"`
	StudentID       uuid.UUID `json:"student_id"`
	StudentName     string    `json:"student_name"`
	TotalPoints     int       `json:"total_points"`
	SubmissionCount int       `json:"submission_count"`
}

// RankingBoard is the student view; MyRank is the caller's position.
type RankingBoard struct {
	Entries []RankingEntry `json:"entries"`
	MyRank  *RankingEntry  `json:"my_rank,omitempty"`
}

type RankingManagementEntry struct {
	RankingEntry
	AveragePoints int                                        `json:"average_points"`
	Submissions   []submissionDTO.HomeworkSubmissionResponse `json:"submissions"`
}
