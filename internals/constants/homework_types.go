package constants

// Homework types accepted by the submission form.
const (
	HomeworkDiary      = "diary"
	HomeworkBookReport = "book-report"
	HomeworkFreeTask   = "free-task"
)

type HomeworkTypeInfo struct {
	Type        string `json:"type"`
	Label       string `json:"label"`
	Points      int    `json:"points"`
	MinRequired int    `json:"min_required"`
}

// Order matters: summaries and stamp lists follow it.
var HomeworkTypes = []HomeworkTypeInfo{
	{Type: HomeworkDiary, Label: "Diary", Points: 10, MinRequired: 3},
	{Type: HomeworkBookReport, Label: "Book report", Points: 15, MinRequired: 3},
	{Type: HomeworkFreeTask, Label: "Free task", Points: 5, MinRequired: 0},
}

// Expected submissions per student used by the dashboard participation rate.
const ExpectedSubmissionsPerStudent = 3

func LookupHomeworkType(t string) (HomeworkTypeInfo, bool) {
	for _, ht := range HomeworkTypes {
		if ht.Type == t {
			return ht, true
		}
	}
	return HomeworkTypeInfo{}, false
}

func HomeworkTypeNames() []string {
	out := make([]string, 0, len(HomeworkTypes))
	for _, ht := range HomeworkTypes {
		out = append(out, ht.Type)
	}
	return out
}
