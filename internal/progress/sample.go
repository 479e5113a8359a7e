package progress

import "time"

// SampleData returns a small demo history spread over the week ending today.
func SampleData(today time.Time) Data {
	day := func(offset int) string {
		y, m, d := today.Date()
		return time.Date(y, m, d-offset, 0, 0, 0, 0, today.Location()).Format(DateLayout)
	}
	return Data{
		StudyHistory: []StudySession{
			{Date: day(6), Minutes: 25, Rating: RatingDeep},
			{Date: day(5), Minutes: 50, Rating: RatingDeep},
			{Date: day(4), Minutes: 25, Rating: RatingDistracted},
			{Date: day(2), Minutes: 75, Rating: RatingDeep},
			{Date: day(1), Minutes: 25, Rating: RatingDistracted},
			{Date: day(0), Minutes: 50, Rating: RatingDeep},
		},
		QuizHistory: []QuizResult{
			{Date: day(5), Subject: "Mathematics", Score: 7, Total: 10},
			{Date: day(4), Subject: "Physical Sciences", Score: 5, Total: 10},
			{Date: day(2), Subject: "Mathematics", Score: 9, Total: 10},
			{Date: day(1), Subject: "Life Sciences", Score: 4, Total: 5},
			{Date: day(0), Subject: "Physical Sciences", Score: 8, Total: 10},
		},
	}
}
