package client

import "sort"

// FilterLeaves keeps the requests with the given status. An empty status
// keeps everything.
func FilterLeaves(list []Leave, status string) []Leave {
	out := make([]Leave, 0, len(list))
	for _, leave := range list {
		if status == "" || leave.Status == status {
			out = append(out, leave)
		}
	}
	return out
}

// SortAttendanceByDay returns a copy ordered newest day first.
func SortAttendanceByDay(records []Attendance) []Attendance {
	out := append([]Attendance(nil), records...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date > out[j].Date
	})
	return out
}
