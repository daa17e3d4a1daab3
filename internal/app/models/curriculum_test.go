package models

import "testing"

func TestDeriveLessonType(t *testing.T) {
	cases := []struct {
		name      string
		resources []*Resource
		want      LessonType
	}{
		{"no resources", nil, LessonQuiz},
		{"only link", []*Resource{{Type: ResourceLink}}, LessonQuiz},
		{"note", []*Resource{{Type: ResourceNote}}, LessonDocument},
		{"syllabus", []*Resource{{Type: ResourceSyllabus}}, LessonDocument},
		{"video wins over note", []*Resource{{Type: ResourceNote}, {Type: ResourceVideo}}, LessonVideo},
		{"video only", []*Resource{{Type: ResourceVideo}}, LessonVideo},
		{"link and syllabus", []*Resource{{Type: ResourceLink}, {Type: ResourceSyllabus}}, LessonDocument},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DeriveLessonType(tc.resources); got != tc.want {
				t.Fatalf("got %s, want %s", got, tc.want)
			}
		})
	}
}
