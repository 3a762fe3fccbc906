package models

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		sessions []StudySession
		stale    int
		want     int
	}{
		{name: "no sessions", sessions: nil, stale: 999, want: 0},
		{
			name: "sums all sessions",
			sessions: []StudySession{
				{Topic: "algorithms", DurationMin: 90},
				{Topic: "reading", DurationMin: 30},
			},
			stale: 0,
			want:  120,
		},
		{
			name:     "overwrites stale total",
			sessions: []StudySession{{Topic: "math", DurationMin: 45}},
			stale:    500,
			want:     45,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Day{Date: "2024-03-15", WakeTime: "06:00", Sessions: tt.sessions, TotalStudyMinutes: tt.stale}
			d.Normalize()
			if d.TotalStudyMinutes != tt.want {
				t.Errorf("TotalStudyMinutes = %d, want %d", d.TotalStudyMinutes, tt.want)
			}
		})
	}
}

func TestAddSession(t *testing.T) {
	d := Day{Date: "2024-03-15", WakeTime: "06:00"}
	d.AddSession(StudySession{Topic: "algorithms", DurationMin: 60})
	d.AddSession(StudySession{Topic: "reading", DurationMin: 25})

	if len(d.Sessions) != 2 {
		t.Fatalf("len(Sessions) = %d, want 2", len(d.Sessions))
	}
	if d.TotalStudyMinutes != 85 {
		t.Errorf("TotalStudyMinutes = %d, want 85", d.TotalStudyMinutes)
	}
	if d.Sessions[0].Topic != "algorithms" || d.Sessions[1].Topic != "reading" {
		t.Error("sessions not kept in insertion order")
	}
}
