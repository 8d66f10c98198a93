package models

import "testing"

func TestLevelForPoints(t *testing.T) {
	cases := []struct {
		points int
		level  int
	}{
		{0, 1},
		{49, 1},
		{50, 2},
		{149, 2},
		{150, 3},
		{299, 3},
		{300, 4},
		{499, 4},
		{500, 5},
		{999, 5},
		{1000, 6},
		{1399, 7},
		{2000, 11},
	}
	for _, c := range cases {
		if got := LevelForPoints(c.points); got != c.level {
			t.Errorf("LevelForPoints(%d) = %d, want %d", c.points, got, c.level)
		}
	}
}

func TestLevelForPointsMonotonic(t *testing.T) {
	prev := 0
	for points := 0; points <= 5000; points++ {
		level := LevelForPoints(points)
		if level < prev {
			t.Fatalf("level dropped from %d to %d at %d points", prev, level, points)
		}
		prev = level
	}
}

func TestDefaultNotificationSettings(t *testing.T) {
	s := DefaultNotificationSettings()
	if !s.ReviewLikes || !s.ReviewReplies || !s.NewFollowers {
		t.Errorf("expected likes, replies and followers enabled by default, got %+v", s)
	}
	if s.Promotions {
		t.Error("promotions should be opt-in")
	}
}
