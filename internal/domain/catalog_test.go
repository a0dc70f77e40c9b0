package domain

import (
	"testing"
	"time"
)

func at(weekday time.Weekday, hour, min int) time.Time {
	// 2025-06-01 is a Sunday.
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	return base.AddDate(0, 0, int(weekday)).Add(time.Duration(hour)*time.Hour + time.Duration(min)*time.Minute)
}

func TestOpenAtRegularInterval(t *testing.T) {
	hours := []OperatingHours{
		{Weekday: int(time.Tuesday), OpenTime: "18:00", CloseTime: "23:00"},
	}
	if !OpenAt(hours, at(time.Tuesday, 19, 30)) {
		t.Fatal("expected open at tuesday 19:30")
	}
	if OpenAt(hours, at(time.Tuesday, 23, 0)) {
		t.Fatal("close time is exclusive")
	}
	if OpenAt(hours, at(time.Wednesday, 19, 30)) {
		t.Fatal("expected closed on wednesday")
	}
}

func TestOpenAtCrossingMidnight(t *testing.T) {
	hours := []OperatingHours{
		{Weekday: int(time.Friday), OpenTime: "19:00", CloseTime: "01:00"},
	}
	if !OpenAt(hours, at(time.Friday, 23, 45)) {
		t.Fatal("expected open friday 23:45")
	}
	if !OpenAt(hours, at(time.Saturday, 0, 30)) {
		t.Fatal("expected open past midnight into saturday")
	}
	if OpenAt(hours, at(time.Saturday, 1, 30)) {
		t.Fatal("expected closed saturday 01:30")
	}
}

func TestOpenAtClosedDay(t *testing.T) {
	hours := []OperatingHours{
		{Weekday: int(time.Monday), OpenTime: "18:00", CloseTime: "23:00", Closed: true},
	}
	if OpenAt(hours, at(time.Monday, 19, 0)) {
		t.Fatal("closed flag must win")
	}
}

func TestCartLineSameSelection(t *testing.T) {
	a := CartLine{ProductID: "p1", SizeName: "Grande", SecondFlavorID: "p2", Observation: "sem cebola"}
	b := a
	if !a.SameSelection(b) {
		t.Fatal("identical selections must match")
	}
	b.Observation = ""
	if a.SameSelection(b) {
		t.Fatal("different observation must not merge")
	}
	c := a
	c.SecondFlavorID = ""
	if a.SameSelection(c) {
		t.Fatal("different second flavor must not merge")
	}
}
