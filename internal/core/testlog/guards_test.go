package testlog

import "testing"

func TestCanSaveTestLog(t *testing.T) {
	if r := CanSaveTestLog(SaveTestLogContext{StoryID: "s1", Notes: "login passes on staging"}); !r.Allowed {
		t.Errorf("expected allowed, got %q", r.Reason)
	}
	if r := CanSaveTestLog(SaveTestLogContext{StoryID: "s1", Notes: "\n"}); r.Allowed || r.Reason != "notes are required" {
		t.Errorf("blank notes: got %+v", r)
	}
	if r := CanSaveTestLog(SaveTestLogContext{Notes: "x"}); r.Allowed || r.Reason != "story is required" {
		t.Errorf("missing story: got %+v", r)
	}
	if r := CanSaveTestLog(SaveTestLogContext{Existing: true, Notes: "retested"}); !r.Allowed {
		t.Errorf("update without story: got %q", r.Reason)
	}
}
