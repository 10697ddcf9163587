package history

import "testing"

func TestSetGetDelete(t *testing.T) {
	tbl := NewTable()
	if !tbl.Set('a', "/home", "file.txt", 100) {
		t.Fatal("expected valid mark to be set")
	}
	b, ok := tbl.Get('a')
	if !ok || b.Dir != "/home" {
		t.Fatalf("got %+v ok=%v", b, ok)
	}
	if !tbl.Delete('a') {
		t.Fatal("expected delete to succeed")
	}
	if _, ok := tbl.Get('a'); ok {
		t.Fatal("expected mark to be gone")
	}
}

func TestSpecialMarksNotDeletable(t *testing.T) {
	tbl := NewTable()
	tbl.Set(MarkVisualStart, "/a", "f", 1)
	if tbl.Delete(MarkVisualStart) {
		t.Fatal("special marks must not be user-deletable")
	}
}

func TestInvalidMarkNameRejected(t *testing.T) {
	tbl := NewTable()
	if tbl.Set('!', "/a", "f", 1) {
		t.Fatal("expected invalid mark name to be rejected")
	}
}

func TestActiveIndicesOrdering(t *testing.T) {
	tbl := NewTable()
	tbl.Set('b', "/b", "f", 200)
	tbl.Set('a', "/a", "f", 100)
	tbl.Set('1', "/1", "f", 1)
	tbl.Set(MarkPrevious, "/p", "f", 1)

	order := tbl.ActiveIndices(nil)
	if len(order) != 4 {
		t.Fatalf("want 4 got %d", len(order))
	}
	if order[0] != 'a' || order[1] != 'b' {
		t.Fatalf("want letters first ascending by time, got %v", string(order))
	}
	if order[2] != '1' {
		t.Fatalf("want digit third, got %v", string(order))
	}
	if order[3] != MarkPrevious {
		t.Fatalf("want special last, got %v", string(order))
	}
}

func TestValidBookmarkChecksDirExists(t *testing.T) {
	tbl := NewTable()
	tbl.Set('a', "/gone", "f", 1)
	if tbl.IsValid('a', func(string) bool { return false }) {
		t.Fatal("expected invalid when dir doesn't exist")
	}
	if !tbl.IsValid('a', func(string) bool { return true }) {
		t.Fatal("expected valid when dir exists")
	}
}
