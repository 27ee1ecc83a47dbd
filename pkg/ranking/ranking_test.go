package ranking

import "testing"

type row struct {
	userID string
	amount float64
}

func amount(r row) float64 { return r.amount }

func TestRankDenseWithTies(t *testing.T) {
	entries := Rank([]row{
		{userID: "A", amount: 100},
		{userID: "B", amount: 100},
		{userID: "C", amount: 50},
	}, amount)

	if len(entries) != 3 {
		t.Fatalf("expected three entries, got %d", len(entries))
	}
	if entries[0].Rank != 1 || !entries[0].Tied || entries[0].Data.userID != "A" {
		t.Fatalf("expected A at rank 1 tied, got %+v", entries[0])
	}
	if entries[1].Rank != 1 || !entries[1].Tied || entries[1].Data.userID != "B" {
		t.Fatalf("expected B at rank 1 tied, got %+v", entries[1])
	}
	if entries[2].Rank != 3 || entries[2].Tied || entries[2].Data.userID != "C" {
		t.Fatalf("expected C at rank 3 untied (rank 2 skipped), got %+v", entries[2])
	}
}

func TestRankStableWithinTieGroup(t *testing.T) {
	entries := Rank([]row{
		{userID: "A", amount: 10},
		{userID: "B", amount: 10},
	}, amount)

	if entries[0].Data.userID != "A" || entries[1].Data.userID != "B" {
		t.Fatalf("tie group must keep input order, got %+v", entries)
	}
}

func TestRankThreeWayTieFollowedByRankFour(t *testing.T) {
	entries := Rank([]row{
		{userID: "A", amount: 7},
		{userID: "B", amount: 7},
		{userID: "C", amount: 7},
		{userID: "D", amount: 1},
	}, amount)

	for i := 0; i < 3; i++ {
		if entries[i].Rank != 1 || !entries[i].Tied {
			t.Fatalf("expected entry %d at rank 1 tied, got %+v", i, entries[i])
		}
	}
	if entries[3].Rank != 4 || entries[3].Tied {
		t.Fatalf("expected D at rank 4 untied, got %+v", entries[3])
	}
}

func TestRankNoEpsilonTolerance(t *testing.T) {
	entries := Rank([]row{
		{userID: "A", amount: 10.000000001},
		{userID: "B", amount: 10},
	}, amount)

	if entries[0].Tied || entries[1].Tied {
		t.Fatalf("nearly equal scores must not tie, got %+v", entries)
	}
	if entries[0].Data.userID != "A" || entries[0].Rank != 1 || entries[1].Rank != 2 {
		t.Fatalf("expected A first then B, got %+v", entries)
	}
}

func TestRankEmptyInput(t *testing.T) {
	entries := Rank(nil, amount)
	if len(entries) != 0 {
		t.Fatalf("expected empty output for empty input, got %+v", entries)
	}
}
