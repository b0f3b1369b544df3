package chessmg_test

import (
	"errors"
	"testing"

	mg "chess-rules/chessmg"
)

func TestMoveString(t *testing.T) {
	e2, e4 := mg.MustSquare("e2"), mg.MustSquare("e4")
	tests := []struct {
		m    mg.Move
		want string
	}{
		{mg.Quiet{From: e2, To: e4}, "e2e4"},
		{mg.Capture{From: mg.MustSquare("e5"), To: mg.MustSquare("d6"), Captured: mg.MustSquare("d5")}, "e5d6"},
		{mg.Castle{From: mg.MustSquare("e1"), To: mg.MustSquare("g1"), RookFrom: mg.MustSquare("h1"), RookTo: mg.MustSquare("f1")}, "e1g1"},
		{mg.QuietPromotion{From: mg.MustSquare("e7"), To: mg.MustSquare("e8"), Promotion: mg.Knight}, "e7e8n"},
		{mg.CapturePromotion{From: mg.MustSquare("b2"), To: mg.MustSquare("a1"), Captured: mg.MustSquare("a1"), Promotion: mg.Queen}, "b2a1q"},
	}
	for _, tc := range tests {
		if got := tc.m.String(); got != tc.want {
			t.Errorf("%T: got %q want %q", tc.m, got, tc.want)
		}
	}
}

func TestMovePredicates(t *testing.T) {
	quiet := mg.Quiet{From: mg.MustSquare("e2"), To: mg.MustSquare("e4")}
	ep := mg.Capture{From: mg.MustSquare("e5"), To: mg.MustSquare("d6"), Captured: mg.MustSquare("d5")}
	castle := mg.Castle{From: mg.MustSquare("e8"), To: mg.MustSquare("c8"), RookFrom: mg.MustSquare("a8"), RookTo: mg.MustSquare("d8")}
	promo := mg.CapturePromotion{From: mg.MustSquare("g7"), To: mg.MustSquare("h8"), Captured: mg.MustSquare("h8"), Promotion: mg.Rook}

	if mg.IsCapture(quiet) || mg.IsCastle(quiet) || mg.IsPromotion(quiet) {
		t.Fatal("quiet move misclassified")
	}
	if !mg.IsCapture(ep) || mg.IsPromotion(ep) {
		t.Fatal("en passant misclassified")
	}
	if sq, ok := mg.CaptureSquare(ep); !ok || sq != mg.MustSquare("d5") {
		t.Fatalf("en passant capture square: got %v", sq)
	}
	if !mg.IsCastle(castle) || mg.IsCapture(castle) {
		t.Fatal("castle misclassified")
	}
	if castle.Origin() != mg.MustSquare("e8") || castle.Target() != mg.MustSquare("c8") {
		t.Fatal("castle squares describe the king")
	}
	if !mg.IsCapture(promo) || !mg.IsPromotion(promo) {
		t.Fatal("capture promotion misclassified")
	}
	if pt, ok := mg.PromotionType(promo); !ok || pt != mg.Rook {
		t.Fatalf("promotion type: got %v", pt)
	}
	if _, ok := mg.PromotionType(quiet); ok {
		t.Fatal("quiet move has no promotion")
	}
}

func TestMovesAreComparable(t *testing.T) {
	a := mg.Quiet{From: mg.MustSquare("e2"), To: mg.MustSquare("e4")}
	var b mg.Move = mg.Quiet{From: mg.MustSquare("e2"), To: mg.MustSquare("e4")}
	seen := map[mg.Move]int{a: 1}
	if seen[b] != 1 {
		t.Fatal("equal moves should collide as map keys")
	}
}

func TestParseMoveText(t *testing.T) {
	mt, err := mg.ParseMoveText("E7E8Q")
	if err != nil {
		t.Fatal(err)
	}
	want := mg.MoveText{From: mg.MustSquare("e7"), To: mg.MustSquare("e8"), Promotion: mg.Queen}
	if mt != want {
		t.Fatalf("got %+v want %+v", mt, want)
	}
	for _, bad := range []string{"", "e2", "e2e4e", "e2e9", "i2e4", "e7e8k", "e2e4qq"} {
		if _, err := mg.ParseMoveText(bad); !errors.Is(err, mg.ErrInvalidMoveText) {
			t.Errorf("%q: got %v want ErrInvalidMoveText", bad, err)
		}
	}
}

func TestParseSquare(t *testing.T) {
	for _, s := range []string{"a1", "h8", "e4", "d5"} {
		sq, err := mg.ParseSquare(s)
		if err != nil {
			t.Fatal(err)
		}
		if sq.String() != s {
			t.Fatalf("round trip: got %q want %q", sq.String(), s)
		}
	}
	for _, s := range []string{"", "a", "a0", "a9", "z1", "a10"} {
		if _, err := mg.ParseSquare(s); !errors.Is(err, mg.ErrInvalidSquare) {
			t.Errorf("%q: got %v want ErrInvalidSquare", s, err)
		}
	}
	if mg.NoSquare.String() != "-" {
		t.Fatalf("NoSquare: got %q want -", mg.NoSquare.String())
	}
}
