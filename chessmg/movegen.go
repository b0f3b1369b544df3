package chessmg

// direction is a (file, rank) step.
type direction struct{ df, dr int }

var (
	rookDirs   = []direction{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	bishopDirs = []direction{{1, 1}, {-1, 1}, {1, -1}, {-1, -1}}
	royalDirs  = []direction{{1, 0}, {-1, 0}, {0, 1}, {0, -1}, {1, 1}, {-1, 1}, {1, -1}, {-1, -1}}
	knightDirs = []direction{{2, 1}, {2, -1}, {-2, 1}, {-2, -1}, {1, 2}, {1, -2}, {-1, 2}, {-1, -2}}
)

// raySearch describes how a non-pawn piece walks the board: which
// directions it takes, how far it may go and which landings it may emit.
type raySearch struct {
	dirs     []direction
	depth    int
	quiet    bool
	captures bool
}

var raySearches = map[PieceType]raySearch{
	Rook:   {dirs: rookDirs, depth: 7, quiet: true, captures: true},
	Bishop: {dirs: bishopDirs, depth: 7, quiet: true, captures: true},
	Queen:  {dirs: royalDirs, depth: 7, quiet: true, captures: true},
	Knight: {dirs: knightDirs, depth: 1, quiet: true, captures: true},
	King:   {dirs: royalDirs, depth: 1, quiet: true, captures: true},
}

// castleSide lists the files involved in one castle. Ranks come from the
// castling color's back rank.
type castleSide struct {
	right    CastlingRights
	empty    []int // files strictly between king and rook
	safe     []int // files the king starts on, crosses and lands on
	kingTo   int
	rookFrom int
	rookTo   int
}

const kingHomeFile = 4

var castleSides = [2][2]castleSide{
	White: {
		{right: CastlingWhiteK, empty: []int{5, 6}, safe: []int{4, 5, 6}, kingTo: 6, rookFrom: 7, rookTo: 5},
		{right: CastlingWhiteQ, empty: []int{1, 2, 3}, safe: []int{4, 3, 2}, kingTo: 2, rookFrom: 0, rookTo: 3},
	},
	Black: {
		{right: CastlingBlackK, empty: []int{5, 6}, safe: []int{4, 5, 6}, kingTo: 6, rookFrom: 7, rookTo: 5},
		{right: CastlingBlackQ, empty: []int{1, 2, 3}, safe: []int{4, 3, 2}, kingTo: 2, rookFrom: 0, rookTo: 3},
	},
}

// backRank is the internal rank a color's pieces start on.
func backRank(c Color) int {
	if c == White {
		return 7
	}
	return 0
}

// pawnDir is the rank step toward the opposite back rank.
func pawnDir(c Color) int {
	if c == White {
		return -1
	}
	return 1
}

// PseudoLegalMoves returns every move the piece on sq could make ignoring
// whether its own king is left capturable. It returns nil for an empty tile.
// Castles are included.
func (p *Position) PseudoLegalMoves(sq Square) []Move {
	return p.generate(sq, false, nil)
}

// generate appends the pseudo-legal moves of the piece on sq to dst.
// skipCastle cuts the recursion between castling and the attack oracle.
func (p *Position) generate(sq Square, skipCastle bool, dst []Move) []Move {
	pc, ok := p.Tile(sq)
	if !ok {
		return dst
	}
	if pc.Type == Pawn {
		dst = p.pawnMoves(sq, pc.Color, dst)
	} else {
		dst = p.rayMoves(sq, pc.Color, raySearches[pc.Type], dst)
	}
	if pc.Type == King && !skipCastle {
		dst = p.castleMoves(sq, pc.Color, dst)
	}
	return dst
}

// rayMoves walks each direction up to the search depth and stops at the
// first occupied square, which is a capture only if it holds an enemy.
func (p *Position) rayMoves(from Square, color Color, s raySearch, dst []Move) []Move {
	for _, d := range s.dirs {
		for i := 1; i <= s.depth; i++ {
			to := from.Offset(d.df*i, d.dr*i)
			if !to.OnBoard() {
				break
			}
			occ, ok := p.Tile(to)
			if !ok {
				if s.quiet {
					dst = append(dst, Quiet{From: from, To: to})
				}
				continue
			}
			if occ.Color != color && s.captures {
				dst = append(dst, Capture{From: from, To: to, Captured: to})
			}
			break
		}
	}
	return dst
}

func (p *Position) pawnMoves(from Square, color Color, dst []Move) []Move {
	dir := pawnDir(color)
	finalRank := backRank(color.Opposite())
	startRank := backRank(color) + dir

	// Single and double push
	one := from.Offset(0, dir)
	if one.OnBoard() {
		if _, occupied := p.Tile(one); !occupied {
			if one.Rank == finalRank {
				for _, pt := range promotionTypes {
					dst = append(dst, QuietPromotion{From: from, To: one, Promotion: pt})
				}
			} else {
				dst = append(dst, Quiet{From: from, To: one})
			}
			two := from.Offset(0, 2*dir)
			if from.Rank == startRank && two.OnBoard() {
				if _, occupied := p.Tile(two); !occupied {
					dst = append(dst, Quiet{From: from, To: two})
				}
			}
		}
	}

	for _, df := range [2]int{-1, 1} {
		to := from.Offset(df, dir)
		if !to.OnBoard() {
			continue
		}
		if occ, ok := p.Tile(to); ok && occ.Color != color {
			if to.Rank == finalRank {
				for _, pt := range promotionTypes {
					dst = append(dst, CapturePromotion{From: from, To: to, Captured: to, Promotion: pt})
				}
			} else {
				dst = append(dst, Capture{From: from, To: to, Captured: to})
			}
		}

		// En passant: the stored pawn sits beside us on our own rank.
		beside := from.Offset(df, 0)
		if beside == p.enPassant {
			if victim, ok := p.Tile(beside); ok && victim.Type == Pawn && victim.Color != color {
				dst = append(dst, Capture{From: from, To: to, Captured: beside})
			}
		}
	}
	return dst
}

func (p *Position) castleMoves(from Square, color Color, dst []Move) []Move {
	rank := backRank(color)
	if from != Sq(kingHomeFile, rank) {
		return dst
	}
	enemy := color.Opposite()
	for _, side := range castleSides[color] {
		if !p.castling.Has(side.right) {
			continue
		}
		rookFrom := Sq(side.rookFrom, rank)
		if rook, ok := p.Tile(rookFrom); !ok || rook.Type != Rook || rook.Color != color {
			continue
		}
		if !p.filesEmpty(rank, side.empty) {
			continue
		}
		if p.filesAttacked(rank, side.safe, enemy) {
			continue
		}
		dst = append(dst, Castle{
			From:     from,
			To:       Sq(side.kingTo, rank),
			RookFrom: rookFrom,
			RookTo:   Sq(side.rookTo, rank),
		})
	}
	return dst
}

func (p *Position) filesEmpty(rank int, files []int) bool {
	for _, f := range files {
		if _, ok := p.Tile(Sq(f, rank)); ok {
			return false
		}
	}
	return true
}

func (p *Position) filesAttacked(rank int, files []int, by Color) bool {
	for _, f := range files {
		if p.Attacks(Sq(f, rank), by) {
			return true
		}
	}
	return false
}
