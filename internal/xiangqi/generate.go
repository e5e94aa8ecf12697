package xiangqi

// IsLegalMove 完整合法性判定：
// 几何规则通过后，在拷贝的棋盘上试走一步，再排除“将帅对脸”和“走完自己被将军”。
func (b *Board) IsLegalMove(from, to Square) bool {
	if !b.CanReach(from, to) {
		return false
	}
	side := b.Squares[from].Side()

	np := *b
	np.MovePiece(from, to)

	// ① 不能王对脸（绝对非法，任何时候都拦截）
	if np.GeneralsFacing() {
		return false
	}
	// ② 不能送将
	return !np.IsInCheck(side)
}

// LegalMovesFrom 返回 from 上这个子的所有合法走法；空位返回 nil。
func (b *Board) LegalMovesFrom(from Square) []Move {
	if b.Get(from) == 0 {
		return nil
	}
	var moves []Move
	for to := Square(0); to < NumSquares; to++ {
		if b.IsLegalMove(from, to) {
			moves = append(moves, Move{From: from, To: to})
		}
	}
	return moves
}

// LegalMoves 枚举 side 一方每个棋子 × 90 个落点。
func (b *Board) LegalMoves(side Side) []Move {
	var moves []Move
	for _, from := range b.Pieces(side) {
		moves = append(moves, b.LegalMovesFrom(from)...)
	}
	return moves
}

// HasLegalMove 同 LegalMoves，但找到一步就返回。
func (b *Board) HasLegalMove(side Side) bool {
	for _, from := range b.Pieces(side) {
		for to := Square(0); to < NumSquares; to++ {
			if b.IsLegalMove(from, to) {
				return true
			}
		}
	}
	return false
}

// Perft 统计 depth 层内的叶子节点数，用来核对走法生成。
func (b *Board) Perft(side Side, depth int) int64 {
	if depth <= 0 {
		return 1
	}
	moves := b.LegalMoves(side)
	if depth == 1 {
		return int64(len(moves))
	}
	var nodes int64
	for _, mv := range moves {
		np := *b
		np.MovePiece(mv.From, mv.To)
		nodes += np.Perft(side.Opposite(), depth-1)
	}
	return nodes
}
