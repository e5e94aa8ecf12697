package xiangqi

// IsAttacked 判断 sq 这个格子是否被 bySide 这一方攻击。
// 采用走法模拟：只要对方任何一个棋子能按几何规则“走到”这个位置，就说明该位置被攻击。
func (b *Board) IsAttacked(sq Square, bySide Side) bool {
	if !sq.Valid() {
		return false
	}
	for s := Square(0); s < NumSquares; s++ {
		pc := b.Squares[s]
		if pc == 0 || pc.Side() != bySide {
			continue
		}
		// 士、相不能离开本方半场，打不到对方半场的格子
		if pt := pc.Type(); (pt == PieceAdvisor || pt == PieceElephant) && !sq.OwnHalf(bySide) {
			continue
		}
		if b.CanReach(s, sq) {
			return true
		}
	}
	return false
}

// IsInCheck 判断 side 这一方的将是否被将军。
// 将已被吃掉时返回 false，调用方要自己把“没有将”当作输棋处理。
func (b *Board) IsInCheck(side Side) bool {
	gen := b.FindGeneral(side)
	if gen == NoSquare {
		return false
	}
	return b.IsAttacked(gen, side.Opposite())
}
