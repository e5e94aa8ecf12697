package xiangqi

// CanReach 几何走法判定：不看轮次，也不看走完后是否送将。
// 将军检测和合法性检测都以它为基础。
func (b *Board) CanReach(from, to Square) bool {
	if !from.Valid() || !to.Valid() || from == to {
		return false
	}
	pc := b.Squares[from]
	if pc == 0 {
		return false
	}
	side := pc.Side()
	if dst := b.Squares[to]; dst != 0 && dst.Side() == side {
		return false
	}

	switch pc.Type() {
	case PieceGeneral:
		return b.canGeneralMove(from, to, side)
	case PieceAdvisor:
		return b.canAdvisorMove(from, to, side)
	case PieceElephant:
		return b.canElephantMove(from, to, side)
	case PieceHorse:
		return b.canHorseMove(from, to)
	case PieceChariot:
		return b.canChariotMove(from, to)
	case PieceCannon:
		return b.canCannonMove(from, to)
	case PieceSoldier:
		return b.canSoldierMove(from, to, side)
	}
	return false
}

// 将：九宫内上下左右一格
func (b *Board) canGeneralMove(from, to Square, side Side) bool {
	if !to.InPalace(side) {
		return false
	}
	return fileDistance(from, to)+rankDistance(from, to) == 1
}

// 士：九宫内斜走一格
func (b *Board) canAdvisorMove(from, to Square, side Side) bool {
	if !to.InPalace(side) {
		return false
	}
	return fileDistance(from, to) == 1 && rankDistance(from, to) == 1
}

// 相：田字，不过河，塞象眼
func (b *Board) canElephantMove(from, to Square, side Side) bool {
	if !to.OwnHalf(side) {
		return false
	}
	if fileDistance(from, to) != 2 || rankDistance(from, to) != 2 {
		return false
	}
	eye := indexOf((from.File()+to.File())/2, (from.Rank()+to.Rank())/2)
	return b.Squares[eye] == 0
}

// 马：日字，憋马腿
func (b *Board) canHorseMove(from, to Square) bool {
	df := to.File() - from.File()
	dr := to.Rank() - from.Rank()
	adf, adr := absInt(df), absInt(dr)
	if !(adf == 2 && adr == 1) && !(adf == 1 && adr == 2) {
		return false
	}
	legFile, legRank := from.File(), from.Rank()
	if adf == 2 {
		legFile += df / 2
	} else {
		legRank += dr / 2
	}
	if onBoard(legFile, legRank) && b.Squares[indexOf(legFile, legRank)] != 0 {
		return false
	}
	return true
}

// 车：横竖直走，中间不能有子
func (b *Board) canChariotMove(from, to Square) bool {
	if from.File() != to.File() && from.Rank() != to.Rank() {
		return false
	}
	return b.CountBetween(from, to) == 0
}

// 炮：走子同车；吃子必须隔一个炮架
func (b *Board) canCannonMove(from, to Square) bool {
	if from.File() != to.File() && from.Rank() != to.Rank() {
		return false
	}
	between := b.CountBetween(from, to)
	if b.Squares[to] == 0 {
		return between == 0
	}
	return between == 1
}

// 兵：周围一格（含斜前方）；过河前只能向前，过河后可左右，永不后退
func (b *Board) canSoldierMove(from, to Square, side Side) bool {
	if chebyshev(from, to) != 1 {
		return false
	}
	forward := to.Rank()-from.Rank() == forwardDir(side)
	sideways := from.Rank() == to.Rank()
	if !from.OwnHalf(side) {
		return forward || sideways
	}
	return forward && !sideways
}
