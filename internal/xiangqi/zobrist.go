package xiangqi

import "sync"

const zobristPieceTypes = 8 // PieceType 范围 [1..7]，0 保留空位不用

var (
	zobristOnce sync.Once

	zobristPieces [2][zobristPieceTypes][NumSquares]uint64
	zobristSide   uint64
)

func initZobrist() {
	zobristOnce.Do(func() {
		seed := uint64(0x9E3779B97F4A7C15)
		next := func() uint64 {
			seed += 0x9E3779B97F4A7C15
			z := seed
			z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
			z = (z ^ (z >> 27)) * 0x94D049BB133111EB
			return z ^ (z >> 31)
		}

		for side := 0; side < 2; side++ {
			for pt := 1; pt < zobristPieceTypes; pt++ {
				for sq := 0; sq < NumSquares; sq++ {
					zobristPieces[side][pt][sq] = next()
				}
			}
		}
		zobristSide = next()
	})
}

func pieceHashKey(pc Piece, sq Square) uint64 {
	if pc == 0 || !sq.Valid() {
		return 0
	}
	initZobrist()

	var sideIdx int
	switch pc.Side() {
	case Red:
		sideIdx = 0
	case Black:
		sideIdx = 1
	default:
		return 0
	}

	pt := int(pc.Type())
	if pt <= 0 || pt >= zobristPieceTypes {
		return 0
	}
	return zobristPieces[sideIdx][pt][sq]
}

// Hash 全量计算局面的 Zobrist 哈希；stm 为走子方。
func (b *Board) Hash(stm Side) uint64 {
	initZobrist()

	var h uint64
	for sq := Square(0); sq < NumSquares; sq++ {
		h ^= pieceHashKey(b.Squares[sq], sq)
	}
	if stm == Black {
		h ^= zobristSide
	}
	return h
}

// UpdateHash 增量更新：移除 from 的子、移除被吃子（若有）、加入 to 的子、切换走子方。
// 走子和悔棋都用它，异或两次即还原。
func UpdateHash(h uint64, moved Piece, m Move, captured Piece) uint64 {
	initZobrist()
	h ^= pieceHashKey(moved, m.From)
	h ^= pieceHashKey(captured, m.To)
	h ^= pieceHashKey(moved, m.To)
	return h ^ zobristSide
}
