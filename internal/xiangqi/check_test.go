package xiangqi

import "testing"

func TestGeneralsFacing(t *testing.T) {
	b := EmptyBoard()
	b.Place(sq(4, 9), MakePiece(Red, PieceGeneral))
	b.Place(sq(4, 0), MakePiece(Black, PieceGeneral))
	if !b.GeneralsFacing() {
		t.Fatalf("open file between generals must be facing")
	}

	b.Place(sq(4, 5), MakePiece(Red, PieceChariot))
	if b.GeneralsFacing() {
		t.Fatalf("chariot between generals blocks facing")
	}
	// 车离开这一列会让两将对脸
	if b.IsLegalMove(sq(4, 5), sq(3, 5)) {
		t.Fatalf("moving the only blocker off the file must be illegal")
	}
	if !b.IsLegalMove(sq(4, 5), sq(4, 4)) {
		t.Fatalf("moving along the file keeps the block")
	}
	// 将自己走到对方将所在的列也不行
	b.Remove(sq(4, 5))
	b.Remove(sq(4, 9))
	b.Place(sq(3, 9), MakePiece(Red, PieceGeneral))
	if b.IsLegalMove(sq(3, 9), sq(4, 9)) {
		t.Fatalf("general stepped onto the open file")
	}
}

func TestGeneralsNotFacingWhenOneMissing(t *testing.T) {
	b := EmptyBoard()
	b.Place(sq(4, 9), MakePiece(Red, PieceGeneral))
	if b.GeneralsFacing() {
		t.Fatalf("single general cannot face")
	}
	if b.IsInCheck(Black) {
		t.Fatalf("missing general reported as in check")
	}
}

func TestIsInCheckByChariot(t *testing.T) {
	b := EmptyBoard()
	b.Place(sq(4, 9), MakePiece(Red, PieceGeneral))
	b.Place(sq(3, 0), MakePiece(Black, PieceGeneral))
	b.Place(sq(4, 2), MakePiece(Black, PieceChariot))
	b.Place(sq(0, 5), MakePiece(Red, PieceChariot))

	if !b.IsInCheck(Red) {
		t.Fatalf("red should be in check from chariot")
	}
	if b.IsInCheck(Black) {
		t.Fatalf("black should not be in check")
	}
	// 不解将的走法不合法
	if b.IsLegalMove(sq(0, 5), sq(0, 4)) {
		t.Fatalf("move ignoring check accepted")
	}
	// 垫车可以解将
	if !b.IsLegalMove(sq(0, 5), sq(4, 5)) {
		t.Fatalf("blocking with the chariot should be legal")
	}
	// 出将：左边会和黑将对脸，右边可以
	if b.IsLegalMove(sq(4, 9), sq(3, 9)) {
		t.Fatalf("general escaped onto the facing file")
	}
	if !b.IsLegalMove(sq(4, 9), sq(5, 9)) {
		t.Fatalf("general should escape right")
	}
}

func TestIsInCheckByCannonHorseSoldier(t *testing.T) {
	b := EmptyBoard()
	b.Place(sq(4, 9), MakePiece(Red, PieceGeneral))
	b.Place(sq(3, 0), MakePiece(Black, PieceGeneral))

	// 炮隔一子将军
	b.Place(sq(4, 5), MakePiece(Black, PieceCannon))
	b.Place(sq(4, 7), MakePiece(Red, PieceSoldier))
	if !b.IsInCheck(Red) {
		t.Fatalf("cannon with screen should check")
	}
	b.Remove(sq(4, 7))
	if b.IsInCheck(Red) {
		t.Fatalf("cannon without screen should not check")
	}
	b.Remove(sq(4, 5))

	// 马将军，马腿被塞则不将
	b.Place(sq(3, 7), MakePiece(Black, PieceHorse))
	if !b.IsInCheck(Red) {
		t.Fatalf("horse should check")
	}
	b.Place(sq(3, 8), MakePiece(Red, PieceAdvisor))
	if b.IsInCheck(Red) {
		t.Fatalf("hobbled horse should not check")
	}
	b.Remove(sq(3, 7))
	b.Remove(sq(3, 8))

	// 过河卒横将
	b.Place(sq(5, 9), MakePiece(Black, PieceSoldier))
	if !b.IsInCheck(Red) {
		t.Fatalf("crossed soldier should check sideways")
	}
	b.Remove(sq(5, 9))

	// 斜前方一步也能将军
	b.Place(sq(3, 8), MakePiece(Black, PieceSoldier))
	if !b.IsInCheck(Red) {
		t.Fatalf("soldier should check diagonally forward")
	}
	b.Remove(sq(3, 8))

	// 卒不能往回吃
	b.Place(sq(3, 9), MakePiece(Black, PieceSoldier))
	b.Remove(sq(4, 9))
	b.Place(sq(4, 8), MakePiece(Red, PieceGeneral))
	if b.IsInCheck(Red) {
		t.Fatalf("soldier attacked backward")
	}
}
