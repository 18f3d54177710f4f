package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// canPieceMove checks the movement geometry of a knight, bishop, rook,
// queen or king step, including path clearance for the sliders.
// It does not look at the destination square's occupant.
func canPieceMove(board *chess.Board, kind chess.Kind, from, to chess.Square) bool {
	fileDiff := abs(to.File - from.File)
	rankDiff := abs(to.Rank - from.Rank)

	switch kind {
	case chess.Knight:
		return (fileDiff == 1 && rankDiff == 2) || (fileDiff == 2 && rankDiff == 1)

	case chess.Bishop:
		if fileDiff != rankDiff {
			return false
		}
		return isPathClear(board, from, to)

	case chess.Rook:
		if fileDiff != 0 && rankDiff != 0 {
			return false
		}
		return isPathClear(board, from, to)

	case chess.Queen:
		if fileDiff == rankDiff || fileDiff == 0 || rankDiff == 0 {
			return isPathClear(board, from, to)
		}
		return false

	case chess.King:
		return fileDiff <= 1 && rankDiff <= 1
	}

	return false
}

// isPathClear checks that every square strictly between from and to is
// empty. from and to must share a rank, file or diagonal.
func isPathClear(board *chess.Board, from, to chess.Square) bool {
	fileDir := sign(to.File - from.File)
	rankDir := sign(to.Rank - from.Rank)

	sq := from.Offset(fileDir, rankDir)
	for sq != to {
		if !board.Get(sq).IsEmpty() {
			return false
		}
		sq = sq.Offset(fileDir, rankDir)
	}

	return true
}
