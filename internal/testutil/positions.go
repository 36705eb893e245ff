package testutil

// Well-known positions used across the test suites.
const (
	StartFEN     = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
	KiwipeteFEN  = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	Position3FEN = "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"
	Position4FEN = "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1"
	Position5FEN = "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8"

	FoolsMateFEN = "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3"
	StalemateFEN = "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1"
	BackRankFEN  = "7q/8/8/8/8/8/5k2/7K w - - 0 1"
)

// PerftCase is a position with its known leaf counts; Nodes[i] is the
// count at depth i+1.
type PerftCase struct {
	Name  string
	FEN   string
	Nodes []uint64
}

// PerftCases are the standard move-generator validation positions.
var PerftCases = []PerftCase{
	{"start", StartFEN, []uint64{20, 400, 8902, 197281}},
	{"kiwipete", KiwipeteFEN, []uint64{48, 2039, 97862}},
	{"position 3", Position3FEN, []uint64{14, 191, 2812, 43238}},
	{"position 4", Position4FEN, []uint64{6, 264, 9467}},
	{"position 5", Position5FEN, []uint64{44, 1486, 62379}},
}
