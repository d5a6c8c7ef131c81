package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/lgbarn/fen-board-go/internal/chess"
	"github.com/lgbarn/fen-board-go/internal/config"
	"github.com/lgbarn/fen-board-go/internal/fen"
	"github.com/lgbarn/fen-board-go/internal/testutil"
)

const epFEN = "4k3/8/8/3pP3/8/8/8/4K3 w - d5 0 2"

func mustRecord(t *testing.T, input string) Record {
	t.Helper()
	board, err := fen.Parse(input)
	if err != nil {
		t.Fatalf("fen.Parse(%q) error = %v", input, err)
	}
	return Record{FEN: input, Source: "positions.fen", Line: 7, Board: board}
}

func TestDiagram(t *testing.T) {
	board, err := fen.Parse(fen.InitialFEN)
	testutil.AssertNoError(t, err)

	want := strings.Join([]string{
		"8 r n b q k b n r",
		"7 p p p p p p p p",
		"6 . . . . . . . .",
		"5 . . . . . . . .",
		"4 . . . . . . . .",
		"3 . . . . . . . .",
		"2 P P P P P P P P",
		"1 R N B Q K B N R",
		"  a b c d e f g h",
		"",
	}, "\n")
	testutil.AssertEqual(t, Diagram(board), want)
}

func TestTextWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, config.Text)

	testutil.AssertNoError(t, w.WriteRecord(mustRecord(t, epFEN)))
	testutil.AssertNoError(t, w.WriteRecord(Record{FEN: "8/8/8/8/8/8/8/8 w - - 0 1", Board: chess.NewBoard()}))
	testutil.AssertNoError(t, w.Close())

	out := buf.String()
	testutil.AssertContains(t, out, "positions.fen:7: "+epFEN+"\n")
	testutil.AssertContains(t, out, "5 . . . p P . . .\n")
	testutil.AssertContains(t, out, "en passant target: d5\n")
	testutil.AssertContains(t, out, "\n\n8/8/8/8/8/8/8/8 w - - 0 1\n", "records separated by a blank line")
	testutil.AssertEqual(t, strings.Count(out, "en passant target"), 1)
}

func TestJSONWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, config.JSON)
	testutil.AssertNoError(t, w.WriteRecord(mustRecord(t, epFEN)))
	testutil.AssertNoError(t, w.Close())

	var got JSONRecord
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("json.Unmarshal() error = %v\n%s", err, buf.String())
	}

	testutil.AssertEqual(t, got, JSONRecord{
		FEN:    epFEN,
		Source: "positions.fen",
		Line:   7,
		Pieces: []JSONPiece{
			{Square: "e8", Colour: "Black", Kind: "King"},
			{Square: "d5", Colour: "Black", Kind: "Pawn", EnPassantTarget: true},
			{Square: "e5", Colour: "White", Kind: "Pawn"},
			{Square: "e1", Colour: "White", Kind: "King"},
		},
	})
	testutil.AssertContains(t, buf.String(), `"enPassantTarget": true`)
}

func TestJSONWriterEmptyBoard(t *testing.T) {
	var buf bytes.Buffer
	w := NewJSONWriter(&buf)
	testutil.AssertNoError(t, w.WriteRecord(Record{FEN: "8/8/8/8/8/8/8/8 w - - 0 1", Board: chess.NewBoard()}))

	testutil.AssertContains(t, buf.String(), `"pieces": []`)
}

func TestYAMLWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, config.YAML)
	testutil.AssertNoError(t, w.WriteRecord(mustRecord(t, epFEN)))
	testutil.AssertNoError(t, w.WriteRecord(mustRecord(t, fen.InitialFEN)))
	testutil.AssertNoError(t, w.Close())

	dec := yaml.NewDecoder(&buf)
	var docs []JSONRecord
	for {
		var rec JSONRecord
		if err := dec.Decode(&rec); err != nil {
			break
		}
		docs = append(docs, rec)
	}

	if len(docs) != 2 {
		t.Fatalf("decoded %d YAML documents; want 2", len(docs))
	}
	testutil.AssertEqual(t, docs[0].Pieces[1], JSONPiece{Square: "d5", Colour: "Black", Kind: "Pawn", EnPassantTarget: true})
	testutil.AssertEqual(t, len(docs[1].Pieces), 32)
	testutil.AssertEqual(t, docs[1].FEN, fen.InitialFEN)
}
