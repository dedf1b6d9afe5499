// Command cli plays a two-player chess game in the terminal. Both
// players share the keyboard; the program enforces the rules and
// announces check, checkmate, and stalemate.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/tbeck/clichess/internal/config"
	"github.com/tbeck/clichess/internal/engine"
)

func main() {
	cfg := config.Load()

	game := engine.NewGame()
	game.SetPromotionDefault(engine.PieceType(cfg.PromotionDefault))

	fmt.Println("Welcome to chess!")
	fmt.Println("Enter moves as two squares, e.g. e2e4.")
	fmt.Println("Castle with O-O (kingside) or O-O-O (queenside).")
	fmt.Println("Type quit or exit to resign.")

	in := bufio.NewScanner(os.Stdin)

	for {
		st := game.State()
		fmt.Print(render(st))

		if st.Status.Terminal() {
			announce(st)
			return
		}

		fmt.Print(prompt(st))
		if !in.Scan() {
			return
		}
		line := strings.TrimSpace(in.Text())
		if line == "" {
			continue
		}

		switch strings.ToLower(line) {
		case "quit", "exit":
			if err := game.Resign(game.ToMove()); err != nil {
				fmt.Println(err)
				continue
			}
			continue
		}

		if kingside, ok := parseCastle(line); ok {
			if err := game.Castle(kingside); err != nil {
				fmt.Println(err)
			}
			continue
		}

		from, to, ok := parseMove(line)
		if !ok {
			fmt.Println("Could not read that. Try a move like e2e4, O-O, or quit.")
			continue
		}

		mv := engine.Move{From: from, To: to}
		if game.IsPromotionMove(from, to) {
			mv.Promotion = askPromotion(in)
		}
		if err := game.MakeMove(mv); err != nil {
			fmt.Println(err)
		}
	}
}

// parseCastle recognizes O-O and O-O-O in any case, with zeros
// accepted in place of letter O.
func parseCastle(line string) (kingside, ok bool) {
	token := strings.ReplaceAll(strings.ToLower(line), "0", "o")
	switch token {
	case "o-o":
		return true, true
	case "o-o-o":
		return false, true
	}
	return false, false
}

// parseMove reads a pair of squares, written together ("e2e4") or
// separated by spaces ("e2 e4").
func parseMove(line string) (from, to engine.Position, ok bool) {
	s := strings.ReplaceAll(line, " ", "")
	if len(s) != 4 {
		return engine.Position{}, engine.Position{}, false
	}
	from, ok = engine.ParseSquare(s[:2])
	if !ok {
		return engine.Position{}, engine.Position{}, false
	}
	to, ok = engine.ParseSquare(s[2:])
	if !ok {
		return engine.Position{}, engine.Position{}, false
	}
	return from, to, true
}

func askPromotion(in *bufio.Scanner) engine.PieceType {
	fmt.Print("Promote to (Q/R/B/N): ")
	if !in.Scan() {
		return engine.Queen
	}
	choice := strings.TrimSpace(in.Text())
	if choice == "" {
		return engine.Queen
	}
	return engine.PromotionChoice(choice[0], engine.Queen)
}

func prompt(st engine.State) string {
	name := sideName(st.ToMove)
	if st.IsCheck {
		return fmt.Sprintf("%s's move (in CHECK!): ", name)
	}
	return fmt.Sprintf("%s's move: ", name)
}

// render draws the board with rank 8 at the top, white's point of view.
func render(st engine.State) string {
	var b strings.Builder
	b.WriteString("\n    a   b   c   d   e   f   g   h\n")
	b.WriteString("  +---+---+---+---+---+---+---+---+\n")
	for y := 0; y < 8; y++ {
		rank := 8 - y
		fmt.Fprintf(&b, "%d |", rank)
		for x := 0; x < 8; x++ {
			pc := st.Board[y][x]
			if pc == nil {
				b.WriteString("   |")
			} else {
				fmt.Fprintf(&b, " %s |", pc.Symbol())
			}
		}
		fmt.Fprintf(&b, " %d\n", rank)
		b.WriteString("  +---+---+---+---+---+---+---+---+\n")
	}
	b.WriteString("    a   b   c   d   e   f   g   h\n\n")
	return b.String()
}

func announce(st engine.State) {
	switch st.Status {
	case engine.StatusCheckmate:
		fmt.Printf("Checkmate! %s wins.\n", sideName(st.Winner))
	case engine.StatusStalemate:
		fmt.Println("Stalemate. The game is a draw.")
	case engine.StatusResigned:
		fmt.Printf("%s wins by resignation.\n", sideName(st.Winner))
	}
}

func sideName(s engine.Side) string {
	if s == engine.White {
		return "White"
	}
	return "Black"
}
