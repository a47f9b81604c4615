package console

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fadedpez/drawpoker/internal/types"
	"github.com/fadedpez/drawpoker/pkg/cards"
	"github.com/fadedpez/drawpoker/pkg/games/draw"
	"github.com/fadedpez/drawpoker/pkg/services/poker"
	"github.com/fadedpez/drawpoker/pkg/services/statistics"
	"github.com/pterm/pterm"
)

func renderWelcome() string {
	header := pterm.DefaultHeader.WithMargin(4).Sprint("Draw Poker")
	return header + "\n" + pterm.Sprintfln("Five cards, one exchange of up to %d, scored on a fixed table.", cards.MaxExchange)
}

func renderHelp() string {
	data := pterm.TableData{
		{"Command", "Does"},
		{"deal, d", "deal a new hand"},
		{"toggle N, t N, N", "mark or unmark card N (1-5) for exchange"},
		{"commit, c", "exchange the marked cards and score the hand"},
		{"enter", "deal or commit, whichever comes next"},
		{"stats, s", "show the scoreboard"},
		{"help, h", "show this help"},
		{"quit, q", "leave the table"},
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return fmt.Sprintln("commands: deal, toggle N, commit, stats, help, quit")
	}
	return table + "\n"
}

func renderCard(card cards.Card) string {
	if card.Suit().IsRed() {
		return pterm.LightRed(card.String())
	}
	return card.String()
}

func renderCodes(codes []int) string {
	if len(codes) == 0 {
		return "none"
	}

	parts := make([]string, 0, len(codes))
	for _, code := range codes {
		card, err := cards.NewCard(code)
		if err != nil {
			parts = append(parts, "??")
			continue
		}
		parts = append(parts, renderCard(card))
	}
	return strings.Join(parts, " ")
}

// renderHand lays the hand out under its 1-based positions. Marked cards carry a star.
func renderHand(hand cards.Hand, selected func(int) bool) string {
	positions := make([]string, len(hand))
	faces := make([]string, len(hand))
	for i, card := range hand {
		positions[i] = strconv.Itoa(i + 1)
		faces[i] = renderCard(card)
		if selected(i) {
			faces[i] += pterm.LightYellow("*")
		}
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(pterm.TableData{positions, faces}).Srender()
	if err != nil {
		return hand.String()
	}
	return table
}

func renderTable(session *draw.Session) string {
	var body strings.Builder
	body.WriteString(renderHand(session.Hand(), session.IsSelected))
	body.WriteString("\n\n")
	body.WriteString(fmt.Sprintf("Marked %d of %d, %d cards in the deck", len(session.Selection()), cards.MaxExchange, session.DeckSize()))

	box := pterm.DefaultBox.
		WithTitle(pterm.LightCyan(fmt.Sprintf("|ROUND %d  SCORE %d|", session.Rounds()+1, session.Score()))).
		WithTitleTopCenter().
		WithHorizontalPadding(2)
	return box.Sprint(body.String()) + "\n"
}

func renderRound(round *draw.Round) string {
	var body strings.Builder
	body.WriteString(pterm.Sprintfln("Dealt    %s", renderCodes(round.Dealt.Codes())))
	body.WriteString(pterm.Sprintfln("Swapped  %s", renderCodes(round.Discarded)))
	body.WriteString(pterm.Sprintfln("Final    %s", renderCodes(round.Final.Codes())))
	body.WriteString(pterm.Sprintfln("Hand     %s %s", pterm.LightCyan(round.Category.String()), pterm.LightGreen(fmt.Sprintf("+%d", round.Score))))
	body.WriteString(fmt.Sprintf("Total    %d", round.Total))

	box := pterm.DefaultBox.
		WithTitle(pterm.LightGreen(fmt.Sprintf("|ROUND %d|", round.Number))).
		WithTitleTopCenter().
		WithHorizontalPadding(4)
	return box.Sprint(body.String()) + "\n"
}

func renderScoreboard(board *statistics.Scoreboard) string {
	if board.RoundsPlayed == 0 {
		return pterm.Info.Sprintln("No rounds played yet.")
	}

	var body strings.Builder
	body.WriteString(pterm.Sprintfln("Rounds played   %d", board.RoundsPlayed))
	body.WriteString(pterm.Sprintfln("Total score     %d", board.TotalScore))
	body.WriteString(pterm.Sprintfln("Average score   %.2f", board.AverageScore))
	body.WriteString(pterm.Sprintfln("Best hand       %s (%d)", board.BestCategory, board.BestScore))
	body.WriteString(pterm.Sprintfln("Cards exchanged %d", board.CardsExchanged))

	categories := pterm.TableData{{"Hand", "Points", "Times", "Rate"}}
	for _, line := range board.Categories {
		categories = append(categories, []string{
			line.Category,
			strconv.Itoa(line.Points),
			strconv.Itoa(line.Count),
			fmt.Sprintf("%.1f%%", line.Rate),
		})
	}
	if table, err := pterm.DefaultTable.WithHasHeader().WithData(categories).Srender(); err == nil {
		body.WriteString("\n" + table + "\n")
	}

	recent := pterm.TableData{{"Round", "Final hand", "Hand", "Points", "Total"}}
	for _, r := range board.Recent {
		recent = append(recent, []string{
			strconv.Itoa(r.Number),
			renderCodes(r.FinalCards),
			r.Category,
			strconv.Itoa(r.Score),
			strconv.Itoa(r.TotalScore),
		})
	}
	if table, err := pterm.DefaultTable.WithHasHeader().WithData(recent).Srender(); err == nil {
		body.WriteString("\n" + table)
	}

	box := pterm.DefaultBox.
		WithTitle(pterm.LightYellow("|SCOREBOARD|")).
		WithTitleTopCenter().
		WithHorizontalPadding(2)
	return box.Sprint(body.String()) + "\n"
}

func renderScoreTable() string {
	data := pterm.TableData{{"Hand", "Points"}}
	categories := poker.Categories()
	for i := len(categories) - 1; i >= 0; i-- {
		data = append(data, []string{categories[i].String(), strconv.Itoa(categories[i].Score())})
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return ""
	}
	return table + "\n"
}

func renderError(err error) string {
	var gameErr *types.GameError
	if types.As(err, &gameErr) {
		return pterm.Error.Sprintln(gameErr.Message)
	}
	return pterm.Error.Sprintln(err.Error())
}

func renderWarning(message string) string {
	return pterm.Warning.Sprintln(message)
}

func renderGoodbye(score, rounds int) string {
	return pterm.Success.Sprintfln("Final score %d after %d rounds. Thanks for playing.", score, rounds)
}
