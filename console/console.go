package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/lazharichir/blackjack/cards"
	"github.com/lazharichir/blackjack/config"
	"github.com/lazharichir/blackjack/domain"
	"github.com/lazharichir/blackjack/domain/commands"
	"github.com/lazharichir/blackjack/domain/events"
	"github.com/pterm/pterm"
	"github.com/sanity-io/litter"
)

// ShoeFactory builds the shoe a session starts with
type ShoeFactory func(decks int) (*cards.Shoe, error)

// Console drives a blackjack session over a line-based text stream
type Console struct {
	cfg     config.Config
	in      *bufio.Scanner
	out     io.Writer
	logger  *slog.Logger
	newShoe ShoeFactory
	store   *events.InMemoryEventStore
	session *domain.Session
}

// New creates a console reading player input from in and writing to out
func New(cfg config.Config, in io.Reader, out io.Writer, logger *slog.Logger) *Console {
	return &Console{
		cfg:     cfg,
		in:      bufio.NewScanner(in),
		out:     out,
		logger:  logger,
		newShoe: seededShoeFactory(cfg),
		store:   events.NewInMemoryEventStore(),
	}
}

// SetShoeFactory replaces how the starting shoe is built
func (c *Console) SetShoeFactory(factory ShoeFactory) {
	c.newShoe = factory
}

func seededShoeFactory(cfg config.Config) ShoeFactory {
	return func(decks int) (*cards.Shoe, error) {
		if cfg.HasSeed() {
			return cards.NewSeededShoe(decks, cfg.Seed)
		}
		return cards.NewShoe(decks, nil)
	}
}

// Run plays rounds until the player stops or the input ends, and returns the session tally
func (c *Console) Run() (domain.Stats, error) {
	fmt.Fprintln(c.out, pterm.DefaultBox.WithTitle("Blackjack").Sprint("Rules: Beat the dealer without going over 21."))

	shoe, err := c.startingShoe()
	if err != nil {
		return domain.Stats{}, err
	}

	session, err := domain.NewSession(c.cfg.SessionRules(), shoe, c.store)
	if err != nil {
		return domain.Stats{}, err
	}
	session.RegisterEventHandler(c.handleEvent)
	c.session = session
	c.logger.Info("session started", "session", session.ID, "decks", shoe.Decks(), "cards", shoe.Remaining())

	for {
		keepPlaying, err := c.playRound()
		if err != nil {
			c.logger.Error("round failed", "session", session.ID, "error", err)
			return session.Stats(), err
		}
		if !keepPlaying {
			break
		}

		fmt.Fprint(c.out, "\nPlay another round? (y/n): ")
		answer, ok := c.readLine()
		if !ok || !strings.EqualFold(answer, "y") {
			break
		}
	}

	if err := c.in.Err(); err != nil {
		return session.Stats(), fmt.Errorf("read input: %w", err)
	}

	c.printSummary(session.Stats())
	if c.cfg.Debug {
		if err := c.dumpEvents(); err != nil {
			return session.Stats(), err
		}
	}
	return session.Stats(), nil
}

func (c *Console) startingShoe() (*cards.Shoe, error) {
	if c.cfg.Decks != 0 {
		return c.newShoe(c.cfg.Decks)
	}

	for {
		fmt.Fprintf(c.out, "Enter number of decks (%d-%d): ", cards.MinDecks, cards.MaxDecks)
		line, ok := c.readLine()
		if !ok {
			return nil, errors.New("no deck count given")
		}

		decks, err := strconv.Atoi(line)
		if err != nil {
			c.warn("Invalid input.")
			continue
		}

		shoe, err := c.newShoe(decks)
		if errors.Is(err, cards.ErrInvalidConfiguration) {
			c.warn("Invalid input.")
			continue
		}
		return shoe, err
	}
}

// playRound plays one round. It returns false when the input ended mid-round.
func (c *Console) playRound() (bool, error) {
	round, err := c.session.StartRound()
	if err != nil {
		return false, err
	}

	view := round.View()
	up, err := view.UpCard()
	if err != nil {
		return false, err
	}
	fmt.Fprintf(c.out, "\nYour hand: %s\n", round.Player.Describe())
	fmt.Fprintf(c.out, "Dealer shows: %s\n", up)

	for !round.IsOver() {
		fmt.Fprint(c.out, "(h)it, (s)tand, or (w)alk away? ")
		line, ok := c.readLine()
		if !ok {
			// treat a closed input as walking away
			if err := commands.Execute(round, commands.WalkAway{RoundID: round.ID}); err != nil {
				return false, err
			}
			c.printResult(round)
			return false, nil
		}

		cmd, err := commands.FromInput(round.ID, line)
		if err != nil {
			c.warn("Invalid choice.")
			continue
		}
		if err := commands.Execute(round, cmd); err != nil {
			return false, err
		}
		if _, ok := cmd.(commands.Hit); ok {
			fmt.Fprintf(c.out, "Your hand: %s\n", round.Player.Describe())
		}
	}

	c.printResult(round)
	return true, nil
}

// handleEvent renders dealer and shoe activity and logs every event at debug level
func (c *Console) handleEvent(event events.Event) {
	c.logger.Debug("event", "name", event.Name(), "session", events.ExtractSessionID(event))

	round := c.session.CurrentRound()
	switch event.(type) {
	case events.ShoeRebuilt:
		c.warn("Reshuffling deck...")
	case events.DealerHoleCardRevealed:
		fmt.Fprintf(c.out, "\nDealer's hand: %s\n", round.Dealer.Describe())
	case events.DealerHit:
		fmt.Fprintf(c.out, "Dealer hits: %s\n", round.Dealer.Describe())
	}
}

func (c *Console) printResult(round *domain.Round) {
	result, ok := round.Result()
	if !ok {
		return
	}

	switch result.Reason {
	case domain.ReasonBlackjack:
		fmt.Fprint(c.out, pterm.Success.Sprintln("Blackjack! You win!"))
	case domain.ReasonPlayerBust:
		fmt.Fprint(c.out, pterm.Error.Sprintln("Bust! You lose."))
	case domain.ReasonDealerBust:
		fmt.Fprint(c.out, pterm.Success.Sprintln("Dealer busts! You win!"))
	case domain.ReasonWalkedAway:
		fmt.Fprint(c.out, pterm.Info.Sprintln("You walked away."))
	case domain.ReasonEqualTotals:
		fmt.Fprint(c.out, pterm.Info.Sprintfln("Push. Both have %d", result.PlayerTotal))
	case domain.ReasonHigherTotal:
		if result.Outcome == domain.OutcomePlayerWin {
			fmt.Fprint(c.out, pterm.Success.Sprintfln("You win! %d beats %d", result.PlayerTotal, result.DealerTotal))
		} else {
			fmt.Fprint(c.out, pterm.Error.Sprintfln("You lose. Dealer's %d beats your %d", result.DealerTotal, result.PlayerTotal))
		}
	}
}

func (c *Console) printSummary(stats domain.Stats) {
	summary := fmt.Sprintf("Rounds: %d\nWins: %d (blackjacks: %d)\nLosses: %d\nPushes: %d\nWalked away: %d",
		stats.Rounds, stats.PlayerWins, stats.Blackjacks, stats.DealerWins, stats.Pushes, stats.Walks)
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, pterm.DefaultBox.WithTitle("Session").Sprint(summary))
	fmt.Fprintln(c.out, "Thanks for playing!")
}

func (c *Console) dumpEvents() error {
	evts, err := c.session.Events()
	if err != nil {
		return fmt.Errorf("load event log: %w", err)
	}
	fmt.Fprintln(c.out, litter.Sdump(evts))
	return nil
}

func (c *Console) warn(msg string) {
	fmt.Fprint(c.out, pterm.Warning.Sprintln(msg))
}

func (c *Console) readLine() (string, bool) {
	if !c.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}
