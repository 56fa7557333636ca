package game

// Observer receives each disclosure as the game publishes it. A console
// front end prints them; tests record them.
type Observer interface {
	FirstMoveCommitted(FirstMove)
	DiceAssigned(Assignment)
	RollsCommitted(RollCommitments)
	RollsRevealed(Rolls)
	KeysRevealed(Keys)
}

type nopObserver struct{}

func (nopObserver) FirstMoveCommitted(FirstMove)   {}
func (nopObserver) DiceAssigned(Assignment)        {}
func (nopObserver) RollsCommitted(RollCommitments) {}
func (nopObserver) RollsRevealed(Rolls)            {}
func (nopObserver) KeysRevealed(Keys)              {}

// Play runs every step in order and returns the transcript. obs may be nil.
func (g *Game) Play(chooser DieChooser, obs Observer) (Transcript, error) {
	if obs == nil {
		obs = nopObserver{}
	}

	fm, err := g.CommitFirstMove()
	if err != nil {
		return Transcript{}, err
	}
	obs.FirstMoveCommitted(fm)

	as, err := g.AssignDice(chooser)
	if err != nil {
		return Transcript{}, err
	}
	obs.DiceAssigned(as)

	rc, err := g.CommitRolls()
	if err != nil {
		return Transcript{}, err
	}
	obs.RollsCommitted(rc)

	rolls, err := g.RevealRolls()
	if err != nil {
		return Transcript{}, err
	}
	obs.RollsRevealed(rolls)

	keys, err := g.RevealKeys()
	if err != nil {
		return Transcript{}, err
	}
	obs.KeysRevealed(keys)

	return g.Transcript()
}
