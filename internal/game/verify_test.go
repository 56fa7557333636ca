package game

import (
	"errors"
	"strings"
	"testing"

	"fairdice/internal/commit"
	"fairdice/internal/random"
)

func playedTranscript(t *testing.T) Transcript {
	t.Helper()
	g, err := (&Engine{Source: random.NewSequence(0, 4, 5)}).NewGame(testSet(t))
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	tr, err := g.Play(Choice(0), nil)
	if err != nil {
		t.Fatalf("Play: %v", err)
	}
	return tr
}

func TestVerifyTranscript_Valid(t *testing.T) {
	tr := playedTranscript(t)
	// die 0 index 4 is 5; die 1 index 5 is 1.
	if tr.User.Face != 5 || tr.Computer.Face != 1 {
		t.Fatalf("Unexpected faces %d, %d", tr.User.Face, tr.Computer.Face)
	}
	if err := VerifyTranscript(tr); err != nil {
		t.Errorf("Expected valid transcript, got %v", err)
	}
}

func TestVerifyTranscript_Tampered(t *testing.T) {
	cases := map[string]func(*Transcript){
		"face changed": func(tr *Transcript) {
			tr.User.Face = 6
			tr.Outcome = UserWins
		},
		"face index moved": func(tr *Transcript) { tr.User.FaceIndex = 0 },
		"key swapped":      func(tr *Transcript) { tr.Computer.Key = tr.User.Key },
		"first mover flipped": func(tr *Transcript) {
			tr.FirstMover = Computer
		},
		"outcome forged":   func(tr *Transcript) { tr.Outcome = ComputerWins },
		"same die":         func(tr *Transcript) { tr.Computer.Die = tr.User.Die },
		"die out of range": func(tr *Transcript) { tr.Computer.Die = 9 },
		"policy mismatch":  func(tr *Transcript) { tr.Computer.Die = 2 },
		"digest missing":   func(tr *Transcript) { tr.FirstMoveDigest = nil },
		"bad face index":   func(tr *Transcript) { tr.User.FaceIndex = 6 },
	}
	for name, tamper := range cases {
		tr := playedTranscript(t)
		tamper(&tr)
		err := VerifyTranscript(tr)
		if !errors.Is(err, ErrVerification) {
			t.Errorf("%s: expected ErrVerification, got %v", name, err)
		}
	}
}

func TestVerifyTranscript_ReportsEveryProblem(t *testing.T) {
	tr := playedTranscript(t)
	tr.User.Key = commit.Secret{1}
	tr.Outcome = Tie
	err := VerifyTranscript(tr)
	if err == nil {
		t.Fatal("Expected failure")
	}
	msg := err.Error()
	if !strings.Contains(msg, "user roll digest") || !strings.Contains(msg, "outcome") {
		t.Errorf("Expected both problems reported, got %q", msg)
	}
}

func TestVerifyTranscript_BadDice(t *testing.T) {
	tr := playedTranscript(t)
	tr.Dice = tr.Dice[:2]
	if err := VerifyTranscript(tr); !errors.Is(err, ErrVerification) {
		t.Errorf("Expected ErrVerification, got %v", err)
	}

	tr = playedTranscript(t)
	tr.Policy = "bogus"
	if err := VerifyTranscript(tr); !errors.Is(err, ErrVerification) {
		t.Errorf("Expected ErrVerification, got %v", err)
	}
}
