// Package receipt renders a finished game as a printable PDF: the dice in
// play, every published digest next to its revealed key, and whether the
// transcript verifies.
package receipt

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/jung-kurt/gofpdf"

	"fairdice/internal/game"
)

const (
	pageW     = 595
	margin    = 40
	faceSize  = 26.0
	faceGap   = 6.0
	rowHeight = 40.0
	fontSize  = 9
	titleSize = 18
	monoSize  = 7
)

// Render returns PDF bytes for t. title is printed under the heading and
// may be empty.
func Render(t game.Transcript, title string) ([]byte, error) {
	verifyErr := game.VerifyTranscript(t)

	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(true, margin)
	pdf.AddPage()

	pdf.SetTextColor(30, 30, 30)
	pdf.SetFont("Helvetica", "B", titleSize)
	pdf.CellFormat(0, 22, "Fair Dice Receipt", "", 1, "L", false, 0, "")
	if title != "" {
		pdf.SetFont("Helvetica", "", fontSize)
		pdf.CellFormat(0, 12, title, "", 1, "L", false, 0, "")
	}
	pdf.SetFont("Helvetica", "", fontSize)
	pdf.CellFormat(0, 14, fmt.Sprintf("First mover: %s    Policy: %s", t.FirstMover, t.Policy), "", 1, "L", false, 0, "")
	pdf.Ln(6)

	// Dice with the assigned dice labelled and the rolled face filled in.
	y := pdf.GetY()
	for i, faces := range t.Dice {
		label, rolled := "", -1
		switch i {
		case t.User.Die:
			label, rolled = "user", t.User.FaceIndex
		case t.Computer.Die:
			label, rolled = "computer", t.Computer.FaceIndex
		}
		drawDie(pdf, margin, y, i, faces, label, rolled)
		y += rowHeight
	}
	pdf.SetXY(margin, y+4)

	pdf.SetFont("Helvetica", "B", fontSize+2)
	pdf.CellFormat(0, 16, "Commitments", "", 1, "L", false, 0, "")
	commitment(pdf, "First move", strconv.Itoa(int(t.FirstMover)), t.FirstMoveDigest.String(), t.FirstMoveKey.String())
	commitment(pdf, "User roll", strconv.Itoa(t.User.Face), t.User.Digest.String(), t.User.Key.String())
	commitment(pdf, "Computer roll", strconv.Itoa(t.Computer.Face), t.Computer.Digest.String(), t.Computer.Key.String())
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", fontSize+4)
	pdf.CellFormat(0, 18, outcomeText(t.Outcome), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", fontSize)
	if verifyErr == nil {
		pdf.SetTextColor(20, 120, 40)
		pdf.CellFormat(0, 14, "Verified: every digest matches its revealed key.", "", 1, "L", false, 0, "")
	} else {
		pdf.SetTextColor(180, 30, 30)
		pdf.MultiCell(0, 12, "NOT VERIFIED: "+verifyErr.Error(), "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func drawDie(pdf *gofpdf.Fpdf, x, y float64, index int, faces []int, label string, rolled int) {
	pdf.SetFont("Helvetica", "B", fontSize)
	pdf.SetTextColor(30, 30, 30)
	pdf.SetXY(x, y+faceSize/2-6)
	pdf.CellFormat(50, 12, fmt.Sprintf("Die %d", index), "", 0, "L", false, 0, "")

	fx := x + 56
	pdf.SetLineWidth(1)
	pdf.SetDrawColor(60, 60, 60)
	for i, f := range faces {
		if i == rolled {
			pdf.SetFillColor(250, 210, 90)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}
		pdf.Rect(fx, y, faceSize, faceSize, "FD")
		pdf.SetXY(fx, y+faceSize/2-6)
		pdf.CellFormat(faceSize, 12, strconv.Itoa(f), "", 0, "C", false, 0, "")
		fx += faceSize + faceGap
	}
	if label != "" {
		pdf.SetFont("Helvetica", "I", fontSize)
		pdf.SetXY(fx+6, y+faceSize/2-6)
		pdf.CellFormat(80, 12, label, "", 0, "L", false, 0, "")
	}
}

func commitment(pdf *gofpdf.Fpdf, name, value, digest, key string) {
	pdf.SetTextColor(30, 30, 30)
	pdf.SetFont("Helvetica", "B", fontSize)
	pdf.CellFormat(0, 13, fmt.Sprintf("%s (value %s)", name, value), "", 1, "L", false, 0, "")
	pdf.SetFont("Courier", "", monoSize)
	pdf.CellFormat(0, 10, "HMAC "+digest, "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 10, "KEY  "+key, "", 1, "L", false, 0, "")
}

func outcomeText(o game.Outcome) string {
	switch o {
	case game.UserWins:
		return "User wins"
	case game.ComputerWins:
		return "Computer wins"
	case game.Tie:
		return "Tie"
	default:
		return "No result"
	}
}
