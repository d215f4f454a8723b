package casefile

import (
	"strings"

	"github.com/comptoir/backend/internal/domain/shared"
)

// Case is a titled free-text note in the investigation log.
type Case struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Note  string `json:"note,omitempty"`
}

// NewCase creates a case with a fresh ID. The title is required; the note
// is optional.
func NewCase(title, note string) (*Case, error) {
	if strings.TrimSpace(title) == "" {
		return nil, shared.NewDomainError("INVALID_TITLE", "Case title is required")
	}
	return &Case{
		ID:    shared.NewID(),
		Title: title,
		Note:  note,
	}, nil
}

// List is the case collection owned by the case-notes module.
type List []Case

// Remove filters out the case with the given ID. Removing an absent case
// is a no-op.
func (l *List) Remove(id string) {
	out := (*l)[:0]
	for _, c := range *l {
		if c.ID != id {
			out = append(out, c)
		}
	}
	*l = out
}

// DefaultCases returns the demo cases a fresh installation starts with.
func DefaultCases() List {
	return List{
		{ID: "c1", Title: "Flux circulaires – Compte SG", Note: "Vérifier les virements LOGITEL et dépôts espèces."},
		{ID: "c2", Title: "Plateformes – Vinted/YOOX", Note: "Comparer les remboursements et ventes réelles."},
	}
}
