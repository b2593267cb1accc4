package editor

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/alexanderramin/praxis/internal/contract"
	"github.com/alexanderramin/praxis/internal/domain"
)

// TherapyBackend is the slice of the backend the catalog uses.
type TherapyBackend interface {
	Therapies(ctx context.Context) ([]*domain.Therapy, error)
	AddTherapy(ctx context.Context, p contract.TherapyParams) error
	UpdateTherapy(ctx context.Context, p contract.UpdateTherapyParams) error
}

// TherapyDraft is the text of a therapy form as typed.
type TherapyDraft struct {
	Name   string
	Cost   string
	Income string
}

func DraftFromTherapy(t *domain.Therapy) TherapyDraft {
	return TherapyDraft{Name: t.Name, Cost: formatDecimal(t.Cost), Income: formatDecimal(t.Income)}
}

func (d TherapyDraft) Complete() bool {
	return !blank(d.Name, d.Cost, d.Income)
}

func (d TherapyDraft) params() (contract.TherapyParams, error) {
	cost, err := parseDecimal("cost", d.Cost)
	if err != nil {
		return contract.TherapyParams{}, err
	}
	income, err := parseDecimal("income", d.Income)
	if err != nil {
		return contract.TherapyParams{}, err
	}
	return contract.TherapyParams{TherapyName: strings.TrimSpace(d.Name), Cost: cost, Income: income}, nil
}

var errNotEditingTherapy = errors.New("no therapy is being edited")

// Catalog is the therapy list with create and inline edit. Therapies are
// never deleted.
type Catalog struct {
	mu        sync.Mutex
	backend   TherapyBackend
	therapies []*domain.Therapy
	editingID int64
	staged    TherapyDraft
	err       string
}

func NewCatalog(backend TherapyBackend) *Catalog {
	return &Catalog{backend: backend}
}

func (c *Catalog) Therapies() []*domain.Therapy {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]*domain.Therapy(nil), c.therapies...)
}

func (c *Catalog) Err() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

func (c *Catalog) Editing() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.editingID
}

func (c *Catalog) Staged() TherapyDraft {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.staged
}

func (c *Catalog) Load(ctx context.Context) error {
	list, err := c.backend.Therapies(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.err = "Failed to load therapies: " + err.Error()
		return err
	}
	c.therapies = list
	c.err = ""
	return nil
}

func (c *Catalog) fail(prefix string, err error) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.err = prefix + err.Error()
	return err
}

func (c *Catalog) Create(ctx context.Context, draft TherapyDraft) error {
	if !draft.Complete() {
		c.mu.Lock()
		c.err = FillAllFieldsMessage
		c.mu.Unlock()
		return ErrIncomplete
	}
	p, err := draft.params()
	if err == nil {
		err = c.backend.AddTherapy(ctx, p)
	}
	if err != nil {
		return c.fail("Failed to add therapy: ", err)
	}
	return c.Load(ctx)
}

func (c *Catalog) BeginEdit(id int64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, t := range c.therapies {
		if t.ID == id {
			c.editingID = id
			c.staged = DraftFromTherapy(t)
			return true
		}
	}
	return false
}

func (c *Catalog) Stage(draft TherapyDraft) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.editingID != 0 {
		c.staged = draft
	}
}

func (c *Catalog) Commit(ctx context.Context) error {
	c.mu.Lock()
	id, staged := c.editingID, c.staged
	c.mu.Unlock()

	if id == 0 {
		return errNotEditingTherapy
	}
	p, err := staged.params()
	if err == nil {
		err = c.backend.UpdateTherapy(ctx, contract.UpdateTherapyParams{ID: id, TherapyParams: p})
	}
	if err != nil {
		return c.fail("Failed to update therapy: ", err)
	}

	c.mu.Lock()
	if c.editingID == id {
		c.editingID = 0
		c.staged = TherapyDraft{}
	}
	c.mu.Unlock()
	return c.Load(ctx)
}

func (c *Catalog) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.editingID = 0
	c.staged = TherapyDraft{}
}
