package reservation

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Sheylasoledispa/veterinaria-pozovet/models"
)

// fakeStore is an in-memory Store. Transact serializes callers the way row
// locks would and applies writes only when fn succeeds, so a failed
// checkout observably changes nothing.
type fakeStore struct {
	mu          sync.Mutex
	state       *fakeState
	failCreates int // CreateReservation calls to fail with a code collision
	createCalls int
}

type fakeState struct {
	products     map[uint]*models.Product
	statuses     []models.Status
	reservations []*models.Reservation
	nextRes      uint
	nextItem     uint
}

func newFakeStore() *fakeStore {
	s := &fakeStore{state: &fakeState{
		products: map[uint]*models.Product{},
		nextRes:  1,
		nextItem: 1,
	}}
	for i, name := range []string{models.StatusPending, models.StatusConfirmed, models.StatusCompleted, models.StatusCancelled} {
		s.state.statuses = append(s.state.statuses, models.Status{ID: uint(i + 1), Name: name})
	}
	return s
}

func (s *fakeStore) addProduct(id uint, name, price string, stock int) {
	s.state.products[id] = &models.Product{
		ID:    id,
		Name:  name,
		Price: decimal.RequireFromString(price),
		Stock: stock,
	}
}

func (s *fakeStore) stock(id uint) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.products[id].Stock
}

func (s *fakeStore) reservationCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.state.reservations)
}

func (s *fakeState) clone() *fakeState {
	c := &fakeState{
		products: make(map[uint]*models.Product, len(s.products)),
		statuses: append([]models.Status(nil), s.statuses...),
		nextRes:  s.nextRes,
		nextItem: s.nextItem,
	}
	for id, p := range s.products {
		cp := *p
		c.products[id] = &cp
	}
	for _, r := range s.reservations {
		cr := *r
		cr.Items = append([]models.ReservationItem(nil), r.Items...)
		c.reservations = append(c.reservations, &cr)
	}
	return c
}

func (s *fakeState) find(id uint) *models.Reservation {
	for _, r := range s.reservations {
		if r.ID == id {
			return r
		}
	}
	return nil
}

func (s *fakeState) statusByID(id uint) *models.Status {
	for i := range s.statuses {
		if s.statuses[i].ID == id {
			return &s.statuses[i]
		}
	}
	return nil
}

func (s *fakeStore) Transact(fn func(tx Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	work := s.state.clone()
	if err := fn(&fakeTx{store: s, state: work}); err != nil {
		return err
	}
	s.state = work
	return nil
}

func (s *fakeStore) ReservationByID(id uint) (*models.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := s.state.find(id)
	if r == nil {
		return nil, ErrNotFound
	}
	return s.loadLocked(r), nil
}

func (s *fakeStore) ListForUser(userID uint) ([]models.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Reservation
	for _, r := range s.state.reservations {
		if r.UserID == userID {
			out = append(out, *s.loadLocked(r))
		}
	}
	return out, nil
}

func (s *fakeStore) ListAll(filter string) ([]models.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Reservation
	for _, r := range s.state.reservations {
		if filter == "" || strings.Contains(strings.ToLower(r.InvoiceCode), strings.ToLower(filter)) {
			out = append(out, *s.loadLocked(r))
		}
	}
	return out, nil
}

func (s *fakeStore) loadLocked(r *models.Reservation) *models.Reservation {
	cr := *r
	cr.Items = append([]models.ReservationItem(nil), r.Items...)
	if st := s.state.statusByID(r.StatusID); st != nil {
		cr.Status = *st
	}
	return &cr
}

type fakeTx struct {
	store *fakeStore
	state *fakeState
}

func (t *fakeTx) ProductsForUpdate(ids []uint) ([]models.Product, error) {
	var out []models.Product
	for _, id := range ids {
		if p, ok := t.state.products[id]; ok {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (t *fakeTx) SaveProductStock(p *models.Product) error {
	stored, ok := t.state.products[p.ID]
	if !ok {
		return fmt.Errorf("product %d not found", p.ID)
	}
	stored.Stock = p.Stock
	return nil
}

func (t *fakeTx) StatusByName(name string) (*models.Status, error) {
	for i := range t.state.statuses {
		if strings.EqualFold(t.state.statuses[i].Name, strings.TrimSpace(name)) {
			st := t.state.statuses[i]
			return &st, nil
		}
	}
	return nil, nil
}

func (t *fakeTx) StatusByID(id uint) (*models.Status, error) {
	if st := t.state.statusByID(id); st != nil {
		cp := *st
		return &cp, nil
	}
	return nil, nil
}

func (t *fakeTx) CreateReservation(r *models.Reservation) error {
	t.store.createCalls++
	if t.store.failCreates > 0 {
		t.store.failCreates--
		return ErrDuplicateInvoiceCode
	}
	for _, existing := range t.state.reservations {
		if existing.InvoiceCode == r.InvoiceCode {
			return ErrDuplicateInvoiceCode
		}
	}
	r.ID = t.state.nextRes
	t.state.nextRes++
	r.CreatedAt = time.Now()
	cr := *r
	t.state.reservations = append(t.state.reservations, &cr)
	return nil
}

func (t *fakeTx) CreateItems(items []models.ReservationItem) error {
	for i := range items {
		items[i].ID = t.state.nextItem
		t.state.nextItem++
		owner := t.state.find(items[i].ReservationID)
		if owner == nil {
			return fmt.Errorf("reservation %d not found", items[i].ReservationID)
		}
		owner.Items = append(owner.Items, items[i])
	}
	return nil
}

func (t *fakeTx) ReservationForUpdate(id uint) (*models.Reservation, error) {
	r := t.state.find(id)
	if r == nil {
		return nil, ErrNotFound
	}
	cr := *r
	cr.Items = append([]models.ReservationItem(nil), r.Items...)
	if st := t.state.statusByID(r.StatusID); st != nil {
		cr.Status = *st
	}
	return &cr, nil
}

func (t *fakeTx) SaveReservation(r *models.Reservation) error {
	stored := t.state.find(r.ID)
	if stored == nil {
		return ErrNotFound
	}
	stored.StatusID = r.StatusID
	stored.InvoiceCode = r.InvoiceCode
	stored.Total = r.Total
	stored.Notes = r.Notes
	stored.UpdatedBy = r.UpdatedBy
	stored.UpdatedAt = time.Now()
	return nil
}

func (t *fakeTx) LastInvoiceCode(prefix string) (string, error) {
	last := ""
	for _, r := range t.state.reservations {
		if strings.HasPrefix(r.InvoiceCode, prefix) && r.InvoiceCode > last {
			last = r.InvoiceCode
		}
	}
	return last, nil
}

type historyEntry struct {
	subject, actor uint
	kind, detail   string
}

type fakeHistory struct {
	mu      sync.Mutex
	entries []historyEntry
}

func (h *fakeHistory) Record(subjectID, actorID uint, kind, detail string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = append(h.entries, historyEntry{subjectID, actorID, kind, detail})
}
